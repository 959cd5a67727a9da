package graph

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
)

// RecordError describes a single malformed input record that was skipped
// during a read. The surrounding read continues past it.
type RecordError struct {
	Line   int    // 1-based line number in the input
	Record string // raw record content
	Reason string // why it was rejected
}

// Error implements the error interface.
func (e RecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Record)
}

// ReadEdges parses edges from r in "source,destination,weight" CSV format.
// The first row is assumed to be a header and is skipped. Records with fewer
// than three fields or a weight that does not parse as a finite number are
// skipped individually and reported in the returned RecordError slice; they
// never abort the rest of the read.
func ReadEdges(r io.Reader) ([]Edge, []RecordError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated per record below
	cr.TrimLeadingSpace = true

	var (
		edges   []Edge
		skipped []RecordError
		line    int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeMalformedRecord, err, "read CSV")
		}
		line++
		if line == 1 {
			continue // header row
		}

		if len(record) < 3 {
			skipped = append(skipped, RecordError{
				Line:   line,
				Record: strings.Join(record, ","),
				Reason: "too few fields",
			})
			continue
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			skipped = append(skipped, RecordError{
				Line:   line,
				Record: strings.Join(record, ","),
				Reason: fmt.Sprintf("weight %q is not a number", record[2]),
			})
			continue
		}

		edges = append(edges, Edge{
			From:   strings.TrimSpace(record[0]),
			To:     strings.TrimSpace(record[1]),
			Weight: w,
		})
	}

	return edges, skipped, nil
}

// ReadEdgesFile reads an edge list from the CSV file at path.
// See [ReadEdges] for the format and skip semantics.
func ReadEdgesFile(path string) ([]Edge, []RecordError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadEdges(f)
}

// ReadTextFile reads the entire file at path as text for Huffman coding.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return string(data), nil
}
