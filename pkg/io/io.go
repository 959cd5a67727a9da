// Package io reads and writes edge lists as JSON.
//
// The format is a single object with an "edges" array:
//
//	{
//	  "edges": [
//	    {"from": "A", "to": "B", "weight": 1},
//	    {"from": "B", "to": "C", "weight": 2.5}
//	  ]
//	}
//
// It complements the CSV reader in [github.com/Juan-Garzaro/algoviz/pkg/graph]
// and round-trips with [WriteJSON], so a computed edge set can be exported
// and fed back in.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
	"github.com/Juan-Garzaro/algoviz/pkg/graph"
)

type edgeList struct {
	Edges []graph.Edge `json:"edges"`
}

// ReadJSON decodes an edge list from r.
//
// Every edge must name both endpoints; weights default to zero when absent.
// Malformed JSON and empty endpoints are errors, unlike the CSV reader's
// per-record tolerance: a JSON file is machine-written, so a bad record
// means the producer is broken.
func ReadJSON(r io.Reader) ([]graph.Edge, error) {
	var data edgeList
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedRecord, err, "decode edge list")
	}

	for i, e := range data.Edges {
		if e.From == "" || e.To == "" {
			return nil, errors.New(errors.ErrCodeMalformedRecord, "edge %d: missing endpoint", i)
		}
	}
	return data.Edges, nil
}

// ReadJSONFile reads an edge list from the file at path.
func ReadJSONFile(path string) ([]graph.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "edge list not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	edges, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return edges, nil
}

// WriteJSON encodes an edge list to w in the format [ReadJSON] accepts.
func WriteJSON(edges []graph.Edge, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(edgeList{Edges: edges}); err != nil {
		return fmt.Errorf("encode edge list: %w", err)
	}
	return nil
}

// WriteJSONFile writes an edge list to the file at path.
func WriteJSONFile(edges []graph.Edge, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(edges, f)
}
