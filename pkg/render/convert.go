package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
)

// ToPDF converts SVG bytes to PDF. Used for the frequency chart, which is
// built as SVG in-process rather than through Graphviz.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given scale factor (2.0 doubles
// the pixel dimensions).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert shells out to rsvg-convert, feeding the SVG on stdin.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux).
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeRender,
			"%s export requires librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "rsvg-convert to %s: %s", format, errBuf.String())
	}
	return out.Bytes(), nil
}
