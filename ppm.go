package rt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PPM (P3) output constants.
const (
	// ppmMaxValue is the maximum channel value declared in the header.
	ppmMaxValue = 255
	// ppmMaxLine is the hard upper bound on output line length.
	ppmMaxLine = 70
	// ppmBreakAt is the length at which a line is broken proactively:
	// the longest pixel token is "255 255 255" (11 characters) plus a
	// separator, so any line already at 63 could overflow 70 on the
	// next token.
	ppmBreakAt = 63
)

// WritePPM encodes the canvas as a plain-text PPM (P3) image.
//
// The output is a three-line header ("P3", "<width> <height>", "255")
// followed by "R G B" triples for every pixel in row-major order. Lines
// never exceed 70 characters; breaks are placed greedily by cumulative
// text length, so canvas row boundaries do not force line breaks.
func (c *Canvas[T]) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.width, c.height, ppmMaxValue)

	lineLen := 0
	for _, px := range c.pixels {
		tok := px.RGB8().String()
		expect := lineLen + len(tok)
		switch {
		case expect >= ppmBreakAt && expect < ppmMaxLine:
			// Close enough to the limit that the next token could
			// overflow it: end the line here.
			bw.WriteString(tok)
			bw.WriteByte('\n')
			lineLen = 0
		case expect >= ppmMaxLine:
			// The token itself would overflow: break before it.
			bw.WriteByte('\n')
			bw.WriteString(tok)
			bw.WriteByte(' ')
			lineLen = len(tok) + 1
		default:
			bw.WriteString(tok)
			bw.WriteByte(' ')
			lineLen += len(tok) + 1
		}
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return err
	}
	Logger().Debug("encoded ppm", "width", c.width, "height", c.height)
	return nil
}

// PPM returns the PPM encoding of the canvas as a string.
func (c *Canvas[T]) PPM() string {
	var sb strings.Builder
	// strings.Builder writes never fail.
	_ = c.WritePPM(&sb)
	return sb.String()
}

// SavePPM saves the canvas to a PPM file.
func (c *Canvas[T]) SavePPM(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return c.WritePPM(f)
}
