package reads

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// maxLineBytes bounds a single input line; FASTA sequence lines and plain
// reads are far shorter in practice.
const maxLineBytes = 1 << 20

// Parse reads a batch of raw reads from r. Two layouts are accepted:
//
//   - plain: one read per non-blank line;
//   - FASTA: records introduced by a '>' header line, the sequence spanning
//     any number of following lines.
//
// The layout is chosen by the first non-blank line. Surrounding whitespace
// is trimmed and sequences are upper-cased; symbol validation is left to New.
func Parse(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		out   []string
		fasta bool
		first = true
		cur   []byte
		open  bool // a FASTA record is being accumulated
	)
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		if first {
			fasta = b[0] == '>'
			first = false
		}
		if !fasta {
			if b[0] == '>' {
				return nil, fmt.Errorf("reads: line %d: FASTA header in plain input", line)
			}
			out = append(out, string(bytes.ToUpper(b)))
			continue
		}
		if b[0] == '>' {
			if open {
				out = append(out, string(cur))
			}
			cur = cur[:0]
			open = true
			continue
		}
		cur = append(cur, bytes.ToUpper(b)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reads: scan: %w", err)
	}
	if open {
		out = append(out, string(cur))
	}

	return out, nil
}
