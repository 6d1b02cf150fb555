package runtimecmd

import "io"

const streamIndent = "  "

// indentWriter prefixes every line written through it, so streamed runtime
// output is visually distinct from mimchine's own messages.
type indentWriter struct {
	w           io.Writer
	atLineStart bool
}

func newIndentWriter(w io.Writer) *indentWriter {
	return &indentWriter{w: w, atLineStart: true}
}

func (iw *indentWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if iw.atLineStart {
			if _, err := io.WriteString(iw.w, streamIndent); err != nil {
				return written, err
			}
			iw.atLineStart = false
		}
		end := len(p)
		for i, b := range p {
			if b == '\n' {
				end = i + 1
				iw.atLineStart = true
				break
			}
		}
		n, err := iw.w.Write(p[:end])
		written += n
		if err != nil {
			return written, err
		}
		p = p[end:]
	}
	return written, nil
}
