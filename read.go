// Line reading and the pushback slot.
//
// A MIF parser only knows a record has ended when it reads the keyword line
// of the next one. SetPushback hands that line back so the following
// NextLine returns it again without touching the file.
package mitab

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// NextLine returns the next line with its terminator stripped, or io.EOF at
// end of input. A pending pushback line is returned first and consumed; in
// that case the file is not read and LastLine is unchanged.
func (f *LineFile) NextLine() (string, error) {
	if err := f.check(ModeRead); err != nil {
		return "", err
	}

	if f.hasPushback {
		s := f.pushback
		f.ClearPushback()
		return s, nil
	}

	s, err := f.readLine()
	if err != nil {
		f.lastRead = ""
		return "", err
	}
	f.lastRead = f.truncate(s)
	return s, nil
}

// readLine reads one raw line from the source and strips "\n" or "\r\n".
// A last line without a terminator is returned as is; io.EOF is returned
// only when nothing was left to read.
func (f *LineFile) readLine() (string, error) {
	raw, err := f.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		if f.dec != nil {
			return "", fmt.Errorf("%w: %w", ErrDecompress, err)
		}
		return "", err
	}
	if raw == "" {
		return "", io.EOF
	}

	f.hasher.Write([]byte(raw))
	f.lineNo++

	s := strings.TrimSuffix(raw, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// LastLine returns the most recent line read from the file, truncated to
// Config.MaxLineLength bytes. It is "" before the first read, after end of
// input, and is not updated by lines served from the pushback slot.
func (f *LineFile) LastLine() (string, error) {
	if err := f.check(ModeRead); err != nil {
		return "", err
	}
	return f.lastRead, nil
}

// LineNumber returns the number of lines consumed from the file since Open
// or the last Rewind. Pushback hits are not counted.
func (f *LineFile) LineNumber() int {
	return f.lineNo
}

// SetPushback stores line to be returned by the next NextLine. It replaces
// any line already stored and is truncated to Config.MaxLineLength bytes.
// It is allowed in any mode, including while closed.
func (f *LineFile) SetPushback(line string) {
	f.pushback = f.truncate(line)
	f.hasPushback = true
}

// unread stores line in the pushback slot as is. Record grouping uses it
// so a long keyword line comes back whole.
func (f *LineFile) unread(line string) {
	f.pushback = line
	f.hasPushback = true
}

// ClearPushback empties the pushback slot.
func (f *LineFile) ClearPushback() {
	f.pushback = ""
	f.hasPushback = false
}

// Pushback returns the stored pushback line without consuming it, or "" if
// none is stored.
func (f *LineFile) Pushback() string {
	return f.pushback
}

// HasPushback reports whether a pushback line is pending. It tells a
// stored empty line apart from an empty slot.
func (f *LineFile) HasPushback() bool {
	return f.hasPushback
}

// truncate cuts s to the configured maximum. The cut is on a byte boundary
// to match files produced by the fixed-buffer tools.
func (f *LineFile) truncate(s string) string {
	n := f.config.withDefaults().MaxLineLength
	if n < 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
