// Record grouping on top of NextLine and the pushback slot.
//
// A record is a keyword line plus the continuation lines up to the next
// keyword line. The next keyword line is handed back through the pushback
// slot so the following call starts from it. Continuation lines are passed through
// untouched; interpreting them is the geometry parser's job.
package mitab

import (
	"errors"
	"io"
	"strings"
)

// section tracks where NextRecord is relative to the MIF header.
type section int

const (
	sectionUnknown section = iota // nothing non-blank read yet
	sectionHeader                 // inside the header, before "Data"
	sectionData                   // records follow
)

// Clauses that may open a MIF header. Column names inside it can look like
// record keywords ("Text", "Point"), so nothing is a record until "Data".
var headerClauses = map[string]struct{}{
	"VERSION":   {},
	"CHARSET":   {},
	"DELIMITER": {},
	"UNIQUE":    {},
	"INDEX":     {},
	"COORDSYS":  {},
	"TRANSFORM": {},
	"COLUMNS":   {},
}

// firstToken returns the upper-cased first token of line, or "".
func firstToken(line string) string {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return ""
	}
	return strings.ToUpper(tokens[0])
}

// skipHeader reports whether line belongs to the MIF header and advances
// the section state. The first non-blank line decides: a header clause
// opens the header, which runs through the "Data" line; anything else
// means the file has no header (a bare data section).
func (f *LineFile) skipHeader(line string) bool {
	switch f.section {
	case sectionData:
		return false
	case sectionHeader:
		if firstToken(line) == "DATA" {
			f.section = sectionData
		}
		return true
	}
	tok := firstToken(line)
	switch {
	case tok == "":
		return true
	case tok == "DATA":
		f.section = sectionData
		return true
	}
	if _, ok := headerClauses[tok]; ok {
		f.section = sectionHeader
		return true
	}
	f.section = sectionData
	return false
}

// Record is one geometry record of a MIF data section.
type Record struct {
	Keyword string   `json:"keyword"`         // canonical keyword, e.g. "PLINE"
	Line    int      `json:"line"`            // 1-based line number of the keyword line
	Text    string   `json:"text"`            // the keyword line itself
	Lines   []string `json:"lines,omitempty"` // continuation lines
}

// NextRecord returns the next record, skipping any non-record lines before
// it. When the file starts with a MIF header (Version, Columns and so on),
// everything up to and including the "Data" line is skipped. It returns
// io.EOF when no record is left.
func NextRecord(f *LineFile) (*Record, error) {
	var rec *Record
	for {
		line, err := f.NextLine()
		if errors.Is(err, io.EOF) {
			if rec != nil {
				return rec, nil
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		if rec == nil && f.skipHeader(line) {
			continue
		}
		kw, ok := RecordKeyword(line)
		if rec == nil {
			if ok {
				// A pushed-back line does not advance LineNumber, so this is
				// the keyword line's number either way.
				rec = &Record{Keyword: kw, Line: f.LineNumber(), Text: line}
			}
			continue
		}
		if ok {
			f.unread(line)
			return rec, nil
		}
		rec.Lines = append(rec.Lines, line)
	}
}

// ScanRecords reads every remaining record from f.
func ScanRecords(f *LineFile) ([]Record, error) {
	var records []Record
	for {
		rec, err := NextRecord(f)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, *rec)
	}
}

// Copy writes every remaining line of src to dst, each terminated by "\n",
// and returns the number of lines copied.
func Copy(dst, src *LineFile) (int, error) {
	n := 0
	for {
		line, err := src.NextLine()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := dst.WriteString(line + "\n"); err != nil {
			return n, err
		}
		n++
	}
}
