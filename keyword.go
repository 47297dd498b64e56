// Record keywords.
//
// Each geometry record in a MIF data section starts with a line whose first
// token names the geometry kind. Everything else (coordinates, Pen/Brush
// clauses, region part counts) is a continuation line. The keyword test is
// the only content-aware logic in this package.
package mitab

import "strings"

// Record keywords, in their canonical upper-case spelling.
const (
	KeywordNone      = "NONE"
	KeywordPoint     = "POINT"
	KeywordLine      = "LINE"
	KeywordPline     = "PLINE"
	KeywordRegion    = "REGION"
	KeywordArc       = "ARC"
	KeywordText      = "TEXT"
	KeywordRect      = "RECT"
	KeywordRoundRect = "ROUNDRECT"
	KeywordEllipse   = "ELLIPSE"
)

var keywords = map[string]struct{}{
	KeywordNone:      {},
	KeywordPoint:     {},
	KeywordLine:      {},
	KeywordPline:     {},
	KeywordRegion:    {},
	KeywordArc:       {},
	KeywordText:      {},
	KeywordRect:      {},
	KeywordRoundRect: {},
	KeywordEllipse:   {},
}

// Keywords returns the record keywords in a fixed order.
func Keywords() []string {
	return []string{
		KeywordNone, KeywordPoint, KeywordLine, KeywordPline, KeywordRegion,
		KeywordArc, KeywordText, KeywordRect, KeywordRoundRect, KeywordEllipse,
	}
}

// RecordKeyword returns the canonical keyword that opens line, if any.
func RecordKeyword(line string) (string, bool) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return "", false
	}
	kw := strings.ToUpper(tokens[0])
	if _, ok := keywords[kw]; !ok {
		return "", false
	}
	return kw, true
}

// IsRecognizedRecordKeyword reports whether line starts a geometry record.
// The test is case-insensitive and ignores surrounding whitespace.
func IsRecognizedRecordKeyword(line string) bool {
	_, ok := RecordKeyword(line)
	return ok
}

// IsValidFeature is IsRecognizedRecordKeyword for callers holding a file.
func (f *LineFile) IsValidFeature(line string) bool {
	return IsRecognizedRecordKeyword(line)
}
