// Package mitab provides the line-level file access used by readers and
// writers of the MapInfo Interchange Format. A MIF/MID pair is plain text:
// the MIF file holds the header and one geometry record per group of lines,
// each group opened by a keyword line (POINT, PLINE, REGION, ...), and the
// MID file holds one delimited attribute row per record.
//
// LineFile owns the open handle and is strictly directional: a file opened
// for reading can only be read, a file opened for writing can only be
// written. It keeps a one-line pushback slot so a parser that reads one line
// too far can hand it back, and an affine X/Y transform that callers apply to
// coordinates on their way in or out of the text.
package mitab

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// separate setup failures (ErrInvalidAccess, ErrAlreadyOpen, ErrLocked) from
// misuse of an open file (ErrClosed, ErrInvalidMode). End of input is io.EOF.
var (
	ErrInvalidAccess    = errors.New("access mode must start with 'r' or 'w'")
	ErrAlreadyOpen      = errors.New("file is already open")
	ErrClosed           = errors.New("file is not open")
	ErrInvalidMode      = errors.New("operation not permitted in this access mode")
	ErrLocked           = errors.New("file is locked by another handle")
	ErrDecompress       = errors.New("decompression failed")
	ErrInvalidAlgorithm = errors.New("unknown digest algorithm")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
