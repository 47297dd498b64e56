// LineFile type and lifecycle operations.
//
// A LineFile is constructed closed, bound to a path by Open, and released by
// Close, after which it can be opened again. The access mode chosen at Open
// is fixed until Close. Transform and pushback state live on the value, not
// on the handle, so they survive Close.
package mitab

import (
	"bufio"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

// Mode is the direction a LineFile was opened in.
type Mode int

// Access modes.
const (
	ModeRead  Mode = 1 // Lines can be read, never written
	ModeWrite Mode = 2 // Lines can be written, never read
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	default:
		return "closed"
	}
}

// LineFile is a directional, line-buffered handle on a MIF or MID file.
// It is not safe for concurrent use.
type LineFile struct {
	config Config
	tr     Transform
	trSet  bool // tr holds a SetTransform value; otherwise see Transform

	// Bound by Open, cleared by Close.
	fp      *os.File
	path    string
	mode    Mode
	lock    *fileLock
	cleanup runtime.Cleanup
	hasher  hash.Hash

	// Read side. raw buffers the file; lines is raw itself or a second
	// buffer over the zstd decoder.
	raw    *bufio.Reader
	dec    *zstd.Decoder
	lines  *bufio.Reader
	lineNo int

	// Write side. out buffers into the file or into the zstd encoder.
	enc *zstd.Encoder
	out *bufio.Writer

	lastRead    string
	pushback    string
	hasPushback bool

	// Position relative to the MIF header, for NextRecord.
	section section
}

// New returns a closed LineFile with an identity transform. The zero
// LineFile is equally usable and behaves like New(Config{}).
func New(config Config) *LineFile {
	return &LineFile{
		config: config.withDefaults(),
	}
}

// OpenFile is New followed by Open.
func OpenFile(path, access string, config Config) (*LineFile, error) {
	f := New(config)
	if err := f.Open(path, access); err != nil {
		return nil, err
	}
	return f, nil
}

// parseAccess maps an fopen-style access string to a Mode. Only the first
// character is significant, so "r", "rt", "read" and "rb" all select
// ModeRead.
func parseAccess(access string) (Mode, error) {
	if access == "" {
		return 0, ErrInvalidAccess
	}
	switch access[0] {
	case 'r', 'R':
		return ModeRead, nil
	case 'w', 'W':
		return ModeWrite, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAccess, access)
}

// Open binds the LineFile to path. A write open creates or truncates the
// file. On any failure the LineFile is left closed and no file is created
// for an invalid access string.
func (f *LineFile) Open(path, access string) error {
	if f.fp != nil {
		return ErrAlreadyOpen
	}
	f.config = f.config.withDefaults()
	if err := f.config.Validate(); err != nil {
		return err
	}

	mode, err := parseAccess(access)
	if err != nil {
		return err
	}

	hasher, err := newHash(f.config.HashAlgorithm)
	if err != nil {
		return err
	}

	// A writer truncates only once it holds the exclusive lock, so a
	// refused Open leaves the existing content alone.
	var fp *os.File
	if mode == ModeRead {
		fp, err = os.Open(path)
	} else {
		fp, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	}
	if err != nil {
		return err
	}

	var lk *fileLock
	if !f.config.NoLock {
		lm := LockShared
		if mode == ModeWrite {
			lm = LockExclusive
		}
		if lk, err = acquire(fp, lm); err != nil {
			fp.Close()
			return err
		}
	}
	if mode == ModeWrite {
		if err := fp.Truncate(0); err != nil {
			lk.release()
			fp.Close()
			return err
		}
	}

	if mode == ModeRead {
		err = f.bindReader(fp)
	} else {
		err = f.bindWriter(fp, path)
	}
	if err != nil {
		lk.release()
		fp.Close()
		return err
	}

	f.fp = fp
	f.path = path
	f.mode = mode
	f.lock = lk
	f.hasher = hasher
	f.lineNo = 0
	f.lastRead = ""
	f.section = sectionUnknown
	// Closes the descriptor if the LineFile becomes unreachable while open.
	f.cleanup = runtime.AddCleanup(f, func(fp *os.File) { fp.Close() }, fp)
	return nil
}

func (f *LineFile) bindReader(fp *os.File) error {
	f.raw = bufio.NewReaderSize(fp, f.config.ReadBuffer)
	f.lines = f.raw
	if !compressRead(f.config.Compression, f.raw) {
		return nil
	}
	dec, err := newDecoder(f.raw)
	if err != nil {
		f.raw, f.lines = nil, nil
		return fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	f.dec = dec
	f.lines = bufio.NewReaderSize(dec, f.config.ReadBuffer)
	return nil
}

func (f *LineFile) bindWriter(fp *os.File, path string) error {
	var dst io.Writer = fp
	if compressWrite(f.config.Compression, path) {
		enc, err := newEncoder(fp)
		if err != nil {
			return err
		}
		f.enc = enc
		dst = enc
	}
	f.out = bufio.NewWriter(dst)
	return nil
}

// Close flushes pending output and releases the handle. Closing a closed
// LineFile is a no-op. The transform and any pushback line are kept.
func (f *LineFile) Close() error {
	if f.fp == nil {
		return nil
	}
	f.cleanup.Stop()

	var errs []error
	if f.out != nil {
		if err := f.out.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if f.enc != nil {
		if err := f.enc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if f.dec != nil {
		f.dec.Close()
	}
	if f.mode == ModeWrite && f.config.SyncWrites {
		if err := f.fp.Sync(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := f.lock.release(); err != nil {
		errs = append(errs, err)
	}
	if err := f.fp.Close(); err != nil {
		errs = append(errs, err)
	}

	f.fp = nil
	f.path = ""
	f.mode = 0
	f.lock = nil
	f.hasher = nil
	f.raw, f.dec, f.lines = nil, nil, nil
	f.enc, f.out = nil, nil

	return errors.Join(errs...)
}

// Rewind moves the read cursor back to the start of the file. It does not
// clear LastLine or the pushback line; call ClearPushback for a clean
// restart.
func (f *LineFile) Rewind() error {
	if f.fp == nil {
		return ErrClosed
	}
	if f.mode != ModeRead {
		return ErrInvalidMode
	}
	if _, err := f.fp.Seek(0, io.SeekStart); err != nil {
		return err
	}
	f.raw.Reset(f.fp)
	f.lines = f.raw
	if f.dec != nil {
		if err := f.dec.Reset(f.raw); err != nil {
			return fmt.Errorf("%w: %w", ErrDecompress, err)
		}
		f.lines = bufio.NewReaderSize(f.dec, f.config.ReadBuffer)
	}
	f.hasher.Reset()
	f.lineNo = 0
	f.section = sectionUnknown
	return nil
}

// IsOpen reports whether a handle is bound.
func (f *LineFile) IsOpen() bool {
	return f.fp != nil
}

// Path returns the path given to Open, or "" when closed.
func (f *LineFile) Path() string {
	return f.path
}

// Mode returns the access mode, or 0 when closed.
func (f *LineFile) Mode() Mode {
	return f.mode
}

// Config returns the effective configuration.
func (f *LineFile) Config() Config {
	return f.config
}

// check enforces the open-handle and direction rules shared by every line
// operation.
func (f *LineFile) check(want Mode) error {
	if f.fp == nil {
		return ErrClosed
	}
	if f.mode != want {
		return fmt.Errorf("%w: file opened for %s", ErrInvalidMode, f.mode)
	}
	return nil
}
