// Write primitives.
//
// Output is buffered and written through verbatim: no terminator is added,
// so callers embed "\n" in their templates exactly as the MIF layout needs.
// Buffered data reaches the disk on Flush or Close.
package mitab

import "fmt"

// WriteLine formats args with a printf template and appends the result.
func (f *LineFile) WriteLine(format string, args ...any) error {
	if err := f.check(ModeWrite); err != nil {
		return err
	}
	return f.write(fmt.Appendf(nil, format, args...))
}

// WriteString appends a pre-rendered string.
func (f *LineFile) WriteString(s string) error {
	if err := f.check(ModeWrite); err != nil {
		return err
	}
	return f.write([]byte(s))
}

func (f *LineFile) write(b []byte) error {
	if _, err := f.out.Write(b); err != nil {
		return err
	}
	f.hasher.Write(b)
	return nil
}

// Flush writes buffered output to the file. With compression on, the
// current zstd block is completed so a reader sees everything written so
// far. With SyncWrites the file is fsynced.
func (f *LineFile) Flush() error {
	if err := f.check(ModeWrite); err != nil {
		return err
	}
	if err := f.out.Flush(); err != nil {
		return err
	}
	if f.enc != nil {
		if err := f.enc.Flush(); err != nil {
			return err
		}
	}
	if f.config.SyncWrites {
		return f.fp.Sync()
	}
	return nil
}
