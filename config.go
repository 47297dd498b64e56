// Configuration for LineFile.
//
// Every field has a usable zero value; withDefaults fills in the rest when a
// file is opened. Config can also be loaded from a JSON document so the
// command line tool and embedding programs share one format.
package mitab

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// DefaultMaxLineLength is the number of bytes retained by LastLine and
// Pushback. Longer lines are truncated in those copies only; NextLine always
// returns the full line. The value matches the fixed buffers of the legacy
// MIF/MID tools so that round-tripped data stays byte compatible.
const DefaultMaxLineLength = 10000

// DefaultReadBuffer is the bufio buffer size used when Config.ReadBuffer is 0.
const DefaultReadBuffer = 64 * 1024

// Compression modes.
const (
	CompressAuto = 0 // Read: sniff zstd magic. Write: zstd if path ends in .zst
	CompressNone = 1 // Plain text in both directions
	CompressZstd = 2 // Always zstd
)

// Config holds LineFile options.
type Config struct {
	MaxLineLength int  `json:"max_line_length"` // 0 = DefaultMaxLineLength, <0 = unlimited
	ReadBuffer    int  `json:"read_buffer"`     // 0 = DefaultReadBuffer
	SyncWrites    bool `json:"sync_writes"`     // fsync on Flush and Close
	Compression   int  `json:"compression"`     // CompressAuto, CompressNone, CompressZstd
	HashAlgorithm int  `json:"hash_algorithm"`  // AlgXXHash3 (default), AlgFNV1a, AlgBlake2b
	NoLock        bool `json:"no_lock"`         // skip advisory file locking

	// Transform is the initial coordinate transform; nil means Identity.
	// SetTransform overrides it.
	Transform *Transform `json:"transform,omitempty"`
}

func (c Config) withDefaults() Config {
	if c.MaxLineLength == 0 {
		c.MaxLineLength = DefaultMaxLineLength
	}
	if c.ReadBuffer <= 0 {
		c.ReadBuffer = DefaultReadBuffer
	}
	if c.HashAlgorithm == 0 {
		c.HashAlgorithm = AlgXXHash3
	}
	return c
}

// Validate reports whether the enumerated fields hold known values.
func (c Config) Validate() error {
	switch c.Compression {
	case CompressAuto, CompressNone, CompressZstd:
	default:
		return fmt.Errorf("%w: compression %d", ErrInvalidConfig, c.Compression)
	}
	switch c.HashAlgorithm {
	case 0, AlgXXHash3, AlgFNV1a, AlgBlake2b:
	default:
		return fmt.Errorf("%w: %w %d", ErrInvalidConfig, ErrInvalidAlgorithm, c.HashAlgorithm)
	}
	return nil
}

// LoadConfig reads a JSON configuration file. Missing keys keep their zero
// value and are defaulted when the file is opened.
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
