// Digest tests.
//
// A writer digests what it writes, a reader digests what it consumes. The
// two must agree for the same text so a copy can be verified without
// comparing files byte by byte.
package mitab

import (
	"errors"
	"path/filepath"
	"testing"
)

const sampleMIF = "Version 300\nDelimiter \",\"\nData\n\nPOINT 1 2\n    Symbol (35,0,12)\n"

// writeAndSum writes content through a LineFile and returns its digest.
func writeAndSum(t *testing.T, path, content string, cfg Config) string {
	t.Helper()
	w, err := OpenFile(path, "w", cfg)
	if err != nil {
		t.Fatalf("OpenFile w: %v", err)
	}
	if err := w.WriteString(content); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	sum := w.Sum()
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return sum
}

// readAndSum reads path to the end and returns its digest.
func readAndSum(t *testing.T, path string, cfg Config) string {
	t.Helper()
	r, err := OpenFile(path, "r", cfg)
	if err != nil {
		t.Fatalf("OpenFile r: %v", err)
	}
	defer r.Close()
	for {
		if _, err := r.NextLine(); err != nil {
			break
		}
	}
	return r.Sum()
}

func TestSumRoundTrip(t *testing.T) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		path := filepath.Join(t.TempDir(), "sum.mif")
		cfg := Config{HashAlgorithm: alg}

		written := writeAndSum(t, path, sampleMIF, cfg)
		read := readAndSum(t, path, cfg)
		if written != read {
			t.Errorf("alg %d: write sum %s != read sum %s", alg, written, read)
		}
		if len(written) != 16 {
			t.Errorf("alg %d: sum %q is not 16 hex chars", alg, written)
		}

		want, err := SumString(sampleMIF, alg)
		if err != nil {
			t.Fatalf("SumString: %v", err)
		}
		if written != want {
			t.Errorf("alg %d: sum %s, SumString %s", alg, written, want)
		}
	}
}

func TestSumAlgorithmsDiffer(t *testing.T) {
	seen := make(map[string]int)
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		s, _ := SumString(sampleMIF, alg)
		if prev, ok := seen[s]; ok {
			t.Errorf("alg %d and %d produce the same digest", alg, prev)
		}
		seen[s] = alg
	}
}

// TestSumPushbackNotCounted verifies that pushback hits do not feed the
// digest: only text that came from the file does.
func TestSumPushbackNotCounted(t *testing.T) {
	path := writeLines(t, sampleMIF)
	r := openTestFile(t, path, "r")

	r.SetPushback("extra")
	for {
		if _, err := r.NextLine(); err != nil {
			break
		}
	}
	want, _ := SumString(sampleMIF, AlgXXHash3)
	if r.Sum() != want {
		t.Errorf("Sum = %s, want %s", r.Sum(), want)
	}
}

func TestSumResetOnRewind(t *testing.T) {
	r := openTestFile(t, writeLines(t, sampleMIF), "r")
	empty := r.Sum()

	r.NextLine()
	if r.Sum() == empty {
		t.Error("Sum unchanged after NextLine")
	}
	r.Rewind()
	if r.Sum() != empty {
		t.Errorf("Sum after Rewind = %s, want %s", r.Sum(), empty)
	}
}

func TestSumClosed(t *testing.T) {
	if s := New(Config{}).Sum(); s != "" {
		t.Errorf("Sum on closed file = %q", s)
	}
}

func TestSumInvalidAlgorithm(t *testing.T) {
	if _, err := SumString("x", 42); !errors.Is(err, ErrInvalidAlgorithm) {
		t.Errorf("SumString = %v, want ErrInvalidAlgorithm", err)
	}
	f := New(Config{HashAlgorithm: 42})
	if err := f.Open(writeLines(t, "x\n"), "r"); !errors.Is(err, ErrInvalidAlgorithm) {
		t.Errorf("Open = %v, want ErrInvalidAlgorithm", err)
	}
}
