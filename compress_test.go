// Compression tests.
//
// A compressed MIF file must read exactly like the plain one: same lines,
// same digest, same Rewind behaviour.
package mitab

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readAll(t *testing.T, f *LineFile) []string {
	t.Helper()
	var lines []string
	for {
		line, err := f.NextLine()
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("NextLine: %v", err)
		}
		lines = append(lines, line)
	}
}

func TestZstdAutoByExtension(t *testing.T) {
	dir := t.TempDir()
	zpath := filepath.Join(dir, "sample.mif.zst")
	ppath := filepath.Join(dir, "sample.mif")

	zsum := writeAndSum(t, zpath, sampleMIF, Config{})
	psum := writeAndSum(t, ppath, sampleMIF, Config{})
	if zsum != psum {
		t.Errorf("compressed sum %s != plain sum %s", zsum, psum)
	}

	raw, _ := os.ReadFile(zpath)
	if !bytes.HasPrefix(raw, zstdMagic) {
		t.Fatalf("%s does not start with zstd magic", zpath)
	}
	plain, _ := os.ReadFile(ppath)
	if string(plain) != sampleMIF {
		t.Errorf("plain file = %q", plain)
	}

	z := openTestFile(t, zpath, "r")
	p := openTestFile(t, ppath, "r")
	zl, pl := readAll(t, z), readAll(t, p)
	if len(zl) != len(pl) {
		t.Fatalf("compressed read %d lines, plain %d", len(zl), len(pl))
	}
	for i := range zl {
		if zl[i] != pl[i] {
			t.Errorf("line %d: %q != %q", i, zl[i], pl[i])
		}
	}
	if z.Sum() != psum {
		t.Errorf("read sum %s, want %s", z.Sum(), psum)
	}
}

// TestZstdSniffIgnoresName verifies that reading detects compression from
// content, not from the file name.
func TestZstdSniffIgnoresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noext.mif")
	writeAndSum(t, path, sampleMIF, Config{Compression: CompressZstd})

	f := openTestFile(t, path, "r")
	line, err := f.NextLine()
	if err != nil || line != "Version 300" {
		t.Errorf("NextLine = %q, %v", line, err)
	}
}

func TestZstdCompressNone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mif.zst")
	writeAndSum(t, path, sampleMIF, Config{Compression: CompressNone})

	raw, _ := os.ReadFile(path)
	if string(raw) != sampleMIF {
		t.Errorf("CompressNone wrote %q", raw)
	}
}

func TestZstdRewind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewind.mif.zst")
	writeAndSum(t, path, sampleMIF, Config{})

	f := openTestFile(t, path, "r")
	first := readAll(t, f)
	if err := f.Rewind(); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	again := readAll(t, f)
	if len(first) == 0 || len(first) != len(again) || first[0] != again[0] {
		t.Errorf("after Rewind read %q, want %q", again, first)
	}
}

func TestZstdFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flush.mif.zst")
	w := openTestFile(t, path, "w")
	w.WriteString("Version 300\n")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if !bytes.HasPrefix(raw, zstdMagic) {
		t.Error("nothing compressed reached the file after Flush")
	}
}

func TestZstdCorrupt(t *testing.T) {
	junk := append(append([]byte{}, zstdMagic...), bytes.Repeat([]byte{0xff}, 64)...)
	path := filepath.Join(t.TempDir(), "bad.mif.zst")
	if err := os.WriteFile(path, junk, 0644); err != nil {
		t.Fatal(err)
	}

	f, err := OpenFile(path, "r", Config{})
	if err != nil {
		if !errors.Is(err, ErrDecompress) {
			t.Errorf("OpenFile = %v, want ErrDecompress", err)
		}
		return
	}
	defer f.Close()

	if _, err := f.NextLine(); !errors.Is(err, ErrDecompress) {
		t.Errorf("NextLine = %v, want ErrDecompress", err)
	}
}

func TestCompressWriteDecision(t *testing.T) {
	tests := []struct {
		mode int
		path string
		want bool
	}{
		{CompressAuto, "a.mif", false},
		{CompressAuto, "a.mif.zst", true},
		{CompressAuto, "A.MID.ZST", true},
		{CompressNone, "a.mif.zst", false},
		{CompressZstd, "a.mif", true},
	}
	for _, tt := range tests {
		if got := compressWrite(tt.mode, tt.path); got != tt.want {
			t.Errorf("compressWrite(%d, %q) = %v, want %v", tt.mode, tt.path, got, tt.want)
		}
	}
}
