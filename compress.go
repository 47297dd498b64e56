// Optional zstd framing of the text stream.
//
// Large MIF exports compress well, so a LineFile can read and write them as
// a single zstd stream. The line layer never sees the difference: reads go
// through a decoder sitting between the raw buffered file and the line
// reader, writes go through an encoder under the line writer.
package mitab

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the frame magic number (RFC 8878, little endian 0xFD2FB528).
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ZstdExt marks paths that are written compressed under CompressAuto.
const ZstdExt = ".zst"

// sniff reports whether the buffered source starts with a zstd frame.
// Peek does not consume, so a plain text file is read from its first byte.
func sniff(r *bufio.Reader) bool {
	b, err := r.Peek(len(zstdMagic))
	return err == nil && bytes.Equal(b, zstdMagic)
}

// compressRead decides whether the source must be decoded.
func compressRead(mode int, r *bufio.Reader) bool {
	switch mode {
	case CompressNone:
		return false
	case CompressZstd:
		return true
	default:
		return sniff(r)
	}
}

// compressWrite decides whether output must be encoded.
func compressWrite(mode int, path string) bool {
	switch mode {
	case CompressNone:
		return false
	case CompressZstd:
		return true
	default:
		return strings.EqualFold(filepath.Ext(path), ZstdExt)
	}
}

// newDecoder wraps src in a synchronous zstd decoder. A concurrency of one
// keeps the decoder from starting background goroutines, so a LineFile stays
// a plain blocking object.
func newDecoder(src io.Reader) (*zstd.Decoder, error) {
	return zstd.NewReader(src, zstd.WithDecoderConcurrency(1))
}

func newEncoder(dst io.Writer) (*zstd.Encoder, error) {
	return zstd.NewWriter(dst, zstd.WithEncoderConcurrency(1), zstd.WithEncoderLevel(zstd.SpeedDefault))
}
