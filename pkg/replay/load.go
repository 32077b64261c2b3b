package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the zstd frame signature; archived replays are often
// stored compressed.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// LoadFile reads a replay file into memory, transparently decompressing
// zstd-compressed files, and parses the header.
func LoadFile(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay file %s: %w", path, err)
	}

	if bytes.HasPrefix(data, zstdMagic) {
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd reader for %s: %w", path, err)
		}
		defer zr.Close()

		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress replay file %s: %w", path, err)
		}
	}

	return Parse(data)
}
