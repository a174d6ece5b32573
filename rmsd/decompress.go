package rmsd

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var compressionSigs = [][]byte{
	{0x1f, 0x8b, 0x08},                   // gzip
	{0x50, 0x4b, 0x03, 0x04},             // zip
	{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, // xz
	{0x1f, 0x9d},                         // compress (zlib)
	{0x42, 0x5a, 0x68},                   // bzip2
}

// maybeDecompress wraps f in the matching decompressor when its leading
// bytes carry a known compression signature, and returns f itself
// otherwise. A per-sample file that was compressed in place still loads
// without renaming.
func maybeDecompress(f *os.File) (io.ReadCloser, error) {
	sig := make([]byte, 6)
	if _, err := io.ReadFull(f, sig); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	matched := -1
Outer:
	for i, want := range compressionSigs {
		for position := range want {
			if sig[position] != want[position] {
				continue Outer
			}
		}
		matched = i
		break
	}

	switch matched {
	case 0:
		return gzip.NewReader(f)
	case 1:
		zr := zipstream.NewReader(f)
		// Position at the first archive entry; reading before Next is invalid.
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return &readCloserFaker{zr}, nil
	case 2:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &readCloserFaker{reader}, nil
	case 3:
		return zlib.NewReader(f)
	case 4:
		return &readCloserFaker{bzip2.NewReader(f)}, nil
	}

	// No signature matched; assume plain text.
	return f, nil
}

// readCloserFaker "upgrades" readers that don't need to be closed.
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
