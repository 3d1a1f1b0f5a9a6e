package nanocurve

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression transforms the encoded payload of a design file. Design files
// record the compression name in their header, so a file picks its own
// decompressor on load.
type Compression interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// CompressionByName returns a built-in compression scheme by its stable name.
func CompressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return NoCompression{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// NoCompression stores the payload as is.
type NoCompression struct{}

// Compress returns data unchanged.
func (NoCompression) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoCompression) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns the unique name of the scheme ("none").
func (NoCompression) Name() string { return "none" }

// Zstd compresses the payload with zstandard at the default level. Good
// ratio on the highly repetitive descriptor JSON of large designs.
type Zstd struct{}

// Compress encodes data as a zstd stream.
func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	out := enc.EncodeAll(data, nil)
	return out, enc.Close()
}

// Decompress decodes a zstd stream.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// Name returns the unique name of the scheme ("zstd").
func (Zstd) Name() string { return "zstd" }

// LZ4 compresses the payload as an lz4 frame: lighter than zstd, faster to
// decode.
type LZ4 struct{}

// Compress encodes data as an lz4 frame.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes an lz4 frame.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	return io.ReadAll(r)
}

// Name returns the unique name of the scheme ("lz4").
func (LZ4) Name() string { return "lz4" }

// DefaultCompression is the scheme used for newly written design files.
var DefaultCompression Compression = NoCompression{}
