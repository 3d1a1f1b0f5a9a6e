package nanocurve

import (
	"fmt"

	"github.com/hupe1980/nanocurve/store"
)

var (
	// ErrNotFound is returned when a design entity does not exist.
	ErrNotFound = store.ErrNotFound
	// ErrSessionActive is returned when a second mutation session is opened
	// before the first one is closed.
	ErrSessionActive = store.ErrSessionActive
)

// ErrBadMagic indicates that a file is not a design file.
type ErrBadMagic struct {
	Got []byte
}

func (e *ErrBadMagic) Error() string {
	return fmt.Sprintf("not a design file: bad magic %q", e.Got)
}

// ErrUnsupportedVersion indicates a design file written by a newer format
// revision.
type ErrUnsupportedVersion struct {
	Version byte
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported design file version %d", e.Version)
}

// ErrUnknownCodec indicates that a design file names a codec this build does
// not provide.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown codec %q", e.Name)
}

// ErrUnknownCompression indicates that a design file names a compression
// scheme this build does not provide.
type ErrUnknownCompression struct {
	Name string
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("unknown compression %q", e.Name)
}
