package curve

import (
	"errors"
	"fmt"
)

// ErrMissingPayload is returned when a descriptor's kind does not match any
// populated payload field.
var ErrMissingPayload = errors.New("curve: descriptor payload missing for kind")

// ErrRadiusTooSmall indicates a spiral-cylinder radius on which the
// requested inter-helix gap cannot physically fit. Construction fails fast;
// no partial curve is produced.
type ErrRadiusTooSmall struct {
	Radius            float64
	InterHelixAxisGap float64
	NumberOfHelices   int
}

func (e *ErrRadiusTooSmall) Error() string {
	return fmt.Sprintf("curve: spiral cylinder radius %g too small for %d helices with axis gap %g",
		e.Radius, e.NumberOfHelices, e.InterHelixAxisGap)
}

// ErrUnknownKind indicates a descriptor kind this version does not know.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("curve: unknown descriptor kind %q", e.Kind)
}
