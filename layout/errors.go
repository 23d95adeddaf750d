package layout

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/mdlive/markdown"
)

// ErrInvalidTree is wrapped by every TreeError.
var ErrInvalidTree = errors.New("layout: invalid tree")

// TreeError reports a node the projector cannot place.
type TreeError struct {
	Kind   markdown.Kind
	Span   markdown.Span
	Reason string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("layout: %s at lines %d-%d: %s", e.Kind, e.Span.Start, e.Span.End, e.Reason)
}

func (e *TreeError) Unwrap() error { return ErrInvalidTree }
