package dispatch

import "fmt"

// ErrKind classifies a pipeline failure so the handler can map it to a
// status code without inspecting error strings.
type ErrKind int

const (
	ErrValidation ErrKind = iota
	ErrTemplateNotFound
	ErrLinkGeneration
	ErrRender
	ErrDelivery
	ErrInternal
)

func (k ErrKind) String() string {
	switch k {
	case ErrValidation:
		return "validation"
	case ErrTemplateNotFound:
		return "template_not_found"
	case ErrLinkGeneration:
		return "link_generation"
	case ErrRender:
		return "render"
	case ErrDelivery:
		return "delivery"
	default:
		return "internal"
	}
}

type Error struct {
	Kind  ErrKind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// KindOf extracts the pipeline error kind, defaulting to ErrInternal for
// anything that escaped classification.
func KindOf(err error) ErrKind {
	if de, ok := err.(*Error); ok {
		return de.Kind
	}
	return ErrInternal
}
