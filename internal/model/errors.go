package model

import "errors"

// Sentinel errors, one per pipeline stage contract. Stages wrap these with
// context at the point of failure so callers can both match the category and
// read a precise diagnostic.
var (
	ErrConfigNotFound         = errors.New("config not found")
	ErrInvalidSourceFormat    = errors.New("invalid source format")
	ErrRetrieval              = errors.New("retrieval failed")
	ErrUnsupportedBinding     = errors.New("unsupported binding")
	ErrLayerOverflow          = errors.New("layer overflow")
	ErrTemplateSectionMissing = errors.New("template section missing")
	ErrWrite                  = errors.New("write failed")
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfigNotFound):
		return 2
	case errors.Is(err, ErrInvalidSourceFormat):
		return 3
	case errors.Is(err, ErrRetrieval):
		return 4
	case errors.Is(err, ErrUnsupportedBinding):
		return 5
	case errors.Is(err, ErrLayerOverflow):
		return 6
	case errors.Is(err, ErrTemplateSectionMissing):
		return 7
	case errors.Is(err, ErrWrite):
		return 8
	default:
		return 1
	}
}
