package footprint

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every *InvalidParameterError
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports a wizard parameter that failed its checks.
// Info carries the wizard's own explanation, e.g. "Pads must be multiple of 2".
type InvalidParameterError struct {
	Page   string
	Name   string
	Value  any
	Reason string
	Info   string
}

func (e *InvalidParameterError) Error() string {
	msg := fmt.Sprintf("parameter %s.%s = %v: %s", e.Page, e.Name, e.Value, e.Reason)
	if e.Info != "" {
		msg += " (" + e.Info + ")"
	}
	return msg
}

// Is lets errors.Is(err, ErrInvalidParameter) match
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
