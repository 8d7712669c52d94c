package micromech

import (
	"errors"
	"fmt"
)

// ErrUnknownModel reports a model identifier with no defined discriminant
// for the requested property kind. Detected before any arithmetic runs.
var ErrUnknownModel = errors.New("unknown model")

// UnknownModel wraps ErrUnknownModel with the property kind and the
// offending identifier, so callers can still match with errors.Is.
func UnknownModel(kind string, id int) error {
	return fmt.Errorf("%s model %d: %w", kind, id, ErrUnknownModel)
}

// NumericalError reports an abnormal termination raised inside formula
// evaluation, with the recovered value kept as an opaque payload. Ordinary
// floating-point results such as NaN or ±Inf never produce one.
type NumericalError struct {
	Cause any
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("numerical error during model evaluation: %v", e.Cause)
}
