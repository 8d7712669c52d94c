package micromech

// Eval runs a formula body and converts a runtime panic into a
// *NumericalError instead of letting it unwind past the call boundary.
// Non-finite floating-point values are normal results and pass through
// untouched.
func Eval[T any](f func() T) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res = zero
			err = &NumericalError{Cause: r}
		}
	}()
	return f(), nil
}
