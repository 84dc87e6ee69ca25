// package slicest holds small generic slice helpers used by the UI shells.
package slicest

// Transformation

// MapXI maps slice S to []U with error propagation.
// - X: Stops on failure and returns error.
// - I: Provides index to callback.
func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

// MapI maps slice S to []U.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result, _ := MapXI(s, func(i int, t T) (U, error) {
		return fn(i, t), nil
	})
	return result
}

// Map maps slice S to []U.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Filter returns the elements of S for which fn is true.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	var result S
	for _, v := range s {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}
