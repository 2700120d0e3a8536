package fn

// T is short for ternary
func T[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}

// Must unwraps a (value, error) pair, panicking on error. For call
// sites where the error is impossible by construction.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
