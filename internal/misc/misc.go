package misc

func Nonzero[T comparable](t ...T) T {
	var zero T

	for _, t := range t {
		if t != zero {
			return t
		}
	}

	return zero
}
