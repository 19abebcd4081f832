package slices

func ContainsFunc[L ~[]E, E any](l L, f func(E) bool) bool {
	for _, y := range l {
		if f(y) {
			return true
		}
	}

	return false
}
