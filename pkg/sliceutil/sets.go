package sliceutil

// Intersection returns the distinct values present in both a and b, ordered
// by their first appearance in a.
func Intersection[T comparable](a, b []T) []T {
	inB := toSet(b)
	seen := make(map[T]struct{}, len(a))
	out := make([]T, 0, min(len(a), len(b)))
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Difference returns the distinct values of a that do not appear in b,
// ordered by their first appearance in a.
func Difference[T comparable](a, b []T) []T {
	inB := toSet(b)
	seen := make(map[T]struct{}, len(a))
	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := inB[v]; ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Union returns the distinct values of a and b combined, keeping a's order
// first and then b's values that a did not already contribute.
func Union[T comparable](a, b []T) []T {
	seen := make(map[T]struct{}, len(a)+len(b))
	out := make([]T, 0, len(a)+len(b))
	for _, s := range [][]T{a, b} {
		for _, v := range s {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	return set
}
