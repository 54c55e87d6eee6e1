package sliceutil

// GroupBy buckets items by the key computed for each element. Bucket order
// within a key follows the input order.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range items {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// Partition splits items into the elements matching pred and the rest,
// preserving input order in both halves.
func Partition[T any](items []T, pred func(T) bool) (matched, rest []T) {
	matched = make([]T, 0, len(items))
	rest = make([]T, 0, len(items))
	for _, v := range items {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}
