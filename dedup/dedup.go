package dedup

// Unique returns the distinct values of s in order of first occurrence.
// An empty s yields an empty, non-nil slice.
func Unique[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// UniqueFunc is Unique with identity decided by key: of all elements
// sharing a key only the first is kept.
func UniqueFunc[S ~[]E, E any, K comparable](s S, key func(E) K) S {
	seen := make(map[K]struct{}, len(s))
	out := make(S, 0, len(s))
	for _, v := range s {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Duplicates returns every value that occurs more than once in s, each
// reported once, in the order of its second occurrence.
func Duplicates[S ~[]E, E comparable](s S) S {
	counts := make(map[E]int, len(s))
	out := make(S, 0)
	for _, v := range s {
		counts[v]++
		if counts[v] == 2 {
			out = append(out, v)
		}
	}

	return out
}
