package to

import (
	"golang.org/x/exp/slices"
)

// Join concatenates parts with sep between each of them. It undoes a split
// on the pattern sep.
// Example:
// { {1, 2}, {}, {3} }, {0} -> {1, 2, 0, 0, 3}
func Join[E any, S ~[]E, SS ~[]S](parts SS, sep S) S {
	n := len(sep) * max(len(parts)-1, 0)
	for _, p := range parts {
		n += len(p)
	}

	out := slices.Grow(S(nil), n)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, p...)
	}

	return out
}

// Flatten is Join without a separator.
func Flatten[E any, S ~[]E, SS ~[]S](parts SS) S {
	return Join(parts, S(nil))
}
