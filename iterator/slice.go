package iterator

// Index is a random access position in a slice. Positions compare by index
// and are only meaningful against positions into the same slice.
type Index[T any] struct {
	s []T
	i int
}

var _ RandomAccess[Index[int], int] = Index[int]{}

// Slice is the range over xs. The slice is shared, not copied.
func Slice[T any](xs []T) Subrange[Index[T], Index[T]] {
	return NewSubrange(Index[T]{s: xs}, Index[T]{s: xs, i: len(xs)})
}

func (p Index[T]) Current() T {
	return p.s[p.i]
}

// Set overwrites the element at p.
func (p Index[T]) Set(v T) {
	p.s[p.i] = v
}

func (p Index[T]) Next() Index[T] {
	p.i++
	return p
}

func (p Index[T]) Prev() Index[T] {
	p.i--
	return p
}

func (p Index[T]) Advance(n int) Index[T] {
	p.i += n
	return p
}

func (p Index[T]) DistanceTo(o Index[T]) int {
	return o.i - p.i
}

func (p Index[T]) Equal(o Index[T]) bool {
	return p.i == o.i
}

func (p Index[T]) Pos() int {
	return p.i
}
