package to

import (
	"errors"
	"fmt"
	"reflect"

	"go.lepak.sg/ranges/iterator"
	"go.lepak.sg/ranges/view"
)

var (
	ErrInfinite       = errors.New("range is infinite")
	ErrNotConvertible = errors.New("element type is not convertible")
	ErrLazyTarget     = errors.New("target is a lazy range")
)

// Appender is a container that can be filled one element at a time.
type Appender[T any] interface {
	PushBack(v T)
}

func infinite[I, S any](rng iterator.Range[I, S], last S) bool {
	if u, ok := rng.(iterator.Unbounded); ok && u.Infinite() {
		return true
	}
	return iterator.IsInfinite(last)
}

// Slice copies the elements of rng into a new slice. The slice is allocated
// once when the size of rng is known up front.
func Slice[T any, I iterator.Cursor[I, T], S iterator.Sentinel[I]](rng iterator.Range[I, S]) ([]T, error) {
	first, last := rng.Begin(), rng.End()
	if infinite(rng, last) {
		return nil, ErrInfinite
	}
	var out []T
	if n, ok := iterator.SizedDistance(first, last); ok {
		out = make([]T, 0, n)
	}
	for it := first; !last.Equal(it); it = it.Next() {
		out = append(out, it.Current())
	}
	return out, nil
}

// convertible reports whether every T converts to E without losing its
// meaning or failing on some values. Integer to string makes runes, and slice
// to array depends on the length of each element, so both are refused.
func convertible(from, to reflect.Type) bool {
	if from.AssignableTo(to) {
		return true
	}
	if !from.ConvertibleTo(to) {
		return false
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return to.Kind() != reflect.String
	case reflect.Slice:
		return to.Kind() != reflect.Array &&
			!(to.Kind() == reflect.Pointer && to.Elem().Kind() == reflect.Array)
	}
	return true
}

// SliceOf is Slice converting every element to E.
func SliceOf[E, T any, I iterator.Cursor[I, T], S iterator.Sentinel[I]](rng iterator.Range[I, S]) ([]E, error) {
	et, tt := reflect.TypeFor[E](), reflect.TypeFor[T]()
	if !convertible(tt, et) {
		return nil, fmt.Errorf("%w: %v to %v", ErrNotConvertible, tt, et)
	}
	first, last := rng.Begin(), rng.End()
	if infinite(rng, last) {
		return nil, ErrInfinite
	}
	var out []E
	if n, ok := iterator.SizedDistance(first, last); ok {
		out = make([]E, 0, n)
	}
	for it := first; !last.Equal(it); it = it.Next() {
		v := it.Current()
		if e, ok := any(v).(E); ok && tt == et {
			out = append(out, e)
			continue
		}
		out = append(out, reflect.ValueOf(&v).Elem().Convert(et).Interface().(E))
	}
	return out, nil
}

// Into appends the elements of rng to dst.
func Into[T any, I iterator.Cursor[I, T], S iterator.Sentinel[I]](dst Appender[T], rng iterator.Range[I, S]) error {
	if _, ok := dst.(iterator.Lazy); ok {
		return fmt.Errorf("%w: %T", ErrLazyTarget, dst)
	}
	first, last := rng.Begin(), rng.End()
	if infinite(rng, last) {
		return ErrInfinite
	}
	for it := first; !last.Equal(it); it = it.Next() {
		dst.PushBack(it.Current())
	}
	return nil
}

// Segments copies every piece of a split range.
func Segments[T any, J iterator.Forward[J, T], S iterator.Sentinel[J]](s view.Split[T, J, S]) ([][]T, error) {
	if iterator.IsInfinite(s.Base().End()) {
		return nil, ErrInfinite
	}
	out := [][]T{}
	for seg := range s.All() {
		xs, err := Slice[T](seg)
		if err != nil {
			return nil, err
		}
		if xs == nil {
			xs = []T{}
		}
		out = append(out, xs)
	}
	return out, nil
}
