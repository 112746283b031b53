package common

import (
	"reflect"
)

type numClass uint8

const (
	notNumeric numClass = iota
	signedInt
	unsignedInt
	floating
	complexNum
)

// rank breaks ties between integer kinds of equal width: an explicitly sized
// kind beats int/uint, and uint beats uintptr.
var rank = map[reflect.Kind]int{
	reflect.Int:     1,
	reflect.Int8:    2,
	reflect.Int16:   2,
	reflect.Int32:   2,
	reflect.Int64:   2,
	reflect.Uintptr: 1,
	reflect.Uint:    2,
	reflect.Uint8:   3,
	reflect.Uint16:  3,
	reflect.Uint32:  3,
	reflect.Uint64:  3,
}

var (
	float32Type    = reflect.TypeFor[float32]()
	float64Type    = reflect.TypeFor[float64]()
	complex64Type  = reflect.TypeFor[complex64]()
	complex128Type = reflect.TypeFor[complex128]()
)

func classify(t reflect.Type) numClass {
	// named numeric types (type Celsius float64) do not take part in the
	// usual arithmetic conversions
	if t.PkgPath() != "" || t.Name() != t.Kind().String() {
		return notNumeric
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedInt
	case reflect.Float32, reflect.Float64:
		return floating
	case reflect.Complex64, reflect.Complex128:
		return complexNum
	}
	return notNumeric
}

// realBits is the width of the real part, 0 for integers.
func realBits(t reflect.Type, c numClass) int {
	switch c {
	case floating:
		return t.Bits()
	case complexNum:
		return t.Bits() / 2
	}
	return 0
}

func wider(t, u reflect.Type) reflect.Type {
	switch {
	case t.Bits() > u.Bits():
		return t
	case u.Bits() > t.Bits():
		return u
	case rank[u.Kind()] > rank[t.Kind()]:
		return u
	}
	return t
}

func arithmetic(t, u reflect.Type, tc, uc numClass) reflect.Type {
	bits := max(realBits(t, tc), realBits(u, uc))
	switch {
	case tc == complexNum || uc == complexNum:
		if bits > 32 {
			return complex128Type
		}
		return complex64Type
	case tc == floating || uc == floating:
		if bits > 32 {
			return float64Type
		}
		return float32Type
	case tc == uc:
		return wider(t, u)
	}
	if tc == unsignedInt {
		t, u = u, t
	}
	// t signed, u unsigned
	if t.Bits() > u.Bits() {
		return t
	}
	return u
}

// unify is the built-in common type of two decayed types, the Go reading of
// the type of a conditional expression with one operand of each.
func unify(t, u reflect.Type) (reflect.Type, bool) {
	if t == nil || u == nil {
		return nil, false
	}
	if t == u {
		return t, true
	}
	tc, uc := classify(t), classify(u)
	if tc != notNumeric && uc != notNumeric {
		return arithmetic(t, u, tc, uc), true
	}

	ti, ui := t.Kind() == reflect.Interface, u.Kind() == reflect.Interface
	switch {
	case ti && ui:
		timpl, uimpl := u.Implements(t), t.Implements(u)
		if timpl == uimpl {
			// unrelated, or the same method set under two names
			return nil, false
		}
		if timpl {
			return t, true
		}
		return u, true
	case ti && u.Implements(t):
		return t, true
	case ui && t.Implements(u):
		return u, true
	}

	tu, ut := t.AssignableTo(u), u.AssignableTo(t)
	switch {
	case tu && !ut:
		return u, true
	case ut && !tu:
		return t, true
	}
	return nil, false
}

// builtinReference folds two qualified types by the language rules alone.
// valueOf is used once a value ends up on either side.
func builtinReference(a, b Ref, valueOf func(t, u reflect.Type) (reflect.Type, bool)) (Ref, bool) {
	if a.Type == nil || b.Type == nil {
		return Ref{}, false
	}
	if a == b {
		return a, true
	}
	switch {
	case a.Qual.isLvalue() && b.Qual.isLvalue():
		if a.Type == b.Type {
			q := Lvalue
			if a.Qual.IsConst() || b.Qual.IsConst() {
				q = ConstLvalue
			}
			return Ref{Type: a.Type, Qual: q}, true
		}
	case a.Qual.isRvalue() && b.Qual.isRvalue():
		r, ok := builtinReference(
			Ref{Type: a.Type, Qual: a.Qual.lvalue()},
			Ref{Type: b.Type, Qual: b.Qual.lvalue()},
			valueOf,
		)
		if ok && r.Qual.IsRef() {
			r.Qual = r.Qual.rvalue()
		}
		return r, ok
	case a.Qual.isLvalue() && b.Qual.isRvalue():
		return builtinReference(a, Ref{Type: b.Type, Qual: b.Qual.lvalue().withConst()}, valueOf)
	case a.Qual.isRvalue() && b.Qual.isLvalue():
		return builtinReference(Ref{Type: a.Type, Qual: a.Qual.lvalue().withConst()}, b, valueOf)
	}
	t, ok := valueOf(a.Type, b.Type)
	if !ok {
		return Ref{}, false
	}
	return Ref{Type: t}, true
}
