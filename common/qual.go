package common

import (
	"fmt"
	"reflect"
)

// Qual is the value category and constness a type is named with. Go has no
// reference types, so the qualifier travels next to the type.
type Qual uint8

const (
	Value Qual = iota
	Lvalue
	ConstLvalue
	Rvalue
	ConstRvalue
)

func (q Qual) String() string {
	switch q {
	case Value:
		return "value"
	case Lvalue:
		return "lvalue"
	case ConstLvalue:
		return "const lvalue"
	case Rvalue:
		return "rvalue"
	case ConstRvalue:
		return "const rvalue"
	}
	return fmt.Sprintf("Qual(%d)", uint8(q))
}

func (q Qual) IsRef() bool {
	return q != Value
}

func (q Qual) IsConst() bool {
	return q == ConstLvalue || q == ConstRvalue
}

func (q Qual) isLvalue() bool {
	return q == Lvalue || q == ConstLvalue
}

func (q Qual) isRvalue() bool {
	return q == Rvalue || q == ConstRvalue
}

func (q Qual) lvalue() Qual {
	switch q {
	case Rvalue:
		return Lvalue
	case ConstRvalue:
		return ConstLvalue
	}
	return q
}

func (q Qual) rvalue() Qual {
	switch q {
	case Lvalue:
		return Rvalue
	case ConstLvalue:
		return ConstRvalue
	}
	return q
}

func (q Qual) withConst() Qual {
	switch q {
	case Lvalue:
		return ConstLvalue
	case Rvalue:
		return ConstRvalue
	}
	return q
}

// Ref is a qualified type. Type is always the decayed type.
type Ref struct {
	Type reflect.Type
	Qual Qual
}

// RefOf names T with qualifier q.
func RefOf[T any](q Qual) Ref {
	return Ref{Type: reflect.TypeFor[T](), Qual: q}
}

func (r Ref) String() string {
	if r.Type == nil {
		return "<nil>"
	}
	s := r.Type.String()
	if r.Qual.IsConst() {
		s = "const " + s
	}
	switch {
	case r.Qual.isLvalue():
		s += "&"
	case r.Qual.isRvalue():
		s += "&&"
	}
	return s
}
