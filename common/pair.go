package common

import (
	"reflect"
)

// Pair is the two element tuple. Two pairs, or any two structs with the same
// exported field names, have the struct of the pairwise common field types as
// their common type.
type Pair[F, S any] struct {
	First  F
	Second S
}

func MakePair[F, S any](f F, s S) Pair[F, S] {
	return Pair[F, S]{First: f, Second: s}
}

func tupleFields(t, u reflect.Type) bool {
	if t.Kind() != reflect.Struct || u.Kind() != reflect.Struct || t.NumField() != u.NumField() {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		tf, uf := t.Field(i), u.Field(i)
		if tf.Name != uf.Name || !tf.IsExported() || tf.Anonymous || uf.Anonymous {
			return false
		}
	}
	return true
}

func tupleOf(t, u reflect.Type, field func(tf, uf reflect.Type) (reflect.Type, bool)) (reflect.Type, bool) {
	if !tupleFields(t, u) {
		return nil, false
	}
	fields := make([]reflect.StructField, t.NumField())
	for i := range fields {
		tf, uf := t.Field(i), u.Field(i)
		c, ok := field(tf.Type, uf.Type)
		if !ok {
			return nil, false
		}
		fields[i] = reflect.StructField{Name: tf.Name, Type: c}
		if tf.Tag == uf.Tag {
			fields[i].Tag = tf.Tag
		}
	}
	return reflect.StructOf(fields), true
}

func (r *Registry) tupleType(t, u reflect.Type) (reflect.Type, bool) {
	return tupleOf(t, u, r.type2)
}

func (r *Registry) tupleReference(t, u reflect.Type, tq, uq Qual) (Ref, bool) {
	c, ok := tupleOf(t, u, func(tf, uf reflect.Type) (reflect.Type, bool) {
		ref, ok := r.reference2(Ref{Type: tf, Qual: tq}, Ref{Type: uf, Qual: uq})
		return ref.Type, ok
	})
	if !ok {
		return Ref{}, false
	}
	return Ref{Type: c}, true
}
