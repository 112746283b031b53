package common

import (
	"reflect"
	"sync"
)

// TypeFunc is a user specialisation of the common type. It is given two
// distinct decayed types and answers false when it has nothing to say about
// them.
type TypeFunc func(t, u reflect.Type) (reflect.Type, bool)

// ReferenceFunc is a user specialisation of the common reference. It receives
// the decayed types together with their qualifiers.
type ReferenceFunc func(t, u reflect.Type, tq, uq Qual) (Ref, bool)

// Registry holds specialisations. Later registrations take precedence.
type Registry struct {
	mu    sync.RWMutex
	types []TypeFunc
	refs  []ReferenceFunc
}

// NewRegistry returns a registry that knows the tuple rule for struct types.
func NewRegistry() *Registry {
	r := &Registry{}
	r.RegisterType(r.tupleType)
	r.RegisterReference(r.tupleReference)
	return r
}

// Default is used by the package level functions.
var Default = NewRegistry()

func (r *Registry) RegisterType(f TypeFunc) {
	if f == nil {
		panic("nil type func")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, f)
}

func (r *Registry) RegisterReference(f ReferenceFunc) {
	if f == nil {
		panic("nil reference func")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs = append(r.refs, f)
}

// snapshot lets specialisations call back into the registry without holding
// the lock.
func (r *Registry) snapshot() ([]TypeFunc, []ReferenceFunc) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types, r.refs
}

func (r *Registry) specialType(t, u reflect.Type) (reflect.Type, bool) {
	types, _ := r.snapshot()
	for i := len(types) - 1; i >= 0; i-- {
		if c, ok := types[i](t, u); ok {
			return c, true
		}
		if c, ok := types[i](u, t); ok {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) specialReference(a, b Ref) (Ref, bool) {
	_, refs := r.snapshot()
	for i := len(refs) - 1; i >= 0; i-- {
		if c, ok := refs[i](a.Type, b.Type, a.Qual, b.Qual); ok {
			return c, true
		}
		if c, ok := refs[i](b.Type, a.Type, b.Qual, a.Qual); ok {
			return c, true
		}
	}
	return Ref{}, false
}

func (r *Registry) type2(t, u reflect.Type) (reflect.Type, bool) {
	if t == nil || u == nil {
		return nil, false
	}
	if t == u {
		return t, true
	}
	if c, ok := r.specialType(t, u); ok {
		return c, true
	}
	return unify(t, u)
}

func (r *Registry) reference2(a, b Ref) (Ref, bool) {
	builtin, ok := builtinReference(a, b, unify)
	if ok && builtin.Qual.IsRef() {
		return builtin, true
	}
	if c, ok := r.specialReference(a, b); ok {
		return c, true
	}
	if ok {
		return builtin, true
	}
	t, ok := r.type2(a.Type, b.Type)
	if !ok {
		return Ref{}, false
	}
	return Ref{Type: t}, true
}

// Type folds ts left to right into their common type. It reports false for
// an empty list or as soon as one step has no answer.
func (r *Registry) Type(ts ...reflect.Type) (reflect.Type, bool) {
	if len(ts) == 0 || ts[0] == nil {
		return nil, false
	}
	c := ts[0]
	for _, t := range ts[1:] {
		var ok bool
		if c, ok = r.type2(c, t); !ok {
			return nil, false
		}
	}
	return c, true
}

// Reference folds refs left to right into their common reference.
func (r *Registry) Reference(refs ...Ref) (Ref, bool) {
	if len(refs) == 0 || refs[0].Type == nil {
		return Ref{}, false
	}
	c := refs[0]
	for _, ref := range refs[1:] {
		var ok bool
		if c, ok = r.reference2(c, ref); !ok {
			return Ref{}, false
		}
	}
	return c, true
}

func Type(ts ...reflect.Type) (reflect.Type, bool) {
	return Default.Type(ts...)
}

func Reference(refs ...Ref) (Ref, bool) {
	return Default.Reference(refs...)
}

func RegisterType(f TypeFunc) {
	Default.RegisterType(f)
}

func RegisterReference(f ReferenceFunc) {
	Default.RegisterReference(f)
}

// TypeFor is the common type of T and U in the default registry.
func TypeFor[T, U any]() (reflect.Type, bool) {
	return Default.Type(reflect.TypeFor[T](), reflect.TypeFor[U]())
}

// ReferenceFor is the common reference of T and U, qualified with tq and uq.
func ReferenceFor[T, U any](tq, uq Qual) (Ref, bool) {
	return Default.Reference(RefOf[T](tq), RefOf[U](uq))
}

// Specialize registers C as the common type of T and U in r.
func Specialize[T, U, C any](r *Registry) {
	t, u, c := reflect.TypeFor[T](), reflect.TypeFor[U](), reflect.TypeFor[C]()
	r.RegisterType(func(x, y reflect.Type) (reflect.Type, bool) {
		return c, x == t && y == u
	})
}
