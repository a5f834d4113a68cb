package objfactory

import (
	"reflect"
	"runtime/debug"

	"github.com/randalmurphal/objfactory/pkg/objfactory/dico"
	"github.com/randalmurphal/objfactory/pkg/objfactory/payload"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

// Creator builds one concrete object type. The registry stores one Creator
// per registered name and never needs to know the concrete type.
type Creator interface {
	Create(p payload.Payload) Object
}

// typedCreator closes over T.
type typedCreator[T Registrable] struct {
	newFn Constructor[T]
}

// Create implements Creator. A nil T comes back as a nil Object.
func (c typedCreator[T]) Create(p payload.Payload) Object {
	obj := c.newFn(p)
	if isNil(obj) {
		return nil
	}
	return obj
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// construct runs c, converting a panic into a *PanicError.
func construct(name symbol.Name, c Creator, p payload.Payload) (obj Object, err error) {
	defer func() {
		if v := recover(); v != nil {
			obj = nil
			err = &PanicError{Name: name.String(), Phase: "construct", Value: v, Stack: string(debug.Stack())}
		}
	}()
	return c.Create(p), nil
}

// initialize runs obj.Initialize, converting a panic into a *PanicError.
func initialize(name symbol.Name, obj Object, d dico.Dico) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Name: name.String(), Phase: "initialize", Value: v, Stack: string(debug.Stack())}
		}
	}()
	obj.Initialize(d)
	return nil
}
