package gridbag

import (
	"reflect"

	"github.com/matzehuels/gridbag/pkg/errors"
	"github.com/matzehuels/gridbag/pkg/geom"
)

// Element is a managed element. The engine only queries sizes and writes
// bounds; the container owns the element.
//
// Elements are used as map keys and must be comparable, which in practice
// means pointer types.
type Element interface {
	MinimumSize() geom.Size
	PreferredSize() geom.Size
	MaximumSize() geom.Size
	SetBounds(geom.Rect)
}

// Container hosts elements.
type Container interface {
	// Elements returns the managed elements in registration order.
	Elements() []Element
	// Size returns the container's full size, insets included.
	Size() geom.Size
	Insets() geom.Insets
}

// visibility is implemented by elements that can be hidden. Hidden elements
// take no space in the grid.
type visibility interface {
	Visible() bool
}

func hidden(e Element) bool {
	v, ok := e.(visibility)
	return ok && !v.Visible()
}

func checkContainer(c Container) error {
	if isNil(c) {
		return errors.New(errors.ErrCodeInvalidArgument, "nil container")
	}
	return nil
}

func checkElement(e Element) error {
	if isNil(e) {
		return errors.New(errors.ErrCodeInvalidArgument, "nil element")
	}
	if !reflect.TypeOf(e).Comparable() {
		return errors.New(errors.ErrCodeInvalidArgument, "element of type %T is not comparable", e)
	}
	return nil
}

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func keyable(e Element) bool {
	return e != nil && reflect.TypeOf(e).Comparable()
}
