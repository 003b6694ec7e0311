// Package validate implements a structural shape checker for values sourced
// from untyped input, such as decoded JSON documents or any-typed options.
// Shapes describe the accepted form of a value: a plain type, a union of
// alternatives, or a parameterized container checked element by element.
package validate

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeMismatchError reports a value whose runtime shape does not match the
// declared expectation for an argument.
type TypeMismatchError struct {
	Arg      string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("argument %q must be %s, not %s", e.Arg, e.Expected, e.Actual)
}

// Shape describes the accepted structure of a value.
type Shape interface {
	// Match reports whether v has this shape.
	Match(v any) bool
	// String renders the shape for error messages.
	String() string
}

type typeShape struct {
	t reflect.Type
}

func (s typeShape) Match(v any) bool {
	return v != nil && reflect.TypeOf(v) == s.t
}

func (s typeShape) String() string {
	return s.t.String()
}

// Of matches values of the exact type T.
func Of[T any]() Shape {
	return typeShape{t: reflect.TypeOf((*T)(nil)).Elem()}
}

type unionShape struct {
	alts []Shape
}

func (s unionShape) Match(v any) bool {
	for _, alt := range s.alts {
		if alt.Match(v) {
			return true
		}
	}
	return false
}

func (s unionShape) String() string {
	parts := make([]string, len(s.alts))
	for i, alt := range s.alts {
		parts[i] = alt.String()
	}
	return strings.Join(parts, " | ")
}

// Union matches a value that satisfies any of the alternatives.
func Union(alts ...Shape) Shape {
	return unionShape{alts: alts}
}

type sliceShape struct {
	elem Shape
}

func (s sliceShape) Match(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !s.elem.Match(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func (s sliceShape) String() string {
	return "[]" + s.elem.String()
}

// Slice matches a slice or array whose every element has the given shape.
func Slice(elem Shape) Shape {
	return sliceShape{elem: elem}
}

type mapShape struct {
	key Shape
	val Shape
}

func (s mapShape) Match(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return false
	}
	iter := rv.MapRange()
	for iter.Next() {
		if !s.key.Match(iter.Key().Interface()) || !s.val.Match(iter.Value().Interface()) {
			return false
		}
	}
	return true
}

func (s mapShape) String() string {
	return fmt.Sprintf("map[%s]%s", s.key, s.val)
}

// Map matches a map whose keys and values have the given shapes.
func Map(key, val Shape) Shape {
	return mapShape{key: key, val: val}
}

type tupleShape struct {
	elems []Shape
}

func (s tupleShape) Match(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	if rv.Len() != len(s.elems) {
		return false
	}
	for i, elem := range s.elems {
		if !elem.Match(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func (s tupleShape) String() string {
	parts := make([]string, len(s.elems))
	for i, elem := range s.elems {
		parts[i] = elem.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Tuple matches a fixed-length sequence whose elements have the given shapes
// position by position.
func Tuple(elems ...Shape) Shape {
	return tupleShape{elems: elems}
}

// Check verifies that v matches the shape and returns a *TypeMismatchError
// naming the argument otherwise.
func Check(name string, v any, s Shape) error {
	if s.Match(v) {
		return nil
	}
	actual := "nil"
	if v != nil {
		actual = reflect.TypeOf(v).String()
	}
	return &TypeMismatchError{Arg: name, Expected: s.String(), Actual: actual}
}

// Args composes individual Check results, returning the first failure.
func Args(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
