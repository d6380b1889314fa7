/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package jsonbuilder provides a fluent API for constructing value.Value
// trees without reaching for the lower-level Set*/PushBack*/SetObjectValue
// calls directly. It mirrors the chained With* builder style used
// elsewhere in this codebase, specialized to the seven JSON value kinds.
//
// Example usage:
//
//	doc := jsonbuilder.NewObjectBuilder().
//		WithString("name", "ferris").
//		WithNumber("age", 3).
//		WithArray("tags", func(a *jsonbuilder.ArrayBuilder) {
//			a.String("rust").String("go")
//		}).
//		Build()
package jsonbuilder

import "github.com/kcenon/lynxjson-go/value"

// ObjectBuilder builds an Object value one member at a time, preserving
// insertion order. Its zero value is not ready to use; create one with
// NewObjectBuilder.
type ObjectBuilder struct {
	v value.Value
}

// NewObjectBuilder creates an empty ObjectBuilder.
func NewObjectBuilder() *ObjectBuilder {
	b := &ObjectBuilder{}
	b.v.SetObject(0)
	return b
}

// WithNull sets key to Null. Returns the builder for chaining.
func (b *ObjectBuilder) WithNull(key string) *ObjectBuilder {
	value.SetNull(b.v.SetObjectValue(key))
	return b
}

// WithBool sets key to a boolean value. Returns the builder for chaining.
func (b *ObjectBuilder) WithBool(key string, v bool) *ObjectBuilder {
	b.v.SetObjectValue(key).SetBoolean(v)
	return b
}

// WithNumber sets key to a number value. Returns the builder for chaining.
func (b *ObjectBuilder) WithNumber(key string, n float64) *ObjectBuilder {
	b.v.SetObjectValue(key).SetNumber(n)
	return b
}

// WithString sets key to a string value. Returns the builder for chaining.
func (b *ObjectBuilder) WithString(key string, s string) *ObjectBuilder {
	b.v.SetObjectValue(key).SetString([]byte(s))
	return b
}

// WithArray sets key to an array value built by fn. Returns the builder
// for chaining.
func (b *ObjectBuilder) WithArray(key string, fn func(*ArrayBuilder)) *ObjectBuilder {
	nested := NewArrayBuilder()
	fn(nested)
	value.Move(b.v.SetObjectValue(key), nested.Build())
	return b
}

// WithObject sets key to an object value built by fn. Returns the
// builder for chaining.
func (b *ObjectBuilder) WithObject(key string, fn func(*ObjectBuilder)) *ObjectBuilder {
	nested := NewObjectBuilder()
	fn(nested)
	value.Move(b.v.SetObjectValue(key), nested.Build())
	return b
}

// Build returns the constructed Object. The builder must not be reused
// afterward.
func (b *ObjectBuilder) Build() *value.Value {
	return &b.v
}

// ArrayBuilder builds an Array value one element at a time. Its zero
// value is not ready to use; create one with NewArrayBuilder.
type ArrayBuilder struct {
	v value.Value
}

// NewArrayBuilder creates an empty ArrayBuilder.
func NewArrayBuilder() *ArrayBuilder {
	b := &ArrayBuilder{}
	b.v.SetArray(0)
	return b
}

// Null appends a Null element. Returns the builder for chaining.
func (b *ArrayBuilder) Null() *ArrayBuilder {
	value.SetNull(b.v.PushBackArrayElement())
	return b
}

// Bool appends a boolean element. Returns the builder for chaining.
func (b *ArrayBuilder) Bool(v bool) *ArrayBuilder {
	b.v.PushBackArrayElement().SetBoolean(v)
	return b
}

// Number appends a number element. Returns the builder for chaining.
func (b *ArrayBuilder) Number(n float64) *ArrayBuilder {
	b.v.PushBackArrayElement().SetNumber(n)
	return b
}

// String appends a string element. Returns the builder for chaining.
func (b *ArrayBuilder) String(s string) *ArrayBuilder {
	b.v.PushBackArrayElement().SetString([]byte(s))
	return b
}

// Array appends a nested array element built by fn. Returns the builder
// for chaining.
func (b *ArrayBuilder) Array(fn func(*ArrayBuilder)) *ArrayBuilder {
	nested := NewArrayBuilder()
	fn(nested)
	value.Move(b.v.PushBackArrayElement(), nested.Build())
	return b
}

// Object appends a nested object element built by fn. Returns the
// builder for chaining.
func (b *ArrayBuilder) Object(fn func(*ObjectBuilder)) *ArrayBuilder {
	nested := NewObjectBuilder()
	fn(nested)
	value.Move(b.v.PushBackArrayElement(), nested.Build())
	return b
}

// Build returns the constructed Array. The builder must not be reused
// afterward.
func (b *ArrayBuilder) Build() *value.Value {
	return &b.v
}
