/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package di provides dependency injection support for the document
// packages. It defines a standard interface and provider for
// integration with Go DI frameworks such as Google Wire.
//
// Example usage with Google Wire:
//
//	// wire.go
//	//go:build wireinject
//	// +build wireinject
//
//	package main
//
//	import (
//	    "github.com/google/wire"
//	    "github.com/kcenon/lynxjson-go/di"
//	)
//
//	func InitializeApp() (*App, error) {
//	    wire.Build(di.ProviderSet, NewApp)
//	    return nil, nil
//	}
package di

import (
	"github.com/kcenon/lynxjson-go/jsonbuilder"
	"github.com/kcenon/lynxjson-go/jsonparse"
	"github.com/kcenon/lynxjson-go/jsonstringify"
	"github.com/kcenon/lynxjson-go/value"
)

// DocumentFactory bundles parsing, rendering and building of JSON
// documents behind one interface, so callers can depend on it instead
// of importing jsonparse/jsonstringify/jsonbuilder directly. This makes
// mocking straightforward in tests and gives DI frameworks a single
// abstraction to wire.
type DocumentFactory interface {
	// Parse parses text into a value.Value tree.
	Parse(text []byte) (*value.Value, error)

	// Stringify renders v as JSON text.
	Stringify(v *value.Value) string

	// NewObjectBuilder starts a fluent Object builder.
	NewObjectBuilder() *jsonbuilder.ObjectBuilder

	// NewArrayBuilder starts a fluent Array builder.
	NewArrayBuilder() *jsonbuilder.ArrayBuilder
}

// DefaultDocumentFactory is the default implementation of DocumentFactory,
// delegating to this module's jsonparse, jsonstringify and jsonbuilder
// packages.
type DefaultDocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory instance. This is
// the provider function for dependency injection frameworks.
func NewDocumentFactory() DocumentFactory {
	return &DefaultDocumentFactory{}
}

// Parse parses text into a value.Value tree.
func (f *DefaultDocumentFactory) Parse(text []byte) (*value.Value, error) {
	return jsonparse.Parse(text)
}

// Stringify renders v as JSON text.
func (f *DefaultDocumentFactory) Stringify(v *value.Value) string {
	return jsonstringify.Stringify(v)
}

// NewObjectBuilder starts a fluent Object builder.
func (f *DefaultDocumentFactory) NewObjectBuilder() *jsonbuilder.ObjectBuilder {
	return jsonbuilder.NewObjectBuilder()
}

// NewArrayBuilder starts a fluent Array builder.
func (f *DefaultDocumentFactory) NewArrayBuilder() *jsonbuilder.ArrayBuilder {
	return jsonbuilder.NewArrayBuilder()
}
