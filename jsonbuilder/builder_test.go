package jsonbuilder

import (
	"testing"

	"github.com/kcenon/lynxjson-go/jsonstringify"
	"github.com/kcenon/lynxjson-go/value"
)

func TestObjectBuilderChaining(t *testing.T) {
	doc := NewObjectBuilder().
		WithString("name", "ferris").
		WithNumber("age", 3).
		WithBool("active", true).
		WithNull("nickname").
		Build()

	if doc.Type() != value.Object || doc.GetObjectSize() != 4 {
		t.Fatalf("expected 4-member object, got %s size %d", doc.Type(), doc.GetObjectSize())
	}
	if doc.FindObjectValue("name").GetString() != "ferris" {
		t.Errorf("expected name=ferris")
	}
	if doc.FindObjectValue("age").GetNumber() != 3 {
		t.Errorf("expected age=3")
	}
	if !doc.FindObjectValue("active").GetBoolean() {
		t.Errorf("expected active=true")
	}
	if doc.FindObjectValue("nickname").Type() != value.Null {
		t.Errorf("expected nickname=null")
	}
}

func TestArrayBuilderChaining(t *testing.T) {
	arr := NewArrayBuilder().Number(1).Number(2).String("three").Build()
	if arr.GetArraySize() != 3 {
		t.Fatalf("expected size 3, got %d", arr.GetArraySize())
	}
	if arr.GetArrayElement(2).GetString() != "three" {
		t.Errorf("expected element 2 to be \"three\"")
	}
}

func TestNestedBuilders(t *testing.T) {
	doc := NewObjectBuilder().
		WithString("name", "ferris").
		WithArray("tags", func(a *ArrayBuilder) {
			a.String("rust").String("go")
		}).
		WithObject("meta", func(o *ObjectBuilder) {
			o.WithNumber("version", 2).WithBool("stable", true)
		}).
		Build()

	tags := doc.FindObjectValue("tags")
	if tags.GetArraySize() != 2 || tags.GetArrayElement(0).GetString() != "rust" {
		t.Fatalf("expected tags=[rust,go], got %v", jsonstringify.Stringify(tags))
	}
	meta := doc.FindObjectValue("meta")
	if meta.FindObjectValue("version").GetNumber() != 2 {
		t.Errorf("expected meta.version=2")
	}
	if !meta.FindObjectValue("stable").GetBoolean() {
		t.Errorf("expected meta.stable=true")
	}
}

func TestBuiltDocumentStringifies(t *testing.T) {
	doc := NewObjectBuilder().WithNumber("x", 1).Build()
	if got := jsonstringify.Stringify(doc); got != `{"x":1}` {
		t.Errorf(`expected {"x":1}, got %s`, got)
	}
}

func TestArrayOfObjectsBuilder(t *testing.T) {
	arr := NewArrayBuilder().
		Object(func(o *ObjectBuilder) { o.WithNumber("id", 1) }).
		Object(func(o *ObjectBuilder) { o.WithNumber("id", 2) }).
		Build()

	if arr.GetArraySize() != 2 {
		t.Fatalf("expected size 2, got %d", arr.GetArraySize())
	}
	if arr.GetArrayElement(0).FindObjectValue("id").GetNumber() != 1 {
		t.Errorf("expected first element id=1")
	}
	if arr.GetArrayElement(1).FindObjectValue("id").GetNumber() != 2 {
		t.Errorf("expected second element id=2")
	}
}
