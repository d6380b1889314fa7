package di

import "testing"

func TestDocumentFactoryParseAndStringify(t *testing.T) {
	var f DocumentFactory = NewDocumentFactory()

	v, err := f.Parse([]byte(`{"a":1,"b":[2,3]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := f.Stringify(v); got != `{"a":1,"b":[2,3]}` {
		t.Errorf("expected round-trip text, got %q", got)
	}
}

func TestDocumentFactoryBuilders(t *testing.T) {
	var f DocumentFactory = NewDocumentFactory()

	obj := f.NewObjectBuilder().WithNumber("x", 1).Build()
	if f.Stringify(obj) != `{"x":1}` {
		t.Errorf("expected {\"x\":1}, got %s", f.Stringify(obj))
	}

	arr := f.NewArrayBuilder().Number(1).Number(2).Build()
	if f.Stringify(arr) != "[1,2]" {
		t.Errorf("expected [1,2], got %s", f.Stringify(arr))
	}
}

func TestDocumentFactoryParseError(t *testing.T) {
	var f DocumentFactory = NewDocumentFactory()
	if _, err := f.Parse([]byte("not json")); err == nil {
		t.Error("expected an error parsing invalid input")
	}
}
