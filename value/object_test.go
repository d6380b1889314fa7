package value

import "testing"

func TestObjectSetAndFind(t *testing.T) {
	var v Value
	v.SetObject(0)
	v.SetObjectValue("World").SetString([]byte("Hello"))

	found := v.FindObjectValue("World")
	if found == nil {
		t.Fatal("expected to find member \"World\"")
	}
	if found.GetString() != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", found.GetString())
	}
}

func TestObjectFindMissingReturnsNil(t *testing.T) {
	var v Value
	v.SetObject(0)
	if v.FindObjectValue("missing") != nil {
		t.Error("expected nil for a key that was never set")
	}
	if v.FindObjectIndex("missing") != -1 {
		t.Error("expected -1 sentinel for a key that was never set")
	}
}

func TestObjectSetValueReturnsExistingHandle(t *testing.T) {
	var v Value
	v.SetObject(0)
	v.SetObjectValue("x").SetNumber(1)
	v.SetObjectValue("x").SetNumber(2)

	if v.GetObjectSize() != 1 {
		t.Fatalf("expected size to remain 1 on re-set, got %d", v.GetObjectSize())
	}
	if v.FindObjectValue("x").GetNumber() != 2 {
		t.Errorf("expected the second set to win")
	}
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	var v Value
	v.SetObject(0)
	v.SetObjectValue("b").SetNumber(1)
	v.SetObjectValue("a").SetNumber(2)

	if v.GetObjectKey(0) != "b" || v.GetObjectKey(1) != "a" {
		t.Errorf("expected insertion order b,a; got %s,%s", v.GetObjectKey(0), v.GetObjectKey(1))
	}
}

func TestObjectFindReturnsFirstMatch(t *testing.T) {
	var v Value
	v.SetObject(0)
	v.obj = append(v.obj, Member{key: newBytesBuf([]byte("k"))})
	v.obj[0].val.SetNumber(1)
	v.obj = append(v.obj, Member{key: newBytesBuf([]byte("k"))})
	v.obj[1].val.SetNumber(2)

	if v.FindObjectValue("k").GetNumber() != 1 {
		t.Error("expected lookup to return the first matching member")
	}
}

func TestObjectRemoveThenFind(t *testing.T) {
	var v Value
	v.SetObject(0)
	v.SetObjectValue("World").SetString([]byte("Hello"))

	idx := v.FindObjectIndex("World")
	v.RemoveObjectValue(idx)

	if v.FindObjectValue("World") != nil {
		t.Error("expected member to be gone after remove")
	}
	if v.GetObjectSize() != 0 {
		t.Errorf("expected size 0 after removing the only member, got %d", v.GetObjectSize())
	}
}

func TestObjectRemoveThenReSetAppendsAtEnd(t *testing.T) {
	var v Value
	v.SetObject(0)
	v.SetObjectValue("a").SetNumber(1)
	v.SetObjectValue("b").SetNumber(2)

	v.RemoveObjectValue(v.FindObjectIndex("a"))
	v.SetObjectValue("a").SetNumber(3)

	if v.GetObjectKey(0) != "b" || v.GetObjectKey(1) != "a" {
		t.Errorf("expected re-inserted key to land at the end, got order %s,%s", v.GetObjectKey(0), v.GetObjectKey(1))
	}
	if v.FindObjectValue("a").GetNumber() != 3 {
		t.Errorf("expected re-inserted value 3")
	}
}

func TestObjectClearRetainsCapacity(t *testing.T) {
	var v Value
	v.SetObject(4)
	v.SetObjectValue("a").SetNumber(1)
	v.ClearObject()
	if v.GetObjectSize() != 0 {
		t.Errorf("expected size 0 after clear, got %d", v.GetObjectSize())
	}
	if v.GetObjectCapacity() != 4 {
		t.Errorf("expected capacity retained at 4, got %d", v.GetObjectCapacity())
	}
}

func TestObjectShrink(t *testing.T) {
	var v Value
	v.SetObject(8)
	v.SetObjectValue("a").SetNumber(1)
	v.ShrinkObject()
	if v.GetObjectCapacity() != 1 {
		t.Errorf("expected capacity 1 after shrink, got %d", v.GetObjectCapacity())
	}
}

func TestObjectKeyOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range key index")
		}
	}()
	var v Value
	v.SetObject(0)
	v.GetObjectKey(0)
}
