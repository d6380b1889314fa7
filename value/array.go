/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package value

// GetArraySize returns the number of live elements. v must be Array.
func (v *Value) GetArraySize() int {
	assertType("GetArraySize", v, Array)
	return len(v.arr)
}

// GetArrayCapacity returns the number of element slots currently
// allocated. v must be Array.
func (v *Value) GetArrayCapacity() int {
	assertType("GetArrayCapacity", v, Array)
	return cap(v.arr)
}

// GetArrayElement returns a handle to the element at index. The handle
// is valid only until the next mutation of v. v must be
// Array and index must be in range.
func (v *Value) GetArrayElement(index int) *Value {
	assertType("GetArrayElement", v, Array)
	if index < 0 || index >= len(v.arr) {
		panic("value: GetArrayElement index out of range")
	}
	return &v.arr[index]
}

// ReserveArray grows the backing buffer to exactly capacity slots if it
// is currently smaller; a no-op otherwise. v must be Array.
func (v *Value) ReserveArray(capacity int) {
	assertType("ReserveArray", v, Array)
	if capacity <= cap(v.arr) {
		return
	}
	next := make([]Value, len(v.arr), capacity)
	copy(next, v.arr)
	v.arr = next
}

// ShrinkArray reallocates the backing buffer to exactly size slots,
// freeing it entirely when size is zero. v must be Array.
func (v *Value) ShrinkArray() {
	assertType("ShrinkArray", v, Array)
	if cap(v.arr) <= len(v.arr) {
		return
	}
	if len(v.arr) == 0 {
		v.arr = nil
		return
	}
	next := make([]Value, len(v.arr))
	copy(next, v.arr)
	v.arr = next
}

// PushBackArrayElement appends a Null element, growing the backing
// buffer by doubling (minimum 1) if it is full, and returns a handle to
// the new slot. v must be Array.
func (v *Value) PushBackArrayElement() *Value {
	assertType("PushBackArrayElement", v, Array)
	if len(v.arr) == cap(v.arr) {
		newCap := cap(v.arr) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.ReserveArray(newCap)
	}
	v.arr = v.arr[:len(v.arr)+1]
	v.arr[len(v.arr)-1] = Value{}
	return &v.arr[len(v.arr)-1]
}

// PopBackArrayElement frees and removes the last element. v must be
// Array and non-empty.
func (v *Value) PopBackArrayElement() {
	assertType("PopBackArrayElement", v, Array)
	if len(v.arr) == 0 {
		panic("value: PopBackArrayElement on empty array")
	}
	v.arr[len(v.arr)-1].free()
	v.arr = v.arr[:len(v.arr)-1]
}

// InsertArrayElement grows the array by one, shifts elements
// [index, size) up by one slot, installs Null at index, and returns a
// handle to it. index must be in [0, size]. v must be Array.
func (v *Value) InsertArrayElement(index int) *Value {
	assertType("InsertArrayElement", v, Array)
	if index < 0 || index > len(v.arr) {
		panic("value: InsertArrayElement index out of range")
	}
	v.PushBackArrayElement()
	copy(v.arr[index+1:], v.arr[index:len(v.arr)-1])
	v.arr[index] = Value{}
	return &v.arr[index]
}

// EraseArrayElement frees elements [index, index+count) and shifts the
// remaining tail down. count == 0 is a no-op. v must be Array and
// index+count must be within size.
func (v *Value) EraseArrayElement(index, count int) {
	assertType("EraseArrayElement", v, Array)
	if count == 0 {
		return
	}
	if index < 0 || count < 0 || index+count > len(v.arr) {
		panic("value: EraseArrayElement range out of bounds")
	}
	for i := index; i < index+count; i++ {
		v.arr[i].free()
	}
	copy(v.arr[index:], v.arr[index+count:])
	v.arr = v.arr[:len(v.arr)-count]
}

// ClearArray frees all live elements and sets size to zero, retaining
// capacity. v must be Array.
func (v *Value) ClearArray() {
	assertType("ClearArray", v, Array)
	for i := range v.arr {
		v.arr[i].free()
	}
	v.arr = v.arr[:0]
}
