/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package value

// GetObjectSize returns the number of live members. v must be Object.
func (v *Value) GetObjectSize() int {
	assertType("GetObjectSize", v, Object)
	return len(v.obj)
}

// GetObjectCapacity returns the number of member slots currently
// allocated. v must be Object.
func (v *Value) GetObjectCapacity() int {
	assertType("GetObjectCapacity", v, Object)
	return cap(v.obj)
}

// GetObjectKey returns the key of the member at index. v must be
// Object and index must be in range.
func (v *Value) GetObjectKey(index int) string {
	assertType("GetObjectKey", v, Object)
	if index < 0 || index >= len(v.obj) {
		panic("value: GetObjectKey index out of range")
	}
	return string(v.obj[index].key.bytes())
}

// GetObjectKeyLength returns the byte length of the key of the member
// at index. v must be Object and index must be in range.
func (v *Value) GetObjectKeyLength(index int) int {
	assertType("GetObjectKeyLength", v, Object)
	if index < 0 || index >= len(v.obj) {
		panic("value: GetObjectKeyLength index out of range")
	}
	return v.obj[index].key.length()
}

// GetObjectValue returns a handle to the value of the member at index.
// The handle is valid only until the next mutation of v. v must be
// Object and index must be in range.
func (v *Value) GetObjectValue(index int) *Value {
	assertType("GetObjectValue", v, Object)
	if index < 0 || index >= len(v.obj) {
		panic("value: GetObjectValue index out of range")
	}
	return &v.obj[index].val
}

// FindObjectIndex returns the index of the first member whose key
// equals key, or -1 if none matches (the sentinel "not found"). v must
// be Object.
func (v *Value) FindObjectIndex(key string) int {
	assertType("FindObjectIndex", v, Object)
	return v.findObjectIndex([]byte(key))
}

func (v *Value) findObjectIndex(key []byte) int {
	for i := range v.obj {
		if string(v.obj[i].key.bytes()) == string(key) {
			return i
		}
	}
	return -1
}

// FindObjectValue returns a handle to the value of the first member
// whose key equals key, or nil if none matches. v must be Object.
func (v *Value) FindObjectValue(key string) *Value {
	assertType("FindObjectValue", v, Object)
	idx := v.findObjectIndex([]byte(key))
	if idx < 0 {
		return nil
	}
	return &v.obj[idx].val
}

// SetObjectValue returns a handle to the value of the member named
// key. If the key already exists its value handle is returned
// unchanged; otherwise a new member is appended with a freshly copied
// key and a Null value, growing the backing buffer if full. v must be
// Object.
func (v *Value) SetObjectValue(key string) *Value {
	assertType("SetObjectValue", v, Object)
	if idx := v.findObjectIndex([]byte(key)); idx >= 0 {
		return &v.obj[idx].val
	}
	if len(v.obj) == cap(v.obj) {
		newCap := cap(v.obj) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.ReserveObject(newCap)
	}
	v.obj = v.obj[:len(v.obj)+1]
	v.obj[len(v.obj)-1] = Member{key: newBytesBuf([]byte(key))}
	return &v.obj[len(v.obj)-1].val
}

// PushBackObjectMember appends a new member named key, without
// checking whether the key is already present, and returns a handle to
// its Null value. Unlike SetObjectValue this never deduplicates: it is
// the raw append a parser uses to reproduce exactly the key/value
// pairs it read, duplicates included, the same way PushBackArrayElement
// never deduplicates array elements. v must be Object.
func (v *Value) PushBackObjectMember(key string) *Value {
	assertType("PushBackObjectMember", v, Object)
	if len(v.obj) == cap(v.obj) {
		newCap := cap(v.obj) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.ReserveObject(newCap)
	}
	v.obj = v.obj[:len(v.obj)+1]
	v.obj[len(v.obj)-1] = Member{key: newBytesBuf([]byte(key))}
	return &v.obj[len(v.obj)-1].val
}

// RemoveObjectValue frees the key and value of the member at index and
// shifts the remaining tail down. v must be Object and index must be
// in range.
func (v *Value) RemoveObjectValue(index int) {
	assertType("RemoveObjectValue", v, Object)
	if index < 0 || index >= len(v.obj) {
		panic("value: RemoveObjectValue index out of range")
	}
	v.obj[index].val.free()
	v.obj[index].key = bytesBuf{}
	copy(v.obj[index:], v.obj[index+1:])
	v.obj = v.obj[:len(v.obj)-1]
}

// ReserveObject grows the backing buffer to exactly capacity slots if
// it is currently smaller; a no-op otherwise. v must be Object.
func (v *Value) ReserveObject(capacity int) {
	assertType("ReserveObject", v, Object)
	if capacity <= cap(v.obj) {
		return
	}
	next := make([]Member, len(v.obj), capacity)
	copy(next, v.obj)
	v.obj = next
}

// ShrinkObject reallocates the backing buffer to exactly size slots,
// freeing it entirely when size is zero. v must be Object.
func (v *Value) ShrinkObject() {
	assertType("ShrinkObject", v, Object)
	if cap(v.obj) <= len(v.obj) {
		return
	}
	if len(v.obj) == 0 {
		v.obj = nil
		return
	}
	next := make([]Member, len(v.obj))
	copy(next, v.obj)
	v.obj = next
}

// ClearObject frees all live members and sets size to zero, retaining
// capacity. v must be Object.
func (v *Value) ClearObject() {
	assertType("ClearObject", v, Object)
	for i := range v.obj {
		v.obj[i].val.free()
		v.obj[i].key = bytesBuf{}
	}
	v.obj = v.obj[:0]
}
