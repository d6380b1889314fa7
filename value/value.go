/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
****************************************************************************/

// Package value provides the tagged-union JSON value type and its
// lifecycle: construction, typed accessors, equality, copy, move and
// swap. Container mutation (array and object operations) lives in
// array.go and object.go alongside this type.
package value

import "fmt"

// Type is the tag of a Value.
type Type int

// The seven JSON value tags.
const (
	Null Type = iota
	False
	True
	Number
	String
	Array
	Object

	numTypes
)

var typeNames = [numTypes]string{
	"null", "false", "true", "number", "string", "array", "object",
}

// String returns a human-readable name for the tag.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeNames[t]
}

// Value is a JSON value: one of Null, False, True, Number, String, Array
// or Object. The zero Value is Null, matching invariant 1.
//
// Array and Object slots are ordinary Go slices: len is the live size,
// cap is the capacity, and the two-phase parser construction in
// jsonparse always leaves cap == len on a freshly parsed composite.
type Value struct {
	typ Type
	num float64
	str bytesBuf
	arr []Value
	obj []Member
}

// Member is a single object entry: an owned key plus its value.
type Member struct {
	key bytesBuf
	val Value
}

// bytesBuf holds a logical byte payload plus one trailing zero byte, so
// the content can be handed to NUL-terminated consumers without copying
// (invariant 4). The logical length is len(data)-1.
type bytesBuf struct {
	data []byte
}

func newBytesBuf(s []byte) bytesBuf {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return bytesBuf{data: b}
}

func (b bytesBuf) bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:len(b.data)-1]
}

func (b bytesBuf) length() int {
	if b.data == nil {
		return 0
	}
	return len(b.data) - 1
}

// Type reports the tag of v.
func (v *Value) Type() Type {
	return v.typ
}

// contractViolation panics with a message identifying the accessor and
// the value's actual tag. Wrong-tag accessor calls, out-of-range
// indices and nil handles are programming errors, not recoverable
// failures: they panic rather than return an error.
func contractViolation(op string, want Type, got Type) {
	panic(fmt.Sprintf("value: %s requires %s, got %s", op, want, got))
}

func assertType(op string, v *Value, want Type) {
	if v.typ != want {
		contractViolation(op, want, v.typ)
	}
}

// free recursively releases owned resources and resets v to Null. It is
// always called by a setter before installing a new tag, per invariant 2.
func (v *Value) free() {
	switch v.typ {
	case Array:
		for i := range v.arr {
			v.arr[i].free()
		}
	case Object:
		for i := range v.obj {
			v.obj[i].val.free()
		}
	}
	*v = Value{}
}

// Free releases all resources owned by v and resets it to Null, so the
// slot is safe to reuse.
func (v *Value) Free() {
	v.free()
}

// SetNull resets v to the Null state, freeing any owned resources.
func SetNull(v *Value) {
	v.free()
}

// GetBoolean returns the logical boolean value of v. v must be True or
// False.
func (v *Value) GetBoolean() bool {
	if v.typ != True && v.typ != False {
		contractViolation("GetBoolean", True, v.typ)
	}
	return v.typ == True
}

// SetBoolean installs a True or False tag.
func (v *Value) SetBoolean(b bool) {
	v.free()
	if b {
		v.typ = True
	} else {
		v.typ = False
	}
}

// GetNumber returns the binary64 payload of v. v must be Number.
func (v *Value) GetNumber() float64 {
	assertType("GetNumber", v, Number)
	return v.num
}

// SetNumber installs a Number tag with the given payload.
func (v *Value) SetNumber(n float64) {
	v.free()
	v.typ = Number
	v.num = n
}

// GetString returns a copy of the logical string content of v. v must
// be String.
func (v *Value) GetString() string {
	assertType("GetString", v, String)
	return string(v.str.bytes())
}

// GetStringBytes returns the logical string content of v without a
// defensive copy. Callers must not mutate the returned slice. v must be
// String.
func (v *Value) GetStringBytes() []byte {
	assertType("GetStringBytes", v, String)
	return v.str.bytes()
}

// GetStringLength returns the logical length (in bytes) of the string
// content of v. v must be String.
func (v *Value) GetStringLength() int {
	assertType("GetStringLength", v, String)
	return v.str.length()
}

// SetString installs a String tag, copying len(s) bytes from s plus a
// trailing zero byte (invariant 4). Embedded zero bytes in s are legal.
func (v *Value) SetString(s []byte) {
	v.free()
	v.typ = String
	v.str = newBytesBuf(s)
}

// SetArray installs an empty Array tag with room for capacity elements
// before the first reallocation. capacity == 0 allocates no backing
// buffer.
func (v *Value) SetArray(capacity int) {
	v.free()
	v.typ = Array
	if capacity > 0 {
		v.arr = make([]Value, 0, capacity)
	}
}

// SetObject installs an empty Object tag with room for capacity members
// before the first reallocation.
func (v *Value) SetObject(capacity int) {
	v.free()
	v.typ = Object
	if capacity > 0 {
		v.obj = make([]Member, 0, capacity)
	}
}

// Equal reports whether lhs and rhs hold the same JSON value.
//
// Tags must match. Numbers compare equal within an absolute tolerance
// of 1e-18 (not bitwise — this treats ±0 as equal). Strings compare
// byte-equal over their full length. Arrays compare pairwise in order.
// Objects compare by equal size, with every member of lhs located by
// key in rhs and its value equal; this is the one order-insensitive
// equality the library provides.
func Equal(lhs, rhs *Value) bool {
	if lhs.typ != rhs.typ {
		return false
	}
	switch lhs.typ {
	case Number:
		d := lhs.num - rhs.num
		if d < 0 {
			d = -d
		}
		return d < 1e-18
	case String:
		return string(lhs.str.bytes()) == string(rhs.str.bytes())
	case Array:
		if len(lhs.arr) != len(rhs.arr) {
			return false
		}
		for i := range lhs.arr {
			if !Equal(&lhs.arr[i], &rhs.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(lhs.obj) != len(rhs.obj) {
			return false
		}
		for i := range lhs.obj {
			m := &lhs.obj[i]
			idx := rhs.findObjectIndex(m.key.bytes())
			if idx < 0 {
				return false
			}
			if !Equal(&m.val, &rhs.obj[idx].val) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Copy deep-clones src into dst. Scalars are copied by value; strings,
// arrays and objects are deep-cloned. dst and src must not alias.
func Copy(dst, src *Value) {
	if dst == src {
		panic("value: Copy requires dst != src")
	}
	dst.free()
	*dst = cloneValue(src)
}

func cloneValue(src *Value) Value {
	out := Value{typ: src.typ, num: src.num}
	switch src.typ {
	case String:
		out.str = newBytesBuf(src.str.bytes())
	case Array:
		out.arr = make([]Value, len(src.arr))
		for i := range src.arr {
			out.arr[i] = cloneValue(&src.arr[i])
		}
	case Object:
		// The clone is sized from src.obj, never from dst's prior state.
		out.obj = make([]Member, len(src.obj))
		for i := range src.obj {
			out.obj[i] = Member{
				key: newBytesBuf(src.obj[i].key.bytes()),
				val: cloneValue(&src.obj[i].val),
			}
		}
	}
	return out
}

// Move frees dst, transfers ownership of src's payload to dst, and
// resets src to Null. dst and src must not alias.
func Move(dst, src *Value) {
	if dst == src {
		panic("value: Move requires dst != src")
	}
	dst.free()
	*dst = *src
	*src = Value{}
}

// Swap exchanges the contents of a and b without touching their
// children. A no-op if a and b alias the same Value.
func Swap(a, b *Value) {
	if a == b {
		return
	}
	*a, *b = *b, *a
}
