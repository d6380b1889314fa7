/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package jsonstringify renders a value.Value tree back to JSON text.
//
// Rendering stages bytes on a scratch.Stack the same way jsonparse
// stages parsed elements: the stack grows as needed and the finished
// text is read off it once in a single pass, rather than building the
// output by repeated string concatenation.
package jsonstringify

import (
	"strconv"

	"github.com/kcenon/lynxjson-go/scratch"
	"github.com/kcenon/lynxjson-go/value"
)

type stringifier struct {
	out *scratch.Stack[byte]
}

// Stringify renders v as a compact JSON document. It never fails: every
// value.Value a caller can build already satisfies the grammar this
// package emits, so there is no malformed tree to reject.
func Stringify(v *value.Value) string {
	s := &stringifier{out: scratch.New[byte]()}
	s.value(v)
	return string(s.out.Tail(0))
}

func (s *stringifier) puts(b []byte) {
	off := s.out.Push(len(b))
	copy(s.out.Tail(off), b)
}

func (s *stringifier) putc(c byte) {
	off := s.out.Push(1)
	*s.out.At(off) = c
}

func (s *stringifier) value(v *value.Value) {
	switch v.Type() {
	case value.Null:
		s.puts([]byte("null"))
	case value.True:
		s.puts([]byte("true"))
	case value.False:
		s.puts([]byte("false"))
	case value.Number:
		// Format into a 32-byte window on the stack, then trim what is unused.
		off := s.out.Push(32)
		n := len(strconv.AppendFloat(s.out.Tail(off)[:0], v.GetNumber(), 'g', -1, 64))
		s.out.Pop(32 - n)
	case value.String:
		s.string(v.GetStringBytes())
	case value.Array:
		s.array(v)
	case value.Object:
		s.object(v)
	}
}

func (s *stringifier) array(v *value.Value) {
	s.putc('[')
	n := v.GetArraySize()
	for i := 0; i < n; i++ {
		if i > 0 {
			s.putc(',')
		}
		s.value(v.GetArrayElement(i))
	}
	s.putc(']')
}

func (s *stringifier) object(v *value.Value) {
	s.putc('{')
	n := v.GetObjectSize()
	for i := 0; i < n; i++ {
		if i > 0 {
			s.putc(',')
		}
		s.string([]byte(v.GetObjectKey(i)))
		s.putc(':')
		s.value(v.GetObjectValue(i))
	}
	s.putc('}')
}

const hexDigits = "0123456789ABCDEF"

func (s *stringifier) string(b []byte) {
	s.putc('"')
	for _, c := range b {
		switch c {
		case '"':
			s.puts([]byte(`\"`))
		case '\\':
			s.puts([]byte(`\\`))
		case '\b':
			s.puts([]byte(`\b`))
		case '\f':
			s.puts([]byte(`\f`))
		case '\n':
			s.puts([]byte(`\n`))
		case '\r':
			s.puts([]byte(`\r`))
		case '\t':
			s.puts([]byte(`\t`))
		default:
			if c >= 0x20 {
				s.putc(c)
			} else {
				s.puts([]byte{'\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF]})
			}
		}
	}
	s.putc('"')
}
