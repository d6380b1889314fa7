/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package jsonparse turns JSON text into a value.Value tree.
//
// The parser is a single recursive-descent pass over the input byte
// slice. It stages array elements, object members and string bytes on
// shared scratch.Stack buffers while a composite is being read, and
// only copies the staged region into an exact-capacity value.Value
// slice once the closing bracket is seen — the same stage-then-commit
// discipline the container package's builders use for bulk construction,
// generalized from a single flat buffer to one stack per staged element
// kind. On any failure, every stack is unwound back to the offset it
// had on entry to the failing composite, and every Value staged in
// that span is freed, so a failed parse leaves nothing but the caller's
// *value.Value, reset to Null.
package jsonparse

import (
	"bytes"
	"math"
	"strconv"

	"github.com/kcenon/lynxjson-go/scratch"
	"github.com/kcenon/lynxjson-go/value"
)

type stagedMember struct {
	key string
	val value.Value
}

type parser struct {
	in      []byte
	pos     int
	bytes   *scratch.Stack[byte]
	elems   *scratch.Stack[value.Value]
	members *scratch.Stack[stagedMember]
}

// Parse parses text as a single JSON document and returns its root
// value. On failure the returned *value.Value is reset to Null and the
// error is a *ParseError wrapping one of the sentinel errors in this
// package. A 0x00 byte in text ends the document; nothing after it is
// read.
func Parse(text []byte) (*value.Value, error) {
	if end := bytes.IndexByte(text, 0); end >= 0 {
		text = text[:end]
	}
	p := &parser{
		in:      text,
		bytes:   scratch.New[byte](),
		elems:   scratch.New[value.Value](),
		members: scratch.New[stagedMember](),
	}

	v := &value.Value{}
	p.skipWhitespace()
	if err := p.parseValue(v); err != nil {
		v.Free()
		return v, err
	}
	p.skipWhitespace()
	if p.pos < len(p.in) {
		v.Free()
		return v, p.errorAt(ErrRootNotSingular, p.pos)
	}
	return v, nil
}

func (p *parser) errorAt(sentinel error, offset int) error {
	return &ParseError{Offset: offset, Err: sentinel}
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.in) {
		switch p.in[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue(v *value.Value) error {
	if p.pos >= len(p.in) {
		return p.errorAt(ErrExpectValue, p.pos)
	}
	switch p.in[p.pos] {
	case 'n':
		return p.parseLiteral(v, "null")
	case 't':
		return p.parseLiteral(v, "true")
	case 'f':
		return p.parseLiteral(v, "false")
	case '"':
		return p.parseString(v)
	case '[':
		return p.parseArray(v)
	case '{':
		return p.parseObject(v)
	default:
		return p.parseNumber(v)
	}
}

func (p *parser) parseLiteral(v *value.Value, word string) error {
	start := p.pos
	end := start + len(word)
	if end > len(p.in) || string(p.in[start:end]) != word {
		return p.errorAt(ErrInvalidValue, start)
	}
	switch word {
	case "null":
		value.SetNull(v)
	case "true":
		v.SetBoolean(true)
	case "false":
		v.SetBoolean(false)
	}
	p.pos = end
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isDigit19(b byte) bool {
	return b >= '1' && b <= '9'
}

func (p *parser) parseNumber(v *value.Value) error {
	start := p.pos
	i := p.pos
	n := len(p.in)

	if i < n && p.in[i] == '-' {
		i++
	}
	if i >= n {
		return p.errorAt(ErrInvalidValue, start)
	}
	switch {
	case p.in[i] == '0':
		i++
	case isDigit19(p.in[i]):
		i++
		for i < n && isDigit(p.in[i]) {
			i++
		}
	default:
		return p.errorAt(ErrInvalidValue, start)
	}

	if i < n && p.in[i] == '.' {
		i++
		if i >= n || !isDigit(p.in[i]) {
			return p.errorAt(ErrInvalidValue, start)
		}
		for i < n && isDigit(p.in[i]) {
			i++
		}
	}

	if i < n && (p.in[i] == 'e' || p.in[i] == 'E') {
		i++
		if i < n && (p.in[i] == '+' || p.in[i] == '-') {
			i++
		}
		if i >= n || !isDigit(p.in[i]) {
			return p.errorAt(ErrInvalidValue, start)
		}
		for i < n && isDigit(p.in[i]) {
			i++
		}
	}

	f, err := strconv.ParseFloat(string(p.in[start:i]), 64)
	if err != nil {
		numErr, ok := err.(*strconv.NumError)
		if !ok || numErr.Err != strconv.ErrRange {
			return p.errorAt(ErrInvalidValue, start)
		}
		if math.IsInf(f, 0) {
			return p.errorAt(ErrNumberTooBig, start)
		}
		// Underflow: ParseFloat reports ErrRange with f == 0, which the
		// grammar accepts as plain zero.
	}
	v.SetNumber(f)
	p.pos = i
	return nil
}

func (p *parser) parseArray(v *value.Value) error {
	p.pos++ // '['
	p.skipWhitespace()
	if p.pos < len(p.in) && p.in[p.pos] == ']' {
		p.pos++
		v.SetArray(0)
		return nil
	}

	entry := p.elems.Top()
	count := 0
	for {
		var elem value.Value
		if err := p.parseValue(&elem); err != nil {
			p.unwindElems(entry)
			return err
		}
		off := p.elems.Push(1)
		*p.elems.At(off) = elem
		count++

		p.skipWhitespace()
		if p.pos >= len(p.in) {
			p.unwindElems(entry)
			return p.errorAt(ErrMissCommaOrSquareBracket, p.pos)
		}
		switch p.in[p.pos] {
		case ']':
			p.pos++
			staged := p.elems.Pop(count)
			v.SetArray(count)
			for i := range staged {
				value.Move(v.PushBackArrayElement(), &staged[i])
			}
			return nil
		case ',':
			p.pos++
			p.skipWhitespace()
		default:
			p.unwindElems(entry)
			return p.errorAt(ErrMissCommaOrSquareBracket, p.pos)
		}
	}
}

func (p *parser) unwindElems(entry int) {
	staged := p.elems.Pop(p.elems.Top() - entry)
	for i := range staged {
		staged[i].Free()
	}
}

func (p *parser) parseObject(v *value.Value) error {
	p.pos++ // '{'
	p.skipWhitespace()
	if p.pos < len(p.in) && p.in[p.pos] == '}' {
		p.pos++
		v.SetObject(0)
		return nil
	}

	entry := p.members.Top()
	count := 0
	for {
		if p.pos >= len(p.in) || p.in[p.pos] != '"' {
			p.unwindMembers(entry)
			return p.errorAt(ErrMissKey, p.pos)
		}
		var keyHolder value.Value
		if err := p.parseString(&keyHolder); err != nil {
			p.unwindMembers(entry)
			return err
		}
		key := keyHolder.GetString()

		p.skipWhitespace()
		if p.pos >= len(p.in) || p.in[p.pos] != ':' {
			keyHolder.Free()
			p.unwindMembers(entry)
			return p.errorAt(ErrMissColon, p.pos)
		}
		p.pos++
		p.skipWhitespace()

		var val value.Value
		if err := p.parseValue(&val); err != nil {
			keyHolder.Free()
			p.unwindMembers(entry)
			return err
		}
		keyHolder.Free()

		off := p.members.Push(1)
		*p.members.At(off) = stagedMember{key: key, val: val}
		count++

		p.skipWhitespace()
		if p.pos >= len(p.in) {
			p.unwindMembers(entry)
			return p.errorAt(ErrMissCommaOrCurlyBracket, p.pos)
		}
		switch p.in[p.pos] {
		case '}':
			p.pos++
			staged := p.members.Pop(count)
			v.SetObject(count)
			for i := range staged {
				value.Move(v.PushBackObjectMember(staged[i].key), &staged[i].val)
			}
			return nil
		case ',':
			p.pos++
			p.skipWhitespace()
		default:
			p.unwindMembers(entry)
			return p.errorAt(ErrMissCommaOrCurlyBracket, p.pos)
		}
	}
}

func (p *parser) unwindMembers(entry int) {
	staged := p.members.Pop(p.members.Top() - entry)
	for i := range staged {
		staged[i].val.Free()
	}
}
