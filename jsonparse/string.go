/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package jsonparse

import (
	"unicode/utf8"

	"github.com/kcenon/lynxjson-go/value"
)

// parseString reads a quoted JSON string starting at the opening quote,
// staging decoded bytes on p.bytes, and sets v to the decoded String.
// On failure p.bytes is unwound back to its entry offset and v is left
// untouched.
func (p *parser) parseString(v *value.Value) error {
	entry := p.bytes.Top()
	if err := p.parseStringRaw(); err != nil {
		p.bytes.Truncate(entry)
		return err
	}
	region := p.bytes.Pop(p.bytes.Top() - entry)
	v.SetString(region)
	return nil
}

func (p *parser) parseStringRaw() error {
	p.pos++ // opening quote
	for {
		if p.pos >= len(p.in) {
			return p.errorAt(ErrMissQuotationMark, p.pos)
		}
		c := p.in[p.pos]
		switch {
		case c == '"':
			p.pos++
			return nil
		case c == '\\':
			if err := p.parseEscape(); err != nil {
				return err
			}
		case c < 0x20:
			return p.errorAt(ErrInvalidStringChar, p.pos)
		default:
			p.pushByte(c)
			p.pos++
		}
	}
}

func (p *parser) pushByte(b byte) {
	off := p.bytes.Push(1)
	*p.bytes.At(off) = b
}

func (p *parser) pushRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	off := p.bytes.Push(n)
	copy(p.bytes.Tail(off), buf[:n])
}

// parseEscape consumes a backslash escape sequence (the backslash must
// be the current byte) and stages its decoded bytes.
func (p *parser) parseEscape() error {
	start := p.pos
	p.pos++ // backslash
	if p.pos >= len(p.in) {
		return p.errorAt(ErrInvalidStringEscape, start)
	}
	switch p.in[p.pos] {
	case '"', '\\', '/':
		p.pushByte(p.in[p.pos])
		p.pos++
	case 'b':
		p.pushByte('\b')
		p.pos++
	case 'f':
		p.pushByte('\f')
		p.pos++
	case 'n':
		p.pushByte('\n')
		p.pos++
	case 'r':
		p.pushByte('\r')
		p.pos++
	case 't':
		p.pushByte('\t')
		p.pos++
	case 'u':
		p.pos++
		return p.parseUnicodeEscape(start)
	default:
		return p.errorAt(ErrInvalidStringEscape, start)
	}
	return nil
}

// parseUnicodeEscape consumes the four hex digits of a \u escape
// (the cursor is positioned just after "\u") and, for a high surrogate,
// the \u low-surrogate pair that must immediately follow. start is the
// offset of the escape's leading backslash, used for error reporting.
func (p *parser) parseUnicodeEscape(start int) error {
	hi, err := p.readHex4()
	if err != nil {
		return err
	}

	switch {
	case hi >= 0xD800 && hi <= 0xDBFF:
		if p.pos+1 >= len(p.in) || p.in[p.pos] != '\\' || p.in[p.pos+1] != 'u' {
			return p.errorAt(ErrInvalidUnicodeSurrogate, start)
		}
		p.pos += 2
		lo, err := p.readHex4()
		if err != nil {
			return err
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return p.errorAt(ErrInvalidUnicodeSurrogate, start)
		}
		cp := 0x10000 + (hi-0xD800)*0x400 + (lo - 0xDC00)
		p.pushRune(rune(cp))
		return nil
	case hi >= 0xDC00 && hi <= 0xDFFF:
		return p.errorAt(ErrInvalidUnicodeSurrogate, start)
	default:
		p.pushRune(rune(hi))
		return nil
	}
}

func (p *parser) readHex4() (uint32, error) {
	if p.pos+4 > len(p.in) {
		return 0, p.errorAt(ErrInvalidUnicodeHex, p.pos)
	}
	var v uint32
	for i := 0; i < 4; i++ {
		c := p.in[p.pos+i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, p.errorAt(ErrInvalidUnicodeHex, p.pos)
		}
		v = v*16 + d
	}
	p.pos += 4
	return v, nil
}
