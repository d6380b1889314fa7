/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package msgpackcodec marshals and unmarshals value.Value trees to and
// from the MessagePack binary format, via github.com/vmihailenco/msgpack/v5.
//
// Encoding goes through the same plain map[string]interface{}/
// []interface{} staging representation the container package's
// ToMessagePack used for its header fields, generalized here to cover
// an entire value tree rather than just a handful of string fields.
// That staging step costs the two properties Object alone preserves:
// insertion order and duplicate keys collapse to Go map semantics on
// the round trip. Every other JSON value kind round-trips exactly.
package msgpackcodec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kcenon/lynxjson-go/value"
)

// Marshal encodes v as MessagePack.
func Marshal(v *value.Value) ([]byte, error) {
	return msgpack.Marshal(toNative(v))
}

// Unmarshal decodes MessagePack data into dst, which is reset and
// overwritten. Object members come back in whatever order the decoded
// Go map iterates in, and duplicate keys from the original document do
// not survive a round trip through Marshal.
func Unmarshal(data []byte, dst *value.Value) error {
	var native interface{}
	if err := msgpack.Unmarshal(data, &native); err != nil {
		return err
	}
	built, err := fromNative(native)
	if err != nil {
		return err
	}
	dst.Free()
	*dst = built
	return nil
}

func toNative(v *value.Value) interface{} {
	switch v.Type() {
	case value.Null:
		return nil
	case value.True:
		return true
	case value.False:
		return false
	case value.Number:
		return v.GetNumber()
	case value.String:
		return v.GetString()
	case value.Array:
		n := v.GetArraySize()
		out := make([]interface{}, n)
		for i := 0; i < n; i++ {
			out[i] = toNative(v.GetArrayElement(i))
		}
		return out
	case value.Object:
		n := v.GetObjectSize()
		out := make(map[string]interface{}, n)
		for i := 0; i < n; i++ {
			out[v.GetObjectKey(i)] = toNative(v.GetObjectValue(i))
		}
		return out
	default:
		return nil
	}
}

func fromNative(x interface{}) (value.Value, error) {
	var out value.Value
	switch t := x.(type) {
	case nil:
		value.SetNull(&out)
	case bool:
		out.SetBoolean(t)
	case string:
		out.SetString([]byte(t))
	case float32:
		out.SetNumber(float64(t))
	case float64:
		out.SetNumber(t)
	case int8, int16, int32, int64, int:
		out.SetNumber(toFloat(t))
	case uint8, uint16, uint32, uint64, uint:
		out.SetNumber(toFloat(t))
	case []interface{}:
		out.SetArray(len(t))
		for _, elem := range t {
			child, err := fromNative(elem)
			if err != nil {
				return value.Value{}, err
			}
			value.Move(out.PushBackArrayElement(), &child)
		}
	case map[string]interface{}:
		out.SetObject(len(t))
		for key, elem := range t {
			child, err := fromNative(elem)
			if err != nil {
				return value.Value{}, err
			}
			value.Move(out.SetObjectValue(key), &child)
		}
	default:
		return value.Value{}, fmt.Errorf("msgpackcodec: unsupported decoded type %T", x)
	}
	return out, nil
}

func toFloat(x interface{}) float64 {
	switch t := x.(type) {
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case uint:
		return float64(t)
	}
	return 0
}
