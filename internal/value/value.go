// Package value defines the runtime value model shared by the lexer (literal
// payloads) and the later evaluation phases.
//
// A Value carries exactly one of Null, a 64-bit signed Number or a Boolean.
// The zero Value is Null.
package value

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// Kind is the type tag of a Value. It is used on its own by type checks
// (symbols carry a Kind without a Value).
type Kind uint8

const (
	// KindNull is the kind of the absent value.
	KindNull Kind = iota
	// KindNumber is the kind of 64-bit signed integers.
	KindNumber
	// KindBoolean is the kind of true/false.
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	}
	return "unknown"
}

// Value is a tagged runtime value.
type Value struct {
	kind Kind
	num  int64
	flag bool
}

// Null returns the null value.
func Null() Value { return Value{} }

// Number wraps an int64.
func Number(n int64) Value { return Value{kind: KindNumber, num: n} }

// Boolean wraps a bool.
func Boolean(b bool) Value { return Value{kind: KindBoolean, flag: b} }

// Kind projects the value to its tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsNumber returns the integer payload.
// Only safe once the caller has established v.Kind() == KindNumber; any other
// kind is a programmer error and panics.
func (v Value) AsNumber() int64 {
	if v.kind != KindNumber {
		panic(fmt.Sprintf("not a number: %s", v))
	}
	return v.num
}

// AsBoolean returns the boolean payload.
// Same contract as AsNumber: panics unless v.Kind() == KindBoolean.
func (v Value) AsBoolean() bool {
	if v.kind != KindBoolean {
		panic(fmt.Sprintf("not a boolean: %s", v))
	}
	return v.flag
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindBoolean:
		return v.flag == other.flag
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatInt(v.num, 10)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	default:
		return "<null>"
	}
}

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)

// EncodeMsgpack пишет значение как [kind, payload].
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(v.kind)); err != nil {
		return err
	}
	switch v.kind {
	case KindNumber:
		return enc.EncodeInt(v.num)
	case KindBoolean:
		return enc.EncodeBool(v.flag)
	default:
		return enc.EncodeNil()
	}
}

// DecodeMsgpack reads the [kind, payload] pair written by EncodeMsgpack.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("value: expected 2 elements, got %d", n)
	}
	k, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	switch Kind(k) {
	case KindNull:
		if err := dec.DecodeNil(); err != nil {
			return err
		}
		*v = Null()
	case KindNumber:
		n, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		*v = Number(n)
	case KindBoolean:
		b, err := dec.DecodeBool()
		if err != nil {
			return err
		}
		*v = Boolean(b)
	default:
		return fmt.Errorf("value: unknown kind %d", k)
	}
	return nil
}
