package serialization

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendPacked(b []byte, num protowire.Number, vs []int) []byte {
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	return appendMessage(b, num, packed)
}

// field is one decoded key/value pair. Varint and fixed64 values land in
// scalar, length-delimited values in bytes.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	scalar uint64
	bytes  []byte
}

func (f field) want(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("%w: field %d has wire type %d, want %d", ErrMalformedSnapshot, f.num, f.typ, typ)
	}
	return nil
}

func (f field) asUint() (uint64, error) {
	if err := f.want(protowire.VarintType); err != nil {
		return 0, err
	}
	return f.scalar, nil
}

func (f field) asInt() (int, error) {
	v, err := f.asUint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: field %d value %d out of range", ErrMalformedSnapshot, f.num, v)
	}
	return int(v), nil
}

func (f field) asDouble() (float64, error) {
	if err := f.want(protowire.Fixed64Type); err != nil {
		return 0, err
	}
	return math.Float64frombits(f.scalar), nil
}

func (f field) asBytes() ([]byte, error) {
	if err := f.want(protowire.BytesType); err != nil {
		return nil, err
	}
	return f.bytes, nil
}

func (f field) asString() (string, error) {
	b, err := f.asBytes()
	return string(b), err
}

// ints reads a repeated integer field in packed or unpacked form.
func (f field) asInts() ([]int, error) {
	if f.typ == protowire.VarintType {
		v, err := f.asInt()
		return []int{v}, err
	}
	b, err := f.asBytes()
	if err != nil {
		return nil, err
	}
	var out []int
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %v", ErrMalformedSnapshot, f.num, protowire.ParseError(n))
		}
		if v > math.MaxInt32 {
			return nil, fmt.Errorf("%w: field %d value %d out of range", ErrMalformedSnapshot, f.num, v)
		}
		out = append(out, int(v))
		b = b[n:]
	}
	return out, nil
}

// forEachField walks the fields of one message. Unknown fields are passed
// to fn like any other; callers ignore the numbers they do not know.
func forEachField(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedSnapshot, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.scalar, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.scalar, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformedSnapshot, num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
