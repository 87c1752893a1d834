package cbortree

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// MaxDepth bounds the nesting of arrays, maps and tags in one document.
const MaxDepth = 64

var ErrMalformed = errors.New("malformed cbor")

const (
	majorUnsigned = 0
	majorNegative = 1
	majorBytes    = 2
	majorText     = 3
	majorArray    = 4
	majorMap      = 5
	majorTag      = 6
	majorSimple   = 7

	aiIndefinite = 31
	breakCode    = 0xFF
)

var decMode = mustDecMode()

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		MaxNestedLevels: MaxDepth,
		IndefLength:     cbor.IndefLengthAllowed,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cbortree - mustDecMode: %v", err))
	}

	return dm
}

// Decode parses exactly one CBOR data item from data. Trailing bytes,
// truncated input, duplicate map keys and nesting deeper than MaxDepth
// are reported as ErrMalformed.
func Decode(data []byte) (Value, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	rest, err := decMode.UnmarshalFirst(data, new(cbor.RawMessage))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(rest))
	}

	v, err := convert(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return v, nil
}

// convert builds the tree for one framed item. Every container level hands
// its children back to the library, so a child's bytes are scanned once
// per enclosing level: work is O(size * depth), bounded by MaxDepth and by
// the inflate limit on payload size.
func convert(raw []byte, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("nesting exceeds %d levels", MaxDepth)
	}
	if len(raw) == 0 {
		return nil, errors.New("unexpected end of data")
	}

	switch raw[0] >> 5 {
	case majorUnsigned:
		var u uint64
		if err := decMode.Unmarshal(raw, &u); err != nil {
			return nil, err
		}
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d out of int64 range", u)
		}
		return Integer(u), nil

	case majorNegative:
		var i int64
		if err := decMode.Unmarshal(raw, &i); err != nil {
			return nil, err
		}
		return Integer(i), nil

	case majorBytes:
		var b []byte
		if err := decMode.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		if b == nil {
			b = []byte{}
		}
		return Bytes(b), nil

	case majorText:
		var s string
		if err := decMode.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return Text(s), nil

	case majorArray:
		var items []cbor.RawMessage
		if err := decMode.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		arr := make(Array, 0, len(items))
		for i, item := range items {
			v, err := convert(item, depth+1)
			if err != nil {
				return nil, fmt.Errorf("array element %d: %w", i, err)
			}
			arr = append(arr, v)
		}
		return arr, nil

	case majorMap:
		return convertMap(raw, depth)

	case majorTag:
		var rt cbor.RawTag
		if err := decMode.Unmarshal(raw, &rt); err != nil {
			return nil, err
		}
		content, err := convert(rt.Content, depth+1)
		if err != nil {
			return nil, fmt.Errorf("tag %d: %w", rt.Number, err)
		}
		return Tag{Number: rt.Number, Content: content}, nil

	default:
		return convertSimple(raw)
	}
}

// mapKey identifies a key for duplicate detection. Integers compare by
// value whatever their encoded width; other keys compare by their bytes.
type mapKey struct {
	major byte
	i     int64
	s     string
}

func keyOf(raw []byte, key Value) mapKey {
	switch k := key.(type) {
	case Integer:
		return mapKey{major: majorUnsigned, i: int64(k)}
	case Text:
		return mapKey{major: majorText, s: string(k)}
	case Bytes:
		return mapKey{major: majorBytes, s: string(k)}
	}

	return mapKey{major: raw[0] >> 5, s: string(raw)}
}

// convertMap walks the pairs itself so that entry order survives; the
// library only frames each key and value. A key seen twice is an error.
func convertMap(raw []byte, depth int) (Value, error) {
	count, indefinite, rest, err := mapHead(raw)
	if err != nil {
		return nil, err
	}

	m := make(Map, 0, min(count, 256))
	seen := make(map[mapKey]struct{}, min(count, 256))
	for i := uint64(0); indefinite || i < count; i++ {
		if indefinite {
			if len(rest) == 0 {
				return nil, errors.New("indefinite map without break")
			}
			if rest[0] == breakCode {
				break
			}
		}

		var k, v cbor.RawMessage
		if rest, err = decMode.UnmarshalFirst(rest, &k); err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		if rest, err = decMode.UnmarshalFirst(rest, &v); err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}

		key, err := convert(k, depth+1)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}

		id := keyOf(k, key)
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("map key %d: duplicate map key %v", i, key)
		}
		seen[id] = struct{}{}
		val, err := convert(v, depth+1)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}

		m = append(m, Entry{Key: key, Value: val})
	}

	return m, nil
}

func mapHead(raw []byte) (count uint64, indefinite bool, rest []byte, err error) {
	ai := raw[0] & 0x1F

	switch {
	case ai < 24:
		return uint64(ai), false, raw[1:], nil
	case ai == 24 && len(raw) >= 2:
		return uint64(raw[1]), false, raw[2:], nil
	case ai == 25 && len(raw) >= 3:
		return uint64(binary.BigEndian.Uint16(raw[1:3])), false, raw[3:], nil
	case ai == 26 && len(raw) >= 5:
		return uint64(binary.BigEndian.Uint32(raw[1:5])), false, raw[5:], nil
	case ai == 27 && len(raw) >= 9:
		return binary.BigEndian.Uint64(raw[1:9]), false, raw[9:], nil
	case ai == aiIndefinite:
		return 0, true, raw[1:], nil
	}

	return 0, false, nil, fmt.Errorf("invalid map header 0x%02x", raw[0])
}

func convertSimple(raw []byte) (Value, error) {
	ai := raw[0] & 0x1F

	switch {
	case ai == 20:
		return Bool(false), nil
	case ai == 21:
		return Bool(true), nil
	case ai == 22 || ai == 23:
		return Null{}, nil
	case ai >= 25 && ai <= 27:
		var f float64
		if err := decMode.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
		return Float(f), nil
	case ai < 20:
		return Simple(ai), nil
	case ai == 24 && len(raw) >= 2:
		return Simple(raw[1]), nil
	}

	return nil, fmt.Errorf("invalid simple value header 0x%02x", raw[0])
}
