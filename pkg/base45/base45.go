// Package base45 implements the Base45 encoding from RFC 9285, the
// QR-alphanumeric friendly text encoding used by HCERT payloads.
package base45

import (
	"fmt"
	"strings"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = byte(i)
	}
}

// CorruptInputError reports the offset of the first character group that
// could not be decoded.
type CorruptInputError struct {
	Offset int
	Reason string
}

func (e CorruptInputError) Error() string {
	return fmt.Sprintf("illegal base45 data at input byte %d: %s", e.Offset, e.Reason)
}

// EncodeToString returns the Base45 text for src: three characters per
// two-byte group, least significant digit first, and two characters for a
// trailing odd byte.
func EncodeToString(src []byte) string {
	var sb strings.Builder
	sb.Grow((len(src)/2)*3 + 2)

	for i := 0; i+1 < len(src); i += 2 {
		n := int(src[i])<<8 | int(src[i+1])
		sb.WriteByte(alphabet[n%45])
		sb.WriteByte(alphabet[(n/45)%45])
		sb.WriteByte(alphabet[n/2025])
	}

	if len(src)%2 == 1 {
		n := int(src[len(src)-1])
		sb.WriteByte(alphabet[n%45])
		sb.WriteByte(alphabet[n/45])
	}

	return sb.String()
}

// DecodeString decodes s. Every three characters yield two bytes and a
// trailing pair yields one byte; a single trailing character is invalid.
func DecodeString(s string) ([]byte, error) {
	if len(s)%3 == 1 {
		return nil, CorruptInputError{Offset: len(s) - 1, Reason: "dangling character"}
	}

	out := make([]byte, 0, (len(s)/3)*2+1)

	for i := 0; i < len(s); i += 3 {
		end := i + 3
		if end > len(s) {
			end = len(s)
		}

		n := 0
		mul := 1
		for j := i; j < end; j++ {
			v := decodeMap[s[j]]
			if v == 0xFF {
				return nil, CorruptInputError{Offset: j, Reason: fmt.Sprintf("character %q outside alphabet", s[j])}
			}
			n += int(v) * mul
			mul *= 45
		}

		if end-i == 3 {
			if n > 0xFFFF {
				return nil, CorruptInputError{Offset: i, Reason: "group value overflows two bytes"}
			}
			out = append(out, byte(n>>8), byte(n))
			continue
		}

		if n > 0xFF {
			return nil, CorruptInputError{Offset: i, Reason: "group value overflows one byte"}
		}
		out = append(out, byte(n))
	}

	return out, nil
}
