package cbortree

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()

	b, err := cbor.Marshal(v)
	require.NoError(t, err)

	return b
}

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Value
	}{
		{"small uint", []byte{0x01}, Integer(1)},
		{"uint16", []byte{0x19, 0x01, 0x00}, Integer(256)},
		{"negative", []byte{0x39, 0x01, 0x03}, Integer(-260)},
		{"text", []byte{0x62, 'd', 'n'}, Text("dn")},
		{"bytes", []byte{0x42, 0xCA, 0xFE}, Bytes{0xCA, 0xFE}},
		{"empty bytes", []byte{0x40}, Bytes{}},
		{"false", []byte{0xF4}, Bool(false)},
		{"true", []byte{0xF5}, Bool(true)},
		{"null", []byte{0xF6}, Null{}},
		{"half float", []byte{0xF9, 0x3C, 0x00}, Float(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeMapKeepsWireOrder(t *testing.T) {
	// {"b": 1, "a": 2, -260: "x"}
	in := []byte{0xA3, 0x61, 'b', 0x01, 0x61, 'a', 0x02, 0x39, 0x01, 0x03, 0x61, 'x'}

	got, err := Decode(in)
	require.NoError(t, err)

	m, ok := got.(Map)
	require.True(t, ok)
	require.Len(t, m, 3)
	assert.Equal(t, Text("b"), m[0].Key)
	assert.Equal(t, Text("a"), m[1].Key)
	assert.Equal(t, Integer(-260), m[2].Key)

	v, ok := m.IntKey(-260)
	require.True(t, ok)
	assert.Equal(t, Text("x"), v)

	v, ok = m.TextKey("a")
	require.True(t, ok)
	assert.Equal(t, Integer(2), v)

	_, ok = m.TextKey("missing")
	assert.False(t, ok)
}

func TestDecodeIndefiniteLengths(t *testing.T) {
	// {_ "v": [_ 1, 2]}
	in := []byte{0xBF, 0x61, 'v', 0x9F, 0x01, 0x02, 0xFF, 0xFF}

	got, err := Decode(in)
	require.NoError(t, err)

	assert.Equal(t, Map{{Key: Text("v"), Value: Array{Integer(1), Integer(2)}}}, got)
}

func TestDecodeTag(t *testing.T) {
	in := mustMarshal(t, cbor.Tag{
		Number:  18,
		Content: []interface{}{[]byte{0xA0}, map[int]int{}, []byte("payload"), []byte{}},
	})

	got, err := Decode(in)
	require.NoError(t, err)

	inner, tags := Untag(got)
	assert.Equal(t, []uint64{18}, tags)

	arr, ok := inner.(Array)
	require.True(t, ok)
	require.Len(t, arr, 4)
	assert.Equal(t, Bytes("payload"), arr[2])
	assert.Equal(t, Map{}, arr[1])
}

func TestDecodeNestedDepth20(t *testing.T) {
	var nested interface{} = "leaf"
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			nested = []interface{}{nested}
		} else {
			nested = map[string]interface{}{"k": nested}
		}
	}

	got, err := Decode(mustMarshal(t, nested))
	require.NoError(t, err)

	depth := 0
	for {
		switch v := got.(type) {
		case Array:
			got = v[0]
		case Map:
			got = v[0].Value
		default:
			assert.Equal(t, Text("leaf"), got)
			assert.Equal(t, 20, depth)
			return
		}
		depth++
	}
}

func TestDecodeRejectsExcessiveNesting(t *testing.T) {
	in := append(bytes.Repeat([]byte{0x81}, MaxDepth+10), 0x01)

	_, err := Decode(in)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"trailing bytes", []byte{0x01, 0x02}},
		{"truncated array", []byte{0x82, 0x01}},
		{"truncated text", []byte{0x65, 'a', 'b'}},
		{"uint out of int64 range", []byte{0x1B, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"invalid utf8", []byte{0x61, 0xFF}},
		{"reserved additional info", []byte{0x1C}},
		{"duplicate integer key", []byte{0xA2, 0x01, 0x01, 0x01, 0x02}},
		{"duplicate integer key, wider encoding", []byte{0xA2, 0x01, 0x01, 0x18, 0x01, 0x02}},
		{"duplicate negative key", []byte{0xA2, 0x39, 0x01, 0x03, 0xA0, 0x39, 0x01, 0x03, 0xA0}},
		{"duplicate text key", []byte{0xA2, 0x61, 'v', 0x01, 0x61, 'v', 0x02}},
		{"duplicate key in indefinite map", []byte{0xBF, 0x61, 'a', 0x01, 0x61, 'a', 0x02, 0xFF}},
		{"duplicate key in nested map", []byte{0x81, 0xA2, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecodeDistinctKeysOfDifferentKinds(t *testing.T) {
	// 1, "1" and h'31' are three different keys.
	v, err := Decode([]byte{0xA3, 0x01, 0x0A, 0x61, '1', 0x0B, 0x41, '1', 0x0C})
	require.NoError(t, err)

	m, ok := v.(Map)
	require.True(t, ok)
	require.Len(t, m, 3)

	got, ok := m.IntKey(1)
	require.True(t, ok)
	assert.Equal(t, Integer(10), got)

	got, ok = m.TextKey("1")
	require.True(t, ok)
	assert.Equal(t, Integer(11), got)
}

func TestDecodeDuplicateKeyError(t *testing.T) {
	_, err := Decode([]byte{0xA2, 0x39, 0x01, 0x03, 0xA0, 0x39, 0x01, 0x03, 0xA0})
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "duplicate map key -260")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "map", Map{}.Kind().String())
	assert.Equal(t, "bytes", Bytes{}.Kind().String())
	assert.Equal(t, "invalid", Kind(0).String())
}
