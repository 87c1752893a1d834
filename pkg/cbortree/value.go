// Package cbortree decodes CBOR (RFC 8949) documents into a closed set of
// value types that callers inspect with type switches. Map entries keep
// the order in which they appear on the wire.
package cbortree

type Kind uint8

const (
	KindInteger Kind = iota + 1
	KindText
	KindBytes
	KindArray
	KindMap
	KindTag
	KindFloat
	KindBool
	KindNull
	KindSimple
)

var kindNames = map[Kind]string{
	KindInteger: "integer",
	KindText:    "text",
	KindBytes:   "bytes",
	KindArray:   "array",
	KindMap:     "map",
	KindTag:     "tag",
	KindFloat:   "float",
	KindBool:    "bool",
	KindNull:    "null",
	KindSimple:  "simple",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "invalid"
}

// Value is implemented only by the types in this package.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	Integer int64
	Text    string
	Bytes   []byte
	Array   []Value
	Map     []Entry
	Float   float64
	Bool    bool
	Null    struct{}
	Simple  uint8
)

type Entry struct {
	Key   Value
	Value Value
}

type Tag struct {
	Number  uint64
	Content Value
}

func (Integer) Kind() Kind { return KindInteger }
func (Text) Kind() Kind    { return KindText }
func (Bytes) Kind() Kind   { return KindBytes }
func (Array) Kind() Kind   { return KindArray }
func (Map) Kind() Kind     { return KindMap }
func (Tag) Kind() Kind     { return KindTag }
func (Float) Kind() Kind   { return KindFloat }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }
func (Simple) Kind() Kind  { return KindSimple }

func (Integer) sealed() {}
func (Text) sealed()    {}
func (Bytes) sealed()   {}
func (Array) sealed()   {}
func (Map) sealed()     {}
func (Tag) sealed()     {}
func (Float) sealed()   {}
func (Bool) sealed()    {}
func (Null) sealed()    {}
func (Simple) sealed()  {}

// IntKey returns the value stored under the integer key k.
func (m Map) IntKey(k int64) (Value, bool) {
	for _, e := range m {
		if key, ok := e.Key.(Integer); ok && int64(key) == k {
			return e.Value, true
		}
	}

	return nil, false
}

// TextKey returns the value stored under the text key k.
func (m Map) TextKey(k string) (Value, bool) {
	for _, e := range m {
		if key, ok := e.Key.(Text); ok && string(key) == k {
			return e.Value, true
		}
	}

	return nil, false
}

// Untag strips any number of enclosing tags and returns the innermost
// content together with the tag numbers, outermost first.
func Untag(v Value) (Value, []uint64) {
	var tags []uint64

	for {
		t, ok := v.(Tag)
		if !ok {
			return v, tags
		}
		tags = append(tags, t.Number)
		v = t.Content
	}
}
