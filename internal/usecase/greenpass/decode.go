package greenpass

import (
	"fmt"

	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/cbortree"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/types/errs"
)

// decodeEnvelope is the first pass: it returns the embedded payload bytes
// of the signing envelope. Enclosing tags (COSE_Sign1 18, CWT 61) are
// optional, and a map keyed by 2 is accepted in place of the array.
// The signature is not checked.
func decodeEnvelope(raw []byte) ([]byte, error) {
	outer, err := cbortree.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: envelope: %v", errs.ErrMalformedStructuredData, err)
	}

	inner, _ := cbortree.Untag(outer)

	var payload cbortree.Value

	switch env := inner.(type) {
	case cbortree.Array:
		if len(env) <= coseIndexPayload {
			return nil, fmt.Errorf("%w: envelope has %d elements, payload expected at index %d",
				errs.ErrMalformedStructuredData, len(env), coseIndexPayload)
		}
		payload = env[coseIndexPayload]
	case cbortree.Map:
		v, ok := env.IntKey(coseIndexPayload)
		if !ok {
			return nil, fmt.Errorf("%w: envelope map has no key %d", errs.ErrMalformedStructuredData, coseIndexPayload)
		}
		payload = v
	default:
		return nil, fmt.Errorf("%w: envelope is %s, expected array", errs.ErrMalformedStructuredData, inner.Kind())
	}

	b, ok := payload.(cbortree.Bytes)
	if !ok {
		return nil, fmt.Errorf("%w: envelope payload is %s, expected bytes", errs.ErrMalformedStructuredData, payload.Kind())
	}

	return b, nil
}

// decodePayload is the second pass over the embedded document.
func decodePayload(b []byte) (cbortree.Map, error) {
	v, err := cbortree.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", errs.ErrMalformedStructuredData, err)
	}

	m, ok := v.(cbortree.Map)
	if !ok {
		return nil, fmt.Errorf("%w: payload is %s, expected map", errs.ErrMalformedStructuredData, v.Kind())
	}

	return m, nil
}
