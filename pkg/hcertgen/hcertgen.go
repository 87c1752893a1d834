// Package hcertgen builds unsigned Green Pass payloads and QR images.
// The COSE signature slot is filled with zeros, so the output is only
// useful for exercising decoders.
package hcertgen

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/base45"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zlib"
	qrgen "github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 512
	maxQRSize     = 4096

	coseSign1Tag = 18
	claimHCert   = -260
	keyEUDGCv1   = 1
	algES256     = -7
)

var ErrInvalidSize = errors.New("invalid QR code size")

type Subject struct {
	GivenName   string
	FamilyName  string
	DateOfBirth string
}

type Vaccination struct {
	Timestamp  string
	DoseNumber int
	TotalDoses int
	Product    string
}

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("hcertgen - mustEncMode: %v", err))
	}

	return em
}

// Claims returns the CWT claims map. With nested set, the certificate sits
// under -260 -> 1 as in issued passes; otherwise directly under -260.
func Claims(s Subject, v Vaccination, nested bool) map[int]interface{} {
	dgc := map[string]interface{}{
		"ver": "1.3.0",
		"nam": map[string]interface{}{
			"gnt": s.GivenName,
			"fnt": s.FamilyName,
		},
		"dob": s.DateOfBirth,
		"v": []interface{}{
			map[string]interface{}{
				"dt": v.Timestamp,
				"dn": v.DoseNumber,
				"sd": v.TotalDoses,
				"mp": v.Product,
			},
		},
	}

	if nested {
		return map[int]interface{}{claimHCert: map[int]interface{}{keyEUDGCv1: dgc}}
	}

	return map[int]interface{}{claimHCert: dgc}
}

// Envelope wraps claims in a tagged COSE_Sign1 array.
func Envelope(claims interface{}) ([]byte, error) {
	payload, err := encMode.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("hcertgen - Envelope - encMode.Marshal claims: %w", err)
	}

	protected, err := encMode.Marshal(map[int]int{1: algES256})
	if err != nil {
		return nil, fmt.Errorf("hcertgen - Envelope - encMode.Marshal header: %w", err)
	}

	env, err := encMode.Marshal(cbor.Tag{
		Number:  coseSign1Tag,
		Content: []interface{}{protected, map[int]interface{}{}, payload, make([]byte, 64)},
	})
	if err != nil {
		return nil, fmt.Errorf("hcertgen - Envelope - encMode.Marshal envelope: %w", err)
	}

	return env, nil
}

// Payload compresses and base45-encodes raw CBOR behind the HC1 prefix.
func Payload(raw []byte) (string, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("hcertgen - Payload - zlib.NewWriterLevel: %w", err)
	}
	if _, err = w.Write(raw); err != nil {
		return "", fmt.Errorf("hcertgen - Payload - w.Write: %w", err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("hcertgen - Payload - w.Close: %w", err)
	}

	return "HC1:" + base45.EncodeToString(buf.Bytes()), nil
}

// QR renders payload as a PNG QR code.
func QR(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	if size > maxQRSize {
		return nil, ErrInvalidSize
	}

	png, err := qrgen.Encode(payload, qrgen.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("hcertgen - QR - qrgen.Encode: %w", err)
	}

	return png, nil
}

// Build runs the whole chain and returns the HC1 payload and its QR PNG.
func Build(s Subject, v Vaccination, nested bool, size int) (string, []byte, error) {
	env, err := Envelope(Claims(s, v, nested))
	if err != nil {
		return "", nil, err
	}

	payload, err := Payload(env)
	if err != nil {
		return "", nil, err
	}

	png, err := QR(payload, size)
	if err != nil {
		return "", nil, err
	}

	return payload, png, nil
}
