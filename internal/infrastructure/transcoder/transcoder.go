package transcoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/base45"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/types/errs"
	"github.com/klauspost/compress/zlib"
)

const (
	// Prefix marks an HCERT (EU Digital COVID Certificate) QR payload, version 1.
	Prefix = "HC1:"

	// MaxInflatedSize caps the decompressed CBOR document.
	MaxInflatedSize = 16 << 20
)

// Decode reverses the certificate encoding chain: prefix, base45, zlib.
func Decode(payload []byte) ([]byte, error) {
	text, err := StripPrefix(payload)
	if err != nil {
		return nil, fmt.Errorf("Transcoder - Decode - StripPrefix: %w", err)
	}

	compressed, err := DecodeBase45(text)
	if err != nil {
		return nil, fmt.Errorf("Transcoder - Decode - DecodeBase45: %w", err)
	}

	raw, err := Inflate(compressed)
	if err != nil {
		return nil, fmt.Errorf("Transcoder - Decode - Inflate: %w", err)
	}

	return raw, nil
}

func StripPrefix(payload []byte) (string, error) {
	trimmed := bytes.TrimSpace(payload)

	if !bytes.HasPrefix(trimmed, []byte(Prefix)) {
		return "", fmt.Errorf("payload does not start with %q: %w", Prefix, errs.ErrUnrecognizedFormat)
	}

	return string(trimmed[len(Prefix):]), nil
}

func DecodeBase45(text string) ([]byte, error) {
	b, err := base45.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidBase45, err)
	}

	return b, nil
}

func Inflate(compressed []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompression, err)
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, MaxInflatedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompression, err)
	}

	if len(out) > MaxInflatedSize {
		return nil, fmt.Errorf("%w: inflated size exceeds %d bytes", errs.ErrDecompression, MaxInflatedSize)
	}

	return out, nil
}
