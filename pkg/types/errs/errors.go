package errs

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedImage        = errors.New("unsupported image")
	ErrNoBarcodeFound          = errors.New("no barcode found")
	ErrUnrecognizedFormat      = errors.New("unrecognized certificate format")
	ErrInvalidBase45           = errors.New("invalid base45")
	ErrDecompression           = errors.New("decompression error")
	ErrMalformedStructuredData = errors.New("malformed structured data")
	ErrMissingField            = errors.New("missing field")
	ErrTypeMismatch            = errors.New("type mismatch")
	ErrInvalidFieldValue       = errors.New("invalid field value")
)

// FieldError points at the key path inside the decoded certificate
// where mapping failed. Kind is one of ErrMissingField, ErrTypeMismatch
// or ErrInvalidFieldValue.
type FieldError struct {
	Kind   error
	Path   string
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}

	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Detail)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func Missing(path string) error {
	return &FieldError{Kind: ErrMissingField, Path: path}
}

func Mismatch(path, detail string) error {
	return &FieldError{Kind: ErrTypeMismatch, Path: path, Detail: detail}
}

func InvalidValue(path, detail string) error {
	return &FieldError{Kind: ErrInvalidFieldValue, Path: path, Detail: detail}
}

var kinds = []struct {
	err   error
	label string
}{
	{ErrUnsupportedImage, "unsupported_image"},
	{ErrNoBarcodeFound, "no_barcode_found"},
	{ErrUnrecognizedFormat, "unrecognized_format"},
	{ErrInvalidBase45, "invalid_base45"},
	{ErrDecompression, "decompression_error"},
	{ErrMalformedStructuredData, "malformed_structured_data"},
	{ErrMissingField, "missing_field"},
	{ErrTypeMismatch, "type_mismatch"},
	{ErrInvalidFieldValue, "invalid_field_value"},
}

// Kind returns a stable label for err, suitable for logs and metric labels.
func Kind(err error) string {
	if err == nil {
		return "ok"
	}

	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.label
		}
	}

	return "unknown"
}
