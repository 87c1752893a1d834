package greenpass

import (
	"fmt"
	"math"
	"strconv"

	"github.com/andreyxaxa/GreenPass-Analyzer/internal/entity"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/cbortree"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/types/errs"
)

// node is a value inside the decoded payload together with the key path
// that led to it, so mapping errors can say where they happened.
type node struct {
	path  string
	value cbortree.Value
}

func (n node) child(key string) string {
	if n.path == "" {
		return key
	}

	return n.path + "." + key
}

func (n node) asMap() (cbortree.Map, error) {
	m, ok := n.value.(cbortree.Map)
	if !ok {
		return nil, errs.Mismatch(n.path, fmt.Sprintf("expected map, got %s", n.value.Kind()))
	}

	return m, nil
}

func (n node) intKey(k int64) (node, error) {
	m, err := n.asMap()
	if err != nil {
		return node{}, err
	}

	path := n.child(strconv.FormatInt(k, 10))

	v, ok := m.IntKey(k)
	if !ok {
		return node{}, errs.Missing(path)
	}

	return node{path: path, value: v}, nil
}

func (n node) textKey(k string) (node, error) {
	m, err := n.asMap()
	if err != nil {
		return node{}, err
	}

	path := n.child(k)

	v, ok := m.TextKey(k)
	if !ok {
		return node{}, errs.Missing(path)
	}

	return node{path: path, value: v}, nil
}

func (n node) index(i int) (node, error) {
	a, ok := n.value.(cbortree.Array)
	if !ok {
		return node{}, errs.Mismatch(n.path, fmt.Sprintf("expected array, got %s", n.value.Kind()))
	}

	path := fmt.Sprintf("%s[%d]", n.path, i)
	if i >= len(a) {
		return node{}, errs.Missing(path)
	}

	return node{path: path, value: a[i]}, nil
}

func (n node) text() (string, error) {
	s, ok := n.value.(cbortree.Text)
	if !ok {
		return "", errs.Mismatch(n.path, fmt.Sprintf("expected text, got %s", n.value.Kind()))
	}

	return string(s), nil
}

// integer accepts CBOR integers and floats with no fractional part.
// Some issuers encode dose counters as 1.0.
func (n node) integer() (int64, error) {
	switch v := n.value.(type) {
	case cbortree.Integer:
		return int64(v), nil
	case cbortree.Float:
		f := float64(v)
		if math.Trunc(f) == f && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
		return 0, errs.Mismatch(n.path, fmt.Sprintf("expected integer, got float %v", f))
	default:
		return 0, errs.Mismatch(n.path, fmt.Sprintf("expected integer, got %s", n.value.Kind()))
	}
}

// textAt and integerAt read a scalar under a text key of n.
func (n node) textAt(k string) (string, error) {
	c, err := n.textKey(k)
	if err != nil {
		return "", err
	}

	return c.text()
}

func (n node) integerAt(k string) (int64, error) {
	c, err := n.textKey(k)
	if err != nil {
		return 0, err
	}

	return c.integer()
}

// certificateNode locates the EU DGC map. Issued passes carry it under
// -260 -> 1; a flat layout with the fields directly under -260 is also
// accepted.
func certificateNode(payload cbortree.Map) (node, error) {
	hcert, err := node{value: payload}.intKey(claimHCert)
	if err != nil {
		return node{}, err
	}

	m, err := hcert.asMap()
	if err != nil {
		return node{}, err
	}

	if v, ok := m.IntKey(keyEUDGCv1); ok {
		if _, isMap := v.(cbortree.Map); isMap {
			return hcert.intKey(keyEUDGCv1)
		}
	}

	return hcert, nil
}

func mapCertificate(payload cbortree.Map) (*entity.Certificate, error) {
	dgc, err := certificateNode(payload)
	if err != nil {
		return nil, err
	}

	name, err := dgc.textKey(keyName)
	if err != nil {
		return nil, err
	}

	firstName, err := name.textAt(keyGivenName)
	if err != nil {
		return nil, err
	}

	lastName, err := name.textAt(keyFamilyName)
	if err != nil {
		return nil, err
	}

	birthDate, err := dgc.textAt(keyDateOfBirth)
	if err != nil {
		return nil, err
	}

	vaccinations, err := dgc.textKey(keyVaccinations)
	if err != nil {
		return nil, err
	}

	dose, err := vaccinations.index(0)
	if err != nil {
		return nil, err
	}

	dt, err := dose.textKey(keyDoseTimestamp)
	if err != nil {
		return nil, err
	}

	timestamp, err := dt.text()
	if err != nil {
		return nil, err
	}

	last, err := parseTimestamp(timestamp)
	if err != nil {
		return nil, errs.InvalidValue(dt.path, fmt.Sprintf("%q: %v", timestamp, err))
	}

	doseNumber, err := dose.integerAt(keyDoseNumber)
	if err != nil {
		return nil, err
	}

	totalDoses, err := dose.integerAt(keyTotalDoses)
	if err != nil {
		return nil, err
	}

	product, err := dose.textAt(keyProduct)
	if err != nil {
		return nil, err
	}

	return &entity.Certificate{
		FirstName:                   firstName,
		LastName:                    lastName,
		BirthDate:                   birthDate,
		DoseNumber:                  doseNumber,
		ExpectedDosesToDo:           totalDoses,
		VaccineName:                 entity.VaccineName(product),
		LastDoseTimestamp:           timestamp,
		StandardExpiration:          addMonths(last, standardValidityMonths),
		ExpirationIfPatientGotCovid: addMonths(last, recoveredValidityMonths),
	}, nil
}
