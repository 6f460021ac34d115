// Package models holds the client-side data shapes exchanged with the
// provider: employee rows and the payloads used to create or change them.
package models

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidID is returned by ParseID for anything that is not a finite
// integral number.
var ErrInvalidID = errors.New("invalid employee id")

// ID is the provider-assigned employee identifier. It decodes from JSON
// numbers and from numeric strings alike, so two IDs compare equal whenever
// they are numerically equal regardless of how the provider encoded them.
type ID int64

// maxExactFloat is the largest magnitude a float64 holds without losing
// integer precision (2^53).
const maxExactFloat = 1 << 53

// ParseID converts an identifier as received from the user (a CLI argument or
// a route parameter) into an ID. Decimal integers are parsed exactly; an
// integral decimal float ("3.0", "1e3") is accepted only while it is exact.
func ParseID(raw string) (ID, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidID
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(n), nil
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && strings.ContainsAny(unsigned[1:2], "xXbBoO") {
		return 0, ErrInvalidID
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidID
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return 0, ErrInvalidID
	}
	return ID(f), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	v, err := ParseID(string(b))
	if err != nil {
		return fmt.Errorf("decode id %q: %w", string(b), err)
	}
	*id = v
	return nil
}

// Employee is one row of the funcionarios table. Salario is kept as the
// provider returns numeric columns: a decimal string.
type Employee struct {
	ID       ID      `json:"id"`
	Nome     string  `json:"nome"`
	Cargo    string  `json:"cargo"`
	Endereco *string `json:"endereco"`
	Email    *string `json:"email"`
	Salario  string  `json:"salario"`
}

// EmployeePayload is the writable part of an Employee. Optional fields left
// nil are sent as JSON null.
type EmployeePayload struct {
	Nome     string  `json:"nome"`
	Cargo    string  `json:"cargo"`
	Endereco *string `json:"endereco"`
	Email    *string `json:"email"`
	Salario  string  `json:"salario"`
}

// Validate reports the first missing required field.
func (p EmployeePayload) Validate() error {
	switch {
	case strings.TrimSpace(p.Nome) == "":
		return errors.New("nome é obrigatório")
	case strings.TrimSpace(p.Cargo) == "":
		return errors.New("cargo é obrigatório")
	case strings.TrimSpace(p.Salario) == "":
		return errors.New("salario é obrigatório")
	}
	return nil
}

// Optional turns an empty string into nil, the way form inputs map to
// nullable columns.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
