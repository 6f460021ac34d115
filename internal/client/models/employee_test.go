package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    ID
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: " 7 ", want: 7},
		{raw: "1e3", want: 1000},
		{raw: "-3", want: -3},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "Inf", wantErr: true},
		{raw: "-Infinity", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "1e400", wantErr: true},
		{raw: "3.0", want: 3},
		{raw: "9007199254740993", want: 9007199254740993},
		{raw: "9223372036854775807", want: math.MaxInt64},
		{raw: "9223372036854775808", wantErr: true},
		{raw: "1e17", wantErr: true},
		{raw: "0x1p3", wantErr: true},
		{raw: "-0X10", wantErr: true},
		{raw: "0x10", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmployee_DecodesNumericAndStringIDs(t *testing.T) {
	var rows []Employee
	body := `[
		{"id": 1, "nome": "Ana", "cargo": "Dev", "endereco": null, "email": "ana@x.com", "salario": "1000.50"},
		{"id": "2", "nome": "Bruno", "cargo": "QA", "salario": "900"}
	]`
	require.NoError(t, json.Unmarshal([]byte(body), &rows))

	require.Len(t, rows, 2)
	assert.Equal(t, ID(1), rows[0].ID)
	assert.Equal(t, ID(2), rows[1].ID)
	assert.Nil(t, rows[0].Endereco)
	require.NotNil(t, rows[0].Email)
	assert.Equal(t, "ana@x.com", *rows[0].Email)
	assert.Equal(t, "1000.50", rows[0].Salario)
}

func TestEmployee_DecodesLargeIDsExactly(t *testing.T) {
	var rows []Employee
	body := `[{"id": 9007199254740993, "nome": "Ana"}, {"id": "9007199254740995", "nome": "Bia"}]`
	require.NoError(t, json.Unmarshal([]byte(body), &rows))

	require.Len(t, rows, 2)
	assert.Equal(t, ID(9007199254740993), rows[0].ID)
	assert.Equal(t, ID(9007199254740995), rows[1].ID)
	assert.Equal(t, "9007199254740993", rows[0].ID.String())
}

func TestEmployee_RejectsNonNumericID(t *testing.T) {
	var e Employee
	err := json.Unmarshal([]byte(`{"id": "abc", "nome": "X"}`), &e)
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestEmployeePayload_EncodesMissingOptionalsAsNull(t *testing.T) {
	b, err := json.Marshal(EmployeePayload{Nome: "Ana", Cargo: "Dev", Salario: "10"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nome":"Ana","cargo":"Dev","endereco":null,"email":null,"salario":"10"}`, string(b))
}

func TestEmployeePayload_Validate(t *testing.T) {
	ok := EmployeePayload{Nome: "Ana", Cargo: "Dev", Salario: "10"}
	require.NoError(t, ok.Validate())

	missingNome := ok
	missingNome.Nome = "  "
	assert.EqualError(t, missingNome.Validate(), "nome é obrigatório")

	missingCargo := ok
	missingCargo.Cargo = ""
	assert.EqualError(t, missingCargo.Validate(), "cargo é obrigatório")

	missingSalario := ok
	missingSalario.Salario = ""
	assert.EqualError(t, missingSalario.Validate(), "salario é obrigatório")
}

func TestOptional(t *testing.T) {
	assert.Nil(t, Optional("   "))
	require.NotNil(t, Optional(" Rua A "))
	assert.Equal(t, "Rua A", *Optional(" Rua A "))
}
