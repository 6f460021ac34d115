package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
)

func emp(id models.ID, nome string) models.Employee {
	return models.Employee{ID: id, Nome: nome, Cargo: "Dev", Salario: "1000.00"}
}

func nomes(list []models.Employee) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Nome
	}
	return out
}

func payload(nome string) models.EmployeePayload {
	return models.EmployeePayload{Nome: nome, Cargo: "Dev", Salario: "1000"}
}

func TestFetchAll_SortsByNomeInPortuguese(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{
		emp(1, "Óscar"), emp(2, "bruno"), emp(3, "Ana"), emp(4, "ana"), emp(5, "Anã"), emp(6, "Zé"), emp(7, "Ângela"),
	}}
	svc := NewEmployeeService(fs, nil)

	got, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	want := []string{"Ana", "ana", "Anã", "Ângela", "bruno", "Óscar", "Zé"}
	if diff := cmp.Diff(want, nomes(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, got, svc.Employees())
	assert.False(t, svc.Loading())
}

func TestFetchAll_ReplacesCacheWholesale(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{emp(1, "Ana")}}
	svc := NewEmployeeService(fs, nil)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	fs.rows = []models.Employee{emp(2, "Bruno")}
	_, err = svc.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bruno"}, nomes(svc.Employees()))
}

func TestFetchAll_Failure(t *testing.T) {
	fs := &fakeStore{QueryErr: errors.New("permission denied")}
	svc := NewEmployeeService(fs, nil)

	_, err := svc.FetchAll(context.Background())
	require.ErrorIs(t, err, common.ErrTranslatableRemote)
	assert.Equal(t, MsgFetchAllFailed, err.Error())
	assert.Equal(t, MsgFetchAllFailed, svc.ErrorMessage())
}

func TestEmployees_ReturnsCopy(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{emp(1, "Ana")}}
	svc := NewEmployeeService(fs, nil)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	list := svc.Employees()
	list[0].Nome = "changed"
	assert.Equal(t, "Ana", svc.Employees()[0].Nome)
}

func TestFetchByID(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{emp(1, "Carla"), emp(2, "Ana")}}
	svc := NewEmployeeService(fs, nil)

	row, err := svc.FetchByID(context.Background(), "2")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Ana", row.Nome)

	_, err = svc.FetchByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Carla"}, nomes(svc.Employees()), "upserted and sorted")

	fs.rows[0].Nome = "Beatriz"
	_, err = svc.FetchByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Beatriz"}, nomes(svc.Employees()), "replaced, not duplicated")
}

func TestFetchByID_InvalidIDNeverCallsStore(t *testing.T) {
	fs := &fakeStore{}
	svc := NewEmployeeService(fs, nil)

	for _, raw := range []string{"", "abc", "NaN", "Inf", "1.5"} {
		row, err := svc.FetchByID(context.Background(), raw)
		assert.NoError(t, err, raw)
		assert.Nil(t, row, raw)
	}
	assert.Zero(t, fs.count())
}

// FetchByID deliberately swallows failures, unlike its siblings.
func TestFetchByID_FailureReturnsNilAndRecordsMessage(t *testing.T) {
	fs := &fakeStore{ByIDErr: errors.New("boom")}
	svc := NewEmployeeService(fs, nil)

	row, err := svc.FetchByID(context.Background(), "1")
	assert.NoError(t, err)
	assert.Nil(t, row)
	assert.Equal(t, MsgFetchFailed, svc.ErrorMessage())
}

func TestFetchByID_Missing(t *testing.T) {
	svc := NewEmployeeService(&fakeStore{}, nil)

	row, err := svc.FetchByID(context.Background(), "42")
	assert.NoError(t, err)
	assert.Nil(t, row)
	assert.Empty(t, svc.ErrorMessage())
}

func TestCreateOne_UsesCanonicalRow(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{emp(1, "Carla")}, Salario: "1500.00"}
	svc := NewEmployeeService(fs, nil)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	row, err := svc.CreateOne(context.Background(), payload("Ana"))
	require.NoError(t, err)
	assert.Equal(t, models.ID(101), row.ID, "id assigned by the store")
	assert.Equal(t, "1500.00", row.Salario)
	assert.Nil(t, row.Endereco)
	assert.Nil(t, row.Email)

	assert.Equal(t, []string{"Ana", "Carla"}, nomes(svc.Employees()))
	assert.Equal(t, "1500.00", svc.Employees()[0].Salario)
}

func TestCreateOne_ValidationBeforeRemote(t *testing.T) {
	fs := &fakeStore{}
	svc := NewEmployeeService(fs, nil)

	_, err := svc.CreateOne(context.Background(), models.EmployeePayload{Nome: "Ana"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, fs.count())
	assert.NotEmpty(t, svc.ErrorMessage())
}

func TestCreateOne_FailureIsNotTranslated(t *testing.T) {
	fs := &fakeStore{InsertErr: errors.New("duplicate key value violates unique constraint")}
	svc := NewEmployeeService(fs, nil)

	_, err := svc.CreateOne(context.Background(), payload("Ana"))
	require.ErrorIs(t, err, common.ErrTranslatableRemote)
	assert.Equal(t, MsgCreateFailed, err.Error())
	assert.Equal(t, MsgCreateFailed, svc.ErrorMessage())
	assert.Empty(t, svc.Employees())
}

func TestUpdateOne_ReplacesInPlaceAndResorts(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{emp(1, "Ana"), emp(2, "Bruno")}}
	svc := NewEmployeeService(fs, nil)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	row, err := svc.UpdateOne(context.Background(), "1", payload("Zuleica"))
	require.NoError(t, err)
	assert.Equal(t, models.ID(1), row.ID)

	got := svc.Employees()
	assert.Equal(t, []string{"Bruno", "Zuleica"}, nomes(got))
	assert.Len(t, got, 2)
}

func TestUpdateOne_AppendsWhenNotCached(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{emp(7, "Bruno")}}
	svc := NewEmployeeService(fs, nil)

	_, err := svc.UpdateOne(context.Background(), " 7 ", payload("Ana"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, nomes(svc.Employees()))
}

func TestUpdateOne_InvalidID(t *testing.T) {
	fs := &fakeStore{}
	svc := NewEmployeeService(fs, nil)

	for _, raw := range []string{"abc", "NaN", ""} {
		_, err := svc.UpdateOne(context.Background(), raw, payload("Ana"))
		require.ErrorIs(t, err, common.ErrValidation)
	}
	assert.Zero(t, fs.count())
}

func TestUpdateOne_Failure(t *testing.T) {
	svc := NewEmployeeService(&fakeStore{UpdateErr: errors.New("boom")}, nil)

	_, err := svc.UpdateOne(context.Background(), "1", payload("Ana"))
	assert.EqualError(t, err, MsgUpdateFailed)
	assert.Equal(t, MsgUpdateFailed, svc.ErrorMessage())
}

func TestDeleteOne_RemovesEveryMatchRegardlessOfEncoding(t *testing.T) {
	var rows []models.Employee
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": "3", "nome": "Carla", "cargo": "Dev", "salario": "1"},
		{"id": 1, "nome": "Ana", "cargo": "Dev", "salario": "1"},
		{"id": 3, "nome": "Carla bis", "cargo": "Dev", "salario": "1"}
	]`), &rows))

	fs := &fakeStore{rows: rows}
	svc := NewEmployeeService(fs, nil)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, svc.Employees(), 3)

	require.NoError(t, svc.DeleteOne(context.Background(), "3"))
	assert.Equal(t, []string{"Ana"}, nomes(svc.Employees()))
}

func TestDeleteOne_InvalidID(t *testing.T) {
	fs := &fakeStore{}
	svc := NewEmployeeService(fs, nil)

	err := svc.DeleteOne(context.Background(), "x1")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, MsgInvalidID, svc.ErrorMessage())
	assert.Zero(t, fs.count())
}

func TestDeleteOne_FailureKeepsCache(t *testing.T) {
	fs := &fakeStore{rows: []models.Employee{emp(1, "Ana")}}
	svc := NewEmployeeService(fs, nil)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	fs.DeleteErr = errors.New("boom")
	err = svc.DeleteOne(context.Background(), "1")
	assert.EqualError(t, err, MsgDeleteFailed)
	assert.Len(t, svc.Employees(), 1)
}

func TestMutations_KeepCacheSorted(t *testing.T) {
	fs := &fakeStore{}
	svc := NewEmployeeService(fs, nil)
	ctx := context.Background()

	for _, n := range []string{"Marta", "álvaro", "Bia", "Ygor", "carlos"} {
		_, err := svc.CreateOne(ctx, payload(n))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"álvaro", "Bia", "carlos", "Marta", "Ygor"}, nomes(svc.Employees()))

	_, err := svc.UpdateOne(ctx, "101", payload("Ana"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOne(ctx, "102"))
	assert.Equal(t, []string{"Ana", "Bia", "carlos", "Ygor"}, nomes(svc.Employees()))
}
