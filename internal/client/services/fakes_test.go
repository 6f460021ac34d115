package services

import (
	"context"
	"sync"

	"github.com/wandersonmk/sistemasCadastro/internal/client/client"
	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
)

// ---- fake auth ----

type signInResult struct {
	Session *client.Session
	Err     error
}

// fakeAuth implements client.Auth. SignIn answers are consumed in order; the
// last one repeats.
type fakeAuth struct {
	SignInResults []signInResult

	SignUpRet *client.SignUpResult
	SignUpErr error

	SignOutErr error

	GetSessionRet *client.Session
	GetSessionErr error

	SignInCalls  int
	SignOutCalls int
	LastEmail    string
	LastPassword string

	// probe, when set, is sampled during SignIn into LoadingSeen.
	probe       func() bool
	LoadingSeen bool
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (*client.Session, error) {
	f.SignInCalls++
	f.LastEmail, f.LastPassword = email, password
	if f.probe != nil {
		f.LoadingSeen = f.probe()
	}
	if len(f.SignInResults) == 0 {
		return nil, nil
	}
	i := min(f.SignInCalls, len(f.SignInResults)) - 1
	r := f.SignInResults[i]
	return r.Session, r.Err
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password string) (*client.SignUpResult, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.SignUpRet, f.SignUpErr
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.SignOutCalls++
	return f.SignOutErr
}

func (f *fakeAuth) GetSession(ctx context.Context) (*client.Session, error) {
	return f.GetSessionRet, f.GetSessionErr
}

type fakeConfirmer struct {
	Err       error
	Calls     int
	LastEmail string
}

func (f *fakeConfirmer) ConfirmEmail(ctx context.Context, email string) error {
	f.Calls++
	f.LastEmail = email
	return f.Err
}

// ---- fake store ----

// fakeStore implements client.EmployeeStore over an in-memory table.
type fakeStore struct {
	mu     sync.Mutex
	rows   []models.Employee
	nextID models.ID

	QueryErr  error
	ByIDErr   error
	InsertErr error
	UpdateErr error
	DeleteErr error

	// Salario, when set, replaces the client value to mimic the provider's
	// canonical numeric formatting.
	Salario string

	Calls int
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}

func (f *fakeStore) Query(ctx context.Context) ([]models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	return append([]models.Employee(nil), f.rows...), nil
}

func (f *fakeStore) QueryByID(ctx context.Context, id models.ID) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.ByIDErr != nil {
		return nil, f.ByIDErr
	}
	for _, r := range f.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, client.ErrNoRows
}

func (f *fakeStore) row(id models.ID, p models.EmployeePayload) models.Employee {
	e := models.Employee{ID: id, Nome: p.Nome, Cargo: p.Cargo, Endereco: p.Endereco, Email: p.Email, Salario: p.Salario}
	if f.Salario != "" {
		e.Salario = f.Salario
	}
	return e
}

func (f *fakeStore) Insert(ctx context.Context, p models.EmployeePayload) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.InsertErr != nil {
		return nil, f.InsertErr
	}
	f.nextID++
	e := f.row(f.nextID+100, p)
	f.rows = append(f.rows, e)
	return &e, nil
}

func (f *fakeStore) Update(ctx context.Context, id models.ID, p models.EmployeePayload) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	for i, r := range f.rows {
		if r.ID == id {
			f.rows[i] = f.row(id, p)
			e := f.rows[i]
			return &e, nil
		}
	}
	return nil, client.ErrNoRows
}

func (f *fakeStore) Delete(ctx context.Context, id models.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	out := f.rows[:0]
	for _, r := range f.rows {
		if r.ID != id {
			out = append(out, r)
		}
	}
	f.rows = out
	return nil
}
