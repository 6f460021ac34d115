package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/wandersonmk/sistemasCadastro/internal/client/client"
	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
	"github.com/wandersonmk/sistemasCadastro/internal/logging"
)

const (
	MsgFetchAllFailed = "Falha ao buscar funcionários."
	MsgFetchFailed    = "Falha ao buscar funcionário."
	MsgCreateFailed   = "Falha ao criar funcionário."
	MsgUpdateFailed   = "Falha ao atualizar funcionário."
	MsgDeleteFailed   = "Falha ao excluir funcionário."
	MsgInvalidID      = "ID inválido."
)

// EmployeeService keeps a local copy of the funcionarios table, sorted by
// nome under pt-BR collation, in step with every remote operation.
//
// Concurrent calls are not queued: each one overwrites the shared loading
// flag and error message, and the last response to arrive wins in the cache.
type EmployeeService interface {
	FetchAll(ctx context.Context) ([]models.Employee, error)
	// FetchByID returns (nil, nil) for an invalid id, a missing row or a
	// remote failure; the failure is still recorded in ErrorMessage.
	FetchByID(ctx context.Context, rawID string) (*models.Employee, error)
	CreateOne(ctx context.Context, p models.EmployeePayload) (*models.Employee, error)
	UpdateOne(ctx context.Context, rawID string, p models.EmployeePayload) (*models.Employee, error)
	DeleteOne(ctx context.Context, rawID string) error

	// Employees returns a copy of the cache.
	Employees() []models.Employee
	Loading() bool
	ErrorMessage() string
}

type employeeService struct {
	status
	store client.EmployeeStore
	log   logging.Logger

	cacheMu sync.Mutex
	cache   []models.Employee
}

func NewEmployeeService(store client.EmployeeStore, log logging.Logger) EmployeeService {
	if log == nil {
		log = logging.Nop()
	}
	return &employeeService{store: store, log: log}
}

func (s *employeeService) Employees() []models.Employee {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return slices.Clone(s.cache)
}

// mutate applies fn to the cache and re-sorts it.
func (s *employeeService) mutate(fn func(list []models.Employee) []models.Employee) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache = fn(s.cache)
	models.SortByNome(s.cache)
}

func upsert(list []models.Employee, row models.Employee) []models.Employee {
	if i := slices.IndexFunc(list, func(e models.Employee) bool { return e.ID == row.ID }); i >= 0 {
		list[i] = row
		return list
	}
	return append(list, row)
}

func (s *employeeService) remoteFailure(ctx context.Context, msg string, err error) error {
	s.fail(msg)
	s.log.Error(ctx, msg, "error", err)
	return common.Remote(msg, err)
}

func (s *employeeService) invalidID() error {
	s.fail(MsgInvalidID)
	return common.Validation(MsgInvalidID)
}

func (s *employeeService) FetchAll(ctx context.Context) ([]models.Employee, error) {
	s.begin()
	defer s.end()

	rows, err := s.store.Query(ctx)
	if err != nil {
		return nil, s.remoteFailure(ctx, MsgFetchAllFailed, err)
	}

	rows = slices.Clone(rows)
	models.SortByNome(rows)
	s.mutate(func([]models.Employee) []models.Employee { return rows })
	return slices.Clone(rows), nil
}

func (s *employeeService) FetchByID(ctx context.Context, rawID string) (*models.Employee, error) {
	id, err := models.ParseID(rawID)
	if err != nil {
		return nil, nil
	}

	s.begin()
	defer s.end()

	row, err := s.store.QueryByID(ctx, id)
	if err != nil {
		if !errors.Is(err, client.ErrNoRows) {
			_ = s.remoteFailure(ctx, MsgFetchFailed, err)
		}
		return nil, nil
	}

	s.mutate(func(list []models.Employee) []models.Employee { return upsert(list, *row) })
	return row, nil
}

func (s *employeeService) CreateOne(ctx context.Context, p models.EmployeePayload) (*models.Employee, error) {
	s.begin()
	defer s.end()

	if err := p.Validate(); err != nil {
		s.fail(err.Error())
		return nil, common.Validation(err.Error())
	}

	row, err := s.store.Insert(ctx, p)
	if err != nil {
		return nil, s.remoteFailure(ctx, MsgCreateFailed, err)
	}

	s.mutate(func(list []models.Employee) []models.Employee { return append(list, *row) })
	s.log.Info(ctx, "employee created", "id", row.ID)
	return row, nil
}

func (s *employeeService) UpdateOne(ctx context.Context, rawID string, p models.EmployeePayload) (*models.Employee, error) {
	s.begin()
	defer s.end()

	id, err := models.ParseID(rawID)
	if err != nil {
		return nil, s.invalidID()
	}

	row, err := s.store.Update(ctx, id, p)
	if err != nil {
		return nil, s.remoteFailure(ctx, MsgUpdateFailed, err)
	}

	s.mutate(func(list []models.Employee) []models.Employee { return upsert(list, *row) })
	s.log.Info(ctx, "employee updated", "id", row.ID)
	return row, nil
}

func (s *employeeService) DeleteOne(ctx context.Context, rawID string) error {
	s.begin()
	defer s.end()

	id, err := models.ParseID(rawID)
	if err != nil {
		return s.invalidID()
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return s.remoteFailure(ctx, MsgDeleteFailed, err)
	}

	s.mutate(func(list []models.Employee) []models.Employee {
		return slices.DeleteFunc(list, func(e models.Employee) bool { return e.ID == id })
	})
	s.log.Info(ctx, "employee deleted", "id", id)
	return nil
}
