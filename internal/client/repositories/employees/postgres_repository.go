package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wandersonmk/sistemasCadastro/internal/client/client"
	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
	"github.com/wandersonmk/sistemasCadastro/internal/dbx"
)

const columns = `id, nome, cargo, endereco, email, salario::text`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*models.Employee, error) {
	e := &models.Employee{}
	if err := s.Scan(&e.ID, &e.Nome, &e.Cargo, &e.Endereco, &e.Email, &e.Salario); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository) Query(ctx context.Context) ([]models.Employee, error) {
	query := `SELECT ` + columns + ` FROM funcionarios ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) single(ctx context.Context, query string, args ...any) (*models.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, client.ErrNoRows
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) QueryByID(ctx context.Context, id models.ID) (*models.Employee, error) {
	query := `SELECT ` + columns + ` FROM funcionarios WHERE id = $1`
	return r.single(ctx, query, int64(id))
}

func (r *PostgresRepository) Insert(ctx context.Context, p models.EmployeePayload) (*models.Employee, error) {
	query :=
		`INSERT INTO funcionarios (nome, cargo, endereco, email, salario)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + columns

	return r.single(ctx, query, p.Nome, p.Cargo, p.Endereco, p.Email, p.Salario)
}

func (r *PostgresRepository) Update(ctx context.Context, id models.ID, p models.EmployeePayload) (*models.Employee, error) {
	query :=
		`UPDATE funcionarios
		 SET nome = $2, cargo = $3, endereco = $4, email = $5, salario = $6
		 WHERE id = $1
		 RETURNING ` + columns

	return r.single(ctx, query, int64(id), p.Nome, p.Cargo, p.Endereco, p.Email, p.Salario)
}

// Delete succeeds when nothing matched, like a filtered DELETE on the REST
// gateway.
func (r *PostgresRepository) Delete(ctx context.Context, id models.ID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM funcionarios WHERE id = $1`, int64(id)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
