package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wandersonmk/sistemasCadastro/internal/client/models"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
)

var errUsage = errors.New("usage")

func (a *App) renderList(ctx context.Context) {
	id := a.notifier.Loading("Carregando funcionários...")
	list, err := a.employeeService.FetchAll(ctx)
	a.notifier.Dismiss(id)
	if err != nil {
		a.notifier.Error(err.Error())
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Nenhum funcionário cadastrado.")
		return
	}
	fmt.Fprint(a.out, renderEmployees(list))
}

// List opens the home page, which lists every employee.
func (a *App) List(ctx context.Context) error {
	if !a.visit(ctx, common.PathHome) {
		return nil
	}
	a.renderList(ctx)
	return nil
}

func (a *App) Show(ctx context.Context, rawID string) error {
	if rawID == "" {
		fmt.Fprintln(a.out, "Uso: show <id>")
		return errUsage
	}
	if !a.visit(ctx, employeePath(rawID)) {
		return nil
	}

	e, err := a.employeeService.FetchByID(ctx, rawID)
	if err != nil {
		return err
	}
	if e == nil {
		if msg := a.employeeService.ErrorMessage(); msg != "" {
			a.notifier.Error(msg)
		} else {
			a.notifier.Warning("Funcionário não encontrado.")
		}
		return nil
	}
	fmt.Fprint(a.out, renderEmployee(e))
	return nil
}

// readForm asks for every field; current pre-fills the answers when editing.
func (a *App) readForm(current *models.Employee) (models.EmployeePayload, error) {
	if current == nil {
		current = &models.Employee{}
	}
	var (
		p   models.EmployeePayload
		err error
	)
	if p.Nome, err = GetWithDefault(a.reader, "Nome", current.Nome, a.out); err != nil {
		return p, err
	}
	if p.Cargo, err = GetWithDefault(a.reader, "Cargo", current.Cargo, a.out); err != nil {
		return p, err
	}
	endereco, err := GetWithDefault(a.reader, "Endereço (opcional, '-' para limpar)", orEmpty(current.Endereco), a.out)
	if err != nil {
		return p, err
	}
	email, err := GetWithDefault(a.reader, "E-mail (opcional, '-' para limpar)", orEmpty(current.Email), a.out)
	if err != nil {
		return p, err
	}
	if p.Salario, err = GetWithDefault(a.reader, "Salário", current.Salario, a.out); err != nil {
		return p, err
	}
	p.Endereco = optionalField(endereco)
	p.Email = optionalField(email)
	return p, nil
}

// optionalField maps "-" to an explicit clear of a nullable column.
func optionalField(v string) *string {
	if v == "-" {
		return nil
	}
	return models.Optional(v)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (a *App) Add(ctx context.Context) error {
	if !a.visit(ctx, "/funcionarios/novo") {
		return nil
	}

	p, err := a.readForm(nil)
	if err != nil {
		return err
	}

	e, err := a.employeeService.CreateOne(ctx, p)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	a.notifier.Success(fmt.Sprintf("Funcionário %s criado (id %s).", e.Nome, e.ID))
	return nil
}

func (a *App) Edit(ctx context.Context, rawID string) error {
	if rawID == "" {
		fmt.Fprintln(a.out, "Uso: edit <id>")
		return errUsage
	}
	if !a.visit(ctx, employeePath(rawID)+"/editar") {
		return nil
	}

	current, err := a.employeeService.FetchByID(ctx, rawID)
	if err != nil {
		return err
	}
	if current == nil {
		a.notifier.Warning("Funcionário não encontrado.")
		return nil
	}

	p, err := a.readForm(current)
	if err != nil {
		return err
	}

	e, err := a.employeeService.UpdateOne(ctx, rawID, p)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	a.notifier.Success(fmt.Sprintf("Funcionário %s atualizado.", e.Nome))
	return nil
}

func (a *App) Delete(ctx context.Context, rawID string) error {
	if rawID == "" {
		fmt.Fprintln(a.out, "Uso: delete <id>")
		return errUsage
	}
	if !a.visit(ctx, employeePath(rawID)) {
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Excluir o funcionário %s? (s/N)", rawID), a.out)
	if err != nil {
		return err
	}
	if answer != "s" && answer != "S" {
		fmt.Fprintln(a.out, "Cancelado.")
		return nil
	}

	if err := a.employeeService.DeleteOne(ctx, rawID); err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	a.notifier.Success("Funcionário excluído.")
	return nil
}
