package cli

import (
	"context"
	"fmt"

	"github.com/wandersonmk/sistemasCadastro/internal/client/toast"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func toastHint(s string) toast.Options {
	return toast.Options{Description: s}
}

func (a *App) readCredentials() (string, string, error) {
	email, err := getSimpleText(a.reader, "E-mail", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// Login opens the login page and, when the guard lets it render, signs in.
func (a *App) Login(ctx context.Context) error {
	if !a.visit(ctx, common.PathLogin) {
		return nil
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	id := a.notifier.Loading("Entrando...")
	u, err := a.authService.Login(ctx, email, password)
	a.notifier.Dismiss(id)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}

	a.notifier.Success(fmt.Sprintf("Bem-vindo, %s!", u.Email))
	return a.List(ctx)
}

// Signup creates an account from the login page and moves to /obrigado.
func (a *App) Signup(ctx context.Context) error {
	if !a.visit(ctx, common.PathLogin) {
		return nil
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	id := a.notifier.Loading("Criando conta...")
	res, err := a.authService.Signup(ctx, email, password)
	a.notifier.Dismiss(id)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}

	a.visit(ctx, common.PathObrigado)
	if res.Session == nil {
		a.notifier.Success("Cadastro realizado!", toastHint("confirme seu e-mail se necessário"))
	} else {
		a.notifier.Success("Cadastro realizado!")
	}
	return nil
}

// Logout never fails; the user always ends up on the login page.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.notifier.Info("Sessão encerrada.")
	a.visit(ctx, common.PathLogin)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.state.User()
	if u == nil {
		fmt.Fprintln(a.out, "Não conectado.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", u.Email, u.ID)
	return nil
}
