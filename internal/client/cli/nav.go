package cli

import (
	"context"
	"fmt"

	"github.com/wandersonmk/sistemasCadastro/internal/common"
)

// visit runs the route guard for path. It reports whether the caller may
// render path; on a redirect the current route becomes the redirect target
// and the user is told why.
func (a *App) visit(ctx context.Context, path string) bool {
	d := a.guard.Check(ctx, path)
	if d.Allowed() {
		a.route = path
		return true
	}

	a.route = d.Redirect
	switch d.Redirect {
	case common.PathLogin:
		a.notifier.Info("Faça login para continuar.", toastHint("digite 'login' ou 'signup'"))
	case common.PathHome:
		a.notifier.Info("Você já está conectado.")
		a.renderList(ctx)
	}
	return false
}

func employeePath(id string) string {
	return fmt.Sprintf("/funcionarios/%s", id)
}
