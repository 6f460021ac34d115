// Package guard decides whether a navigation may proceed based on the target
// path and the signed-in state.
package guard

import (
	"context"
	"strings"

	"github.com/wandersonmk/sistemasCadastro/internal/client/client"
	"github.com/wandersonmk/sistemasCadastro/internal/client/session"
	"github.com/wandersonmk/sistemasCadastro/internal/common"
	"github.com/wandersonmk/sistemasCadastro/internal/logging"
)

// Decision is the outcome of a navigation check. An empty Redirect means
// the navigation is allowed.
type Decision struct {
	Redirect string
}

var Allow = Decision{}

func RedirectTo(path string) Decision {
	return Decision{Redirect: path}
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

var (
	skipPrefixes = []string{
		"/_nuxt", "/__nuxt", "/__vite", "/vite", "/@vite", "/@id", "/@fs",
		"/favicon", "/robots.txt",
	}
	skipSuffixes = []string{".js", ".mjs", ".css", ".map", ".json"}
)

// Skip reports whether path is a bundler-internal or static asset path that
// never goes through the auth rules.
func Skip(path string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	for _, s := range skipSuffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}

// Decide applies the navigation rules in order.
func Decide(path string, authenticated bool) Decision {
	isLogin := path == common.PathLogin

	if isLogin && authenticated {
		return RedirectTo(common.PathHome)
	}
	if path == common.PathObrigado {
		return Allow
	}
	if !isLogin && !authenticated {
		return RedirectTo(common.PathLogin)
	}
	return Allow
}

type serverPassKey struct{}

// WithServerPass marks ctx as a server-side rendering pass, in which the
// guard does nothing.
func WithServerPass(ctx context.Context) context.Context {
	return context.WithValue(ctx, serverPassKey{}, true)
}

func isServerPass(ctx context.Context) bool {
	v, _ := ctx.Value(serverPassKey{}).(bool)
	return v
}

// Guard adapts Decide to the running client: it resolves the signed-in state
// from the session, falling back to the provider's persisted session.
type Guard struct {
	auth  client.Auth
	state *session.State
	log   logging.Logger
}

func New(auth client.Auth, state *session.State, log logging.Logger) *Guard {
	if log == nil {
		log = logging.Nop()
	}
	return &Guard{auth: auth, state: state, log: log}
}

func (g *Guard) Check(ctx context.Context, path string) Decision {
	if isServerPass(ctx) || Skip(path) {
		return Allow
	}
	return Decide(path, g.authenticated(ctx))
}

func (g *Guard) authenticated(ctx context.Context) bool {
	if g.state.IsAuthenticated() {
		return true
	}
	if g.auth == nil {
		return false
	}

	s, err := g.auth.GetSession(ctx)
	if err != nil {
		g.log.Debug(ctx, "no usable session", "error", err)
		return false
	}
	if s == nil || s.User == nil {
		return false
	}
	g.state.SetUser(s.User)
	return true
}
