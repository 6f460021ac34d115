// Package cli provides the interactive client for the employee registry.
//
// Every command is a navigation to one of the application's pages. The
// route guard decides whether it may proceed: signed-out users are sent to
// /login, signed-in users asking for /login are sent to the list at /, and
// /obrigado (shown after sign-up) is always reachable.
//
// Commands:
//   - login, signup, logout, whoami
//   - list (l), show <id>, add, edit <id>, delete <id>
//   - help, exit (quit)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
