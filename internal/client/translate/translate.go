// Package translate turns raw provider error text into the Portuguese
// messages shown to the user.
package translate

import "strings"

// Context selects the fallback message when no keyword group matches.
type Context int

const (
	Login Context = iota
	Signup
)

const (
	MsgWrongCredentials  = "E-mail ou senha incorretos."
	MsgEmailNotConfirmed = "E-mail ainda não confirmado. Verifique sua caixa de entrada."
	MsgInvalidEmail      = "E-mail inválido."
	MsgAlreadyRegistered = "E-mail já cadastrado."
	MsgTooManyAttempts   = "Muitas tentativas. Tente novamente em alguns instantes."
	MsgConnection        = "Falha de conexão. Verifique sua internet e tente novamente."
	MsgLoginFailed       = "Falha no login. Tente novamente."
	MsgSignupFailed      = "Falha no cadastro. Tente novamente."
)

type rule struct {
	match   func(msg string) bool
	message string
}

func anyOf(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}

func alreadyTaken(msg string) bool {
	if anyOf("already registered", "duplicate key value")(msg) {
		return true
	}
	return strings.Contains(msg, "already") && anyOf("registered", "exists", "taken", "used")(msg)
}

// rules are checked in order; the first match wins.
var rules = []rule{
	{anyOf("invalid login", "invalid credentials", "invalid email or password"), MsgWrongCredentials},
	{anyOf("email not confirmed"), MsgEmailNotConfirmed},
	{anyOf("invalid email"), MsgInvalidEmail},
	{alreadyTaken, MsgAlreadyRegistered},
	{anyOf("too many requests", "rate limit"), MsgTooManyAttempts},
	{anyOf("network", "fetch"), MsgConnection},
}

// Message maps raw to a user-facing message. It is total: any input,
// including the empty string, yields a non-empty result.
func Message(raw string, c Context) string {
	msg := strings.ToLower(raw)
	for _, r := range rules {
		if r.match(msg) {
			return r.message
		}
	}
	if c == Signup {
		return MsgSignupFailed
	}
	return MsgLoginFailed
}

// Error is Message over err.Error(); a nil error gets the fallback.
func Error(err error, c Context) string {
	if err == nil {
		return Message("", c)
	}
	return Message(err.Error(), c)
}

// IsEmailNotConfirmed reports whether err is the provider's
// unconfirmed-email rejection.
func IsEmailNotConfirmed(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "email not confirmed")
}
