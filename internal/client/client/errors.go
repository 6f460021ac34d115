package client

import "errors"

// NotConfiguredMessage is the diagnostic surfaced when the provider URL or
// public key is missing.
const NotConfiguredMessage = "Supabase client não inicializado. Verifique as variáveis do .env e reinicie o servidor."

var (
	ErrNoRows = errors.New("no rows returned")
)
