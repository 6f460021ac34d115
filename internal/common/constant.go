package common

// Header names understood by the provider's REST gateway.
const (
	APIKeyHeaderName        = "apikey"
	AuthorizationHeaderName = "Authorization"
	PreferHeaderName        = "Prefer"
)

// Fixed navigation targets.
const (
	PathLogin    = "/login"
	PathHome     = "/"
	PathObrigado = "/obrigado"
)
