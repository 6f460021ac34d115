// Package config loads runtime configuration for the interactive client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (".env", or the path given with -env) seeding the
//     environment without overriding variables already set.
//  3. Environment variables (see parseEnv).
//  4. Optional JSON file selected via -c or -config.
//  5. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u string   provider base URL
//	-k string   provider public (anon) key
//	-a string   base URL of the admin endpoints server
//	-d string   PostgreSQL DSN; when set, employees are read from the database directly
//	-m bool     run database migrations on start
//	-s string   file that keeps the session between runs
//	-p string   passphrase encrypting the session file (SESSION_KEY)
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "provider_url": "https://xyz.supabase.co",
//	  "provider_key": "anon-key",
//	  "admin_endpoint_url": "http://127.0.0.1:3000",
//	  "database_dsn": "postgres://...",
//	  "run_migrations": false,
//	  "session_file": "~/.cadastro/session.json",
//	  "session_key": "",
//	  "request_timeout": "30s",
//	  "log_level": "warn"
//	}
package config
