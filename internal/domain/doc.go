// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo).
// This root package holds sentinel errors and the typed validation and
// not-found errors that the HTTP boundary translates into responses.
package domain
