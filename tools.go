//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (mocks for consumer-side interfaces, see go:generate lines)
// - github.com/pressly/goose/v3/cmd/goose (manual migration runs against internal/adapter/postgres/migrations)
