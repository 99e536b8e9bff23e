//go:build tools
// +build tools

// Package tools pins the versions of development binaries in go.mod:
// linting, mock and query generation, API docs, migrations and benchmark
// comparison. Install with `go install <path>`.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
