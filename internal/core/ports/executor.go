// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/depbuild/internal/core/domain"
)

// Executor defines the interface for running external tool invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and blocks until it exits.
	//
	// It returns an error if the process cannot be started or exits with a non-zero status.
	Execute(ctx context.Context, inv *domain.Invocation) error
}
