package ports

import "go.trai.ch/depbuild/internal/core/domain"

// InstallLedger records which dependencies were installed and with which configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks
type InstallLedger interface {
	// Get retrieves the install record for a dependency.
	// Returns nil, nil if not found.
	Get(dependency string) (*domain.InstallRecord, error)

	// Put stores the install record, replacing any previous one.
	Put(record domain.InstallRecord) error
}
