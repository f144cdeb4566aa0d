package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownDependency is returned when a package name is neither "all" nor in the catalog.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrInvocationFailed is returned when the build tool exits with a non-zero status.
	ErrInvocationFailed = zerr.New("build tool invocation failed")

	// ErrBuildDirFailed is returned when the per-dependency build directory cannot be created.
	ErrBuildDirFailed = zerr.New("failed to create build directory")

	// ErrCleanupFailed is returned when the build directory cannot be removed after a build.
	ErrCleanupFailed = zerr.New("failed to remove build directory")

	// ErrOptionalBuildsFailed is returned in keep-going mode when optional dependencies failed.
	ErrOptionalBuildsFailed = zerr.New("one or more optional dependencies failed to build")

	// ErrBuildFailed is returned by the application when a build run did not succeed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrConfigReadFailed is returned when a settings file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings")

	// ErrConfigParseFailed is returned when depbuild.yaml is malformed.
	ErrConfigParseFailed = zerr.New("failed to parse settings")

	// ErrInvalidSettings is returned when resolved settings are unusable.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrLedgerReadFailed is returned when the install ledger cannot be read.
	ErrLedgerReadFailed = zerr.New("failed to read install ledger")

	// ErrLedgerWriteFailed is returned when the install ledger cannot be written.
	ErrLedgerWriteFailed = zerr.New("failed to write install ledger")
)
