// Package app implements the application layer for depbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.trai.ch/depbuild/internal/adapters/cas" //nolint:depguard // Wired in app layer
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/depbuild/internal/engine/driver"
	"go.trai.ch/zerr"
)

// LedgerOpener opens the install ledger stored at path.
type LedgerOpener func(path string) (ports.InstallLedger, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	telemetry    ports.Telemetry
	openLedger   LedgerOpener
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       logger,
		telemetry:    telemetry,
		openLedger:   openStore,
	}
}

// WithLedgerOpener replaces the function used to open the install ledger.
func (a *App) WithLedgerOpener(open LedgerOpener) *App {
	a.openLedger = open
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Root is the project root. Relative paths are resolved against the working directory.
	Root string
	// Cleanup removes build directories after successful installs.
	Cleanup bool
	// KeepGoing continues past failed optional dependencies when building all.
	KeepGoing bool
}

// Run builds pkg, which is either a catalog name or "all".
func (a *App) Run(ctx context.Context, pkg string, opts RunOptions) error {
	// 1. Validate the package before touching the filesystem
	if pkg != domain.AllPackages {
		if _, err := driver.Lookup(pkg); err != nil {
			return err
		}
	}

	// 2. Resolve settings and open the ledger
	drv, err := a.newDriver(opts.Root)
	if err != nil {
		return err
	}

	// 3. Build
	var results []domain.Result
	if pkg == domain.AllPackages {
		results, err = drv.BuildAll(ctx, driver.AllOptions{
			Cleanup:   opts.Cleanup,
			KeepGoing: opts.KeepGoing,
		})
	} else {
		var res domain.Result
		res, err = drv.BuildOne(ctx, pkg, driver.Options{Cleanup: opts.Cleanup})
		results = append(results, res)
	}

	a.summarize(results)

	if err != nil {
		return zerr.With(errors.Join(domain.ErrBuildFailed, err), "package", pkg)
	}
	return nil
}

// CatalogEntry describes a catalog dependency and its state in a project.
type CatalogEntry struct {
	Dependency domain.Dependency
	// SourcePresent reports whether the CMakeLists.txt exists.
	SourcePresent bool
	// Installed is the last install record, or nil if the dependency was never installed.
	Installed *domain.InstallRecord
}

// List returns the catalog joined with the project's install ledger.
func (a *App) List(root string) ([]CatalogEntry, error) {
	settings, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	layout := domain.NewLayout(settings)
	ledger, err := a.openLedger(layout.LedgerPath())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open install ledger")
	}

	catalog := driver.Catalog()
	entries := make([]CatalogEntry, 0, len(catalog))
	for _, dep := range catalog {
		record, err := ledger.Get(dep.Name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read install record"), "dependency", dep.Name)
		}
		_, statErr := os.Stat(layout.DescriptorPath(dep))
		entries = append(entries, CatalogEntry{
			Dependency:    dep,
			SourcePresent: statErr == nil,
			Installed:     record,
		})
	}
	return entries, nil
}

func (a *App) newDriver(root string) (*driver.Driver, error) {
	settings, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	ledger, err := a.openLedger(domain.NewLayout(settings).LedgerPath())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open install ledger")
	}

	return driver.New(settings, a.executor, a.logger, a.telemetry, ledger), nil
}

func (a *App) summarize(results []domain.Result) {
	for _, res := range results {
		msg := fmt.Sprintf("%s: %s", res.Dependency, res.Status)
		if res.CleanedUp {
			msg += " (build directory removed)"
		}
		if res.Status == domain.StatusFailed {
			a.logger.Warn(msg)
			continue
		}
		a.logger.Info(msg)
	}

	if s := a.telemetry.Summary(); s.Total > 0 {
		a.logger.Info(fmt.Sprintf("%d recorded: %d built, %d skipped, %d failed in %s",
			s.Total, s.Succeeded(), s.Cached, s.Errored, s.Duration.Round(time.Millisecond)))
	}
}

func openStore(path string) (ports.InstallLedger, error) {
	store, err := cas.NewStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
