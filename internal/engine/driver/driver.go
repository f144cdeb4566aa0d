// Package driver builds third-party dependencies by driving the external build tool.
package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options control a single dependency build.
type Options struct {
	// Cleanup removes the build directory after a successful install.
	Cleanup bool
	// Optional skips the dependency when its CMakeLists.txt is missing.
	Optional bool
}

// AllOptions control a build of the whole catalog.
type AllOptions struct {
	// Cleanup removes each build directory after a successful install.
	Cleanup bool
	// KeepGoing continues past failed optional dependencies.
	KeepGoing bool
}

// Driver configures, builds and installs catalog dependencies one at a time.
type Driver struct {
	settings  *domain.Settings
	layout    domain.Layout
	executor  ports.Executor
	logger    ports.Logger
	telemetry ports.Telemetry
	ledger    ports.InstallLedger
	now       func() time.Time
	removeAll func(string) error
}

// New creates a new Driver.
func New(
	settings *domain.Settings,
	executor ports.Executor,
	logger ports.Logger,
	telemetry ports.Telemetry,
	ledger ports.InstallLedger,
) *Driver {
	return &Driver{
		settings:  settings,
		layout:    domain.NewLayout(settings),
		executor:  executor,
		logger:    logger,
		telemetry: telemetry,
		ledger:    ledger,
		now:       time.Now,
		removeAll: os.RemoveAll,
	}
}

// Layout returns the layout the driver resolves paths against.
func (d *Driver) Layout() domain.Layout {
	return d.layout
}

// BuildOne configures, builds and installs the dependency called name.
func (d *Driver) BuildOne(ctx context.Context, name string, opts Options) (domain.Result, error) {
	dep, err := Lookup(name)
	if err != nil {
		return domain.Result{Dependency: name, Status: domain.StatusFailed}, err
	}
	return d.build(ctx, dep, opts)
}

// BuildAll builds every catalog dependency in order, treating non-required ones as optional.
//
// The first failure stops the run unless opts.KeepGoing is set, in which case failed
// optional dependencies are recorded and the run continues. A required failure always stops it.
func (d *Driver) BuildAll(ctx context.Context, opts AllOptions) ([]domain.Result, error) {
	catalog := Catalog()
	results := make([]domain.Result, 0, len(catalog))
	var optionalErrs []error

	for _, dep := range catalog {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := d.build(ctx, dep, Options{Cleanup: opts.Cleanup, Optional: !dep.Required})
		results = append(results, res)
		if err == nil {
			continue
		}

		if !opts.KeepGoing || dep.Required || ctx.Err() != nil {
			return results, err
		}

		d.logger.Error(err)
		d.logger.Warn(fmt.Sprintf("%s failed, continuing", dep.Name))
		optionalErrs = append(optionalErrs, err)
	}

	if len(optionalErrs) > 0 {
		return results, errors.Join(append([]error{domain.ErrOptionalBuildsFailed}, optionalErrs...)...)
	}
	return results, nil
}

func (d *Driver) build(ctx context.Context, dep domain.Dependency, opts Options) (res domain.Result, err error) {
	buildDir := d.layout.BuildDir(dep)
	res = domain.Result{Dependency: dep.Name, BuildDir: buildDir}

	ctx, vertex := d.telemetry.Record(ctx, dep.Name)
	defer func() {
		if err != nil {
			res.Status = domain.StatusFailed
			vertex.Log(domain.LogLevelError, err.Error())
		}
		vertex.Complete(err)
	}()

	if opts.Optional {
		descriptor := d.layout.DescriptorPath(dep)
		if _, statErr := os.Stat(descriptor); statErr != nil {
			msg := descriptor + " not found, skipping"
			d.logger.Info(msg)
			vertex.Log(domain.LogLevelWarn, msg)
			vertex.Cached()
			res.Status = domain.StatusSkipped
			return res, nil
		}
	}

	if err := os.MkdirAll(buildDir, 0o750); err != nil {
		return res, zerr.With(errors.Join(domain.ErrBuildDirFailed, err), "path", buildDir)
	}

	plan := Plan(d.layout, d.settings, dep)
	for i := range plan {
		inv := &plan[i]
		msg := fmt.Sprintf("%s %s: %s", inv.Phase, dep.Name, strings.Join(inv.Args, " "))
		d.logger.Info(msg)
		vertex.Log(domain.LogLevelInfo, msg)

		if err := d.executor.Execute(ctx, inv); err != nil {
			err = zerr.Wrap(err, string(inv.Phase)+" step failed")
			err = zerr.With(err, "dependency", dep.Name)
			err = zerr.With(err, "args", inv.Args)
			return res, errors.Join(domain.ErrInvocationFailed, err)
		}
	}

	record := domain.InstallRecord{
		Dependency:    dep.Name,
		Fingerprint:   Fingerprint(plan[0].Args),
		InstallPrefix: d.layout.InstallPrefix(),
		InstalledAt:   d.now().UTC(),
	}
	if err := d.ledger.Put(record); err != nil {
		return res, zerr.With(zerr.Wrap(err, "failed to record install"), "dependency", dep.Name)
	}

	if opts.Cleanup {
		if err := d.removeAll(buildDir); err != nil {
			return res, zerr.With(errors.Join(domain.ErrCleanupFailed, err), "path", buildDir)
		}
		res.CleanedUp = true
	}

	res.Status = domain.StatusBuilt
	return res, nil
}
