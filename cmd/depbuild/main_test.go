package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depbuild/internal/adapters/telemetry"
	"go.trai.ch/depbuild/internal/app"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller, loader *mocks.MockConfigLoader, logger *mocks.MockLogger) *app.Components {
	application := app.New(loader, mocks.NewMockExecutor(ctrl), logger, telemetry.NewNoOp())
	return app.NewComponents(application, logger, telemetry.NewNoOp())
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components := newComponents(ctrl, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))
	provider := func(_ context.Context) (*app.Components, error) {
		return components, nil
	}

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "depbuild version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_InvalidPackage verifies that an unknown package exits 1 before settings are loaded.
func TestRun_InvalidPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The loader has no expectations: loading settings would fail the test.
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)
	components := newComponents(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"boost"}, stdout, stderr, func(context.Context) (*app.Components, error) {
		return components, nil
	})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Empty(t, stdout.String())
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the build fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load("/src").Return(nil, domain.ErrConfigParseFailed)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})
	components := newComponents(ctrl, mockLoader, mockLogger)

	exitCode := run(context.Background(), []string{"--root", "/src", "eigen"}, new(bytes.Buffer), new(bytes.Buffer),
		func(context.Context) (*app.Components, error) {
			return components, nil
		})

	assert.Equal(t, 1, exitCode)
}
