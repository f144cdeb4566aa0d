package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depbuild/internal/adapters/shell"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Phase: domain.PhaseBuild,
		Args:  []string{"sh", "-c", "echo line1; echo line2"},
		Dir:   t.TempDir(),
	}

	require.NoError(t, executor.Execute(context.Background(), inv))
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Args: []string{"sh", "-c", "printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	}

	require.NoError(t, executor.Execute(context.Background(), inv))
}

func TestExecutor_Execute_TrailingFragmentIsFlushed(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Args: []string{"sh", "-c", "printf 'no newline'"},
		Dir:  t.TempDir(),
	}

	require.NoError(t, executor.Execute(context.Background(), inv))
}

func TestExecutor_Execute_StderrIsWarn(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("CMake Warning").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Args: []string{"sh", "-c", "echo 'CMake Warning' >&2"},
		Dir:  t.TempDir(),
	}

	require.NoError(t, executor.Execute(context.Background(), inv))
}

func TestExecutor_Execute_RunsInWorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)

	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(resolved).Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Args: []string{"sh", "-c", "pwd -P"},
		Dir:  dir,
	}

	require.NoError(t, executor.Execute(context.Background(), inv))
}

func TestExecutor_Execute_ArgumentsAreNotSplit(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("1:/opt/my project/src").Times(1)

	executor := shell.NewExecutor(mockLogger)
	inv := &domain.Invocation{
		Args: []string{"sh", "-c", `echo "$#:$1"`, "sh", "/opt/my project/src"},
		Dir:  t.TempDir(),
	}

	require.NoError(t, executor.Execute(context.Background(), inv))
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	inv := &domain.Invocation{
		Args: []string{"sh", "-c", "exit 42"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), inv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")

	var ze *zerr.Error
	require.True(t, errors.As(err, &ze))
	assert.Equal(t, 42, ze.Metadata()["exit_code"])
	assert.Equal(t, "sh", ze.Metadata()["command"])
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	inv := &domain.Invocation{
		Args: []string{"nonexistent-command-xyz123"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), inv)
	require.Error(t, err)

	var ze *zerr.Error
	require.True(t, errors.As(err, &ze))
	assert.Equal(t, -1, ze.Metadata()["exit_code"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), &domain.Invocation{})
	require.NoError(t, err)
}

func TestExecutor_Execute_MissingWorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	inv := &domain.Invocation{
		Args: []string{"sh", "-c", "true"},
		Dir:  filepath.Join(t.TempDir(), "does-not-exist"),
	}

	require.Error(t, executor.Execute(context.Background(), inv))
}

func TestExecutor_Execute_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv := &domain.Invocation{
		Args: []string{"sh", "-c", "sleep 5"},
		Dir:  os.TempDir(),
	}

	require.Error(t, executor.Execute(ctx, inv))
}
