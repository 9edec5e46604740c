package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/press/cmd/press/commands"
	"go.trai.ch/press/internal/app"
	"go.trai.ch/press/internal/build"
)

type mockApp struct {
	buildFunc func(ctx context.Context, req app.BuildRequest) error
	cleanFunc func(ctx context.Context, req app.CleanRequest) error
}

func (m *mockApp) Build(ctx context.Context, req app.BuildRequest) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, req)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, req app.CleanRequest) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, req)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildRequest
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, req app.BuildRequest) error {
				captured = req
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"build", "about", "archive",
			"--force", "--watch", "--jobs", "4",
			"--config", "site/press.yaml",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"about", "archive"}, captured.Targets)
		assert.True(t, captured.Force)
		assert.True(t, captured.Watch)
		assert.Equal(t, 4, captured.Jobs)
		assert.Equal(t, "site/press.yaml", captured.ConfigPath)
	})

	t.Run("builds everything with no targets", func(t *testing.T) {
		var captured app.BuildRequest

		mock := &mockApp{
			buildFunc: func(_ context.Context, req app.BuildRequest) error {
				captured = req
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, captured.Targets)
		assert.False(t, captured.Force)
		assert.Zero(t, captured.Jobs)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildRequest) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Clean(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.CleanRequest

		mock := &mockApp{
			cleanFunc: func(_ context.Context, req app.CleanRequest) error {
				captured = req
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"clean", "--output", "--config", "site/press.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, captured.Output)
		assert.False(t, captured.State)
		assert.Equal(t, "site/press.yaml", captured.ConfigPath)
	})

	t.Run("defaults to neither flag set", func(t *testing.T) {
		var captured app.CleanRequest

		mock := &mockApp{
			cleanFunc: func(_ context.Context, req app.CleanRequest) error {
				captured = req
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"clean"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, captured.Output)
		assert.False(t, captured.State)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			cleanFunc: func(_ context.Context, _ app.CleanRequest) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"clean", "stray"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
