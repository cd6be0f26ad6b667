// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Help(t *testing.T) {
	c := newTestClient(t, &fakeServer{})

	out, err := c.run("--help")
	require.NoError(t, err)

	for _, sub := range []string{"register", "login", "logout", "whoami", "expense", "income", "dashboard", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootCommand_VersionFlag(t *testing.T) {
	c := newTestClient(t, &fakeServer{})

	out, err := c.run("--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3 (abc123, 2026-10-01)")
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	root := NewRootCommand(nil, models.AppBuildInfo{})

	for _, name := range []string{"server", "timeout", "config"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCommand_ServerFlagReachesAdapter(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIENT_TOKEN_PATH", filepath.Join(dir, "token"))
	t.Setenv("CLIENT_LOG_PATH", filepath.Join(dir, "client.log"))

	var got config.Adapter
	root := NewRootCommand(func(cfg config.Adapter, _ *logger.Logger) (adapter.ServerAdapter, error) {
		got = cfg
		return &fakeServer{version: "1.0.0"}, nil
	}, models.AppBuildInfo{})
	root.SetArgs([]string{"--server", "http://fin.example:9000", "--timeout", "3s", "version"})
	root.SetOut(new(nopWriter))

	require.NoError(t, root.Execute())
	assert.Equal(t, "http://fin.example:9000", got.HTTPAddress)
	assert.Equal(t, "3s", got.RequestTimeout.String())
}

func TestRootCommand_AdapterError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIENT_TOKEN_PATH", filepath.Join(dir, "token"))
	t.Setenv("CLIENT_LOG_PATH", filepath.Join(dir, "client.log"))

	boom := errors.New("boom")
	root := NewRootCommand(func(config.Adapter, *logger.Logger) (adapter.ServerAdapter, error) {
		return nil, boom
	}, models.AppBuildInfo{})
	root.SetArgs([]string{"whoami"})

	assert.ErrorIs(t, root.Execute(), boom)
}

func TestVersion(t *testing.T) {
	c := newTestClient(t, &fakeServer{version: "2.0.0"})

	out, err := c.run("version")
	require.NoError(t, err)

	assert.Contains(t, out, "Client version: 1.2.3")
	assert.Contains(t, out, "Server version: 2.0.0")
}

func TestVersion_ServerDown(t *testing.T) {
	c := newTestClient(t, &fakeServer{err: adapter.ErrServerUnavailable})

	out, err := c.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "Server version: N/A")
}

func TestTokenStore(t *testing.T) {
	store := newTokenStore(filepath.Join(t.TempDir(), "nested", "token"))

	_, err := store.Load()
	assert.ErrorIs(t, err, errNoSavedToken)

	require.NoError(t, store.Save("abc"))
	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, errNoSavedToken)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
