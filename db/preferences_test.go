package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-healthwatch/config"
	"go-healthwatch/types"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferences(NewMemoryBackend())

	state, err := prefs.Load(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, types.PreferenceState{Theme: types.ThemeLight, Language: types.English}, state)

	state, err = prefs.Load(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeDark, state.Theme)
}

func TestStoredThemeOverridesHint(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferences(NewMemoryBackend())
	require.NoError(t, prefs.SetTheme(ctx, types.ThemeLight))

	state, err := prefs.Load(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeLight, state.Theme)
}

func TestMalformedValuesAreIgnored(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, KeyTheme, "sepia"))
	require.NoError(t, backend.Set(ctx, KeyLanguage, "fr"))
	require.NoError(t, backend.Set(ctx, KeyPushEnabled, "yes please"))
	require.NoError(t, backend.Set(ctx, KeyAuthenticated, "1"))

	state, err := NewPreferences(backend).Load(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeDark, state.Theme)
	assert.Equal(t, types.English, state.Language)
	assert.False(t, state.PushEnabled)
	assert.False(t, state.Authenticated)

	for _, raw := range []string{"t", "TRUE", "True", " true"} {
		require.NoError(t, backend.Set(ctx, KeyAuthenticated, raw))
		state, err = NewPreferences(backend).Load(ctx, true)
		require.NoError(t, err)
		assert.False(t, state.Authenticated, raw)
	}

	require.NoError(t, backend.Set(ctx, KeyAuthenticated, "true"))
	state, err = NewPreferences(backend).Load(ctx, true)
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
}

func TestSettersPersistStrings(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	prefs := NewPreferences(backend)

	require.NoError(t, prefs.SetLanguage(ctx, types.Hindi))
	require.NoError(t, prefs.SetPushEnabled(ctx, true))
	require.NoError(t, prefs.SetAuthenticated(ctx, true))

	for key, want := range map[string]string{
		KeyLanguage:      "hi",
		KeyPushEnabled:   "true",
		KeyAuthenticated: "true",
	} {
		got, ok, err := backend.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	assert.Error(t, prefs.SetTheme(ctx, "sepia"))
	assert.Error(t, prefs.SetLanguage(ctx, "fr"))
}

func TestToggles(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferences(NewMemoryBackend())

	theme, err := prefs.ToggleTheme(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeDark, theme)
	theme, err = prefs.ToggleTheme(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeLight, theme)

	lang, err := prefs.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Hindi, lang)
	lang, err = prefs.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.English, lang)
}

func TestSQLiteBackendPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	backend, err := OpenSQLite(ctx, path)
	require.NoError(t, err)

	_, ok, err := backend.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Set(ctx, KeyTheme, "dark"))
	require.NoError(t, backend.Set(ctx, KeyTheme, "light"))
	require.NoError(t, backend.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", got)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	backend, err := Open(ctx, config.PreferenceConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, backend)

	backend, err = Open(ctx, config.PreferenceConfig{
		Backend:    "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "prefs.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, backend)
	require.NoError(t, backend.Close())

	_, err = Open(ctx, config.PreferenceConfig{Backend: "etcd"})
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}
