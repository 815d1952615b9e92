package db

import (
	"context"
	"fmt"
	"strconv"

	"go-healthwatch/types"
)

const (
	KeyTheme         = "theme"
	KeyLanguage      = "language"
	KeyPushEnabled   = "isPushEnabled"
	KeyAuthenticated = "isAuthenticated"
)

// Preferences reads and writes the four user preferences over a Backend.
// Stored values that fail to parse are treated as absent.
type Preferences struct {
	backend Backend
}

func NewPreferences(backend Backend) *Preferences {
	return &Preferences{backend: backend}
}

// Load returns the stored state. prefersDark is the caller's OS hint and only
// decides the theme when none is stored.
func (p *Preferences) Load(ctx context.Context, prefersDark bool) (types.PreferenceState, error) {
	state := types.PreferenceState{
		Theme:    types.ThemeLight,
		Language: types.English,
	}
	if prefersDark {
		state.Theme = types.ThemeDark
	}

	if raw, ok, err := p.backend.Get(ctx, KeyTheme); err != nil {
		return state, err
	} else if theme, valid := types.ParseTheme(raw); ok && valid {
		state.Theme = theme
	}

	if raw, ok, err := p.backend.Get(ctx, KeyLanguage); err != nil {
		return state, err
	} else if lang, valid := types.ParseLanguage(raw); ok && valid {
		state.Language = lang
	}

	var err error
	if state.PushEnabled, err = p.boolean(ctx, KeyPushEnabled); err != nil {
		return state, err
	}
	if state.Authenticated, err = p.boolean(ctx, KeyAuthenticated); err != nil {
		return state, err
	}
	return state, nil
}

func (p *Preferences) boolean(ctx context.Context, key string) (bool, error) {
	raw, ok, err := p.backend.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	log.Warnf("Ignoring malformed %s preference %q", key, raw)
	return false, nil
}

func (p *Preferences) SetTheme(ctx context.Context, theme types.Theme) error {
	if _, ok := types.ParseTheme(string(theme)); !ok {
		return fmt.Errorf("invalid theme %q", theme)
	}
	return p.backend.Set(ctx, KeyTheme, string(theme))
}

func (p *Preferences) SetLanguage(ctx context.Context, lang types.Language) error {
	if _, ok := types.ParseLanguage(string(lang)); !ok {
		return fmt.Errorf("invalid language %q", lang)
	}
	return p.backend.Set(ctx, KeyLanguage, string(lang))
}

func (p *Preferences) SetPushEnabled(ctx context.Context, enabled bool) error {
	return p.backend.Set(ctx, KeyPushEnabled, strconv.FormatBool(enabled))
}

func (p *Preferences) SetAuthenticated(ctx context.Context, authenticated bool) error {
	return p.backend.Set(ctx, KeyAuthenticated, strconv.FormatBool(authenticated))
}

// ToggleTheme flips the current theme, persists it and returns the new value.
func (p *Preferences) ToggleTheme(ctx context.Context, prefersDark bool) (types.Theme, error) {
	state, err := p.Load(ctx, prefersDark)
	if err != nil {
		return "", err
	}
	next := state.Theme.Toggle()
	return next, p.SetTheme(ctx, next)
}

func (p *Preferences) ToggleLanguage(ctx context.Context) (types.Language, error) {
	state, err := p.Load(ctx, false)
	if err != nil {
		return "", err
	}
	next := state.Language.Toggle()
	return next, p.SetLanguage(ctx, next)
}
