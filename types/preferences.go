package types

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the theme named by s and whether s named one.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return ThemeLight, false
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// ParseLanguage returns the language named by s, falling back to English.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case English, Hindi:
		return Language(s), true
	}
	return English, false
}

func (l Language) Toggle() Language {
	if l == Hindi {
		return English
	}
	return Hindi
}

type PreferenceState struct {
	Theme         Theme    `json:"theme"`
	Language      Language `json:"language"`
	PushEnabled   bool     `json:"pushEnabled"`
	Authenticated bool     `json:"authenticated"`
}
