package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is the dark one.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}
