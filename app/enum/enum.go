// Package enum defines the enumerated values used across folio.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type phase -lower
type phase int

const (
	phaseMounting phase = iota
	phaseFadingIn       // enum:alias=fading-in
	phaseSettled
)
