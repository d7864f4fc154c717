package enum

// Next returns the phase following p. Settled is terminal and returns itself.
func (p Phase) Next() Phase {
	switch p {
	case PhaseMounting:
		return PhaseFadingIn
	default:
		return PhaseSettled
	}
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == PhaseSettled
}
