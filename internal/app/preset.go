package app

import "hexflake/internal/sims/snowflake"

type presetSession interface {
	Config() snowflake.Config
}

// matchingPreset returns the index of the preset whose bundle equals the
// session configuration, or -1.
func matchingPreset(s presetSession) int {
	cfg := s.Config()
	for i, p := range snowflake.Presets() {
		if p.Config == cfg {
			return i
		}
	}
	return -1
}
