package snowflake

import (
	"fmt"

	"hexflake/internal/core"
)

// Preset is a named configuration from the Gravner–Griffeath catalogue.
type Preset struct {
	Name        string
	Description string
	Config      Config
}

const presetSize = 512

var presets = []Preset{
	{
		Name:        "Sectored Plate",
		Description: "A classic sectored plate form (Fig. 2).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 0.8, Beta: 2.9, Kappa: 0.05, Mu: 0.015, Gamma: 0.0001, Theta: 0.004, Sigma: 0.00002, Alpha: 0.006,
		}},
	},
	{
		Name:        "Low-Beta Plate",
		Description: "A very low-beta, compact plate (Fig. 9).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 1.3, Beta: 0.08, Kappa: 0.07, Mu: 0.00005, Gamma: 0, Theta: 0.003, Alpha: 0.025,
		}},
	},
	{
		Name:        "Tip Faceting",
		Description: "Tip faceting at a very low beta (Fig. 10).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 0.8, Beta: 0.004, Kappa: 0.015, Mu: 0.0001, Gamma: 0, Theta: 0.05, Alpha: 0.001,
		}},
	},
	{
		Name:        "Highly Branched Dendrite",
		Description: "A highly branched dendritic form (Fig. 11).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 0.635, Beta: 1.6, Kappa: 0.015, Mu: 0.0005, Gamma: 0, Theta: 0.025, Alpha: 0.4,
		}},
	},
	{
		Name:        "Delicate Stellar Dendrite",
		Description: "A delicate, sparse stellar dendrite (Fig. 12).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 0.5, Beta: 1.4, Kappa: 0.001, Mu: 0.001, Gamma: 0.001, Theta: 0.005, Alpha: 0.1,
		}},
	},
	{
		Name:        "Simple Star",
		Description: "A simple six-pointed star (Fig. 13l).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 0.65, Beta: 1.75, Kappa: 0.15, Mu: 0.015, Gamma: 0.00001, Theta: 0.2, Alpha: 0.026,
		}},
	},
	{
		Name:        "Stellar Plate",
		Description: "A stellar plate form (Fig. 13m).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 0.36, Beta: 1.09, Kappa: 0.0001, Mu: 0.14, Gamma: 0.00001, Theta: 0.0745, Alpha: 0.01,
		}},
	},
	{
		Name:        "Plate with Dendrite Ends",
		Description: "A plate with prominent dendritic ends (Fig. 13r).",
		Config: Config{Size: presetSize, Params: Params{
			Rho: 0.38, Beta: 1.06, Kappa: 0.001, Mu: 0.14, Gamma: 0.0006, Theta: 0.112, Alpha: 0.35,
		}},
	},
}

// PresetCount returns the number of catalogue entries.
func PresetCount() int { return len(presets) }

// PresetAt returns the catalogue entry at index i.
func PresetAt(i int) (Preset, error) {
	if i < 0 || i >= len(presets) {
		return Preset{}, fmt.Errorf("preset %d of %d: %w", i, len(presets), core.ErrInvalidIndex)
	}
	return presets[i], nil
}

// Presets returns a copy of the catalogue.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}
