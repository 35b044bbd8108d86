package snowflake

import (
	"strconv"

	"hexflake/internal/core"
)

// Parameter keys understood by FromMap, SetFloatParameter and the HUD.
const (
	KeySize  = "size"
	KeyAlpha = "alpha"
	KeyBeta  = "beta"
	KeyMu    = "mu"
	KeyKappa = "kappa"
	KeyRho   = "rho"
	KeyTheta = "theta"
	KeyGamma = "gamma"
	KeySigma = "sigma"
)

var coefficientKeys = []string{KeyAlpha, KeyBeta, KeyMu, KeyKappa, KeyRho, KeyTheta, KeyGamma, KeySigma}

var coefficientControls = []core.ParameterControl{
	floatControl(KeyAlpha, "Alpha (knife-edge mass)", 0.01, 0, 1),
	floatControl(KeyBeta, "Beta (tip threshold)", 0.05, 0, 5),
	floatControl(KeyMu, "Mu (boundary melt)", 0.001, 0, 1),
	floatControl(KeyKappa, "Kappa (direct freeze)", 0.001, 0, 1),
	floatControl(KeyRho, "Rho (vapour density)", 0.005, 0, 2),
	floatControl(KeyTheta, "Theta (knife-edge vapour)", 0.001, 0, 1),
	floatControl(KeyGamma, "Gamma (crystal melt)", 0.0001, 0, 1),
	floatControl(KeySigma, "Sigma (vapour texture)", 0.0001, 0, 1),
}

// CoefficientKeys lists every coefficient key in display order.
func CoefficientKeys() []string {
	return append([]string(nil), coefficientKeys...)
}

// Bounds returns the closed interval accepted for the coefficient key.
func Bounds(key string) (lo, hi float64, ok bool) {
	ctrl, ok := controlFor(key)
	if !ok {
		return 0, 0, false
	}
	return ctrl.Min, ctrl.Max, true
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, ctrl := range coefficientControls {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

// Controls returns the bounds and HUD steps of every coefficient.
func Controls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), coefficientControls...)
}

// SetFloatParameter clamps and applies a coefficient. It reports false for
// keys the rule does not know.
func (m *Model) SetFloatParameter(key string, value float64) bool {
	_, ok := m.cfg.Params.Set(key, value)
	return ok
}

// Params returns the live coefficients.
func (m *Model) Params() Params { return m.cfg.Params }

// Snapshot renders cfg as a grouped parameter snapshot.
func Snapshot(cfg Config) core.ParameterSnapshot {
	p := cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam(KeySize, "Grid size", cfg.Size),
				floatParam(KeyRho, "Rho", p.Rho, "initial vapour density"),
				floatParam(KeySigma, "Sigma", p.Sigma, "vapour texture amplitude"),
			},
		},
		{
			Name: "Attachment",
			Params: []core.Parameter{
				floatParam(KeyBeta, "Beta", p.Beta, "boundary mass needed at tips and flat spots"),
				floatParam(KeyAlpha, "Alpha", p.Alpha, "boundary mass needed at knife edges"),
				floatParam(KeyTheta, "Theta", p.Theta, "vapour ceiling for knife-edge attachment"),
			},
		},
		{
			Name: "Freezing & Melting",
			Params: []core.Parameter{
				floatParam(KeyKappa, "Kappa", p.Kappa, "share of frozen vapour that crystallises"),
				floatParam(KeyMu, "Mu", p.Mu, "boundary mass melting rate"),
				floatParam(KeyGamma, "Gamma", p.Gamma, "crystal mass melting rate"),
			},
		},
	}}
}

func floatControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    lo,
		Max:    hi,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeFloat,
		Value:       strconv.FormatFloat(value, 'f', -1, 64),
		Description: desc,
	}
}
