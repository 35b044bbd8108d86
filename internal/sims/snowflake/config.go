package snowflake

import "strconv"

// Params holds the coefficients of the Gravner–Griffeath update rule.
type Params struct {
	Alpha float64 // boundary-mass threshold for knife-edge attachment
	Beta  float64 // boundary-mass threshold at tips and flat spots
	Mu    float64 // boundary-mass melting rate
	Kappa float64 // share of frozen vapour that crystallises directly
	Rho   float64 // initial vapour density
	Theta float64 // vapour threshold for knife-edge attachment
	Gamma float64 // crystal-mass melting rate
	Sigma float64 // amplitude of the vapour texture in the seed pattern
}

// Config controls the field size and rule coefficients.
type Config struct {
	Size   int
	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 400,
		Params: Params{
			Alpha: 0.4,
			Beta:  1.6,
			Mu:    0.015,
			Kappa: 0.005,
			Rho:   0.635,
			Theta: 0.025,
			Gamma: 0.0005,
			Sigma: 0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable coefficients keep their defaults and the rest are clamped to
// bounds. A size that is present is passed through as given, or as zero when
// it does not parse, so NewWithConfig rejects it.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg[KeySize]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			parsed = 0
		}
		c.Size = parsed
	}
	for _, key := range coefficientKeys {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Set(key, parsed)
		}
	}
	return c
}

// ToMap renders the config as flag-style key/value pairs accepted by FromMap.
func (c Config) ToMap() map[string]string {
	out := map[string]string{
		KeySize: strconv.Itoa(c.Size),
	}
	for _, key := range coefficientKeys {
		v, _ := c.Params.Get(key)
		out[key] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// Clamped returns p with every coefficient forced into its bounds.
func (p Params) Clamped() Params {
	out := p
	for _, key := range coefficientKeys {
		v, _ := p.Get(key)
		out.Set(key, v)
	}
	return out
}

// Set clamps value into key's bounds, stores it and returns the applied
// value. Unknown keys report false.
func (p *Params) Set(key string, value float64) (float64, bool) {
	ctrl, ok := controlFor(key)
	if !ok {
		return 0, false
	}
	v := ctrl.Clamp(value)
	switch key {
	case KeyAlpha:
		p.Alpha = v
	case KeyBeta:
		p.Beta = v
	case KeyMu:
		p.Mu = v
	case KeyKappa:
		p.Kappa = v
	case KeyRho:
		p.Rho = v
	case KeyTheta:
		p.Theta = v
	case KeyGamma:
		p.Gamma = v
	case KeySigma:
		p.Sigma = v
	}
	return v, true
}

// Get returns the coefficient stored under key.
func (p Params) Get(key string) (float64, bool) {
	switch key {
	case KeyAlpha:
		return p.Alpha, true
	case KeyBeta:
		return p.Beta, true
	case KeyMu:
		return p.Mu, true
	case KeyKappa:
		return p.Kappa, true
	case KeyRho:
		return p.Rho, true
	case KeyTheta:
		return p.Theta, true
	case KeyGamma:
		return p.Gamma, true
	case KeySigma:
		return p.Sigma, true
	}
	return 0, false
}
