package main

import (
	"fmt"
	"strconv"
	"strings"

	"hexflake/internal/engine"
	"hexflake/internal/sims/snowflake"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type override struct {
	key   string
	value float64
}

// parseOverrides validates -set entries against the coefficient keys.
func parseOverrides(list kvList) ([]override, error) {
	out := make([]override, 0, len(list))
	for _, kv := range list {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		key = strings.TrimSpace(strings.ToLower(key))
		if _, _, known := snowflake.Bounds(key); !known {
			return nil, fmt.Errorf("override %q: unknown coefficient %q (want one of %s)",
				kv, key, strings.Join(snowflake.CoefficientKeys(), ", "))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", kv, err)
		}
		out = append(out, override{key: key, value: v})
	}
	return out, nil
}

// applyOverrides pushes the overrides into s and reseeds so a changed rho
// shows up in the field.
func applyOverrides(s *engine.Session, overrides []override) error {
	if len(overrides) == 0 {
		return nil
	}
	for _, o := range overrides {
		if !s.SetFloatParameter(o.key, o.value) {
			return fmt.Errorf("override %s rejected", o.key)
		}
	}
	s.Reset()
	return nil
}

func smallConfig() snowflake.Config {
	cfg := snowflake.DefaultConfig()
	cfg.Size = 16
	return cfg
}
