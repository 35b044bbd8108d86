package ui

import (
	"image"
	"math"
	"strconv"

	"hexflake/internal/core"
)

// Target is what the HUD drives: a named set of adjustable parameters.
type Target interface {
	Name() string
	core.ParameterControlsProvider
	core.ParameterProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// refresh reloads the displayed value from a snapshot parameter.
func (s *controlState) refresh(param core.Parameter, ok bool) {
	s.hasValue = false
	s.value = "--"
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// nextValue returns the value one step in direction from the current one,
// clamped to the control bounds, and whether it differs from the current one.
func (s *controlState) nextValue(direction int) (float64, bool) {
	if direction == 0 || !s.hasValue {
		return 0, false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(s.control.Step))
		if step <= 0 {
			step = 1
		}
		target := float64(s.intValue + direction*step)
		target = math.Round(s.control.Clamp(target))
		return target, int(target) != s.intValue
	case core.ParamTypeFloat:
		step := s.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := s.control.Clamp(s.floatValue + float64(direction)*step)
		return target, math.Abs(target-s.floatValue) >= 1e-9
	}
	return 0, false
}

// apply pushes one step in direction through the matching setter.
func (s *controlState) apply(t Target, direction int) bool {
	target, changed := s.nextValue(direction)
	if !changed {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if !t.SetIntParameter(s.control.Key, int(target)) {
			return false
		}
		s.intValue = int(target)
		s.floatValue = target
		s.value = strconv.Itoa(s.intValue)
	case core.ParamTypeFloat:
		if !t.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func layoutControls(controls []controlState, width int) {
	for i := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = top
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
