package app

// Action is a logical input, independent of how a key event is encoded.
type Action int

const (
	None Action = iota

	// User point steering.
	RadiusUp
	RadiusDown
	AngleUp
	AngleDown

	// Surface and camera adjustments.
	GrowRadius
	ShrinkRadius
	WidenEyes
	NarrowEyes
	ConvergeNearer
	ConvergeFarther
	RotateLeft
	RotateRight
	ToggleProjection
)

var actionNames = map[Action]string{
	None:             "none",
	RadiusUp:         "radius-up",
	RadiusDown:       "radius-down",
	AngleUp:          "angle-up",
	AngleDown:        "angle-down",
	GrowRadius:       "grow-radius",
	ShrinkRadius:     "shrink-radius",
	WidenEyes:        "widen-eyes",
	NarrowEyes:       "narrow-eyes",
	ConvergeNearer:   "converge-nearer",
	ConvergeFarther:  "converge-farther",
	RotateLeft:       "rotate-left",
	RotateRight:      "rotate-right",
	ToggleProjection: "toggle-projection",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Step is the increment applied by every stepping action.
const Step = 0.05

// pointDelta maps user point actions to (radius, angle) increments.
var pointDelta = map[Action][2]float64{
	RadiusUp:   {Step, 0},
	RadiusDown: {-Step, 0},
	AngleUp:    {0, Step},
	AngleDown:  {0, -Step},
}
