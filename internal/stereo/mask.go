package stereo

// ColorMask lists the channels an eye may write. Alpha is never written
// so the two passes combine additively.
type ColorMask struct {
	R, G, B, A bool
}

var (
	// RedMask is the left-eye mask.
	RedMask = ColorMask{R: true}
	// CyanMask is the right-eye mask.
	CyanMask = ColorMask{G: true, B: true}
	// FullMask restores normal drawing after the stereo passes.
	FullMask = ColorMask{R: true, G: true, B: true, A: true}
)

// Mask returns the channels eye renders into.
func (e Eye) Mask() ColorMask {
	if e == LeftEye {
		return RedMask
	}
	return CyanMask
}

// Eyes is the draw order of a stereo frame.
var Eyes = [2]Eye{LeftEye, RightEye}
