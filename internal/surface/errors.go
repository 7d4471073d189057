package surface

import "errors"

var (
	// ErrEmptyRange indicates a domain whose minimum is not below its maximum.
	ErrEmptyRange = errors.New("surface: empty parameter range")

	// ErrBadStep indicates a non-positive tessellation step.
	ErrBadStep = errors.New("surface: step must be > 0")

	// ErrTooFine indicates a step that cannot advance the parameters or
	// would produce more than MaxCells cells.
	ErrTooFine = errors.New("surface: step too fine for domain")

	// ErrSingularV indicates a v range touching v <= 0, where ln(tan(v/2)) diverges.
	ErrSingularV = errors.New("surface: v range must start above 0")

	// ErrBadRadius indicates maxR <= 0.25; the texture mapping divides by maxR-0.25.
	ErrBadRadius = errors.New("surface: maxR must be > 0.25")

	// ErrNonFinite indicates NaN or Inf in domain parameters.
	ErrNonFinite = errors.New("surface: NaN or Inf in domain")

	// ErrBadDelta indicates a non-positive finite-difference step.
	ErrBadDelta = errors.New("surface: normal delta must be > 0")

	// ErrLengthMismatch indicates a mesh whose parallel streams disagree.
	ErrLengthMismatch = errors.New("surface: mesh stream lengths mismatch")

	// ErrUnknownTexCoordMode indicates an unrecognised texture mapping name.
	ErrUnknownTexCoordMode = errors.New("surface: unknown texcoord mode")
)
