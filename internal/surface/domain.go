package surface

import (
	"fmt"
	"math"
)

// Default tessellation parameters.
const (
	DefaultStep = 0.03
	DefaultMaxR = 1.0

	// MinRadius is the inner radial bound of the texture mapping and the
	// user point.
	MinRadius = 0.25

	// MaxCells bounds the number of grid cells in one tessellation.
	MaxCells = 1 << 24
)

// Domain is the rectangle of (u, v) parameters walked by Tessellate.
// u runs over [UMin, UMax], v over [VMin, VMax).
type Domain struct {
	UMin, UMax float64
	VMin, VMax float64
	Step       float64
	MaxR       float64
}

// DefaultDomain returns u ∈ [-3.5π, 3.5π], v ∈ [0.005π, π/2) with the
// default step and the given radial limit.
func DefaultDomain(maxR float64) Domain {
	return Domain{
		UMin: -3.5 * math.Pi,
		UMax: 3.5 * math.Pi,
		VMin: 0.005 * math.Pi,
		VMax: math.Pi / 2,
		Step: DefaultStep,
		MaxR: maxR,
	}
}

// Validate reports why d cannot be tessellated, or nil.
func (d Domain) Validate() error {
	for _, f := range []float64{d.UMin, d.UMax, d.VMin, d.VMax, d.Step, d.MaxR} {
		if !finite(f) {
			return ErrNonFinite
		}
	}
	if d.UMin >= d.UMax {
		return fmt.Errorf("u [%g, %g]: %w", d.UMin, d.UMax, ErrEmptyRange)
	}
	if d.VMin >= d.VMax {
		return fmt.Errorf("v [%g, %g): %w", d.VMin, d.VMax, ErrEmptyRange)
	}
	if d.Step <= 0 {
		return fmt.Errorf("step %g: %w", d.Step, ErrBadStep)
	}
	if d.UMin+d.Step == d.UMin || d.UMax+d.Step == d.UMax ||
		d.VMin+d.Step == d.VMin || d.VMax+d.Step == d.VMax {
		return fmt.Errorf("step %g does not advance: %w", d.Step, ErrTooFine)
	}
	if n := d.cells(); n > MaxCells {
		return fmt.Errorf("step %g gives %.0f cells: %w", d.Step, n, ErrTooFine)
	}
	if d.VMin <= 0 {
		return fmt.Errorf("vMin %g: %w", d.VMin, ErrSingularV)
	}
	if d.MaxR <= MinRadius {
		return fmt.Errorf("maxR %g: %w", d.MaxR, ErrBadRadius)
	}
	return nil
}

// cells approximates the number of grid cells walked by Tessellate.
func (d Domain) cells() float64 {
	return (math.Floor((d.UMax-d.UMin)/d.Step) + 1) * (math.Floor((d.VMax-d.VMin)/d.Step) + 1)
}
