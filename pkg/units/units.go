// Package units formats board coordinates for report text. The unit choice
// is carried in an explicit Options value rather than process-global state so
// two reports can be rendered with different units concurrently.
package units

import (
	"fmt"
	"strings"
)

// Unit is a measurement unit for board coordinates.
type Unit int

const (
	// Millimeters is the default unit.
	Millimeters Unit = iota
	// Inches formats coordinates in decimal inches.
	Inches
	// Mils formats coordinates in thousandths of an inch.
	Mils
)

// nanometersPerInch is the internal-unit scale: coordinates are stored in
// integer nanometers, matching the board model.
const (
	nanometersPerMM   = 1_000_000.0
	nanometersPerInch = 25_400_000.0
	nanometersPerMil  = 25_400.0
)

// Point is a board position in integer nanometers.
type Point struct {
	X int64
	Y int64
}

// Options carries formatting configuration for report text.
type Options struct {
	// Unit selects the measurement unit coordinates are printed in.
	Unit Unit
}

// String returns the short name of the unit.
func (u Unit) String() string {
	switch u {
	case Millimeters:
		return "mm"
	case Inches:
		return "in"
	case Mils:
		return "mils"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ParseUnit converts a unit name ("mm", "in", "inch", "mils") into a Unit.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mm", "millimeters", "":
		return Millimeters, nil
	case "in", "inch", "inches":
		return Inches, nil
	case "mil", "mils":
		return Mils, nil
	default:
		return Millimeters, fmt.Errorf("unknown unit: %q", name)
	}
}

// FormatValue renders a single coordinate value in the configured unit.
func (o Options) FormatValue(nm int64) string {
	switch o.Unit {
	case Inches:
		return fmt.Sprintf("%.4f in", float64(nm)/nanometersPerInch)
	case Mils:
		return fmt.Sprintf("%.2f mils", float64(nm)/nanometersPerMil)
	default:
		return fmt.Sprintf("%.4f mm", float64(nm)/nanometersPerMM)
	}
}

// FormatPoint renders a position as "@(x, y)" in the configured unit.
func (o Options) FormatPoint(p Point) string {
	switch o.Unit {
	case Inches:
		return fmt.Sprintf("@(%.4f in, %.4f in)",
			float64(p.X)/nanometersPerInch, float64(p.Y)/nanometersPerInch)
	case Mils:
		return fmt.Sprintf("@(%.2f mils, %.2f mils)",
			float64(p.X)/nanometersPerMil, float64(p.Y)/nanometersPerMil)
	default:
		return fmt.Sprintf("@(%.4f mm, %.4f mm)",
			float64(p.X)/nanometersPerMM, float64(p.Y)/nanometersPerMM)
	}
}
