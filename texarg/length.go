package texarg

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a LaTeX length unit.
type Unit uint8

const (
	UnitPt Unit = iota // point
	UnitMm             // millimeter
	UnitCm             // centimeter
	UnitIn             // inch
	UnitBp             // big point
	UnitPc             // pica
	UnitDd             // didot point
	UnitEx             // x-height of the current font
	UnitEm             // em width of the current font
)

const unitCount = 9

// String returns the unit's markup suffix.
func (u Unit) String() string {
	switch u {
	case UnitPt:
		return "pt"
	case UnitMm:
		return "mm"
	case UnitCm:
		return "cm"
	case UnitIn:
		return "in"
	case UnitBp:
		return "bp"
	case UnitPc:
		return "pc"
	case UnitDd:
		return "dd"
	case UnitEx:
		return "ex"
	case UnitEm:
		return "em"
	default:
		return "unknown"
	}
}

// ParseUnit resolves a unit from its suffix name, case-insensitively.
func ParseUnit(name string) (Unit, error) {
	for u := Unit(0); u < unitCount; u++ {
		if strings.EqualFold(name, u.String()) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("texarg: unknown unit %q", name)
}

// Matches reports whether name is this unit's suffix, case-insensitively.
// Comparison against the raw representation is explicit rather than
// overloaded onto equality.
func (u Unit) Matches(name string) bool {
	return strings.EqualFold(name, u.String())
}

// Length is a dimensioned quantity: a magnitude with a Unit. Every unit is
// convertible to points via fixed rational constants, so any Length can be
// expressed in any other unit.
type Length struct {
	Value float64
	Unit  Unit
}

// ParseLength parses text with an optional unit suffix (case-insensitive).
// Absent a recognized suffix the numeric text is parsed as a plain float in
// centimeters, the default unit.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	for u := Unit(0); u < unitCount; u++ {
		suffix := u.String()
		if len(s) > len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
			v, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-len(suffix)]), 64)
			if err != nil {
				return Length{}, fmt.Errorf("texarg: could not parse length %q: %w", s, err)
			}
			return Length{Value: v, Unit: u}, nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("texarg: could not parse length %q: %w", s, err)
	}
	return Length{Value: v, Unit: UnitCm}, nil
}

// Points returns the magnitude expressed in points.
//
// Ratios per unit (exact TeX definitions):
//
//	pt  1           bp  803/800
//	mm  7227/2540   pc  12
//	cm  7227/254    dd  1238/1157
//	in  7227/100    ex  35271/8192   (12pt reference font)
//	                em  655361/65536 (12pt reference font)
func (l Length) Points() float64 {
	switch l.Unit {
	case UnitPt:
		return l.Value
	case UnitMm:
		return l.Value * 7227 / 2540
	case UnitCm:
		return l.Value * 7227 / 254
	case UnitIn:
		return l.Value * 7227 / 100
	case UnitBp:
		return l.Value * 803 / 800
	case UnitPc:
		return l.Value * 12
	case UnitDd:
		return l.Value * 1238 / 1157
	case UnitEx:
		return l.Value * 35271 / 8192
	case UnitEm:
		return l.Value * 655361 / 65536
	default:
		return l.Value
	}
}

// pointsTo converts a magnitude in points to the target unit via the
// inverse ratios of Points.
func pointsTo(pts float64, u Unit) float64 {
	switch u {
	case UnitPt:
		return pts
	case UnitMm:
		return pts * 2540 / 7227
	case UnitCm:
		return pts * 254 / 7227
	case UnitIn:
		return pts * 100 / 7227
	case UnitBp:
		return pts * 800 / 803
	case UnitPc:
		return pts / 12
	case UnitDd:
		return pts * 1157 / 1238
	case UnitEx:
		return pts * 8192 / 35271
	case UnitEm:
		return pts * 65536 / 655361
	default:
		return pts
	}
}

// ConvertTo returns the length expressed in the target unit, routing through
// points. A matching unit returns the receiver unchanged; conversion never
// mutates in place.
func (l Length) ConvertTo(u Unit) Length {
	if l.Unit == u {
		return l
	}
	return Length{Value: pointsTo(l.Points(), u), Unit: u}
}

// String renders the length as magnitude plus unit suffix, using the
// shortest float representation that round-trips.
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}
