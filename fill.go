package shapes

// FillType selects between a solid interior and an outline.
type FillType uint8

const (
	// Solid fills the interior of the shape.
	Solid FillType = iota
	// Stroke draws an outline of Fill.Thickness.
	Stroke
)

// String returns the name of the fill type.
func (t FillType) String() string {
	switch t {
	case Solid:
		return "solid"
	case Stroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// Fill is the color and fill style of a persistent shape.
// Thickness and ThicknessType only apply to strokes.
type Fill struct {
	Color         Color
	Type          FillType
	Thickness     float32
	ThicknessType ThicknessType
}

// SolidFill returns a solid fill.
func SolidFill(c Color) Fill {
	return Fill{Color: c, Type: Solid}
}

// StrokeFill returns an outline fill.
func StrokeFill(c Color, thickness float32, tt ThicknessType) Fill {
	return Fill{Color: c, Type: Stroke, Thickness: thickness, ThicknessType: tt}
}

// solidThickness is written to records of solid fills, which have no stroke
// width of their own.
const solidThickness float32 = 1

// style is the part of a record that depends only on the fill. A component
// computes it once and reuses it for every record it expands into.
type style struct {
	thickness float32
	flags     Flags
}

func (f Fill) style() style {
	var s style
	switch f.Type {
	case Stroke:
		s.thickness = f.Thickness
		s.flags.SetThicknessType(f.ThicknessType)
		s.flags.SetHollow(true)
	default:
		s.thickness = solidThickness
	}
	return s
}
