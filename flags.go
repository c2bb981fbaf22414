// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

// Flags packs the enumerated style options of a shape into the single
// 32-bit word carried by every record. The shaders decode the same layout:
//
//	bits 0-1  thickness type  (World, Pixels, Screen)
//	bit  2    alignment       (Flat, Billboard)
//	bit  3    hollow
//	bits 4-5  cap             (CapNone, CapSquare, CapRound)
//	bit  6    arc             (disc records only)
//	bits 7-31 reserved, zero
//
// The zero value is the all-defaults state. Setters mask their input to the
// field width, so an out-of-range enum value never spills into a neighbour.
type Flags uint32

const (
	thicknessTypeShift = 0
	thicknessTypeBits  = 2
	alignmentShift     = 2
	alignmentBits      = 1
	hollowShift        = 3
	hollowBits         = 1
	capShift           = 4
	capBits            = 2
	arcShift           = 6
	arcBits            = 1

	// flagsUsedMask covers every assigned bit; the rest are reserved.
	flagsUsedMask Flags = 1<<(arcShift+arcBits) - 1
)

func (f Flags) get(shift, bits uint) uint32 {
	return uint32(f>>shift) & (1<<bits - 1)
}

func (f *Flags) set(shift, bits uint, v uint32) {
	mask := Flags(1<<bits-1) << shift
	*f = *f&^mask | Flags(v)<<shift&mask
}

// SetThicknessType writes the thickness interpretation.
func (f *Flags) SetThicknessType(t ThicknessType) {
	f.set(thicknessTypeShift, thicknessTypeBits, uint32(t))
}

// ThicknessType reads the thickness interpretation.
func (f Flags) ThicknessType() ThicknessType {
	return ThicknessType(f.get(thicknessTypeShift, thicknessTypeBits))
}

// SetAlignment writes the alignment.
func (f *Flags) SetAlignment(a Alignment) {
	f.set(alignmentShift, alignmentBits, uint32(a))
}

// Alignment reads the alignment.
func (f Flags) Alignment() Alignment {
	return Alignment(f.get(alignmentShift, alignmentBits))
}

// SetHollow writes the hollow bit.
func (f *Flags) SetHollow(hollow bool) {
	f.set(hollowShift, hollowBits, b2u(hollow))
}

// Hollow reports whether the hollow bit is set.
func (f Flags) Hollow() bool {
	return f.get(hollowShift, hollowBits) == 1
}

// SetCap writes the cap style.
func (f *Flags) SetCap(c Cap) {
	f.set(capShift, capBits, uint32(c))
}

// Cap reads the cap style.
func (f Flags) Cap() Cap {
	return Cap(f.get(capShift, capBits))
}

// SetArc writes the arc bit.
func (f *Flags) SetArc(arc bool) {
	f.set(arcShift, arcBits, b2u(arc))
}

// Arc reports whether the arc bit is set.
func (f Flags) Arc() bool {
	return f.get(arcShift, arcBits) == 1
}

// Reserved returns the bits outside every assigned field. Words produced by
// the setters always return zero here.
func (f Flags) Reserved() uint32 {
	return uint32(f &^ flagsUsedMask)
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// ThicknessType selects the unit a thickness is measured in.
type ThicknessType uint8

const (
	// World measures thickness in world units and scales with the transform.
	World ThicknessType = iota
	// Pixels measures thickness in physical pixels.
	Pixels
	// Screen measures thickness as a fraction of the viewport height.
	Screen
)

// String returns the name of the thickness type.
func (t ThicknessType) String() string {
	switch t {
	case World:
		return "world"
	case Pixels:
		return "pixels"
	case Screen:
		return "screen"
	default:
		return "unknown"
	}
}

// Alignment controls how a shape is oriented relative to the camera.
type Alignment uint8

const (
	// Flat keeps the shape in the plane given by its transform.
	Flat Alignment = iota
	// Billboard rotates the shape to always face the camera.
	Billboard
)

// String returns the name of the alignment.
func (a Alignment) String() string {
	switch a {
	case Flat:
		return "flat"
	case Billboard:
		return "billboard"
	default:
		return "unknown"
	}
}

// Cap is the end style of lines, polyline segments and arcs.
type Cap uint8

const (
	// CapNone ends the stroke exactly at its endpoint.
	CapNone Cap = iota
	// CapSquare extends the stroke by half its thickness.
	CapSquare
	// CapRound ends the stroke with a half disc.
	CapRound
)

// String returns the name of the cap style.
func (c Cap) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapSquare:
		return "square"
	case CapRound:
		return "round"
	default:
		return "unknown"
	}
}
