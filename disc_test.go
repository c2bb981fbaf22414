package shapes

import (
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCircleData(t *testing.T) {
	cfg := NewConfig(WithColor(Yellow))
	d := NewCircleData(&cfg, 2.5)

	if d.Radius != 2.5 {
		t.Errorf("Radius = %v, want 2.5", d.Radius)
	}
	if d.Flags.Arc() {
		t.Error("circle has the arc bit")
	}
	if d.StartAngle != 0 || d.EndAngle != float32(2*math.Pi) {
		t.Errorf("angles = %v..%v, want 0..2pi", d.StartAngle, d.EndAngle)
	}
	if d.Flags.Cap() != CapNone {
		t.Errorf("circle carries cap %v", d.Flags.Cap())
	}
	if d.Flags.Hollow() || d.Thickness != solidThickness {
		t.Errorf("solid circle: thickness %v flags %#b", d.Thickness, uint32(d.Flags))
	}
}

func TestNewCircleDataHollow(t *testing.T) {
	cfg := NewConfig(WithHollow(true), WithThickness(0.1, Screen))
	d := NewCircleData(&cfg, 1)
	if !d.Flags.Hollow() || d.Thickness != 0.1 || d.Flags.ThicknessType() != Screen {
		t.Errorf("ring: thickness %v flags %#b", d.Thickness, uint32(d.Flags))
	}
}

func TestNewArcData(t *testing.T) {
	cfg := NewConfig(WithCap(CapSquare), WithHollow(true))
	d := NewArcData(&cfg, 3, 0.5, 1.5)

	if !d.Flags.Arc() {
		t.Error("arc bit clear")
	}
	if d.StartAngle != 0.5 || d.EndAngle != 1.5 {
		t.Errorf("angles = %v..%v, want 0.5..1.5", d.StartAngle, d.EndAngle)
	}
	if d.Flags.Cap() != CapSquare {
		t.Errorf("cap = %v, want square", d.Flags.Cap())
	}
	if d.Kind() != KindDisc || d.Shader() != ShaderDisc {
		t.Errorf("Kind, Shader = %v, %v", d.Kind(), d.Shader())
	}
}

func TestDiscComponentData(t *testing.T) {
	cfg := DefaultConfig2D()
	c := NewArcComponent(&cfg, 1, 0, 1)
	recs := slices.Collect(c.Data(mgl32.Ident4(), cfg.Fill()))
	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}
	if recs[0] != NewArcData(&cfg, 1, 0, 1) {
		t.Errorf("component record = %+v, want %+v", recs[0], NewArcData(&cfg, 1, 0, 1))
	}
}
