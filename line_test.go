package shapes

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

func TestNewLineData(t *testing.T) {
	tests := []struct {
		name string
		cfg  ShapeConfig
		want func(t *testing.T, d LineData)
	}{
		{
			name: "defaults",
			cfg:  DefaultConfig2D(),
			want: func(t *testing.T, d LineData) {
				if d.Thickness != 1 || d.Flags.Cap() != CapRound || !d.Flags.Hollow() {
					t.Errorf("thickness %v flags %#b", d.Thickness, uint32(d.Flags))
				}
			},
		},
		{
			name: "3d defaults",
			cfg:  DefaultConfig3D(),
			want: func(t *testing.T, d LineData) {
				if d.Thickness != 0.1 {
					t.Errorf("Thickness = %v, want 0.1", d.Thickness)
				}
			},
		},
		{
			name: "hollow flag does not change lines",
			cfg:  NewConfig(WithHollow(true), WithThickness(0.5, Screen)),
			want: func(t *testing.T, d LineData) {
				if d.Thickness != 0.5 || d.Flags.ThicknessType() != Screen || !d.Flags.Hollow() {
					t.Errorf("thickness %v flags %#b", d.Thickness, uint32(d.Flags))
				}
			},
		},
		{
			name: "square cap billboard",
			cfg:  NewConfig(WithCap(CapSquare), WithAlignment(Billboard)),
			want: func(t *testing.T, d LineData) {
				if d.Flags.Cap() != CapSquare || d.Flags.Alignment() != Billboard {
					t.Errorf("flags %#b", uint32(d.Flags))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewLineData(&tt.cfg, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6})
			if d.Start != (f32.Vec3{1, 2, 3}) || d.End != (f32.Vec3{4, 5, 6}) {
				t.Errorf("endpoints = %v, %v", d.Start, d.End)
			}
			tt.want(t, d)
		})
	}
}

func TestLineAndPolylineShareProgram(t *testing.T) {
	if (LineData{}).Shader() != (PolylineData{}).Shader() {
		t.Error("line and polyline use different programs")
	}
	if (LineData{}).Kind() == (PolylineData{}).Kind() {
		t.Error("line and polyline share a batch")
	}

	cfg := NewConfig(WithThickness(0.3, Pixels))
	l := NewLineData(&cfg, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{2, 3, 0})
	p := NewPolylineData(&cfg, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{2, 3, 0})
	if !bytes.Equal(Encode(nil, []LineData{l}), Encode(nil, []PolylineData{p})) {
		t.Error("line and polyline segment encode differently")
	}
}
