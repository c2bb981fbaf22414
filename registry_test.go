// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	want := []Kind{KindRect, KindLine, KindDisc, KindPolyline}
	if got := r.Kinds(); !slices.Equal(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}

	tests := []struct {
		kind   Kind
		shader Shader
		layout Layout
	}{
		{KindRect, ShaderRect, rectLayout},
		{KindLine, ShaderLine, lineLayout},
		{KindDisc, ShaderDisc, discLayout},
		{KindPolyline, ShaderLine, polylineLayout},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			info, ok := r.Lookup(tt.kind)
			if !ok {
				t.Fatal("kind not registered")
			}
			if info.Shader != tt.shader {
				t.Errorf("Shader = %v, want %v", info.Shader, tt.shader)
			}
			if info.Layout.Stride != tt.layout.Stride {
				t.Errorf("Stride = %d, want %d", info.Layout.Stride, tt.layout.Stride)
			}
			src, ok := r.Shader(info.Shader)
			if !ok || src.WGSL == "" || src.Label == "" {
				t.Errorf("shader %v: %+v, %v", info.Shader, src, ok)
			}
		})
	}
}

func TestRegisterUnknownShader(t *testing.T) {
	r := NewRegistry()
	err := Register[RectData](r)
	if !errors.Is(err, ErrUnknownShader) {
		t.Errorf("Register() error = %v, want ErrUnknownShader", err)
	}
	if _, ok := r.Lookup(KindRect); ok {
		t.Error("failed registration left a kind behind")
	}
}

func TestRegisterDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterShader(ShaderLine, "line", "// wgsl"); err != nil {
		t.Fatalf("RegisterShader() error = %v", err)
	}
	if err := r.RegisterShader(ShaderLine, "line again", "// wgsl"); !errors.Is(err, ErrDuplicateShader) {
		t.Errorf("second RegisterShader() error = %v, want ErrDuplicateShader", err)
	}

	if err := Register[LineData](r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := Register[LineData](r); !errors.Is(err, ErrDuplicateKind) {
		t.Errorf("second Register() error = %v, want ErrDuplicateKind", err)
	}
	if err := Register[PolylineData](r); err != nil {
		t.Errorf("Register() of a second kind on the same shader: %v", err)
	}
}

// userData is a record type defined outside the built-in set.
type userData struct {
	Model [16]float32
	Color [4]float32
	Extra float32
}

func (userData) Kind() Kind { return KindUser }

func (userData) Shader() Shader { return ShaderDisc }

func (userData) VertexLayout() Layout { return LayoutOf[userData]() }

func (d userData) Transform() mgl32.Mat4 { return mgl32.Mat4(d.Model) }

func TestRegisterUserKind(t *testing.T) {
	r := NewDefaultRegistry()
	if err := Register[userData](r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	info, ok := r.Lookup(KindUser)
	if !ok {
		t.Fatal("user kind not registered")
	}
	if info.Layout.Stride != 84 {
		t.Errorf("Stride = %d, want %d", info.Layout.Stride, 84)
	}
}

func TestKindString(t *testing.T) {
	if KindPolyline.String() != "polyline" || Kind(99).String() != "kind(99)" {
		t.Errorf("names: %s %s", KindPolyline, Kind(99))
	}
	if ShaderDisc.String() != "disc" || Shader(0).String() != "shader(0)" {
		t.Errorf("names: %s %s", ShaderDisc, Shader(0))
	}
}
