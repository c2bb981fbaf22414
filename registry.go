// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/shapes/internal/shader"
)

var (
	// ErrUnknownShader is returned when a kind refers to a shader that was
	// not registered first.
	ErrUnknownShader = errors.New("shapes: unknown shader")

	// ErrDuplicateShader is returned when a shader id is registered twice.
	ErrDuplicateShader = errors.New("shapes: shader already registered")

	// ErrDuplicateKind is returned when a kind is registered twice.
	ErrDuplicateKind = errors.New("shapes: kind already registered")
)

// ShaderSource is a registered shader program.
type ShaderSource struct {
	Label string
	WGSL  string
}

// KindInfo is what the submission stage needs to draw a kind.
type KindInfo struct {
	Kind   Kind
	Shader Shader
	Layout Layout
}

// Registry maps kinds to their shader programs and vertex layouts.
//
// A registry is filled during initialization and only read afterwards;
// reads from several goroutines are safe once registration is done.
type Registry struct {
	shaders map[Shader]ShaderSource
	kinds   map[Kind]KindInfo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		shaders: make(map[Shader]ShaderSource),
		kinds:   make(map[Kind]KindInfo),
	}
}

// NewDefaultRegistry creates a registry holding the rect, line and disc
// programs and the four built-in kinds.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []struct {
		id    Shader
		label string
		wgsl  string
	}{
		{ShaderRect, "shapes_rect", shader.Rect},
		{ShaderLine, "shapes_line", shader.Line},
		{ShaderDisc, "shapes_disc", shader.Disc},
	} {
		mustRegister(r.RegisterShader(s.id, s.label, s.wgsl))
	}
	mustRegister(Register[RectData](r))
	mustRegister(Register[LineData](r))
	mustRegister(Register[DiscData](r))
	mustRegister(Register[PolylineData](r))
	return r
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// RegisterShader adds a shader program under id.
func (r *Registry) RegisterShader(id Shader, label, wgsl string) error {
	if _, ok := r.shaders[id]; ok {
		return fmt.Errorf("register shader %s: %w", id, ErrDuplicateShader)
	}
	r.shaders[id] = ShaderSource{Label: label, WGSL: wgsl}
	Logger().Debug("shapes: shader registered", "shader", id, "label", label)
	return nil
}

// Register adds record type D. Its shader must already be registered.
func Register[D ShapeData](r *Registry) error {
	var zero D
	info := KindInfo{
		Kind:   zero.Kind(),
		Shader: zero.Shader(),
		Layout: zero.VertexLayout(),
	}
	if _, ok := r.shaders[info.Shader]; !ok {
		return fmt.Errorf("register kind %s: shader %s: %w", info.Kind, info.Shader, ErrUnknownShader)
	}
	if _, ok := r.kinds[info.Kind]; ok {
		return fmt.Errorf("register kind %s: %w", info.Kind, ErrDuplicateKind)
	}
	r.kinds[info.Kind] = info
	Logger().Debug("shapes: kind registered",
		"kind", info.Kind, "shader", info.Shader,
		"stride", info.Layout.Stride, "attributes", len(info.Layout.Attributes))
	return nil
}

// Lookup returns the registration of kind k.
func (r *Registry) Lookup(k Kind) (KindInfo, bool) {
	info, ok := r.kinds[k]
	return info, ok
}

// Shader returns the program registered under id.
func (r *Registry) Shader(id Shader) (ShaderSource, bool) {
	s, ok := r.shaders[id]
	return s, ok
}

// Kinds returns every registered kind, ascending.
func (r *Registry) Kinds() []Kind {
	return slices.Sorted(maps.Keys(r.kinds))
}
