// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"iter"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// Kind identifies a record type. Each kind has its own batch, pipeline and
// vertex layout.
type Kind uint8

const (
	KindRect Kind = iota + 1
	KindLine
	KindDisc
	KindPolyline

	// KindUser is the first kind available to record types defined outside
	// this package.
	KindUser Kind = 64
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindDisc:
		return "disc"
	case KindPolyline:
		return "polyline"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Shader identifies a shader program. Several kinds may share one program:
// lines and polyline segments are both drawn by ShaderLine.
type Shader uint8

const (
	ShaderRect Shader = iota + 1
	ShaderLine
	ShaderDisc
)

// String returns the name of the shader.
func (s Shader) String() string {
	switch s {
	case ShaderRect:
		return "rect"
	case ShaderLine:
		return "line"
	case ShaderDisc:
		return "disc"
	default:
		return "shader(" + strconv.Itoa(int(s)) + ")"
	}
}

// ShapeData is a fixed-layout record consumed by a shape shader, one per
// drawn primitive. Records are plain values: built once per frame by a
// constructor, never mutated, encoded into a batch and discarded.
//
// Kind, Shader and VertexLayout describe the record type and must not depend
// on field values, so they can be called on the zero value.
type ShapeData interface {
	// Kind returns the batch the record belongs to.
	Kind() Kind

	// Shader returns the program that draws the record.
	Shader() Shader

	// VertexLayout returns the instance attribute layout of the record.
	VertexLayout() Layout

	// Transform returns the model matrix stored in the record.
	Transform() mgl32.Mat4
}

// ShapeComponent is the persistent form of a shape, attached to an entity.
//
// Data expands the component into records for one frame, given the entity's
// world matrix and fill. The returned sequence is lazy, finite and built
// fresh on every call; it may yield any number of records.
type ShapeComponent[D ShapeData] interface {
	Data(world mgl32.Mat4, fill Fill) iter.Seq[D]
}

// recordHeader returns the fields every built-in record starts with: model
// matrix, linear color, thickness and flags. The model matrix is stored
// column-major, one Float32x4 attribute per column, as the shaders read it.
func recordHeader(world mgl32.Mat4, fill Fill, st style) (f32.Mat4, f32.Vec4, float32, Flags) {
	return f32.Mat4(world), fill.Color.Linear(), st.thickness, st.flags
}
