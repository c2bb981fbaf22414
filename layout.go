// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/gogpu/gputypes"
)

// Layout describes how one record is laid out in an instance vertex buffer.
//
// A Layout is never written by hand: LayoutOf derives it from the record
// struct, field by field, so the attribute list and the encoded bytes come
// from the same declaration and cannot drift apart.
type Layout struct {
	// Stride is the byte size of one record.
	Stride uint64

	// Attributes lists the per-instance attributes in field order. Shader
	// locations are assigned consecutively from zero.
	Attributes []gputypes.VertexAttribute
}

// LayoutOf derives the layout of record type D.
//
// Supported field types:
//
//	float32                 Float32
//	uint32                  Uint32
//	int32                   Sint32
//	[2|3|4]float32          Float32x2, Float32x3, Float32x4
//	[2|3|4]uint32           Uint32x2, Uint32x3, Uint32x4
//	[16]float32             four Float32x4 columns
//
// Any other field, or padding between fields, is a programming error and
// panics.
func LayoutOf[D any]() Layout {
	l, err := deriveLayout(reflect.TypeFor[D]())
	if err != nil {
		panic(err)
	}
	return l
}

func deriveLayout(t reflect.Type) (Layout, error) {
	if t.Kind() != reflect.Struct {
		return Layout{}, fmt.Errorf("shapes: layout of %s: not a struct", t)
	}

	var (
		l        Layout
		location uint32
		next     uintptr
	)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			return Layout{}, fmt.Errorf("shapes: layout of %s: field %s is unexported", t, f.Name)
		}
		if f.Offset != next {
			return Layout{}, fmt.Errorf("shapes: layout of %s: padding before field %s", t, f.Name)
		}
		formats, err := fieldFormats(f.Type)
		if err != nil {
			return Layout{}, fmt.Errorf("shapes: layout of %s: field %s: %w", t, f.Name, err)
		}
		offset := uint64(f.Offset)
		for _, format := range formats {
			l.Attributes = append(l.Attributes, gputypes.VertexAttribute{
				Format:         format,
				Offset:         offset,
				ShaderLocation: location,
			})
			offset += formatSize(format)
			location++
		}
		next = f.Offset + f.Type.Size()
	}
	if next != t.Size() {
		return Layout{}, fmt.Errorf("shapes: layout of %s: trailing padding", t)
	}
	l.Stride = uint64(t.Size())
	return l, nil
}

func fieldFormats(t reflect.Type) ([]gputypes.VertexFormat, error) {
	switch t.Kind() {
	case reflect.Float32:
		return []gputypes.VertexFormat{gputypes.VertexFormatFloat32}, nil
	case reflect.Uint32:
		return []gputypes.VertexFormat{gputypes.VertexFormatUint32}, nil
	case reflect.Int32:
		return []gputypes.VertexFormat{gputypes.VertexFormatSint32}, nil
	case reflect.Array:
		switch t.Elem().Kind() {
		case reflect.Float32:
			switch t.Len() {
			case 2:
				return []gputypes.VertexFormat{gputypes.VertexFormatFloat32x2}, nil
			case 3:
				return []gputypes.VertexFormat{gputypes.VertexFormatFloat32x3}, nil
			case 4:
				return []gputypes.VertexFormat{gputypes.VertexFormatFloat32x4}, nil
			case 16:
				col := gputypes.VertexFormatFloat32x4
				return []gputypes.VertexFormat{col, col, col, col}, nil
			}
		case reflect.Uint32:
			switch t.Len() {
			case 2:
				return []gputypes.VertexFormat{gputypes.VertexFormatUint32x2}, nil
			case 3:
				return []gputypes.VertexFormat{gputypes.VertexFormatUint32x3}, nil
			case 4:
				return []gputypes.VertexFormat{gputypes.VertexFormatUint32x4}, nil
			}
		}
	}
	return nil, fmt.Errorf("unsupported type %s", t)
}

// formatSize returns the byte size of the vertex formats LayoutOf emits.
func formatSize(f gputypes.VertexFormat) uint64 {
	switch f {
	case gputypes.VertexFormatFloat32, gputypes.VertexFormatUint32, gputypes.VertexFormatSint32:
		return 4
	case gputypes.VertexFormatFloat32x2, gputypes.VertexFormatUint32x2:
		return 8
	case gputypes.VertexFormatFloat32x3, gputypes.VertexFormatUint32x3:
		return 12
	case gputypes.VertexFormatFloat32x4, gputypes.VertexFormatUint32x4:
		return 16
	default:
		return 0
	}
}

// Size returns the byte size of one record, the sum of all attribute sizes.
func (l Layout) Size() uint64 {
	var n uint64
	for _, a := range l.Attributes {
		n += formatSize(a.Format)
	}
	return n
}

// BufferLayout returns the layout as an instance-stepped vertex buffer
// layout for pipeline creation.
func (l Layout) BufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: l.Stride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes:  l.Attributes,
	}
}

// Encode appends the little-endian bytes of records to dst. The bytes of each
// record follow the Attributes of the layout derived from D.
func Encode[D any](dst []byte, records []D) []byte {
	if len(records) == 0 {
		return dst
	}
	out, err := binary.Append(dst, binary.LittleEndian, records)
	if err != nil {
		// LayoutOf accepted D, so every field is fixed size.
		panic(fmt.Sprintf("shapes: encode %T: %v", records, err))
	}
	return out
}
