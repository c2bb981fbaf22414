// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

func makeStrip(n int) []mgl32.Vec3 {
	strip := make([]mgl32.Vec3, n)
	for i := range strip {
		strip[i] = mgl32.Vec3{float32(i), float32(i * i), 0}
	}
	return strip
}

func TestSegmentsCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 100} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			got := 0
			for range Segments(makeStrip(n)) {
				got++
			}
			want := max(n-1, 0)
			if got != want {
				t.Errorf("segments = %d, want %d", got, want)
			}
		})
	}
}

func TestSegmentsOrder(t *testing.T) {
	strip := makeStrip(5)
	i := 0
	for start, end := range Segments(strip) {
		if start != strip[i] || end != strip[i+1] {
			t.Errorf("segment %d = [%v, %v], want [%v, %v]", i, start, end, strip[i], strip[i+1])
		}
		i++
	}
}

func TestSegmentsEarlyBreak(t *testing.T) {
	n := 0
	for range Segments(makeStrip(10)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d segments, want 3", n)
	}
}

func TestPolylineComponentData(t *testing.T) {
	cfg := NewConfig(WithThickness(0.5, Screen), WithColor(Red))
	strip := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	c := NewPolylineComponent(&cfg, strip)

	recs := slices.Collect(c.Data(cfg.Transform.Matrix(), cfg.Stroke()))
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}

	wantPairs := [][2]f32.Vec3{
		{{0, 0, 0}, {1, 0, 0}},
		{{1, 0, 0}, {1, 1, 0}},
	}
	for i, r := range recs {
		if r.Start != wantPairs[i][0] || r.End != wantPairs[i][1] {
			t.Errorf("segment %d = [%v, %v], want %v", i, r.Start, r.End, wantPairs[i])
		}
		if r.Thickness != 0.5 {
			t.Errorf("segment %d thickness = %v, want 0.5", i, r.Thickness)
		}
		if r.Flags.ThicknessType() != Screen {
			t.Errorf("segment %d thickness type = %v, want screen", i, r.Flags.ThicknessType())
		}
		if !r.Flags.Hollow() {
			t.Errorf("segment %d: hollow bit clear on a stroke", i)
		}
		if r.Flags.Cap() != CapRound {
			t.Errorf("segment %d cap = %v, want round", i, r.Flags.Cap())
		}
	}
}

func TestPolylineSolidFill(t *testing.T) {
	cfg := NewConfig(WithThickness(4, Screen), WithColor(Green))
	c := NewPolylineComponent(&cfg, makeStrip(5))

	recs := slices.Collect(c.Data(cfg.Transform.Matrix(), SolidFill(Green)))
	if len(recs) != 4 {
		t.Fatalf("len = %d, want 4", len(recs))
	}
	for i, r := range recs {
		if r.Thickness != solidThickness {
			t.Errorf("segment %d thickness = %v, want %v", i, r.Thickness, solidThickness)
		}
		if r.Flags.Hollow() {
			t.Errorf("segment %d: hollow bit set on a solid fill", i)
		}
		if r.Flags.ThicknessType() != World {
			t.Errorf("segment %d thickness type = %v, want world", i, r.Flags.ThicknessType())
		}
		if r.Thickness != recs[0].Thickness || r.Flags != recs[0].Flags || r.Color != recs[0].Color {
			t.Errorf("segment %d style differs from segment 0", i)
		}
	}
}

func TestPolylineStyleInvariance(t *testing.T) {
	cfg := NewConfig(WithThickness(2, Pixels), WithAlignment(Billboard), WithCap(CapSquare), WithColor(Hex("#336699")))
	c := NewPolylineComponent(&cfg, makeStrip(50))

	recs := slices.Collect(c.Data(cfg.Transform.Matrix(), cfg.Stroke()))
	first := recs[0]
	for i, r := range recs[1:] {
		if r.Model != first.Model || r.Color != first.Color || r.Thickness != first.Thickness || r.Flags != first.Flags {
			t.Fatalf("segment %d style differs from segment 0", i+1)
		}
	}
}

func TestPolylineEmptyAndSingleton(t *testing.T) {
	for _, strip := range [][]mgl32.Vec3{nil, {}, {{1, 2, 3}}} {
		q := NewQueue()
		p := NewPainter(q)
		p.Polyline(strip)
		if q.Len(KindPolyline) != 0 {
			t.Errorf("painter: %d records for strip of %d points", q.Len(KindPolyline), len(strip))
		}

		w := newTestWorld()
		s := NewSpawner(w)
		s.Polyline(strip)
		q.Reset()
		w.extract(q)
		if q.Len(KindPolyline) != 0 {
			t.Errorf("spawner: %d records for strip of %d points", q.Len(KindPolyline), len(strip))
		}
	}
}

func TestPolylineImmediateMatchesPersistent(t *testing.T) {
	configs := []struct {
		name string
		opts []ConfigOption
		edit func(*ShapeConfig)
	}{
		{"defaults", nil, nil},
		{"screen thickness", []ConfigOption{WithThickness(0.5, Screen)}, nil},
		{"pixels billboard", []ConfigOption{WithThickness(3, Pixels), WithAlignment(Billboard), WithCap(CapNone)}, nil},
		{"hollow ignored", []ConfigOption{WithHollow(true), WithColor(Blue.WithAlpha(0.25))}, nil},
		{"transformed", nil, func(c *ShapeConfig) {
			c.Translate(mgl32.Vec3{1, 2, 3})
			c.RotateZ(0.7)
			c.Scale(mgl32.Vec3{2, 2, 1})
		}},
	}

	strip := []mgl32.Vec3{{0, 0, 0}, {1, 0.5, 0}, {2, -1, 0}, {3, 4, 0}}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			q1 := NewQueue()
			p := NewPainter(q1, tc.opts...)
			if tc.edit != nil {
				tc.edit(p.Config())
			}
			p.Polyline(strip)

			w := newTestWorld()
			s := NewSpawner(w, tc.opts...)
			if tc.edit != nil {
				tc.edit(s.Config())
			}
			s.Polyline(strip)
			q2 := NewQueue()
			w.extract(q2)

			imm := BatchOf[PolylineData](q1).Records()
			per := BatchOf[PolylineData](q2).Records()
			if !slices.Equal(imm, per) {
				t.Fatalf("records differ:\nimmediate  %+v\npersistent %+v", imm, per)
			}
			if !bytes.Equal(q1.Encode(KindPolyline, nil), q2.Encode(KindPolyline, nil)) {
				t.Error("encoded bytes differ")
			}
		})
	}
}

func TestNewPolylineDataMatchesPainter(t *testing.T) {
	cfg := NewConfig(WithThickness(0.2, World))
	q := NewQueue()
	p := NewPainter(q, WithThickness(0.2, World))
	p.Polyline([]mgl32.Vec3{{0, 0, 0}, {1, 1, 1}})

	want := NewPolylineData(&cfg, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	got := BatchOf[PolylineData](q).Records()
	if len(got) != 1 || got[0] != want {
		t.Errorf("painter record = %+v, want %+v", got, want)
	}
}

func TestPolylineStripMutation(t *testing.T) {
	w := newTestWorld()
	s := NewSpawner(w)
	spawned := s.Polyline(makeStrip(3))

	q := NewQueue()
	w.extract(q)
	if q.Len(KindPolyline) != 2 {
		t.Fatalf("frame 1: %d records, want 2", q.Len(KindPolyline))
	}

	spawned.Bundle.Shape.Strip = append(spawned.Bundle.Shape.Strip, mgl32.Vec3{9, 9, 9})
	q.Reset()
	w.extract(q)
	recs := BatchOf[PolylineData](q).Records()
	if len(recs) != 3 {
		t.Fatalf("frame 2: %d records, want 3", len(recs))
	}
	if recs[2].End != (f32.Vec3{9, 9, 9}) {
		t.Errorf("last segment end = %v, want {9 9 9}", recs[2].End)
	}
}

func TestPolylineDataEarlyBreak(t *testing.T) {
	cfg := DefaultConfig2D()
	c := NewPolylineComponent(&cfg, makeStrip(20))
	n := 0
	for range c.Data(mgl32.Ident4(), cfg.Stroke()) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("visited %d records, want 5", n)
	}
}

func TestPolylineDataIsRepeatable(t *testing.T) {
	cfg := DefaultConfig2D()
	c := NewPolylineComponent(&cfg, makeStrip(4))
	seq := c.Data(mgl32.Ident4(), cfg.Stroke())
	a := slices.Collect(seq)
	b := slices.Collect(seq)
	if !slices.Equal(a, b) {
		t.Error("second iteration differs from the first")
	}
}

func BenchmarkPainterPolyline(b *testing.B) {
	strip := makeStrip(256)
	q := NewQueue()
	p := NewPainter(q)
	b.ReportAllocs()
	for b.Loop() {
		q.Reset()
		p.Polyline(strip)
	}
}

func BenchmarkPolylineExtract(b *testing.B) {
	w := newTestWorld()
	s := NewSpawner(w)
	s.Polyline(makeStrip(256))
	q := NewQueue()
	b.ReportAllocs()
	for b.Loop() {
		q.Reset()
		w.extract(q)
	}
}

func BenchmarkEncodePolyline(b *testing.B) {
	cfg := DefaultConfig2D()
	c := NewPolylineComponent(&cfg, makeStrip(256))
	recs := slices.Collect(c.Data(mgl32.Ident4(), cfg.Stroke()))
	buf := make([]byte, 0, len(recs)*int(polylineLayout.Stride))
	b.ReportAllocs()
	for b.Loop() {
		buf = Encode(buf[:0], recs)
	}
}
