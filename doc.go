// Package shapes encodes 2D vector shapes into fixed-layout GPU records and
// batches them per shape kind.
//
// # Overview
//
// Shapes are declared either immediately, through a [Painter] that encodes
// records for the current frame only, or persistently, through a [Spawner]
// that hands a [Bundle] to the host's entity store. Persistent shapes are
// expanded into records again on every frame, so their geometry can be
// edited in place.
//
//	q := shapes.NewQueue()
//	p := shapes.NewPainter(q)
//	p.Color = shapes.Hex("#ff8800")
//	p.Thickness = 0.25
//	p.Polyline([]mgl32.Vec3{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}})
//	p.Hollow = true
//	p.Circle(0.5)
//
// Both paths call the same encoders, so for the same config and geometry
// they produce identical records.
//
// # Records
//
// Every kind has a record type ([RectData], [LineData], [DiscData],
// [PolylineData]) whose exported fields are its GPU layout. [LayoutOf]
// derives the vertex attributes from the struct and [Encode] writes the
// matching bytes, so the two cannot disagree. Style options are packed into
// one [Flags] word.
//
// # Batching
//
// A [Queue] holds one batch per kind in submission order. The gpu
// sub-package uploads the batches and draws them with the programs held by a
// [Registry].
//
// # Coordinate System
//
// Shapes lie in the XY plane of their transform; +Y is up and angles are
// radians counter-clockwise from +X.
package shapes
