// Package shader holds the WGSL programs of the built-in shape kinds and
// compiles them for backends that take SPIR-V.
//
// Every program reads the same view uniform at group 0, binding 0 and one
// instance-stepped vertex buffer whose attribute locations follow the field
// order of the matching record type.
package shader

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Rect draws rectangle records.
//
//go:embed shaders/rect.wgsl
var Rect string

// Line draws line and polyline segment records.
//
//go:embed shaders/line.wgsl
var Line string

// Disc draws disc and arc records.
//
//go:embed shaders/disc.wgsl
var Disc string

// Entry points shared by every program.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// VerticesPerInstance is the number of vertices drawn per record: two
// triangles forming the shape's bounding quad.
const VerticesPerInstance = 6

// CompileSPIRV compiles WGSL source to SPIR-V words.
func CompileSPIRV(wgsl string) ([]uint32, error) {
	if wgsl == "" {
		return nil, fmt.Errorf("shader: empty source")
	}
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V size %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
