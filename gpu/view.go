package gpu

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
)

// viewSize is the byte size of the view uniform.
const viewSize = 112

// View is the per-frame camera uniform shared by every shape program.
type View struct {
	// ViewProj maps world space to clip space, column-major.
	ViewProj [16]float32

	// Right and Up are the camera axes in world space, used by billboards.
	Right [4]float32
	Up    [4]float32

	// Viewport holds the target width and height in pixels and the
	// projection's Y scale.
	Viewport [4]float32
}

// NewView builds a view from a view-projection matrix, the camera axes and
// the target size in pixels.
func NewView(viewProj mgl32.Mat4, right, up mgl32.Vec3, width, height float32) View {
	return View{
		ViewProj: viewProj,
		Right:    [4]float32{right[0], right[1], right[2], 0},
		Up:       [4]float32{up[0], up[1], up[2], 0},
		Viewport: [4]float32{width, height, viewProj[5], 0},
	}
}

// Ortho2D builds a view looking down -Z at the rectangle [left, right] x
// [bottom, top], rendered into a target of width x height pixels.
func Ortho2D(left, right, bottom, top, width, height float32) View {
	return NewView(
		mgl32.Ortho(left, right, bottom, top, -1000, 1000),
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{0, 1, 0},
		width, height,
	)
}

// bytes returns the little-endian uniform contents.
func (v View) bytes() []byte {
	b, err := binary.Append(make([]byte, 0, viewSize), binary.LittleEndian, v)
	if err != nil {
		panic("gpu: encode view: " + err.Error())
	}
	return b
}
