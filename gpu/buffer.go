//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/shapes"
	"github.com/gogpu/wgpu/hal"
)

// minInstanceBufferSize is the smallest instance buffer allocated.
const minInstanceBufferSize = 4096

// instanceBuffer is the reusable vertex buffer of one kind. It only grows.
type instanceBuffer struct {
	buf  hal.Buffer
	size uint64
}

// ensure makes the buffer hold at least n bytes, doubling its size until it
// fits. The contents are not preserved.
func (b *instanceBuffer) ensure(r *Renderer, kind shapes.Kind, n uint64) error {
	if b.buf != nil && b.size >= n {
		return nil
	}
	size := max(b.size, minInstanceBufferSize)
	for size < n {
		size *= 2
	}

	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "shapes_" + kind.String() + "_instances",
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create %s instance buffer: %w", kind, err)
	}
	if b.buf != nil {
		r.device.DestroyBuffer(b.buf)
	}
	r.opts.log().Debug("gpu: instance buffer grown", "kind", kind, "from", b.size, "to", size)
	b.buf = buf
	b.size = size
	return nil
}

func (b *instanceBuffer) destroy(device hal.Device) {
	if b.buf != nil {
		device.DestroyBuffer(b.buf)
		b.buf = nil
		b.size = 0
	}
}
