//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/shapes"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrNoHAL is returned when a device provider does not expose its HAL
	// device and queue.
	ErrNoHAL = errors.New("gpu: provider does not expose HAL types")

	// ErrRendererClosed is returned by a Renderer after Destroy.
	ErrRendererClosed = errors.New("gpu: renderer closed")

	// ErrLayoutMismatch is returned when the bytes queued for a kind do not
	// match the stride registered for it.
	ErrLayoutMismatch = errors.New("gpu: record size does not match registered layout")
)

// halProvider is implemented by device providers that share their HAL
// device, such as the gogpu application window.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewRendererFromProvider creates a renderer on the device of an external
// provider. The pipelines target the provider's surface format unless
// WithFormat overrides it. The renderer does not own the device.
func NewRendererFromProvider(provider gpucontext.DeviceProvider, reg *shapes.Registry, opts ...Option) (*Renderer, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}

	all := make([]Option, 0, len(opts)+1)
	var unset gputypes.TextureFormat
	if f := provider.SurfaceFormat(); f != unset {
		all = append(all, WithFormat(f))
	}
	all = append(all, opts...)
	return NewRenderer(device, queue, reg, all...), nil
}
