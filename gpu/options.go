package gpu

import (
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/shapes"
)

// Default render target settings.
const (
	DefaultFormat      = gputypes.TextureFormatBGRA8Unorm
	DefaultSampleCount = 1
)

type options struct {
	format      gputypes.TextureFormat
	sampleCount uint32
	spirv       bool
	workers     int
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		format:      DefaultFormat,
		sampleCount: DefaultSampleCount,
	}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := gpu.NewRenderer(device, queue, reg,
//	    gpu.WithFormat(gputypes.TextureFormatRGBA8Unorm),
//	    gpu.WithSampleCount(4),
//	)
type Option func(*options)

// WithFormat sets the color target format of the pipelines.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithSampleCount sets the MSAA sample count of the pipelines. Zero keeps
// the default.
func WithSampleCount(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.sampleCount = n
		}
	}
}

// WithSPIRV compiles the WGSL programs to SPIR-V before creating shader
// modules, for backends that do not consume WGSL.
func WithSPIRV() Option {
	return func(o *options) {
		o.spirv = true
	}
}

// WithEncodeWorkers encodes the batches of different kinds on n goroutines.
// Values below 2 encode on the calling goroutine.
func WithEncodeWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the renderer's logger. By default it uses shapes.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return shapes.Logger()
}
