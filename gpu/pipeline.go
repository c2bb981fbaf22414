//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/shader"
	"github.com/gogpu/wgpu/hal"
)

// ensureShared creates the objects every kind shares: the view uniform
// buffer, its bind group layout and bind group, and the pipeline layout.
func (r *Renderer) ensureShared() error {
	if r.viewGroup != nil {
		return nil
	}

	viewLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "shapes_view_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create view bind group layout: %w", err)
	}
	r.viewLayout = viewLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "shapes_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.viewLayout},
	})
	if err != nil {
		r.destroyShared()
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	viewBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "shapes_view_uniform",
		Size:  viewSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		r.destroyShared()
		return fmt.Errorf("create view buffer: %w", err)
	}
	r.viewBuf = viewBuf

	viewGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "shapes_view_bind",
		Layout: r.viewLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: r.viewBuf.NativeHandle(), Offset: 0, Size: viewSize,
			}},
		},
	})
	if err != nil {
		r.destroyShared()
		return fmt.Errorf("create view bind group: %w", err)
	}
	r.viewGroup = viewGroup
	return nil
}

// ensureModule returns the shader module of program id, creating it on
// first use. Kinds sharing a program share the module.
func (r *Renderer) ensureModule(id shapes.Shader) (hal.ShaderModule, error) {
	if m, ok := r.modules[id]; ok {
		return m, nil
	}
	src, ok := r.reg.Shader(id)
	if !ok {
		return nil, fmt.Errorf("shader %s: %w", id, shapes.ErrUnknownShader)
	}

	desc := &hal.ShaderModuleDescriptor{Label: src.Label}
	if r.opts.spirv {
		words, err := shader.CompileSPIRV(src.WGSL)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", src.Label, err)
		}
		desc.Source = hal.ShaderSource{SPIRV: words}
	} else {
		desc.Source = hal.ShaderSource{WGSL: src.WGSL}
	}

	m, err := r.device.CreateShaderModule(desc)
	if err != nil {
		return nil, fmt.Errorf("create shader module %s: %w", src.Label, err)
	}
	r.modules[id] = m
	r.opts.log().Debug("gpu: shader module created", "shader", id, "label", src.Label, "spirv", r.opts.spirv)
	return m, nil
}

// ensurePipeline returns the render pipeline of a registered kind, creating
// it on first use.
func (r *Renderer) ensurePipeline(info shapes.KindInfo) (hal.RenderPipeline, error) {
	if p, ok := r.pipelines[info.Kind]; ok {
		return p, nil
	}
	module, err := r.ensureModule(info.Shader)
	if err != nil {
		return nil, err
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	p, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "shapes_" + info.Kind.String() + "_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: shader.VertexEntry,
			Buffers:    []gputypes.VertexBufferLayout{info.Layout.BufferLayout()},
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: shader.FragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.opts.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: r.opts.sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s pipeline: %w", info.Kind, err)
	}
	r.pipelines[info.Kind] = p
	r.opts.log().Debug("gpu: pipeline created",
		"kind", info.Kind, "shader", info.Shader,
		"stride", info.Layout.Stride, "format", r.opts.format, "samples", r.opts.sampleCount)
	return p, nil
}

// destroyShared releases the shared objects in reverse creation order.
func (r *Renderer) destroyShared() {
	if r.viewGroup != nil {
		r.device.DestroyBindGroup(r.viewGroup)
		r.viewGroup = nil
	}
	if r.viewBuf != nil {
		r.device.DestroyBuffer(r.viewBuf)
		r.viewBuf = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.viewLayout != nil {
		r.device.DestroyBindGroupLayout(r.viewLayout)
		r.viewLayout = nil
	}
}
