//go:build !nogpu

package gpu

import (
	"fmt"
	"slices"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/parallel"
	"github.com/gogpu/shapes/internal/shader"
	"github.com/gogpu/wgpu/hal"
)

// Stats describes the last prepared frame.
type Stats struct {
	// Draws is the number of draw calls Record issues, one per kind.
	Draws int
	// Instances is the number of records uploaded.
	Instances int
	// Bytes is the number of instance bytes uploaded.
	Bytes int
	// Skipped lists kinds that had records but no registration.
	Skipped []shapes.Kind
}

// batch is one kind's records encoded for upload.
type batch struct {
	info  shapes.KindInfo
	count int
	data  []byte
}

// draw is one prepared kind.
type draw struct {
	kind     shapes.Kind
	pipeline hal.RenderPipeline
	buf      hal.Buffer
	count    uint32
}

// Renderer draws shape batches with one pipeline per kind.
//
// A Renderer is driven by the render submission stage and is not safe for
// concurrent use.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	reg    *shapes.Registry
	opts   options

	viewLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	viewBuf    hal.Buffer
	viewGroup  hal.BindGroup

	modules   map[shapes.Shader]hal.ShaderModule
	pipelines map[shapes.Kind]hal.RenderPipeline
	buffers   map[shapes.Kind]*instanceBuffer

	pool    *parallel.Pool
	batches []batch
	staging map[shapes.Kind][]byte
	draws   []draw
	stats   Stats
	closed  bool
}

// NewRenderer creates a renderer on device and queue for the kinds in reg.
// GPU objects are created on first use; the renderer does not own the
// device.
func NewRenderer(device hal.Device, queue hal.Queue, reg *shapes.Registry, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		device:    device,
		queue:     queue,
		reg:       reg,
		opts:      o,
		modules:   make(map[shapes.Shader]hal.ShaderModule),
		pipelines: make(map[shapes.Kind]hal.RenderPipeline),
		buffers:   make(map[shapes.Kind]*instanceBuffer),
		staging:   make(map[shapes.Kind][]byte),
	}
	if o.workers > 1 {
		r.pool = parallel.NewPool(o.workers)
		o.log().Debug("gpu: parallel encoding", "workers", o.workers)
	}
	return r
}

// Prepare uploads the view uniform and every non-empty batch of q. Kinds
// without a registration are skipped with a warning. The queue is not
// modified; reset it after the frame.
func (r *Renderer) Prepare(q *shapes.Queue, view View) error {
	if r.closed {
		return ErrRendererClosed
	}
	if err := r.ensureShared(); err != nil {
		return fmt.Errorf("gpu: prepare: %w", err)
	}
	r.queue.WriteBuffer(r.viewBuf, 0, view.bytes())

	r.draws = r.draws[:0]
	r.batches = r.batches[:0]
	r.stats = Stats{}
	for _, k := range q.Kinds() {
		info, ok := r.reg.Lookup(k)
		if !ok {
			r.stats.Skipped = append(r.stats.Skipped, k)
			r.opts.log().Warn("gpu: skipping unregistered kind", "kind", k, "records", q.Len(k))
			continue
		}
		r.batches = append(r.batches, batch{info: info, count: q.Len(k)})
	}

	r.encode(q)
	for i := range r.batches {
		b := &r.batches[i]
		r.staging[b.info.Kind] = b.data
		if err := r.upload(b); err != nil {
			r.draws = r.draws[:0]
			r.stats = Stats{}
			return fmt.Errorf("gpu: prepare %s: %w", b.info.Kind, err)
		}
	}
	return nil
}

// encode fills the data of every pending batch, on the pool when there is
// more than one kind.
func (r *Renderer) encode(q *shapes.Queue) {
	if r.pool == nil || len(r.batches) < 2 {
		for i := range r.batches {
			b := &r.batches[i]
			b.data = q.Encode(b.info.Kind, r.staging[b.info.Kind][:0])
		}
		return
	}
	jobs := make([]func(), len(r.batches))
	for i := range r.batches {
		b := &r.batches[i]
		dst := r.staging[b.info.Kind][:0]
		jobs[i] = func() { b.data = q.Encode(b.info.Kind, dst) }
	}
	r.pool.Run(jobs)
}

func (r *Renderer) upload(b *batch) error {
	pipeline, err := r.ensurePipeline(b.info)
	if err != nil {
		return err
	}
	if want := b.info.Layout.Stride * uint64(b.count); uint64(len(b.data)) != want {
		return fmt.Errorf("%d bytes for %d records of stride %d: %w",
			len(b.data), b.count, b.info.Layout.Stride, ErrLayoutMismatch)
	}

	ib, ok := r.buffers[b.info.Kind]
	if !ok {
		ib = &instanceBuffer{}
		r.buffers[b.info.Kind] = ib
	}
	if err := ib.ensure(r, b.info.Kind, uint64(len(b.data))); err != nil {
		return err
	}
	r.queue.WriteBuffer(ib.buf, 0, b.data)

	r.draws = append(r.draws, draw{
		kind:     b.info.Kind,
		pipeline: pipeline,
		buf:      ib.buf,
		count:    uint32(b.count), //nolint:gosec // record count fits uint32
	})
	r.stats.Draws++
	r.stats.Instances += b.count
	r.stats.Bytes += len(b.data)
	return nil
}

// Record draws the prepared kinds into rp in ascending kind order. It is a
// no-op before the first Prepare and after Destroy.
func (r *Renderer) Record(rp hal.RenderPassEncoder) {
	if r.closed || len(r.draws) == 0 {
		return
	}
	rp.SetBindGroup(0, r.viewGroup, nil)
	for _, d := range r.draws {
		rp.SetPipeline(d.pipeline)
		rp.SetVertexBuffer(0, d.buf, 0)
		rp.Draw(shader.VerticesPerInstance, d.count, 0, 0)
	}
}

// Stats returns the statistics of the last Prepare.
func (r *Renderer) Stats() Stats {
	s := r.stats
	s.Skipped = slices.Clone(s.Skipped)
	return s
}

// Kinds returns the kinds with a created pipeline, ascending.
func (r *Renderer) Kinds() []shapes.Kind {
	kinds := make([]shapes.Kind, 0, len(r.pipelines))
	for k := range r.pipelines {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Destroy releases every GPU object in reverse creation order. It is safe
// to call more than once.
func (r *Renderer) Destroy() {
	if r.closed {
		return
	}
	r.closed = true
	r.draws = nil
	if r.pool != nil {
		r.pool.Close()
	}

	for k, b := range r.buffers {
		b.destroy(r.device)
		delete(r.buffers, k)
	}
	for k, p := range r.pipelines {
		r.device.DestroyRenderPipeline(p)
		delete(r.pipelines, k)
	}
	for id, m := range r.modules {
		r.device.DestroyShaderModule(m)
		delete(r.modules, id)
	}
	r.destroyShared()
	r.opts.log().Debug("gpu: renderer destroyed")
}
