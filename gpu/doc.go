// Package gpu uploads shape batches to the GPU and draws them.
//
// A [Renderer] holds one render pipeline per registered shape kind, built
// lazily from the [shapes.Registry]: the kind's program, the shared view
// uniform and one instance-stepped vertex buffer laid out by the kind's
// record type. Each frame the host calls [Renderer.Prepare] with the
// frame's [shapes.Queue] and then [Renderer.Record] inside its render pass:
//
//	r, err := gpu.NewRendererFromProvider(provider, shapes.NewDefaultRegistry())
//	...
//	if err := r.Prepare(q, gpu.Ortho2D(-w/2, w/2, -h/2, h/2, w, h)); err != nil {
//	    return err
//	}
//	r.Record(pass)
//	q.Reset()
//
// Kinds are drawn in ascending kind order, six vertices per record.
package gpu
