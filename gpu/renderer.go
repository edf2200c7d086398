// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/tally/tess"
	"github.com/gogpu/tally/text"
	"github.com/gogpu/tally/ui"
)

// minBufferSize is the smallest vertex or index buffer allocation.
const minBufferSize = 4096

// Renderer draws one tessellated mesh per frame into the surface,
// over a cleared background, through the shared UI pipeline.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	dev  *Device
	surf *Surface
	pipe *pipeline

	atlas     *text.Atlas
	atlasTex  *wgpu.Texture
	atlasView *wgpu.TextureView
	sampler   *wgpu.Sampler

	uniform   *wgpu.Buffer
	bindGroup *wgpu.BindGroup

	vtx    *wgpu.Buffer
	vtxCap uint64
	idx    *wgpu.Buffer
	idxCap uint64

	closed bool
}

// NewRenderer creates the pipeline and GPU resources for drawing
// meshes tessellated against the given atlas.
func NewRenderer(dev *Device, surf *Surface, atlas *text.Atlas) (*Renderer, error) {
	pipe, err := newPipeline(dev, surf.Format())
	if err != nil {
		return nil, err
	}
	r := &Renderer{dev: dev, surf: surf, pipe: pipe, atlas: atlas}
	device := dev.WGPU()

	r.uniform, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ui-uniforms",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("gpu: uniform buffer creation failed: %w", err)
	}

	r.sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "atlas",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	})
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("gpu: sampler creation failed: %w", err)
	}

	bounds := atlas.Image().Bounds()
	r.atlasTex, err = device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "atlas",
		Size: wgpu.Extent3D{
			Width:              uint32(bounds.Dx()),
			Height:             uint32(bounds.Dy()),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("gpu: atlas texture creation failed: %w", err)
	}
	r.atlasView, err = r.atlasTex.CreateView(nil)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("gpu: atlas view creation failed: %w", err)
	}

	r.bindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "ui",
		Layout: pipe.bgLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: r.uniform, Size: uniformSize},
			{Binding: 1, TextureView: r.atlasView},
			{Binding: 2, Sampler: r.sampler},
		},
	})
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("gpu: bind group creation failed: %w", err)
	}
	return r, nil
}

// Render clears the surface to the given color and draws the mesh,
// re-uploading the atlas page first if new glyphs were packed.
// Returns ErrSurfaceUnconfigured while the window has zero area.
func (r *Renderer) Render(mesh *tess.Mesh, clear ui.RGBA) error {
	if r.closed {
		return ErrClosed
	}

	view, err := r.surf.Acquire()
	if err != nil {
		return err
	}

	w, h := r.surf.Size()
	queue := r.dev.Queue()
	queue.WriteBuffer(r.uniform, 0,
		wgpu.ToBytes([]float32{float32(w), float32(h), 0, 0}))

	if r.atlas.TakeDirty() {
		r.uploadAtlas()
	}
	if !mesh.IsEmpty() {
		if err := r.uploadMesh(mesh); err != nil {
			r.surf.releaseCurrent()
			return err
		}
	}

	encoder, err := r.dev.WGPU().CreateCommandEncoder(nil)
	if err != nil {
		r.surf.releaseCurrent()
		return fmt.Errorf("gpu: command encoder creation failed: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(clear.R),
				G: float64(clear.G),
				B: float64(clear.B),
				A: float64(clear.A),
			},
		}},
	})
	if !mesh.IsEmpty() {
		pass.SetPipeline(r.pipe.render)
		pass.SetBindGroup(0, r.bindGroup, nil)
		pass.SetVertexBuffer(0, r.vtx, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(r.idx, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(uint32(len(mesh.Indices)), 1, 0, 0, 0)
	}
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		r.surf.releaseCurrent()
		return fmt.Errorf("gpu: command encoding failed: %w", err)
	}
	queue.Submit(cmd)
	cmd.Release()

	r.surf.Present()
	return nil
}

// uploadAtlas copies the whole atlas page to the GPU. The page is
// small and changes only when a new glyph is packed, so a full upload
// is simpler than tracking damaged regions.
func (r *Renderer) uploadAtlas() {
	img := r.atlas.Image()
	bounds := img.Bounds()
	r.dev.Queue().WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  r.atlasTex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: uint32(bounds.Dy()),
		},
		&wgpu.Extent3D{
			Width:              uint32(bounds.Dx()),
			Height:             uint32(bounds.Dy()),
			DepthOrArrayLayers: 1,
		},
	)
}

// uploadMesh writes vertex and index data, growing the buffers when
// the mesh outgrows them.
func (r *Renderer) uploadMesh(mesh *tess.Mesh) error {
	vbytes := wgpu.ToBytes(mesh.Vertices)
	ibytes := wgpu.ToBytes(mesh.Indices)

	var err error
	r.vtx, r.vtxCap, err = r.ensureBuffer(r.vtx, r.vtxCap,
		uint64(len(vbytes)), wgpu.BufferUsageVertex, "ui-vertices")
	if err != nil {
		return err
	}
	r.idx, r.idxCap, err = r.ensureBuffer(r.idx, r.idxCap,
		uint64(len(ibytes)), wgpu.BufferUsageIndex, "ui-indices")
	if err != nil {
		return err
	}

	queue := r.dev.Queue()
	queue.WriteBuffer(r.vtx, 0, vbytes)
	queue.WriteBuffer(r.idx, 0, ibytes)
	return nil
}

func (r *Renderer) ensureBuffer(buf *wgpu.Buffer, capacity, need uint64, usage wgpu.BufferUsage, label string) (*wgpu.Buffer, uint64, error) {
	if buf != nil && capacity >= need {
		return buf, capacity, nil
	}
	if buf != nil {
		buf.Release()
	}
	capacity = grownBufferSize(capacity, need)
	nb, err := r.dev.WGPU().CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  capacity,
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("gpu: buffer creation failed: %w", err)
	}
	return nb, capacity, nil
}

// grownBufferSize doubles from the current capacity until need fits,
// starting at minBufferSize.
func grownBufferSize(capacity, need uint64) uint64 {
	if capacity < minBufferSize {
		capacity = minBufferSize
	}
	for capacity < need {
		capacity *= 2
	}
	return capacity
}

// Close releases all GPU resources. Close is idempotent and does not
// touch the device or surface, which the caller owns.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.vtx != nil {
		r.vtx.Release()
		r.vtx = nil
	}
	if r.idx != nil {
		r.idx.Release()
		r.idx = nil
	}
	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}
	if r.atlasView != nil {
		r.atlasView.Release()
		r.atlasView = nil
	}
	if r.atlasTex != nil {
		r.atlasTex.Release()
		r.atlasTex = nil
	}
	if r.sampler != nil {
		r.sampler.Release()
		r.sampler = nil
	}
	if r.uniform != nil {
		r.uniform.Release()
		r.uniform = nil
	}
	if r.pipe != nil {
		r.pipe.release()
		r.pipe = nil
	}
}
