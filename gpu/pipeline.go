// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shader.wgsl
var shaderSource string

// vertexStride is the byte size of one vertex: pos2 + uv2 + rgba4, all
// float32.
const vertexStride = 8 * 4

// uniformSize is the byte size of the shader's Uniforms block.
const uniformSize = 4 * 4

// pipeline holds the render pipeline and its fixed bind group layout:
// screen-size uniform, atlas texture, and sampler.
type pipeline struct {
	module   *wgpu.ShaderModule
	bgLayout *wgpu.BindGroupLayout
	layout   *wgpu.PipelineLayout
	render   *wgpu.RenderPipeline
}

func newPipeline(dev *Device, format wgpu.TextureFormat) (*pipeline, error) {
	p := &pipeline{}
	device := dev.WGPU()

	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "ui",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: shader compilation failed: %w", err)
	}
	p.module = module

	bgLayout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "ui",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uniformSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		p.release()
		return nil, fmt.Errorf("gpu: bind group layout creation failed: %w", err)
	}
	p.bgLayout = bgLayout

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "ui",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgLayout},
	})
	if err != nil {
		p.release()
		return nil, fmt.Errorf("gpu: pipeline layout creation failed: %w", err)
	}
	p.layout = layout

	render, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "ui",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: vertexStride,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.release()
		return nil, fmt.Errorf("gpu: render pipeline creation failed: %w", err)
	}
	p.render = render
	return p, nil
}

func (p *pipeline) release() {
	if p.render != nil {
		p.render.Release()
		p.render = nil
	}
	if p.layout != nil {
		p.layout.Release()
		p.layout = nil
	}
	if p.bgLayout != nil {
		p.bgLayout.Release()
		p.bgLayout = nil
	}
	if p.module != nil {
		p.module.Release()
		p.module = nil
	}
}
