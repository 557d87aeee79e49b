// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Errors returned by Program.
var (
	ErrUnavailable = errors.New("gpu: no usable GPU adapter")
	ErrClosed      = errors.New("gpu: program closed")
)

// submitTimeout bounds the wait for one dispatch.
const submitTimeout = 5 * time.Second

// Program is a compiled compute pipeline plus the device it runs on.
// Run calls are serialized.
type Program struct {
	mu    sync.Mutex
	label string

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	external bool // device is shared; Close leaves it alone
}

// Open creates a Vulkan device on the first discrete or integrated adapter
// and compiles wgsl for it.
func Open(label, wgsl string) (*Program, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not registered", ErrUnavailable)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", ErrUnavailable, err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters", ErrUnavailable)
	}
	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("%w: open device: %w", ErrUnavailable, err)
	}

	p := &Program{label: label, instance: instance, device: openDev.Device, queue: openDev.Queue}
	if err := p.createPipeline(wgsl); err != nil {
		p.Close()
		return nil, err
	}
	slogger().Info("gpu: program ready", "label", label, "adapter", selected.Info.Name)
	return p, nil
}

// NewProgram compiles wgsl on a device owned by the caller. Close releases
// the pipeline but not the device.
func NewProgram(device hal.Device, queue hal.Queue, label, wgsl string) (*Program, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("%w: nil device or queue", ErrUnavailable)
	}
	p := &Program{label: label, device: device, queue: queue, external: true}
	if err := p.createPipeline(wgsl); err != nil {
		p.Close()
		return nil, err
	}
	slogger().Debug("gpu: program ready on shared device", "label", label)
	return p, nil
}

func (p *Program) createPipeline(wgsl string) error {
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.label,
		Source: hal.ShaderSource{WGSL: wgsl},
	})
	if err != nil {
		return fmt.Errorf("gpu: compile %s shader: %w", p.label, err)
	}
	p.shader = shader

	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: p.label + "_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: p.label + "_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: p.label + "_pipeline", Layout: p.pipeLayout,
		Compute: hal.ComputeState{Module: p.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("gpu: create compute pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// Ready reports whether the pipeline is compiled and the program open.
func (p *Program) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pipeline != nil
}

// Run uploads params and the packed texture, dispatches one invocation per
// output pixel and returns the packed output of width*height words.
func (p *Program) Run(params, texture []byte, width, height uint32) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pipeline == nil {
		return nil, ErrClosed
	}
	if width == 0 || height == 0 {
		return nil, nil
	}
	outSize := uint64(width) * uint64(height) * 4
	// Zero-sized storage bindings are invalid.
	if len(texture) == 0 {
		texture = make([]byte, 4)
	}

	var bufs []hal.Buffer
	defer func() {
		for _, b := range bufs {
			p.device.DestroyBuffer(b)
		}
	}()
	newBuf := func(label string, size uint64, usage gputypes.BufferUsage) (hal.Buffer, error) {
		b, err := p.device.CreateBuffer(&hal.BufferDescriptor{Label: label, Size: size, Usage: usage})
		if err != nil {
			return nil, fmt.Errorf("gpu: create %s buffer: %w", label, err)
		}
		bufs = append(bufs, b)
		return b, nil
	}

	paramsBuf, err := newBuf(p.label+"_params", uint64(len(params)), gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	texBuf, err := newBuf(p.label+"_texture", uint64(len(texture)), gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	outBuf, err := newBuf(p.label+"_output", outSize, gputypes.BufferUsageStorage|gputypes.BufferUsageCopySrc)
	if err != nil {
		return nil, err
	}
	stagingBuf, err := newBuf(p.label+"_staging", outSize, gputypes.BufferUsageMapRead|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	p.queue.WriteBuffer(paramsBuf, 0, params)
	p.queue.WriteBuffer(texBuf, 0, texture)

	bg, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: p.label + "_bind", Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: paramsBuf.NativeHandle(), Offset: 0, Size: uint64(len(params))}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: texBuf.NativeHandle(), Offset: 0, Size: uint64(len(texture))}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: outBuf.NativeHandle(), Offset: 0, Size: outSize}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group: %w", err)
	}
	defer p.device.DestroyBindGroup(bg)

	if err := p.dispatch(bg, outBuf, stagingBuf, width, height, outSize); err != nil {
		return nil, err
	}
	readback := make([]byte, outSize)
	if err := p.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("gpu: readback: %w", err)
	}
	return readback, nil
}

func (p *Program) dispatch(bg hal.BindGroup, outBuf, stagingBuf hal.Buffer, w, h uint32, size uint64) error {
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: p.label + "_encoder"})
	if err != nil {
		return fmt.Errorf("gpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(p.label); err != nil {
		return fmt.Errorf("gpu: begin encoding: %w", err)
	}
	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: p.label + "_pass"})
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, bg, nil)
	pass.Dispatch((w+7)/8, (h+7)/8, 1)
	pass.End()
	encoder.CopyBufferToBuffer(outBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: size},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("gpu: end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return fmt.Errorf("gpu: create fence: %w", err)
	}
	defer p.device.DestroyFence(fence)
	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("gpu: submit: %w", err)
	}
	ok, err := p.device.Wait(fence, 1, submitTimeout)
	if err != nil || !ok {
		return fmt.Errorf("gpu: wait for dispatch: ok=%v err=%w", ok, err)
	}
	slogger().Debug("gpu: dispatch complete", "label", p.label, "width", w, "height", h)
	return nil
}

// Close destroys the pipeline and, unless the device is shared, the device
// and instance. Close is idempotent.
func (p *Program) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.device != nil {
		if p.pipeline != nil {
			p.device.DestroyComputePipeline(p.pipeline)
		}
		if p.pipeLayout != nil {
			p.device.DestroyPipelineLayout(p.pipeLayout)
		}
		if p.bindLayout != nil {
			p.device.DestroyBindGroupLayout(p.bindLayout)
		}
		if p.shader != nil {
			p.device.DestroyShaderModule(p.shader)
		}
		if !p.external {
			p.device.Destroy()
		}
	}
	if p.instance != nil && !p.external {
		p.instance.Destroy()
	}
	p.pipeline, p.pipeLayout, p.bindLayout, p.shader = nil, nil, nil, nil
	p.device, p.queue, p.instance = nil, nil, nil
}
