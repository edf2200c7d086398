// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/tally"
)

// Info describes the adapter the device was created on.
type Info struct {
	Vendor       string
	Architecture string
	Device       string
	Description  string
	Backend      string
	AdapterType  string
	VendorID     uint32
	DeviceID     uint32
}

// Device bundles the wgpu adapter, device, and queue for the lifetime
// of the application.
//
// Device is NOT safe for concurrent use.
type Device struct {
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue
	info    Info
}

// NewDevice requests an adapter compatible with the given surface,
// preferring a high performance GPU, and creates a device and queue on
// it. The caller retains ownership of the instance and surface.
func NewDevice(instance *wgpu.Instance, compatible *wgpu.Surface) (*Device, error) {
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: compatible,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	d := &Device{adapter: adapter}
	d.readInfo()
	d.logInfo()

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		return nil, fmt.Errorf("gpu: device creation failed: %w", err)
	}
	d.device = device

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		return nil, fmt.Errorf("gpu: queue retrieval failed")
	}
	d.queue = queue
	return d, nil
}

// WGPU returns the underlying wgpu device.
func (d *Device) WGPU() *wgpu.Device { return d.device }

// Queue returns the device's command queue.
func (d *Device) Queue() *wgpu.Queue { return d.queue }

// Adapter returns the adapter the device was created on.
func (d *Device) Adapter() *wgpu.Adapter { return d.adapter }

// Info returns information about the selected GPU.
func (d *Device) Info() Info { return d.info }

// Close releases the queue, device, and adapter, in reverse order of
// creation. Close is idempotent.
func (d *Device) Close() {
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
}

func (d *Device) readInfo() {
	d.info = adapterInfo(d.adapter.GetInfo())
}

// adapterInfo maps the binding's adapter info onto Info.
func adapterInfo(info wgpu.AdapterInfo) Info {
	return Info{
		Vendor:       info.VendorName,
		Architecture: info.Architecture,
		Device:       info.Name,
		Description:  info.DriverDescription,
		Backend:      backendTypeString(info.BackendType),
		AdapterType:  adapterTypeString(info.AdapterType),
		VendorID:     info.VendorId,
		DeviceID:     info.DeviceId,
	}
}

func (d *Device) logInfo() {
	tally.Logger().Info("gpu: adapter selected",
		slog.String("device", d.info.Device),
		slog.String("backend", d.info.Backend),
		slog.String("type", d.info.AdapterType),
		slog.String("vendor", d.info.Vendor),
		slog.String("vendorID", fmt.Sprintf("0x%04X", d.info.VendorID)),
		slog.String("deviceID", fmt.Sprintf("0x%04X", d.info.DeviceID)),
	)
}

func backendTypeString(bt wgpu.BackendType) string {
	switch bt {
	case wgpu.BackendTypeNull:
		return "Null"
	case wgpu.BackendTypeWebGPU:
		return "WebGPU"
	case wgpu.BackendTypeD3D11:
		return "D3D11"
	case wgpu.BackendTypeD3D12:
		return "D3D12"
	case wgpu.BackendTypeMetal:
		return "Metal"
	case wgpu.BackendTypeVulkan:
		return "Vulkan"
	case wgpu.BackendTypeOpenGL:
		return "OpenGL"
	case wgpu.BackendTypeOpenGLES:
		return "OpenGLES"
	default:
		return "Unknown"
	}
}

func adapterTypeString(at wgpu.AdapterType) string {
	switch at {
	case wgpu.AdapterTypeDiscreteGPU:
		return "DiscreteGPU"
	case wgpu.AdapterTypeIntegratedGPU:
		return "IntegratedGPU"
	case wgpu.AdapterTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}
