package gpu

import (
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/tally/tess"
)

func TestPreferredFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			"srgb later in list",
			[]wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
			wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			"rgba srgb",
			[]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb},
			wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			"no srgb falls back to first",
			[]wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm},
			wgpu.TextureFormatBGRA8Unorm,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preferredFormat(tt.formats); got != tt.want {
				t.Errorf("preferredFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrownBufferSize(t *testing.T) {
	tests := []struct {
		capacity, need, want uint64
	}{
		{0, 1, minBufferSize},
		{0, minBufferSize, minBufferSize},
		{minBufferSize, minBufferSize + 1, 2 * minBufferSize},
		{minBufferSize, 10 * minBufferSize, 16 * minBufferSize},
		{8192, 4096, 8192},
	}
	for _, tt := range tests {
		if got := grownBufferSize(tt.capacity, tt.need); got != tt.want {
			t.Errorf("grownBufferSize(%d, %d) = %d, want %d",
				tt.capacity, tt.need, got, tt.want)
		}
	}
}

func TestVertexStrideMatchesMesh(t *testing.T) {
	if got := unsafe.Sizeof(tess.Vertex{}); got != vertexStride {
		t.Errorf("vertex stride %d does not match tess.Vertex size %d",
			vertexStride, got)
	}
}

func TestAdapterInfoMapping(t *testing.T) {
	got := adapterInfo(wgpu.AdapterInfo{
		VendorId:          0x10DE,
		VendorName:        "NVIDIA",
		Architecture:      "Ada",
		DeviceId:          0x2684,
		Name:              "RTX 4090",
		DriverDescription: "545.29",
		AdapterType:       wgpu.AdapterTypeDiscreteGPU,
		BackendType:       wgpu.BackendTypeVulkan,
	})
	want := Info{
		Vendor:       "NVIDIA",
		Architecture: "Ada",
		Device:       "RTX 4090",
		Description:  "545.29",
		Backend:      "Vulkan",
		AdapterType:  "DiscreteGPU",
		VendorID:     0x10DE,
		DeviceID:     0x2684,
	}
	if got != want {
		t.Errorf("adapterInfo() = %+v, want %+v", got, want)
	}
}

func TestSurfaceZeroSizeSkipsFrames(t *testing.T) {
	// Zero-area resizes never touch the wgpu surface, so the skip
	// path is testable without a device.
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 480},
		{"zero height", 640, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Surface
			s.Resize(tt.w, tt.h)

			if w, h := s.Size(); w != tt.w || h != tt.h {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
			if _, err := s.Acquire(); err != ErrSurfaceUnconfigured {
				t.Errorf("Acquire() error = %v, want ErrSurfaceUnconfigured", err)
			}
		})
	}
}

func TestSurfaceUnconfiguredByDefault(t *testing.T) {
	var s Surface
	if _, err := s.Acquire(); err != ErrSurfaceUnconfigured {
		t.Errorf("Acquire() on fresh surface error = %v, want ErrSurfaceUnconfigured", err)
	}
}
