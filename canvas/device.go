// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host owns the GPU device and its render thread. A canvas only carries
// the handle so that drawing code can ask whether compositor effects will be
// evaluated by the GPU pipeline.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle without a device.
// Canvases using it are software canvases.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns zero info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}

// HasDevice reports whether h exposes a usable GPU device.
func HasDevice(h DeviceHandle) bool {
	return h != nil && h.Device() != nil
}
