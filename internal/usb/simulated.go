// SPDX-License-Identifier: GPL-3.0-only

package usb

import "sync"

const (
	// SimulatedDeviceID is the reserved device id of the simulated device.
	// It is negative so it can never collide with a real enumeration id.
	SimulatedDeviceID = -1000000

	// SimulatedVendorID is the vendor id reported by the simulated device.
	SimulatedVendorID = 0x18d1

	// SimulatedProductID is the product id reported by the simulated
	// device. Reserved for non-production use.
	SimulatedProductID = 0x2001

	// simulatedMaxPacketSize is the max packet size of both endpoints.
	simulatedMaxPacketSize = 64

	// vendorSpecific is the USB class code for vendor-specific interfaces.
	vendorSpecific = 255
)

// SimulatedDevice is a self-contained in-memory Device used to exercise the
// dispatch logic without hardware. It has a fixed shape: one vendor-specific
// interface with two bulk endpoints, endpoint 0 IN and endpoint 1 OUT.
//
// Bulk transfers model a one-shot loopback: an OUT transfer stores its
// payload, the next IN transfer consumes it. Control IN transfers reflect
// the request parameters back into the buffer.
//
// All methods are safe for concurrent use.
type SimulatedDevice struct {
	mu     sync.Mutex
	echo   []byte
	closed bool
}

// Verify SimulatedDevice implements Device.
var _ Device = (*SimulatedDevice)(nil)

// NewSimulatedDevice creates a simulated device with an empty echo buffer.
func NewSimulatedDevice() *SimulatedDevice {
	return &SimulatedDevice{}
}

// Desc returns the enumeration entry of the simulated device.
func (d *SimulatedDevice) Desc() DeviceDesc {
	return DeviceDesc{
		DeviceID:  SimulatedDeviceID,
		VendorID:  SimulatedVendorID,
		ProductID: SimulatedProductID,
	}
}

// InterfaceCount returns the fixed interface count of 1.
func (d *SimulatedDevice) InterfaceCount() int {
	return 1
}

// EndpointCount returns the fixed endpoint count of 2.
func (d *SimulatedDevice) EndpointCount(interfaceNumber int) int {
	return 2
}

// DescribeInterface returns the vendor-specific interface descriptor.
func (d *SimulatedDevice) DescribeInterface(interfaceNumber int) InterfaceDesc {
	return InterfaceDesc{
		AlternateSetting: 0,
		Class:            vendorSpecific,
		SubClass:         vendorSpecific,
		Protocol:         vendorSpecific,
	}
}

// DescribeEndpoint returns the descriptor of one of the two bulk endpoints.
func (d *SimulatedDevice) DescribeEndpoint(interfaceNumber, endpointNumber int) EndpointDesc {
	return EndpointDesc{
		Direction:     d.endpointDirection(endpointNumber),
		Type:          EndpointBulk,
		MaxPacketSize: simulatedMaxPacketSize,
	}
}

func (d *SimulatedDevice) endpointDirection(endpointNumber int) Direction {
	if endpointNumber == 0 {
		return DirectionIn
	}
	return DirectionOut
}

// ClaimInterface always succeeds.
func (d *SimulatedDevice) ClaimInterface(interfaceNumber int) bool {
	return true
}

// ReleaseInterface always succeeds.
func (d *SimulatedDevice) ReleaseInterface(interfaceNumber int) bool {
	return true
}

// ControlTransfer reflects request parameters for IN transfers: the low
// bytes of request, value and index are written to buf[0..2] and 3 is
// returned. OUT transfers are accepted silently, returning the buffer
// length.
func (d *SimulatedDevice) ControlTransfer(requestType, request, value, index int, buf []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrDeviceClosed
	}

	if requestType&DirectionMask == DirectionIn.Bit() {
		reflected := []byte{byte(request), byte(value), byte(index)}
		return copy(buf, reflected), nil
	}
	return len(buf), nil
}

// BulkTransfer implements the one-shot loopback. An OUT transfer stores a
// copy of buf as the pending echo payload and returns its length. An IN
// transfer returns 0 if nothing is pending, otherwise copies
// min(stored, len(buf)) bytes into buf, clears the payload and returns the
// copied count.
func (d *SimulatedDevice) BulkTransfer(interfaceNumber, endpointNumber int, direction Direction, buf []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrDeviceClosed
	}

	if d.endpointDirection(endpointNumber) != direction {
		return 0, ErrDirectionMismatch
	}

	if direction == DirectionOut {
		d.echo = append([]byte(nil), buf...)
		return len(d.echo), nil
	}

	if d.echo == nil {
		return 0, nil
	}
	n := copy(buf, d.echo)
	d.echo = nil
	return n, nil
}

// Close marks the device closed and drops any pending echo payload.
func (d *SimulatedDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.echo = nil
	return nil
}
