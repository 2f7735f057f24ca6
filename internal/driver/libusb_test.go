package driver

import (
	"testing"

	"github.com/google/gousb"
	"github.com/stretchr/testify/assert"

	"github.com/usb-bridge/usb-bridge-daemon/internal/usb"
)

func TestDeviceID(t *testing.T) {
	tests := []struct {
		name     string
		bus      int
		address  int
		expected int
	}{
		{name: "zero", bus: 0, address: 0, expected: 0},
		{name: "bus one address one", bus: 1, address: 1, expected: 0x101},
		{name: "address only", bus: 0, address: 42, expected: 42},
		{name: "max bus and address", bus: 255, address: 127, expected: 255<<8 | 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := &gousb.DeviceDesc{Bus: tt.bus, Address: tt.address}
			assert.Equal(t, tt.expected, deviceID(desc))
		})
	}
}

func TestDeviceID_DistinguishesBusses(t *testing.T) {
	a := deviceID(&gousb.DeviceDesc{Bus: 1, Address: 2})
	b := deviceID(&gousb.DeviceDesc{Bus: 2, Address: 1})
	assert.NotEqual(t, a, b)
}

func TestEndpointDirection(t *testing.T) {
	assert.Equal(t, usb.DirectionIn, endpointDirection(gousb.EndpointDirectionIn))
	assert.Equal(t, usb.DirectionOut, endpointDirection(gousb.EndpointDirectionOut))
}

func TestEndpointType(t *testing.T) {
	tests := []struct {
		name     string
		transfer gousb.TransferType
		expected usb.EndpointType
	}{
		{name: "control", transfer: gousb.TransferTypeControl, expected: usb.EndpointControl},
		{name: "bulk", transfer: gousb.TransferTypeBulk, expected: usb.EndpointBulk},
		{name: "interrupt", transfer: gousb.TransferTypeInterrupt, expected: usb.EndpointInterrupt},
		{name: "isochronous", transfer: gousb.TransferTypeIsochronous, expected: usb.EndpointIsochronous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, endpointType(tt.transfer))
		})
	}
}

func TestHasPermission(t *testing.T) {
	l := &Libusb{}
	assert.True(t, l.HasPermission(usb.DeviceDesc{DeviceID: 1}))
}
