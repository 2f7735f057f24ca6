package usb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usb-bridge/usb-bridge-daemon/internal/usb"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      usb.Direction
		expectedError bool
	}{
		{name: "in", input: "in", expected: usb.DirectionIn},
		{name: "out", input: "out", expected: usb.DirectionOut},
		{name: "uppercase in", input: "IN", expected: usb.DirectionIn},
		{name: "mixed case out", input: "Out", expected: usb.DirectionOut},
		{name: "unknown word", input: "sideways", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := usb.ParseDirection(tt.input)
			if tt.expectedError {
				require.Error(t, err)
				assert.ErrorIs(t, err, usb.ErrUnknownVocabulary)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dir)
		})
	}
}

func TestDirection_Bit(t *testing.T) {
	assert.Equal(t, 0x80, usb.DirectionIn.Bit())
	assert.Equal(t, 0x00, usb.DirectionOut.Bit())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "in", usb.DirectionIn.String())
	assert.Equal(t, "out", usb.DirectionOut.String())
}

func TestParseRequestType(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      int
		expectedError bool
	}{
		{name: "standard", input: "standard", expected: 0x00},
		{name: "class", input: "class", expected: 0x20},
		{name: "vendor", input: "vendor", expected: 0x40},
		{name: "reserved", input: "reserved", expected: 0x60},
		{name: "uppercase vendor", input: "VENDOR", expected: 0x40},
		{name: "unknown word", input: "device", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := usb.ParseRequestType(tt.input)
			if tt.expectedError {
				require.Error(t, err)
				assert.ErrorIs(t, err, usb.ErrUnknownVocabulary)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bits)
		})
	}
}

func TestEndpointType_String(t *testing.T) {
	assert.Equal(t, "bulk", usb.EndpointBulk.String())
	assert.Equal(t, "control", usb.EndpointControl.String())
	assert.Equal(t, "interrupt", usb.EndpointInterrupt.String())
	assert.Equal(t, "isochronous", usb.EndpointIsochronous.String())
}

func TestEndpointType_HasPollingInterval(t *testing.T) {
	assert.False(t, usb.EndpointBulk.HasPollingInterval())
	assert.False(t, usb.EndpointControl.HasPollingInterval())
	assert.True(t, usb.EndpointInterrupt.HasPollingInterval())
	assert.True(t, usb.EndpointIsochronous.HasPollingInterval())
}

func TestEndpointAddress_RoundTrip(t *testing.T) {
	tests := []struct {
		name            string
		interfaceNumber int
		endpointNumber  int
	}{
		{name: "zero", interfaceNumber: 0, endpointNumber: 0},
		{name: "first interface second endpoint", interfaceNumber: 0, endpointNumber: 1},
		{name: "second interface", interfaceNumber: 1, endpointNumber: 0},
		{name: "typical", interfaceNumber: 3, endpointNumber: 2},
		{name: "maximum", interfaceNumber: 65535, endpointNumber: 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := usb.EndpointAddress(tt.interfaceNumber, tt.endpointNumber)
			iface, ep := usb.SplitEndpointAddress(addr)
			assert.Equal(t, tt.interfaceNumber, iface)
			assert.Equal(t, tt.endpointNumber, ep)
		})
	}
}

func TestEndpointAddress_Layout(t *testing.T) {
	// The composite layout is part of the command surface: interface
	// number in the high half, endpoint index in the low half.
	assert.Equal(t, 1<<16|2, usb.EndpointAddress(1, 2))
	assert.Equal(t, 0, usb.EndpointAddress(0, 0))
}
