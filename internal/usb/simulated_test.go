package usb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usb-bridge/usb-bridge-daemon/internal/usb"
)

func TestSimulatedDevice_Shape(t *testing.T) {
	dev := usb.NewSimulatedDevice()

	assert.Equal(t, 1, dev.InterfaceCount())
	assert.Equal(t, 2, dev.EndpointCount(0))

	iface := dev.DescribeInterface(0)
	assert.Equal(t, 0, iface.AlternateSetting)
	assert.Equal(t, 255, iface.Class)
	assert.Equal(t, 255, iface.SubClass)
	assert.Equal(t, 255, iface.Protocol)

	in := dev.DescribeEndpoint(0, 0)
	assert.Equal(t, usb.DirectionIn, in.Direction)
	assert.Equal(t, usb.EndpointBulk, in.Type)
	assert.Equal(t, 64, in.MaxPacketSize)

	out := dev.DescribeEndpoint(0, 1)
	assert.Equal(t, usb.DirectionOut, out.Direction)
	assert.Equal(t, usb.EndpointBulk, out.Type)
	assert.Equal(t, 64, out.MaxPacketSize)
}

func TestSimulatedDevice_Desc(t *testing.T) {
	desc := usb.NewSimulatedDevice().Desc()
	assert.Equal(t, usb.SimulatedDeviceID, desc.DeviceID)
	assert.Equal(t, 0x18d1, desc.VendorID)
	assert.Equal(t, 0x2001, desc.ProductID)
}

func TestSimulatedDevice_ClaimRelease(t *testing.T) {
	dev := usb.NewSimulatedDevice()
	assert.True(t, dev.ClaimInterface(0))
	assert.True(t, dev.ReleaseInterface(0))
}

func TestSimulatedDevice_BulkLoopback(t *testing.T) {
	dev := usb.NewSimulatedDevice()

	payload := []byte{1, 2, 3}
	n, err := dev.BulkTransfer(0, 1, usb.DirectionOut, payload)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	buf := make([]byte, 3)
	n, err = dev.BulkTransfer(0, 0, usb.DirectionIn, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{1, 2, 3}, buf)

	// The loopback is one-shot, not a queue: a second IN without an
	// intervening OUT reads nothing.
	n, err = dev.BulkTransfer(0, 0, usb.DirectionIn, buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSimulatedDevice_BulkLoopback_ShortRead(t *testing.T) {
	dev := usb.NewSimulatedDevice()

	_, err := dev.BulkTransfer(0, 1, usb.DirectionOut, []byte{1, 2, 3, 4, 5})
	require.NoError(t, err)

	buf := make([]byte, 2)
	n, err := dev.BulkTransfer(0, 0, usb.DirectionIn, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{1, 2}, buf)
}

func TestSimulatedDevice_BulkLoopback_CopiesPayload(t *testing.T) {
	dev := usb.NewSimulatedDevice()

	payload := []byte{9, 9, 9}
	_, err := dev.BulkTransfer(0, 1, usb.DirectionOut, payload)
	require.NoError(t, err)

	// Mutating the caller's buffer after the OUT transfer must not
	// change the stored payload.
	payload[0] = 0

	buf := make([]byte, 3)
	_, err = dev.BulkTransfer(0, 0, usb.DirectionIn, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 9, 9}, buf)
}

func TestSimulatedDevice_BulkTransfer_DirectionMismatch(t *testing.T) {
	dev := usb.NewSimulatedDevice()

	// Endpoint 0 is declared IN; writing to it must fail.
	_, err := dev.BulkTransfer(0, 0, usb.DirectionOut, []byte{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, usb.ErrDirectionMismatch)

	// Endpoint 1 is declared OUT; reading from it must fail.
	_, err = dev.BulkTransfer(0, 1, usb.DirectionIn, make([]byte, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, usb.ErrDirectionMismatch)
}

func TestSimulatedDevice_ControlTransfer_InReflectsParameters(t *testing.T) {
	dev := usb.NewSimulatedDevice()

	buf := make([]byte, 8)
	n, err := dev.ControlTransfer(usb.DirectionIn.Bit()|0x40, 5, 9, 2, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{5, 9, 2}, buf[:n])
}

func TestSimulatedDevice_ControlTransfer_OutAcceptsSilently(t *testing.T) {
	dev := usb.NewSimulatedDevice()

	buf := []byte{1, 2, 3, 4}
	n, err := dev.ControlTransfer(usb.DirectionOut.Bit(), 5, 9, 2, buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)
}

func TestSimulatedDevice_Close_Idempotent(t *testing.T) {
	dev := usb.NewSimulatedDevice()
	require.NoError(t, dev.Close())
	require.NoError(t, dev.Close())
}

func TestSimulatedDevice_TransfersAfterClose(t *testing.T) {
	dev := usb.NewSimulatedDevice()
	require.NoError(t, dev.Close())

	_, err := dev.BulkTransfer(0, 1, usb.DirectionOut, []byte{1})
	assert.ErrorIs(t, err, usb.ErrDeviceClosed)

	_, err = dev.ControlTransfer(usb.DirectionIn.Bit(), 0, 0, 0, make([]byte, 3))
	assert.ErrorIs(t, err, usb.ErrDeviceClosed)
}
