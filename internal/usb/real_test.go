package usb_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usb-bridge/usb-bridge-daemon/internal/usb"
	"github.com/usb-bridge/usb-bridge-daemon/internal/usb/mocks"
	"go.uber.org/mock/gomock"
)

// RealDevice is a pure delegation layer; these tests pin each method to
// exactly one driver connection call with unchanged arguments and results.

func TestRealDevice_DescriptorQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().InterfaceCount().Return(2)
	conn.EXPECT().EndpointCount(1).Return(3)
	conn.EXPECT().InterfaceDescriptor(1).Return(usb.InterfaceDesc{
		Class: 8, SubClass: 6, Protocol: 80,
	})
	conn.EXPECT().EndpointDescriptor(1, 2).Return(usb.EndpointDesc{
		Direction:     usb.DirectionIn,
		Type:          usb.EndpointInterrupt,
		MaxPacketSize: 16,
	})

	dev := usb.NewRealDevice(conn)

	assert.Equal(t, 2, dev.InterfaceCount())
	assert.Equal(t, 3, dev.EndpointCount(1))

	iface := dev.DescribeInterface(1)
	assert.Equal(t, 8, iface.Class)
	assert.Equal(t, 6, iface.SubClass)
	assert.Equal(t, 80, iface.Protocol)

	ep := dev.DescribeEndpoint(1, 2)
	assert.Equal(t, usb.DirectionIn, ep.Direction)
	assert.Equal(t, usb.EndpointInterrupt, ep.Type)
	assert.Equal(t, 16, ep.MaxPacketSize)
}

func TestRealDevice_ClaimRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ClaimInterface(0).Return(true)
	conn.EXPECT().ReleaseInterface(0).Return(false)

	dev := usb.NewRealDevice(conn)
	assert.True(t, dev.ClaimInterface(0))
	assert.False(t, dev.ReleaseInterface(0))
}

func TestRealDevice_ControlTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	buf := make([]byte, 4)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ControlTransfer(0xC0, 5, 9, 2, buf).Return(4, nil)

	dev := usb.NewRealDevice(conn)
	n, err := dev.ControlTransfer(0xC0, 5, 9, 2, buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRealDevice_BulkTransfer_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transferErr := errors.New("pipe stalled")
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().
		BulkTransfer(0, 1, usb.DirectionOut, []byte{1, 2}).
		Return(0, transferErr)

	dev := usb.NewRealDevice(conn)
	_, err := dev.BulkTransfer(0, 1, usb.DirectionOut, []byte{1, 2})
	assert.ErrorIs(t, err, transferErr)
}

func TestRealDevice_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().Close().Return(nil)

	dev := usb.NewRealDevice(conn)
	require.NoError(t, dev.Close())
}
