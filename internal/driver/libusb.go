// Package driver binds the bridge's USB driver capability to libusb via
// the gousb bindings.
package driver

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/gousb"
	"go.uber.org/multierr"

	"github.com/usb-bridge/usb-bridge-daemon/internal/usb"
)

// Libusb implements usb.Driver on top of a gousb context.
type Libusb struct {
	ctx *gousb.Context
}

// Verify Libusb implements the driver capability.
var _ usb.Driver = (*Libusb)(nil)

// NewLibusb creates a driver backed by a fresh libusb context.
func NewLibusb() *Libusb {
	return &Libusb{ctx: gousb.NewContext()}
}

// deviceID packs a device's bus number and bus address into the stable
// integer id used by the command surface.
func deviceID(desc *gousb.DeviceDesc) int {
	return desc.Bus<<8 | desc.Address
}

// ListDevices enumerates all devices visible to libusb.
func (l *Libusb) ListDevices() ([]usb.DeviceDesc, error) {
	var found []usb.DeviceDesc
	devs, err := l.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		found = append(found, usb.DeviceDesc{
			DeviceID:  deviceID(desc),
			VendorID:  int(desc.Vendor),
			ProductID: int(desc.Product),
		})
		return false
	})
	// The opener never selects a device, so no connections are expected.
	closeAll(devs)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}
	return found, nil
}

// HasPermission reports access to the device. libusb has no pre-open
// permission query; access failures surface from Open instead.
func (l *Libusb) HasPermission(desc usb.DeviceDesc) bool {
	return true
}

// Open opens the device with the given enumeration id.
func (l *Libusb) Open(desc usb.DeviceDesc) (usb.Connection, error) {
	devs, err := l.ctx.OpenDevices(func(d *gousb.DeviceDesc) bool {
		return deviceID(d) == desc.DeviceID
	})
	if err != nil {
		closeAll(devs)
		if errors.Is(err, gousb.ErrorAccess) {
			return nil, fmt.Errorf("%w: device %d", usb.ErrPermissionDenied, desc.DeviceID)
		}
		return nil, fmt.Errorf("failed to open device %d: %w", desc.DeviceID, err)
	}
	if len(devs) == 0 {
		return nil, fmt.Errorf("%w: driver returned no connection for device %d", usb.ErrOpenFailed, desc.DeviceID)
	}

	dev := devs[0]
	// Bus/address pairs are unique, duplicates are not expected.
	closeAll(devs[1:])

	conn, err := newConnection(dev)
	if err != nil {
		_ = dev.Close()
		return nil, err
	}
	return conn, nil
}

// Close releases the libusb context. All connections must be closed first.
func (l *Libusb) Close() error {
	return l.ctx.Close()
}

func closeAll(devs []*gousb.Device) {
	for _, d := range devs {
		_ = d.Close()
	}
}

// libusbConnection is a usb.Connection bound to one open gousb device.
// Interface and endpoint descriptors are snapshotted at open time, with
// endpoints in bus-address order, so descriptor queries never touch the
// device and the same index always resolves to the same endpoint.
type libusbConnection struct {
	dev *gousb.Device
	cfg *gousb.Config

	ifaces    []usb.InterfaceDesc
	endpoints [][]usb.EndpointDesc
	// epNumbers holds the raw USB endpoint numbers, parallel to endpoints.
	epNumbers [][]int

	mu      sync.Mutex
	claimed map[int]*gousb.Interface
	closed  bool
}

// Verify libusbConnection implements usb.Connection.
var _ usb.Connection = (*libusbConnection)(nil)

func newConnection(dev *gousb.Device) (*libusbConnection, error) {
	// Detach kernel drivers while interfaces are claimed. Not supported
	// on every platform, so the error is not fatal.
	_ = dev.SetAutoDetach(true)

	num, err := dev.ActiveConfigNum()
	if err != nil {
		return nil, fmt.Errorf("%w: no active configuration: %v", usb.ErrOpenFailed, err)
	}
	cfg, err := dev.Config(num)
	if err != nil {
		return nil, fmt.Errorf("%w: configuration %d: %v", usb.ErrOpenFailed, num, err)
	}

	c := &libusbConnection{
		dev:     dev,
		cfg:     cfg,
		claimed: make(map[int]*gousb.Interface),
	}
	for _, intf := range cfg.Desc.Interfaces {
		// Alternate settings beyond the default are unsupported.
		alt := intf.AltSettings[0]
		c.ifaces = append(c.ifaces, usb.InterfaceDesc{
			AlternateSetting: 0,
			Class:            int(alt.Class),
			SubClass:         int(alt.SubClass),
			Protocol:         int(alt.Protocol),
		})

		eps := make([]gousb.EndpointDesc, 0, len(alt.Endpoints))
		for _, ep := range alt.Endpoints {
			eps = append(eps, ep)
		}
		sort.Slice(eps, func(i, j int) bool { return eps[i].Address < eps[j].Address })

		descs := make([]usb.EndpointDesc, 0, len(eps))
		numbers := make([]int, 0, len(eps))
		for _, ep := range eps {
			descs = append(descs, usb.EndpointDesc{
				Direction:       endpointDirection(ep.Direction),
				Type:            endpointType(ep.TransferType),
				MaxPacketSize:   ep.MaxPacketSize,
				PollingInterval: int(ep.PollInterval / time.Millisecond),
			})
			numbers = append(numbers, ep.Number)
		}
		c.endpoints = append(c.endpoints, descs)
		c.epNumbers = append(c.epNumbers, numbers)
	}
	return c, nil
}

func endpointDirection(d gousb.EndpointDirection) usb.Direction {
	if d == gousb.EndpointDirectionIn {
		return usb.DirectionIn
	}
	return usb.DirectionOut
}

func endpointType(t gousb.TransferType) usb.EndpointType {
	switch t {
	case gousb.TransferTypeControl:
		return usb.EndpointControl
	case gousb.TransferTypeInterrupt:
		return usb.EndpointInterrupt
	case gousb.TransferTypeIsochronous:
		return usb.EndpointIsochronous
	default:
		return usb.EndpointBulk
	}
}

// InterfaceCount returns the number of interfaces in the active
// configuration.
func (c *libusbConnection) InterfaceCount() int {
	return len(c.ifaces)
}

// EndpointCount returns the number of endpoints on an interface.
func (c *libusbConnection) EndpointCount(interfaceNumber int) int {
	return len(c.endpoints[interfaceNumber])
}

// InterfaceDescriptor returns the snapshotted interface descriptor.
func (c *libusbConnection) InterfaceDescriptor(interfaceNumber int) usb.InterfaceDesc {
	return c.ifaces[interfaceNumber]
}

// EndpointDescriptor returns the snapshotted endpoint descriptor.
func (c *libusbConnection) EndpointDescriptor(interfaceNumber, endpointNumber int) usb.EndpointDesc {
	return c.endpoints[interfaceNumber][endpointNumber]
}

// ClaimInterface claims an interface with its default alternate setting.
// Claiming an already claimed interface succeeds.
func (c *libusbConnection) ClaimInterface(interfaceNumber int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	if _, ok := c.claimed[interfaceNumber]; ok {
		return true
	}
	intf, err := c.cfg.Interface(interfaceNumber, 0)
	if err != nil {
		return false
	}
	c.claimed[interfaceNumber] = intf
	return true
}

// ReleaseInterface releases a previously claimed interface. Releasing an
// unclaimed interface fails.
func (c *libusbConnection) ReleaseInterface(interfaceNumber int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	intf, ok := c.claimed[interfaceNumber]
	if !ok {
		return false
	}
	intf.Close()
	delete(c.claimed, interfaceNumber)
	return true
}

// ControlTransfer performs a control transfer on endpoint zero.
func (c *libusbConnection) ControlTransfer(requestType, request, value, index int, buf []byte) (int, error) {
	return c.dev.Control(uint8(requestType), uint8(request), uint16(value), uint16(index), buf)
}

// BulkTransfer performs a bulk transfer on a claimed interface's endpoint.
func (c *libusbConnection) BulkTransfer(interfaceNumber, endpointNumber int, direction usb.Direction, buf []byte) (int, error) {
	desc := c.endpoints[interfaceNumber][endpointNumber]
	if desc.Direction != direction {
		return 0, fmt.Errorf("%w: endpoint has direction %s", usb.ErrDirectionMismatch, desc.Direction)
	}

	c.mu.Lock()
	intf := c.claimed[interfaceNumber]
	c.mu.Unlock()
	if intf == nil {
		return 0, fmt.Errorf("interface %d is not claimed", interfaceNumber)
	}

	num := c.epNumbers[interfaceNumber][endpointNumber]
	if direction == usb.DirectionIn {
		ep, err := intf.InEndpoint(num)
		if err != nil {
			return 0, err
		}
		return ep.Read(buf)
	}
	ep, err := intf.OutEndpoint(num)
	if err != nil {
		return 0, err
	}
	return ep.Write(buf)
}

// Close releases every claimed interface, the configuration and the device.
// It is idempotent.
func (c *libusbConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	for num, intf := range c.claimed {
		intf.Close()
		delete(c.claimed, num)
	}
	return multierr.Combine(c.cfg.Close(), c.dev.Close())
}
