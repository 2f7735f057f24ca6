// SPDX-License-Identifier: GPL-3.0-only

// Package dispatch validates and routes bridge commands to the connection
// registry and the device abstraction.
package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/usb-bridge/usb-bridge-daemon/internal/registry"
	"github.com/usb-bridge/usb-bridge-daemon/internal/usb"
)

// Dispatcher executes one command at a time, run-to-completion. Commands
// referencing different handles may run concurrently; the registry
// serializes all handle table access.
type Dispatcher struct {
	driver         usb.Driver
	registry       *registry.Registry
	allowSimulated bool
}

// Option is a functional option for configuring a Dispatcher.
type Option func(*Dispatcher)

// WithSimulatedDevice enables the simulated loopback device: getDevices may
// append its descriptor and openDevice accepts its reserved id.
func WithSimulatedDevice() Option {
	return func(d *Dispatcher) {
		d.allowSimulated = true
	}
}

// New creates a dispatcher routing commands to the given driver and
// registry.
func New(drv usb.Driver, reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		driver:   drv,
		registry: reg,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsTransferCommand reports whether the command moves data over the bus.
// Transfer commands are the only ones that can block for significant time.
func IsTransferCommand(command string) bool {
	return command == "controlTransfer" || command == "bulkTransfer"
}

// Dispatch routes a named command with JSON-encoded parameters to its
// handler and returns the success payload. Any failure aborts the current
// command only; registry state and other connections are unaffected.
func (d *Dispatcher) Dispatch(command string, params json.RawMessage) (any, error) {
	log.Debug().Str("command", command).Msg("Dispatching command")

	switch command {
	case "getDevices":
		return d.getDevices(params)
	case "openDevice":
		return d.openDevice(params)
	case "closeDevice":
		return d.closeDevice(params)
	case "listInterfaces":
		return d.listInterfaces(params)
	case "claimInterface":
		return d.claimInterface(params)
	case "releaseInterface":
		return d.releaseInterface(params)
	case "controlTransfer":
		return d.controlTransfer(params)
	case "bulkTransfer":
		return d.bulkTransfer(params)
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

// DeviceEntry is one device in a getDevices result.
type DeviceEntry struct {
	Device    int `json:"device"`
	VendorID  int `json:"vendorId"`
	ProductID int `json:"productId"`
}

// OpenResult is the success payload of openDevice.
type OpenResult struct {
	Handle    int `json:"handle"`
	VendorID  int `json:"vendorId"`
	ProductID int `json:"productId"`
}

// InterfaceEntry is one interface in a listInterfaces result. ExtraData is
// always an empty object, reserved for forward compatibility.
type InterfaceEntry struct {
	InterfaceNumber   int             `json:"interfaceNumber"`
	AlternateSetting  int             `json:"alternateSetting"`
	InterfaceClass    int             `json:"interfaceClass"`
	InterfaceSubclass int             `json:"interfaceSubclass"`
	InterfaceProtocol int             `json:"interfaceProtocol"`
	ExtraData         struct{}        `json:"extra_data"`
	Endpoints         []EndpointEntry `json:"endpoints"`
}

// EndpointEntry is one endpoint in a listInterfaces result. PollingInterval
// is present only for interrupt and isochronous endpoints.
type EndpointEntry struct {
	Address           int      `json:"address"`
	Direction         string   `json:"direction"`
	Type              string   `json:"type"`
	MaximumPacketSize int      `json:"maximumPacketSize"`
	PollingInterval   *int     `json:"pollingInterval,omitempty"`
	ExtraData         struct{} `json:"extra_data"`
}

// TransferResult carries the bytes received by an IN transfer.
type TransferResult struct {
	Data []byte `json:"data"`
}

// Empty is the success payload of commands that return no data.
type Empty struct{}

type handleParams struct {
	Handle int `json:"handle"`
}

type interfaceParams struct {
	Handle          int `json:"handle"`
	InterfaceNumber int `json:"interfaceNumber"`
}

type transferParams struct {
	Handle      int    `json:"handle"`
	Direction   string `json:"direction"`
	RequestType string `json:"requestType"`
	Request     int    `json:"request"`
	Value       int    `json:"value"`
	Index       int    `json:"index"`
	Endpoint    int    `json:"endpoint"`
	Length      int    `json:"length"`
	Data        []byte `json:"data"`
}

func unmarshalParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("invalid command parameters: %w", err)
	}
	return nil
}

// maxTransferLength bounds the buffer an IN transfer may request.
const maxTransferLength = 1 << 20

// transferBuffer builds the data buffer for a transfer: OUT transfers carry
// the caller's payload, IN transfers allocate the requested length.
func transferBuffer(direction usb.Direction, p transferParams) ([]byte, error) {
	if direction == usb.DirectionOut {
		return p.Data, nil
	}
	if p.Length < 0 || p.Length > maxTransferLength {
		return nil, fmt.Errorf("%w: transfer length %d not in 0..%d",
			usb.ErrOutOfRange, p.Length, maxTransferLength)
	}
	return make([]byte, p.Length), nil
}

func (d *Dispatcher) getDevices(params json.RawMessage) (any, error) {
	var p struct {
		AppendFakeDevice bool `json:"appendFakeDevice"`
	}
	if err := unmarshalParams(params, &p); err != nil {
		return nil, err
	}

	devices, err := d.driver.ListDevices()
	if err != nil {
		return nil, err
	}

	entries := make([]DeviceEntry, 0, len(devices)+1)
	for _, desc := range devices {
		entries = append(entries, DeviceEntry{
			Device:    desc.DeviceID,
			VendorID:  desc.VendorID,
			ProductID: desc.ProductID,
		})
	}
	if p.AppendFakeDevice && d.allowSimulated {
		entries = append(entries, DeviceEntry{
			Device:    usb.SimulatedDeviceID,
			VendorID:  usb.SimulatedVendorID,
			ProductID: usb.SimulatedProductID,
		})
	}

	log.Debug().Int("count", len(entries)).Msg("Enumerated devices")
	return entries, nil
}

func (d *Dispatcher) openDevice(params json.RawMessage) (any, error) {
	var p struct {
		Device int `json:"device"`
	}
	if err := unmarshalParams(params, &p); err != nil {
		return nil, err
	}

	// Resolve the id against the live device list before opening.
	devices, err := d.driver.ListDevices()
	if err != nil {
		return nil, err
	}

	var (
		dev                 usb.Device
		vendorID, productID int
	)
	for _, desc := range devices {
		if desc.DeviceID != p.Device {
			continue
		}
		if !d.driver.HasPermission(desc) {
			// Requesting a grant is not supported; the caller must
			// already hold permission.
			return nil, fmt.Errorf("%w: no access grant for device %d", usb.ErrPermissionDenied, p.Device)
		}
		conn, err := d.driver.Open(desc)
		if err != nil {
			if errors.Is(err, usb.ErrPermissionDenied) || errors.Is(err, usb.ErrOpenFailed) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: device %d: %v", usb.ErrOpenFailed, p.Device, err)
		}
		dev = usb.NewRealDevice(conn)
		vendorID, productID = desc.VendorID, desc.ProductID
		break
	}

	if dev == nil {
		if !d.allowSimulated || p.Device != usb.SimulatedDeviceID {
			return nil, fmt.Errorf("%w: unknown device id %d", usb.ErrNotFound, p.Device)
		}
		dev = usb.NewSimulatedDevice()
		vendorID, productID = usb.SimulatedVendorID, usb.SimulatedProductID
	}

	handle := d.registry.Open(dev)
	log.Info().Int("handle", handle).Int("device", p.Device).Msg("Device opened")
	return OpenResult{Handle: handle, VendorID: vendorID, ProductID: productID}, nil
}

func (d *Dispatcher) closeDevice(params json.RawMessage) (any, error) {
	var p handleParams
	if err := unmarshalParams(params, &p); err != nil {
		return nil, err
	}

	// Closing a stale handle succeeds; a close error is logged but does
	// not fail the command.
	if err := d.registry.Close(p.Handle); err != nil {
		log.Warn().Err(err).Int("handle", p.Handle).Msg("Connection close reported an error")
	}
	return Empty{}, nil
}

func (d *Dispatcher) listInterfaces(params json.RawMessage) (any, error) {
	var p handleParams
	if err := unmarshalParams(params, &p); err != nil {
		return nil, err
	}
	dev, err := d.registry.Get(p.Handle)
	if err != nil {
		return nil, err
	}

	interfaceCount := dev.InterfaceCount()
	interfaces := make([]InterfaceEntry, 0, interfaceCount)
	for i := 0; i < interfaceCount; i++ {
		endpointCount := dev.EndpointCount(i)
		endpoints := make([]EndpointEntry, 0, endpointCount)
		for j := 0; j < endpointCount; j++ {
			desc := dev.DescribeEndpoint(i, j)
			entry := EndpointEntry{
				Address:           usb.EndpointAddress(i, j),
				Direction:         desc.Direction.String(),
				Type:              desc.Type.String(),
				MaximumPacketSize: desc.MaxPacketSize,
			}
			if desc.Type.HasPollingInterval() {
				interval := desc.PollingInterval
				entry.PollingInterval = &interval
			}
			endpoints = append(endpoints, entry)
		}

		ifaceDesc := dev.DescribeInterface(i)
		interfaces = append(interfaces, InterfaceEntry{
			InterfaceNumber:   i,
			AlternateSetting:  ifaceDesc.AlternateSetting,
			InterfaceClass:    ifaceDesc.Class,
			InterfaceSubclass: ifaceDesc.SubClass,
			InterfaceProtocol: ifaceDesc.Protocol,
			Endpoints:         endpoints,
		})
	}

	log.Debug().Int("handle", p.Handle).Int("count", interfaceCount).Msg("Listed interfaces")
	return interfaces, nil
}

func (d *Dispatcher) claimInterface(params json.RawMessage) (any, error) {
	dev, p, err := d.deviceInterface(params)
	if err != nil {
		return nil, err
	}
	if !dev.ClaimInterface(p.InterfaceNumber) {
		return nil, fmt.Errorf("%w: interface %d", usb.ErrClaimFailed, p.InterfaceNumber)
	}
	log.Debug().Int("handle", p.Handle).Int("interface", p.InterfaceNumber).Msg("Interface claimed")
	return Empty{}, nil
}

func (d *Dispatcher) releaseInterface(params json.RawMessage) (any, error) {
	dev, p, err := d.deviceInterface(params)
	if err != nil {
		return nil, err
	}
	if !dev.ReleaseInterface(p.InterfaceNumber) {
		return nil, fmt.Errorf("%w: interface %d", usb.ErrReleaseFailed, p.InterfaceNumber)
	}
	log.Debug().Int("handle", p.Handle).Int("interface", p.InterfaceNumber).Msg("Interface released")
	return Empty{}, nil
}

// deviceInterface resolves the handle and validates the interface number
// against the device's reported count.
func (d *Dispatcher) deviceInterface(params json.RawMessage) (usb.Device, interfaceParams, error) {
	var p interfaceParams
	if err := unmarshalParams(params, &p); err != nil {
		return nil, p, err
	}
	dev, err := d.registry.Get(p.Handle)
	if err != nil {
		return nil, p, err
	}
	if p.InterfaceNumber < 0 || p.InterfaceNumber >= dev.InterfaceCount() {
		return nil, p, fmt.Errorf("%w: interface number %d not in 0..%d",
			usb.ErrOutOfRange, p.InterfaceNumber, dev.InterfaceCount()-1)
	}
	return dev, p, nil
}

func (d *Dispatcher) controlTransfer(params json.RawMessage) (any, error) {
	var p transferParams
	if err := unmarshalParams(params, &p); err != nil {
		return nil, err
	}
	dev, err := d.registry.Get(p.Handle)
	if err != nil {
		return nil, err
	}

	direction, err := usb.ParseDirection(p.Direction)
	if err != nil {
		return nil, err
	}
	requestType, err := usb.ParseRequestType(p.RequestType)
	if err != nil {
		return nil, err
	}

	buf, err := transferBuffer(direction, p)
	if err != nil {
		return nil, err
	}
	n, err := dev.ControlTransfer(direction.Bit()|requestType, p.Request, p.Value, p.Index, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: control transfer: %v", usb.ErrTransferFailed, err)
	}

	log.Debug().Int("handle", p.Handle).Int("bytes", n).Msg("Control transfer done")
	if direction == usb.DirectionIn {
		return TransferResult{Data: buf[:n]}, nil
	}
	return Empty{}, nil
}

func (d *Dispatcher) bulkTransfer(params json.RawMessage) (any, error) {
	var p transferParams
	if err := unmarshalParams(params, &p); err != nil {
		return nil, err
	}
	dev, err := d.registry.Get(p.Handle)
	if err != nil {
		return nil, err
	}

	interfaceNumber, endpointNumber := usb.SplitEndpointAddress(p.Endpoint)
	if interfaceNumber < 0 || endpointNumber < 0 ||
		interfaceNumber >= dev.InterfaceCount() || endpointNumber >= dev.EndpointCount(interfaceNumber) {
		return nil, fmt.Errorf("%w: endpoint not found: %d", usb.ErrOutOfRange, p.Endpoint)
	}

	direction, err := usb.ParseDirection(p.Direction)
	if err != nil {
		return nil, err
	}

	buf, err := transferBuffer(direction, p)
	if err != nil {
		return nil, err
	}
	n, err := dev.BulkTransfer(interfaceNumber, endpointNumber, direction, buf)
	if err != nil {
		if errors.Is(err, usb.ErrDirectionMismatch) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: bulk transfer: %v", usb.ErrTransferFailed, err)
	}

	log.Debug().Int("handle", p.Handle).Int("bytes", n).Msg("Bulk transfer done")
	if direction == usb.DirectionIn {
		return TransferResult{Data: buf[:n]}, nil
	}
	return Empty{}, nil
}
