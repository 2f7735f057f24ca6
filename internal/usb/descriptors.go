// Package usb provides the device, interface and endpoint model shared by
// every backend of the bridge, along with the transfer vocabulary used by
// the command surface.
package usb

import (
	"fmt"
	"strings"
)

// bmRequestType bit layout, per USB 2.0 spec section 9.3.
const (
	// DirectionMask selects the direction bit of a control request type.
	DirectionMask = 0x80

	// RequestTypeMask selects the request-type bits of a control request type.
	RequestTypeMask = 0x60

	directionInBit  = 0x80
	directionOutBit = 0x00

	requestTypeStandard = 0x00
	requestTypeClass    = 0x20
	requestTypeVendor   = 0x40
	requestTypeReserved = 0x60
)

// endpointInterfaceShift is the number of bits an interface number is
// shifted left by when composing an endpoint address.
const endpointInterfaceShift = 16

// Direction is the direction of a data transfer, seen from the host.
type Direction int

const (
	// DirectionIn transfers data from the device to the host.
	DirectionIn Direction = iota
	// DirectionOut transfers data from the host to the device.
	DirectionOut
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return fmt.Sprintf("ERR:%d", int(d))
	}
}

// Bit returns the bmRequestType direction bit for the direction.
func (d Direction) Bit() int {
	if d == DirectionIn {
		return directionInBit
	}
	return directionOutBit
}

// ParseDirection maps a direction name to a Direction. Matching is
// case-insensitive.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "in":
		return DirectionIn, nil
	case "out":
		return DirectionOut, nil
	default:
		return 0, fmt.Errorf("%w: transfer direction %q", ErrUnknownVocabulary, name)
	}
}

// ParseRequestType maps a control request type name to its bmRequestType
// bits. Matching is case-insensitive.
func ParseRequestType(name string) (int, error) {
	switch strings.ToLower(name) {
	case "standard":
		return requestTypeStandard, nil
	case "class":
		return requestTypeClass, nil
	case "vendor":
		return requestTypeVendor, nil
	case "reserved":
		return requestTypeReserved, nil
	default:
		return 0, fmt.Errorf("%w: control requestType %q", ErrUnknownVocabulary, name)
	}
}

// EndpointType is the transfer type of an endpoint.
type EndpointType int

const (
	// EndpointBulk is a bulk endpoint.
	EndpointBulk EndpointType = iota
	// EndpointControl is a control endpoint.
	EndpointControl
	// EndpointInterrupt is an interrupt endpoint.
	EndpointInterrupt
	// EndpointIsochronous is an isochronous endpoint.
	EndpointIsochronous
)

// String returns the wire name of the endpoint type.
func (t EndpointType) String() string {
	switch t {
	case EndpointBulk:
		return "bulk"
	case EndpointControl:
		return "control"
	case EndpointInterrupt:
		return "interrupt"
	case EndpointIsochronous:
		return "isochronous"
	default:
		return fmt.Sprintf("ERR:%d", int(t))
	}
}

// HasPollingInterval reports whether endpoints of this type carry a polling
// interval in their descriptors.
func (t EndpointType) HasPollingInterval() bool {
	return t == EndpointInterrupt || t == EndpointIsochronous
}

// DeviceDesc identifies a discoverable USB device before any connection to
// it exists.
type DeviceDesc struct {
	DeviceID  int
	VendorID  int
	ProductID int
}

// InterfaceDesc describes a USB interface. Alternate settings beyond the
// default are not supported, so AlternateSetting is always 0.
type InterfaceDesc struct {
	AlternateSetting int
	Class            int
	SubClass         int
	Protocol         int
}

// EndpointDesc describes a single endpoint of an interface.
type EndpointDesc struct {
	Direction       Direction
	Type            EndpointType
	MaxPacketSize   int
	PollingInterval int
}

// EndpointAddress composes an interface number and an endpoint index into
// the opaque endpoint address handed to callers.
func EndpointAddress(interfaceNumber, endpointNumber int) int {
	return interfaceNumber<<endpointInterfaceShift | endpointNumber
}

// SplitEndpointAddress recovers the interface number and endpoint index
// from a composite endpoint address.
func SplitEndpointAddress(address int) (interfaceNumber, endpointNumber int) {
	return address >> endpointInterfaceShift, address & (1<<endpointInterfaceShift - 1)
}
