package usb

// RealDevice is the Device implementation backed by a driver connection.
// Every method is a direct delegation with no branching: correctness of
// this type reduces to correctness of its callers, which the simulated
// backend covers. Keep it that way.
type RealDevice struct {
	conn Connection
}

// Verify RealDevice implements Device.
var _ Device = (*RealDevice)(nil)

// NewRealDevice wraps an open driver connection in a Device.
func NewRealDevice(conn Connection) *RealDevice {
	return &RealDevice{conn: conn}
}

// InterfaceCount returns the number of interfaces on the device.
func (d *RealDevice) InterfaceCount() int {
	return d.conn.InterfaceCount()
}

// EndpointCount returns the number of endpoints on an interface.
func (d *RealDevice) EndpointCount(interfaceNumber int) int {
	return d.conn.EndpointCount(interfaceNumber)
}

// DescribeInterface returns the descriptor of an interface.
func (d *RealDevice) DescribeInterface(interfaceNumber int) InterfaceDesc {
	return d.conn.InterfaceDescriptor(interfaceNumber)
}

// DescribeEndpoint returns the descriptor of an endpoint.
func (d *RealDevice) DescribeEndpoint(interfaceNumber, endpointNumber int) EndpointDesc {
	return d.conn.EndpointDescriptor(interfaceNumber, endpointNumber)
}

// ClaimInterface acquires exclusive access to an interface.
func (d *RealDevice) ClaimInterface(interfaceNumber int) bool {
	return d.conn.ClaimInterface(interfaceNumber)
}

// ReleaseInterface gives up a claimed interface.
func (d *RealDevice) ReleaseInterface(interfaceNumber int) bool {
	return d.conn.ReleaseInterface(interfaceNumber)
}

// ControlTransfer performs a control transfer.
func (d *RealDevice) ControlTransfer(requestType, request, value, index int, buf []byte) (int, error) {
	return d.conn.ControlTransfer(requestType, request, value, index, buf)
}

// BulkTransfer performs a bulk transfer.
func (d *RealDevice) BulkTransfer(interfaceNumber, endpointNumber int, direction Direction, buf []byte) (int, error) {
	return d.conn.BulkTransfer(interfaceNumber, endpointNumber, direction, buf)
}

// Close releases the driver connection.
func (d *RealDevice) Close() error {
	return d.conn.Close()
}
