package usb

//go:generate mockgen -source=device.go -destination=mocks/device_mock.go -package=mocks

// Device represents one open USB device connection. It is implemented by
// RealDevice, backed by the platform driver, and by SimulatedDevice, backed
// by an in-memory loopback. The command dispatcher only ever talks to this
// interface, so the two implementations must be interchangeable.
//
// Callers must pre-validate interface and endpoint indexes against
// InterfaceCount and EndpointCount; the descriptor queries are undefined for
// out-of-range indexes.
type Device interface {
	// InterfaceCount returns the number of interfaces exposed by the device.
	InterfaceCount() int

	// EndpointCount returns the number of endpoints on the given interface.
	EndpointCount(interfaceNumber int) int

	// DescribeInterface returns the descriptor of the given interface.
	DescribeInterface(interfaceNumber int) InterfaceDesc

	// DescribeEndpoint returns the descriptor of the given endpoint.
	DescribeEndpoint(interfaceNumber, endpointNumber int) EndpointDesc

	// ClaimInterface acquires exclusive access to an interface. It reports
	// whether the claim succeeded.
	ClaimInterface(interfaceNumber int) bool

	// ReleaseInterface gives up a previously claimed interface. It reports
	// whether the release succeeded.
	ReleaseInterface(interfaceNumber int) bool

	// ControlTransfer performs a control transfer. requestType is the full
	// bmRequestType bitfield, including the direction bit. For IN transfers
	// the received data is written into buf. It returns the number of bytes
	// transferred; zero is a valid empty transfer.
	ControlTransfer(requestType, request, value, index int, buf []byte) (int, error)

	// BulkTransfer performs a bulk transfer on the given endpoint. It fails
	// with ErrDirectionMismatch if the endpoint's declared direction does
	// not match the requested one.
	BulkTransfer(interfaceNumber, endpointNumber int, direction Direction, buf []byte) (int, error)

	// Close releases all resources held by the connection. It is
	// idempotent; closing an already closed device is a no-op.
	Close() error
}
