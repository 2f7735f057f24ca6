package usb

//go:generate mockgen -source=driver.go -destination=mocks/driver_mock.go -package=mocks

// Driver is the narrow capability interface consumed from the platform USB
// stack. The libusb-backed implementation lives in internal/driver; tests
// substitute a mock.
type Driver interface {
	// ListDevices enumerates the devices currently visible to the driver.
	ListDevices() ([]DeviceDesc, error)

	// HasPermission reports whether access to the device has been granted.
	// Requesting a grant is not supported; callers must already hold one.
	HasPermission(desc DeviceDesc) bool

	// Open opens a connection to the device.
	Open(desc DeviceDesc) (Connection, error)
}

// Connection is an open driver-level device connection, mirroring the
// Device contract at the driver boundary. RealDevice forwards every Device
// call to exactly one Connection call.
type Connection interface {
	// InterfaceCount returns the number of interfaces on the device.
	InterfaceCount() int

	// EndpointCount returns the number of endpoints on an interface.
	EndpointCount(interfaceNumber int) int

	// InterfaceDescriptor returns the descriptor of an interface.
	InterfaceDescriptor(interfaceNumber int) InterfaceDesc

	// EndpointDescriptor returns the descriptor of an endpoint.
	EndpointDescriptor(interfaceNumber, endpointNumber int) EndpointDesc

	// ClaimInterface acquires exclusive access to an interface.
	ClaimInterface(interfaceNumber int) bool

	// ReleaseInterface gives up a claimed interface.
	ReleaseInterface(interfaceNumber int) bool

	// ControlTransfer performs a control transfer.
	ControlTransfer(requestType, request, value, index int, buf []byte) (int, error)

	// BulkTransfer performs a bulk transfer.
	BulkTransfer(interfaceNumber, endpointNumber int, direction Direction, buf []byte) (int, error)

	// Close releases the driver connection.
	Close() error
}
