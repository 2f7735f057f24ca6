package usb

import "errors"

// Error kinds shared by every layer of the bridge. All of them are terminal:
// a failed command is reported to the caller as-is, never retried.
var (
	// ErrNotFound is returned for unknown connection handles and device ids.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is returned when the driver has not granted
	// access to a device.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrOpenFailed is returned when the driver accepted an open request
	// but produced no usable connection.
	ErrOpenFailed = errors.New("open failed")

	// ErrOutOfRange is returned when an interface or endpoint index
	// exceeds the counts reported by the device.
	ErrOutOfRange = errors.New("out of range")

	// ErrDirectionMismatch is returned when a requested transfer direction
	// conflicts with the endpoint's declared direction.
	ErrDirectionMismatch = errors.New("endpoint direction mismatch")

	// ErrUnknownVocabulary is returned for unrecognized direction or
	// requestType names.
	ErrUnknownVocabulary = errors.New("unknown vocabulary")

	// ErrTransferFailed is returned when the underlying transfer reported
	// a failure.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrClaimFailed is returned when the device refused an interface claim.
	ErrClaimFailed = errors.New("claim failed")

	// ErrReleaseFailed is returned when the device refused an interface
	// release.
	ErrReleaseFailed = errors.New("release failed")

	// ErrDeviceClosed is returned when an operation is attempted on a
	// closed device.
	ErrDeviceClosed = errors.New("device is closed")
)
