// SPDX-License-Identifier: GPL-3.0-only

// Package registry maps opaque connection handles to open USB devices and
// owns their lifetime.
package registry

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"

	"github.com/usb-bridge/usb-bridge-daemon/internal/usb"
)

// Registry is the process-wide table of open device connections. Handles
// are positive integers, assigned monotonically starting at 1, and never
// reused for the lifetime of the registry even after a close.
//
// All methods are safe for concurrent use; a single mutex serializes every
// insert, lookup and removal.
type Registry struct {
	mu          sync.Mutex
	next        int
	connections map[int]usb.Device
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		next:        1,
		connections: make(map[int]usb.Device),
	}
}

// Open stores an open device and returns its freshly allocated handle.
func (r *Registry) Open(dev usb.Device) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := r.next
	r.next++
	r.connections[handle] = dev

	log.Debug().Int("handle", handle).Msg("Connection registered")
	return handle
}

// Get resolves a handle to its device. A stale or unknown handle fails with
// ErrNotFound; it never resolves to a different device.
func (r *Registry) Get(handle int) (usb.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dev, ok := r.connections[handle]
	if !ok {
		return nil, fmt.Errorf("%w: unknown connection handle %d", usb.ErrNotFound, handle)
	}
	return dev, nil
}

// Close removes a handle and closes its device. Closing an absent handle is
// a successful no-op, mirroring the idempotent close semantics of devices.
func (r *Registry) Close(handle int) error {
	r.mu.Lock()
	dev, ok := r.connections[handle]
	delete(r.connections, handle)
	r.mu.Unlock()

	if !ok {
		return nil
	}
	if err := dev.Close(); err != nil {
		return fmt.Errorf("failed to close connection %d: %w", handle, err)
	}
	log.Debug().Int("handle", handle).Msg("Connection closed")
	return nil
}

// CloseAll closes every remaining connection. It is the process teardown
// hook; every device is closed exactly once and the table is cleared even
// if some closes fail.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs error
	for handle, dev := range r.connections {
		if err := dev.Close(); err != nil {
			log.Error().Err(err).Int("handle", handle).Msg("Failed to close connection")
			errs = multierr.Append(errs, fmt.Errorf("connection %d: %w", handle, err))
		}
		delete(r.connections, handle)
	}
	return errs
}

// Count returns the number of open connections.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.connections)
}
