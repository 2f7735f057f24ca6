// SPDX-License-Identifier: GPL-3.0-only

// Package bridge exposes the command dispatcher over D-Bus.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/usb-bridge/usb-bridge-daemon/internal/dispatch"
)

// ErrEmptyCommand is returned when an empty command name is provided.
var ErrEmptyCommand = errors.New("command cannot be empty")

// ErrRateLimitExceeded is returned when transfer requests exceed the rate limit.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

const (
	// rateLimitPerSecond is the maximum number of transfer commands per second.
	rateLimitPerSecond = 20

	// rateLimitBurst is the maximum burst size for transfer commands.
	rateLimitBurst = 5
)

const (
	// ServiceName is the D-Bus service name.
	ServiceName = "io.github.usbbridge.UsbBridge"

	// ObjectPath is the D-Bus object path.
	ObjectPath = "/io/github/usbbridge/UsbBridge"

	// InterfaceName is the D-Bus interface name.
	InterfaceName = "io.github.usbbridge.UsbBridge"
)

// IntrospectXML is the D-Bus introspection XML for the service.
const IntrospectXML = `
<node name="` + ObjectPath + `">
  <interface name="` + InterfaceName + `">
    <method name="Execute">
      <arg name="command" type="s" direction="in"/>
      <arg name="params" type="s" direction="in"/>
      <arg name="result" type="s" direction="out"/>
    </method>
  </interface>
  ` + introspect.IntrospectDataString + `
</node>
`

// CommandRunner is an interface for executing bridge commands.
// This allows for mocking in tests.
type CommandRunner interface {
	// Dispatch runs a single named command with JSON-encoded parameters.
	Dispatch(command string, params json.RawMessage) (any, error)
}

// Server implements the D-Bus service for USB device access.
//
// Thread safety:
//   - The underlying Dispatcher is thread-safe.
//   - The connMu mutex protects the D-Bus connection field.
type Server struct {
	conn        *dbus.Conn
	connMu      sync.RWMutex // Protects conn field only
	runner      CommandRunner
	rateLimiter *rate.Limiter
}

// NewServer creates a new D-Bus server backed by the given command runner.
func NewServer(runner CommandRunner) *Server {
	return &Server{
		runner:      runner,
		rateLimiter: rate.NewLimiter(rateLimitPerSecond, rateLimitBurst),
	}
}

// Start connects to the session bus and exports the service.
func (s *Server) Start() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	// Ensure connection is closed if setup fails
	success := false
	defer func() {
		if !success {
			if closeErr := conn.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("Failed to close D-Bus connection during cleanup")
			}
		}
	}()

	// Export the server object
	err = conn.Export(s, ObjectPath, InterfaceName)
	if err != nil {
		return fmt.Errorf("failed to export server: %w", err)
	}

	// Export introspectable interface
	err = conn.Export(introspect.Introspectable(IntrospectXML), ObjectPath, "org.freedesktop.DBus.Introspectable")
	if err != nil {
		return fmt.Errorf("failed to export introspectable: %w", err)
	}

	// Request the service name
	reply, err := conn.RequestName(ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("name %s already taken", ServiceName)
	}

	// Store connection with mutex protection
	s.connMu.Lock()
	s.conn = conn
	s.connMu.Unlock()

	success = true
	log.Info().Str("service", ServiceName).Msg("D-Bus service started")
	return nil
}

// Stop disconnects from the session bus.
func (s *Server) Stop() error {
	s.connMu.Lock()
	conn := s.conn
	s.conn = nil
	s.connMu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

// Execute runs a single bridge command. The params argument carries the
// command parameters as a JSON object; an empty string is treated as no
// parameters. The result is returned as a JSON string.
//
// Transfer commands are rate limited so a misbehaving client cannot
// saturate the bus with device I/O.
func (s *Server) Execute(command, params string) (string, *dbus.Error) {
	if command == "" {
		return "", dbus.MakeFailedError(ErrEmptyCommand)
	}

	if dispatch.IsTransferCommand(command) && !s.rateLimiter.Allow() {
		log.Warn().Str("command", command).Msg("Rate limit exceeded")
		return "", dbus.MakeFailedError(ErrRateLimitExceeded)
	}

	if params == "" {
		params = "{}"
	}

	result, err := s.runner.Dispatch(command, json.RawMessage(params))
	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("Command failed")
		return "", dbus.MakeFailedError(err)
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("Failed to encode result")
		return "", dbus.MakeFailedError(err)
	}

	log.Debug().Str("command", command).Msg("Command executed")
	return string(encoded), nil
}
