// Package main provides the entry point for the USB bridge daemon.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/usb-bridge/usb-bridge-daemon/internal/bridge"
	"github.com/usb-bridge/usb-bridge-daemon/internal/dispatch"
	"github.com/usb-bridge/usb-bridge-daemon/internal/driver"
	"github.com/usb-bridge/usb-bridge-daemon/internal/registry"
)

var (
	verbose        bool
	allowSimulated bool
	rootCmd        = &cobra.Command{
		Use:   "usb-bridge-daemon",
		Short: "D-Bus daemon for generic USB device access",
		Long: `usb-bridge-daemon is a D-Bus service that exposes USB device access
to unprivileged clients.

It provides commands for enumerating devices, opening connections,
inspecting interfaces and endpoints, claiming interfaces, and issuing
control and bulk transfers against the opened devices.`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&allowSimulated, "allow-simulated", false,
		"Expose the simulated loopback device to clients")
}

func run() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Msg("Starting usb-bridge-daemon")

	// Initialize the libusb driver and the connection registry
	drv := driver.NewLibusb()
	reg := registry.New()

	devices, err := drv.ListDevices()
	if err != nil {
		log.Error().Err(err).Msg("Failed to enumerate devices")
	} else {
		log.Info().Int("count", len(devices)).Msg("Enumerated USB devices")
	}

	// Assemble the dispatcher
	var opts []dispatch.Option
	if allowSimulated {
		log.Info().Msg("Simulated loopback device enabled")
		opts = append(opts, dispatch.WithSimulatedDevice())
	}
	dispatcher := dispatch.New(drv, reg, opts...)

	// Initialize D-Bus server
	server := bridge.NewServer(dispatcher)
	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start D-Bus server")
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Msg("Daemon running, press Ctrl+C to stop")
	<-sigChan

	// Cleanup
	log.Info().Msg("Shutting down...")
	if err := server.Stop(); err != nil {
		log.Error().Err(err).Msg("Failed to stop D-Bus server")
	}
	if err := reg.CloseAll(); err != nil {
		log.Error().Err(err).Msg("Failed to close open connections")
	}
	if err := drv.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close USB driver")
	}

	log.Info().Msg("Daemon stopped")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}
