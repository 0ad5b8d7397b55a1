// mcumon tails the console UART of a board whose firmware retargets its
// stdout to the serial port, prefixing each line with the time since the
// monitor started.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"mcukit/config"
	"mcukit/host/serial"
)

var (
	profile = flag.String("profile", "board.yml", "Board profile (YAML)")
	device  = flag.String("device", "", "Serial device path (overrides profile)")
	baud    = flag.Int("baud", 0, "Baud rate (overrides profile)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcumon: %v\n", err)
		os.Exit(1)
	}
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}

	port, err := serial.Open(&serial.Config{
		Device: cfg.Serial.Device,
		Baud:   cfg.Serial.Baud,
		// Blocking reads; the scanner below drives the pacing.
		ReadTimeout: 0,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcumon: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("mcumon: listening on %s @ %d\n", cfg.Serial.Device, cfg.Serial.Baud)

	start := time.Now()
	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		elapsed := time.Since(start)
		fmt.Printf("[%10.3f] %s\n", elapsed.Seconds(), scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "mcumon: read: %v\n", err)
		os.Exit(1)
	}
}
