// Command hilocut demonstrates the stereo low-cut / high-cut filter engine.
//
// Usage:
//
//	hilocut info [flags]   print designed sections and the frequency response
//	hilocut play [flags]   play filtered white noise on the default sound card
//
// Examples:
//
//	hilocut info -lowcut 1000 -lowslope 48
//	hilocut info -sr 44100 -highcut 8000 -highslope "24 dB/oct"
//	HILOCUT_MQTT_BROKER=localhost hilocut play -lowcut 200
//	hilocut play -duration 10s -highcut 3000 -highslope 36
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hilocut <command> [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  info   print designed sections and the frequency response\n")
	fmt.Fprintf(os.Stderr, "  play   play filtered white noise (MQTT-controllable)\n\n")
	fmt.Fprintf(os.Stderr, "Run 'hilocut <command> -h' for command flags.\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "info":
		err = runInfo(os.Args[2:], os.Stdout)
	case "play":
		err = runPlay(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("hilocut %s: %v", os.Args[1], err)
	}
}
