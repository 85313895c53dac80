package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
	"github.com/cwbudde/algo-hilocut/dsp/hilocut"
)

// ErrUnknownCommand is returned for command names outside Commands.
var ErrUnknownCommand = errors.New("remote: unknown command")

// Command names. Each is subscribed as <topic>/<command>/set.
const (
	CommandLowCutFreq   = "lowcut/freq"
	CommandLowCutSlope  = "lowcut/slope"
	CommandHighCutFreq  = "highcut/freq"
	CommandHighCutSlope = "highcut/slope"
)

// Commands lists every command the remote control accepts.
var Commands = []string{CommandLowCutFreq, CommandLowCutSlope, CommandHighCutFreq, CommandHighCutSlope}

// Apply parses payload for command and writes it to params. Frequencies
// are in Hz; slopes accept anything cut.ParseSlope does.
func Apply(params *hilocut.Parameters, command, payload string) error {
	payload = strings.TrimSpace(payload)

	switch command {
	case CommandLowCutFreq, CommandHighCutFreq:
		hz, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return fmt.Errorf("remote: %s: %w", command, err)
		}
		if command == CommandLowCutFreq {
			params.SetLowCutFreq(hz)
		} else {
			params.SetHighCutFreq(hz)
		}
	case CommandLowCutSlope, CommandHighCutSlope:
		s, err := cut.ParseSlope(payload)
		if err != nil {
			return fmt.Errorf("remote: %s: %w", command, err)
		}
		if command == CommandLowCutSlope {
			params.SetLowCutSlope(s)
		} else {
			params.SetHighCutSlope(s)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	return nil
}

// commandFromTopic extracts the command name from <base>/<command>/set.
func commandFromTopic(base, topic string) (string, bool) {
	rest, ok := strings.CutPrefix(topic, base+"/")
	if !ok {
		return "", false
	}
	cmd, ok := strings.CutSuffix(rest, "/set")
	if !ok {
		return "", false
	}
	return cmd, true
}

// stateJSON renders the current parameters for the state topic.
func stateJSON(params *hilocut.Parameters) ([]byte, error) {
	return json.Marshal(params.Snapshot())
}
