package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Outcome is the result of a single attempted operation
type Outcome int

const (
	// OutcomeOK means the operation completed successfully
	OutcomeOK Outcome = iota
	// OutcomeSkipped means the operation was not attempted (dry run)
	OutcomeSkipped
	// OutcomeFailed means a command exited with a non-zero status
	OutcomeFailed
	// OutcomeTimeout means a command did not finish within its time limit
	OutcomeTimeout
	// OutcomeError means the operation could not be carried out at all
	OutcomeError
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeSkipped:
		return "SKIPPED"
	case OutcomeFailed:
		return "FAILED"
	case OutcomeTimeout:
		return "TIMEOUT"
	case OutcomeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseOutcome(str)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// ParseOutcome parses a string into an Outcome
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToUpper(s) {
	case "OK":
		return OutcomeOK, nil
	case "SKIPPED":
		return OutcomeSkipped, nil
	case "FAILED":
		return OutcomeFailed, nil
	case "TIMEOUT":
		return OutcomeTimeout, nil
	case "ERROR":
		return OutcomeError, nil
	default:
		return OutcomeError, fmt.Errorf("unknown outcome: %s", s)
	}
}

// Succeeded reports whether the outcome counts as a success
func (o Outcome) Succeeded() bool {
	return o == OutcomeOK || o == OutcomeSkipped
}
