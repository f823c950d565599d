package types

import (
	"encoding/json"
	"testing"
)

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeOK, "OK"},
		{OutcomeSkipped, "SKIPPED"},
		{OutcomeFailed, "FAILED"},
		{OutcomeTimeout, "TIMEOUT"},
		{OutcomeError, "ERROR"},
		{Outcome(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.outcome.String()
			if got != tt.want {
				t.Errorf("Outcome.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		input   string
		want    Outcome
		wantErr bool
	}{
		{"OK", OutcomeOK, false},
		{"ok", OutcomeOK, false},
		{"Timeout", OutcomeTimeout, false},
		{"failed", OutcomeFailed, false},
		{"skipped", OutcomeSkipped, false},
		{"error", OutcomeError, false},
		{"bogus", OutcomeError, true},
		{"", OutcomeError, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutcome(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseOutcome(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseOutcome(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutcomeJSON(t *testing.T) {
	data, err := json.Marshal(OutcomeTimeout)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"TIMEOUT"` {
		t.Errorf("Marshal = %s, want \"TIMEOUT\"", data)
	}

	var o Outcome
	if err := json.Unmarshal([]byte(`"failed"`), &o); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if o != OutcomeFailed {
		t.Errorf("Unmarshal = %v, want FAILED", o)
	}

	if err := json.Unmarshal([]byte(`"nope"`), &o); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestOutcomeSucceeded(t *testing.T) {
	if !OutcomeOK.Succeeded() || !OutcomeSkipped.Succeeded() {
		t.Error("OK and SKIPPED should count as success")
	}
	for _, o := range []Outcome{OutcomeFailed, OutcomeTimeout, OutcomeError} {
		if o.Succeeded() {
			t.Errorf("%s should not count as success", o)
		}
	}
}
