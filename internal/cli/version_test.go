package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runVersion(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })
	versionCmd.Run(versionCmd, []string{})
	return buf.String()
}

func TestVersionCmd_Exists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}

	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
}

func TestVersionCmd_OutputsVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-01-01")

	output := runVersion(t)

	for _, want := range []string{"gitunjam version 1.2.3", "abc123", "2024-01-01"} {
		if !strings.Contains(output, want) {
			t.Errorf("version output doesn't contain %q: %q", want, output)
		}
	}
}

func TestVersionCmd_SkipsEmptyCommit(t *testing.T) {
	SetVersionInfo("1.0.0", "", "2024-01-01")

	if output := runVersion(t); strings.Contains(output, "commit:") {
		t.Errorf("version output contains commit when empty: %q", output)
	}
}

func TestVersionCmd_SkipsNoneCommit(t *testing.T) {
	SetVersionInfo("1.0.0", "none", "unknown")

	output := runVersion(t)
	if strings.Contains(output, "commit:") {
		t.Errorf("version output contains commit when 'none': %q", output)
	}
	if strings.Contains(output, "built:") {
		t.Errorf("version output contains built when 'unknown': %q", output)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("v2.0.0", "def456", "2025-06-15")

	if versionStr != "v2.0.0" {
		t.Errorf("versionStr = %q, want %q", versionStr, "v2.0.0")
	}
	if commitStr != "def456" {
		t.Errorf("commitStr = %q, want %q", commitStr, "def456")
	}
	if dateStr != "2025-06-15" {
		t.Errorf("dateStr = %q, want %q", dateStr, "2025-06-15")
	}
}
