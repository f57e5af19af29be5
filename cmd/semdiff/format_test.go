package main

import (
	"strings"
	"testing"
	"time"

	"semdiff/internal/history"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		fallback string
		want     OutputFormat
		wantErr  bool
	}{
		{name: "explicit json", flag: "json", fallback: "human", want: FormatJSON},
		{name: "explicit human", flag: "human", fallback: "json", want: FormatHuman},
		{name: "fallback to config", flag: "", fallback: "json", want: FormatJSON},
		{name: "unknown format", flag: "xml", fallback: "human", wantErr: true},
		{name: "unknown fallback", flag: "", fallback: "yaml", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFormat(tc.flag, tc.fallback)
			if tc.wantErr {
				if err == nil {
					t.Error("parseFormat() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFormat() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("parseFormat() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatHistoryHuman(t *testing.T) {
	runs := []history.Run{
		{
			ID:           "12345678-0000-0000-0000-000000000000",
			ExpectedPath: "want.json",
			ActualPath:   "got.json",
			Tolerance:    0.001,
			Ignore:       []string{"/meta"},
			Equal:        false,
			Pointer:      "/meta/version",
			CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	out := formatHistoryHuman(runs)
	for _, want := range []string{"NOT_EQUAL at /meta/version", "want.json", "got.json", "12345678", "tolerance: 0.001", "ignored: /meta"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatHistoryHuman() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatHistoryHumanEmpty(t *testing.T) {
	out := formatHistoryHuman(nil)
	if !strings.Contains(out, "No recorded runs.") {
		t.Errorf("formatHistoryHuman(nil) = %q", out)
	}
}
