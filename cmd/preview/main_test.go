package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hasunakalanka/Forma.Ai/internal/preview"
)

func TestRunPrintsJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--goal=strength", "--days=3"}, &out, &errOut); code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, errOut.String())
	}

	var plan preview.PlanPreview
	if err := json.Unmarshal(out.Bytes(), &plan); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(plan.Schedule) != 3 {
		t.Fatalf("expected 3 days, got %d", len(plan.Schedule))
	}
	if plan.Schedule[0].Focus != "Squat + Accessories" {
		t.Fatalf("unexpected day 1 focus %q", plan.Schedule[0].Focus)
	}
}

func TestRunPrintsText(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--days=9", "--text"}, &out, &errOut); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// summary, blank line, four days
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[2], "Day 1") {
		t.Fatalf("unexpected first day line %q", lines[2])
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--nope"}, &out, &errOut); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
