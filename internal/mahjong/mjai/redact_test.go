package mjai

import (
	"strings"
	"testing"
)

func TestRedactHidesOtherSeatsHands(t *testing.T) {
	line := `{"type":"start_kyoku","tehais":[["1m","2m"],["3p","4p"],["5s","6s"],["E","S"]]}`
	out := Redact([]string{line}, 0)[0]

	if !strings.Contains(out, `"tehais":[["1m","2m"],["?","?"],["?","?"],["?","?"]]`) {
		t.Fatalf("redacted line did not hide other seats: %s", out)
	}
}

func TestRedactLeavesOtherEventsUntouched(t *testing.T) {
	line := `{"type":"dahai","actor":1,"pai":"3m"}`
	out := Redact([]string{line}, 0)[0]
	if out != line {
		t.Fatalf("non start_kyoku line was modified: got %q want %q", out, line)
	}
}

func TestRedactIsIdempotentPerViewer(t *testing.T) {
	line := `{"type":"start_kyoku","tehais":[["1m"],["2m"],["3m"],["4m"]]}`
	v0 := Redact([]string{line}, 0)[0]
	v0Again := Redact([]string{v0}, 0)[0]
	if v0 != v0Again {
		t.Fatalf("re-redacting for the same viewer changed the line: %q vs %q", v0, v0Again)
	}
}
