package monitoring

import (
	"fmt"
	"testing"
)

func TestSetWarnfCaptures(t *testing.T) {
	defer SetWarnf(nil)

	var got []string
	SetWarnf(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})

	Warnf("row %d: %s", 3, "bad year")
	if len(got) != 1 || got[0] != "row 3: bad year" {
		t.Errorf("unexpected captured warnings: %v", got)
	}
}

func TestSetWarnfNilIsNoop(t *testing.T) {
	SetWarnf(nil)
	// Must not panic.
	Warnf("ignored %d", 1)
}
