package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/handiism/cnsr-locator/internal/tui"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintSelection(t *testing.T) {
	want := &tui.Selection{
		Kind:        "FAA",
		Root:        "/data/FAA",
		Participant: "12345",
		Paths: map[string]string{
			"eeg":  "/data/FAA/12345.eeg",
			"vhdr": "/data/FAA/12345.vhdr",
			"vmrk": "/data/FAA/12345.vmrk",
		},
	}

	var buf bytes.Buffer
	if err := printSelection(&buf, want); err != nil {
		t.Fatalf("printSelection() error = %v", err)
	}

	var got tui.Selection
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode output %q: %v", buf.String(), err)
	}
	if !reflect.DeepEqual(&got, want) {
		t.Errorf("printSelection() wrote %+v, want %+v", got, want)
	}
}

func TestPrintSelection_WriteError(t *testing.T) {
	if err := printSelection(failingWriter{}, &tui.Selection{Participant: "1"}); err == nil {
		t.Error("printSelection() to a failing writer returned nil error")
	}
}
