package report_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/rcview/pkg/report"
	"github.com/yaklabco/rcview/pkg/severity"
)

func TestNull(t *testing.T) {
	t.Parallel()

	var sink report.Null
	sink.Report("ignored", severity.Error)
	sink.ReportHead("ignored", severity.Info)
	sink.ReportTail("ignored", severity.Warning)

	if sink.HasMessage() {
		t.Error("Null sink claims to have messages")
	}
}

func TestBuffer_Ordering(t *testing.T) {
	t.Parallel()

	var sink report.Buffer
	if sink.HasMessage() {
		t.Error("fresh buffer should be empty")
	}

	sink.Report("body one", severity.Error)
	sink.ReportTail("tail", severity.Info)
	sink.ReportHead("head", severity.Info)
	sink.Report("body two", severity.Warning)

	if !sink.HasMessage() {
		t.Error("buffer should have messages")
	}

	msgs := sink.Messages()
	want := []string{"head", "body one", "body two", "tail"}
	if len(msgs) != len(want) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(want))
	}
	for i, w := range want {
		if msgs[i].Text != w {
			t.Errorf("messages[%d] = %q, want %q", i, msgs[i].Text, w)
		}
	}
}

func TestBuffer_String(t *testing.T) {
	t.Parallel()

	var sink report.Buffer
	sink.Report("already terminated\n", severity.Info)
	sink.Report("bare", severity.Info)

	if got := sink.String(); got != "already terminated\nbare\n" {
		t.Errorf("String = %q", got)
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := report.NewWriter(&buf)

	if sink.HasMessage() {
		t.Error("fresh writer sink should be empty")
	}

	sink.ReportHead("first", severity.Info)
	sink.Report("second\n", severity.Error)

	if got := buf.String(); got != "first\nsecond\n" {
		t.Errorf("output = %q", got)
	}
	if !sink.HasMessage() {
		t.Error("writer sink should have messages")
	}
}
