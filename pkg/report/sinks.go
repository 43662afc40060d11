package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/rcview/pkg/severity"
)

// Compile-time interface checks.
var (
	_ Reporter = Null{}
	_ Reporter = (*Buffer)(nil)
	_ Reporter = (*Writer)(nil)
	_ Reporter = (*Log)(nil)
)

// Null is a Reporter that discards everything. It lets callers skip nil
// checks when no destination is wired up.
type Null struct{}

// Report implements Reporter.
func (Null) Report(string, severity.Severity) {}

// ReportHead implements Reporter.
func (Null) ReportHead(string, severity.Severity) {}

// ReportTail implements Reporter.
func (Null) ReportTail(string, severity.Severity) {}

// HasMessage implements Reporter.
func (Null) HasMessage() bool { return false }

// Message is one accumulated sink entry.
type Message struct {
	Text     string
	Severity severity.Severity
}

// Buffer accumulates messages in memory, preserving head/body/tail
// placement. It is the sink to hand a checker when the output is assembled
// into a document afterwards.
type Buffer struct {
	head []Message
	body []Message
	tail []Message
}

// Report implements Reporter.
func (b *Buffer) Report(text string, sev severity.Severity) {
	b.body = append(b.body, Message{Text: text, Severity: sev})
}

// ReportHead implements Reporter.
func (b *Buffer) ReportHead(text string, sev severity.Severity) {
	b.head = append(b.head, Message{Text: text, Severity: sev})
}

// ReportTail implements Reporter.
func (b *Buffer) ReportTail(text string, sev severity.Severity) {
	b.tail = append(b.tail, Message{Text: text, Severity: sev})
}

// HasMessage implements Reporter.
func (b *Buffer) HasMessage() bool {
	return len(b.head)+len(b.body)+len(b.tail) > 0
}

// Messages returns every accumulated message in display order: head, body,
// tail.
func (b *Buffer) Messages() []Message {
	out := make([]Message, 0, len(b.head)+len(b.body)+len(b.tail))
	out = append(out, b.head...)
	out = append(out, b.body...)
	out = append(out, b.tail...)
	return out
}

// String renders the accumulated messages as newline-joined text.
func (b *Buffer) String() string {
	msgs := b.Messages()
	var sb strings.Builder
	for _, m := range msgs {
		sb.WriteString(m.Text)
		if !strings.HasSuffix(m.Text, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Writer forwards messages to an io.Writer as they arrive. Head/tail
// placement degrades to plain ordering, matching sinks that cannot reorder.
type Writer struct {
	out      io.Writer
	reported bool
}

// NewWriter creates a sink writing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Report implements Reporter.
func (w *Writer) Report(text string, _ severity.Severity) {
	w.reported = true
	if strings.HasSuffix(text, "\n") {
		fmt.Fprint(w.out, text)
		return
	}
	fmt.Fprintln(w.out, text)
}

// ReportHead implements Reporter.
func (w *Writer) ReportHead(text string, sev severity.Severity) { w.Report(text, sev) }

// ReportTail implements Reporter.
func (w *Writer) ReportTail(text string, sev severity.Severity) { w.Report(text, sev) }

// HasMessage implements Reporter.
func (w *Writer) HasMessage() bool { return w.reported }

// Log forwards messages to a structured logger, mapping severities onto log
// levels. Action and Info both land on the info level.
type Log struct {
	logger   *log.Logger
	reported bool
}

// NewLog creates a sink writing to the given logger.
func NewLog(logger *log.Logger) *Log {
	return &Log{logger: logger}
}

// Report implements Reporter.
func (l *Log) Report(text string, sev severity.Severity) {
	l.reported = true
	text = strings.TrimRight(text, "\n")
	switch sev {
	case severity.Error:
		l.logger.Error(text)
	case severity.Warning:
		l.logger.Warn(text)
	default:
		l.logger.Info(text)
	}
}

// ReportHead implements Reporter.
func (l *Log) ReportHead(text string, sev severity.Severity) { l.Report(text, sev) }

// ReportTail implements Reporter.
func (l *Log) ReportTail(text string, sev severity.Severity) { l.Report(text, sev) }

// HasMessage implements Reporter.
func (l *Log) HasMessage() bool { return l.reported }
