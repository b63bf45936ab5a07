package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent is emitted once per Generate call, success or failure.
// ErrorCode carries the sentinel's code (TIMEOUT, UNAVAILABLE, ...)
// and is empty on success.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver prints one line per call, enabled through
// STUDYPLAN_LLM_LOG_CALLS for debugging local model setups.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		ts, event.Task, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
