package metrics

import (
	"time"

	obserrors "github.com/planboard/planboard/internal/observability/errors"
	"github.com/planboard/planboard/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

// PollMetric captures details about one mailbox poll cycle for metric emission.
type PollMetric struct {
	Result   string
	Unread   int
	Duration time.Duration
	Err      error
}

// EmitMailboxPoll emits standardised mailbox poll metrics.
func EmitMailboxPoll(sink statsd.Sink, in PollMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"result": in.Result,
	}

	if in.Err != nil && in.Result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("mailbox.poll", 1, tags)

	if in.Result == ResultSuccess {
		sink.Gauge("mailbox.unread", float64(in.Unread), nil)
	}

	if in.Duration > 0 {
		sink.Timing("mailbox.poll_duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
