package statsd

import (
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCaptureServer binds a UDP socket and returns a client pointed at it
// plus a channel of received lines.
func newCaptureServer(t *testing.T, opts Options) (*Client, <-chan string) {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pc.Close() })

	lines := make(chan string, 16)
	go func() {
		buf := make([]byte, 1500)
		for {
			n, _, readErr := pc.ReadFrom(buf)
			if readErr != nil {
				return
			}
			lines <- string(buf[:n])
		}
	}()

	opts.Enabled = true
	opts.Address = pc.LocalAddr().String()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := NewClient(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, lines
}

func receiveLine(t *testing.T, lines <-chan string) string {
	t.Helper()
	select {
	case line := <-lines:
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for metric line")
		return ""
	}
}

func TestClient_Count(t *testing.T) {
	client, lines := newCaptureServer(t, Options{Prefix: "planboard"})

	client.Count("mailbox.poll", 1, map[string]string{"result": "success"})

	assert.Equal(t, "planboard.mailbox.poll:1|c|#result:success", receiveLine(t, lines))
}

func TestClient_GaugeAndTiming(t *testing.T) {
	client, lines := newCaptureServer(t, Options{Prefix: "planboard"})

	client.Gauge("mailbox.unread", 3, nil)
	assert.Equal(t, "planboard.mailbox.unread:3|g", receiveLine(t, lines))

	client.Timing("mailbox.poll_duration", 1500*time.Millisecond, nil)
	assert.Equal(t, "planboard.mailbox.poll_duration:1500|ms", receiveLine(t, lines))
}

func TestClient_TagsAreSortedAndMerged(t *testing.T) {
	client, lines := newCaptureServer(t, Options{
		Prefix:     "planboard",
		GlobalTags: map[string]string{"env": "test"},
	})

	client.Count("mailbox.poll", 1, map[string]string{"result": "error", "error_class": "timeout"})

	assert.Equal(t,
		"planboard.mailbox.poll:1|c|#env:test,error_class:timeout,result:error",
		receiveLine(t, lines))
}

func TestClient_NormalizesMetricNames(t *testing.T) {
	client, lines := newCaptureServer(t, Options{Prefix: " planboard. "})

	client.Count("mailbox poll/total", 2, nil)

	assert.Equal(t, "planboard.mailbox_poll_total:2|c", receiveLine(t, lines))
}

func TestClient_DisabledIsNoop(t *testing.T) {
	client, err := NewClient(Options{Enabled: false, Address: "127.0.0.1:8125"})
	require.NoError(t, err)

	assert.False(t, client.Enabled())
	client.Count("mailbox.poll", 1, nil)
	require.NoError(t, client.Close())
}

func TestClient_NilIsNoop(t *testing.T) {
	var client *Client

	assert.False(t, client.Enabled())
	client.Count("mailbox.poll", 1, nil)
	client.Gauge("mailbox.unread", 1, nil)
	client.Timing("mailbox.poll_duration", time.Second, nil)
	assert.NoError(t, client.Close())
}

func TestClient_CloseDisables(t *testing.T) {
	client, _ := newCaptureServer(t, Options{})

	assert.True(t, client.Enabled())
	require.NoError(t, client.Close())
	assert.False(t, client.Enabled())

	// Emitting after close must not panic.
	client.Count("mailbox.poll", 1, nil)
}
