package log

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewContextWithWriter(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info level hides debug", debug: false, wantDebug: false},
		{name: "debug level shows debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &syncBuffer{}
			ctx, flush := NewContextWithWriter(context.Background(), out, tt.debug)

			logger := FromCtx(ctx)
			require.NotNil(t, logger)
			logger.Info().Msg("visible entry")
			logger.Debug().Msg("debug entry")
			flush()

			// diode flushes asynchronously
			assert.Eventually(t, func() bool {
				return strings.Contains(out.String(), "visible entry")
			}, time.Second, 10*time.Millisecond)
			assert.Equal(t, tt.wantDebug, strings.Contains(out.String(), "debug entry"))
		})
	}
}

type closeRecorder struct {
	syncBuffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestNewContextWithWriter_FlushKeepsSinkOpen(t *testing.T) {
	sink := &closeRecorder{}
	ctx, flush := NewContextWithWriter(context.Background(), sink, false)

	FromCtx(ctx).Info().Msg("before flush")
	flush()

	assert.False(t, sink.closed)
	assert.Eventually(t, func() bool {
		return strings.Contains(sink.String(), "before flush")
	}, time.Second, 10*time.Millisecond)

	_, err := sink.Write([]byte("Error: after flush\n"))
	require.NoError(t, err)
	assert.Contains(t, sink.String(), "Error: after flush")
}
