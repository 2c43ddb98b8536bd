package cmd

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/mangaso/internal/ui"
)

func TestRunRelay_DrainsInFlightBeforeReturning(t *testing.T) {
	entered := make(chan struct{})
	var finished atomic.Bool

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			time.Sleep(200 * time.Millisecond)
			finished.Store(true)
			_, _ = io.WriteString(w, "ok")
		}),
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- runRelay(ctx, server, ln, ui.NewLoggerTo(io.Discard, false))
	}()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			status <- 0
			return
		}
		_ = resp.Body.Close()
		status <- resp.StatusCode
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}
	cancel()

	select {
	case err := <-result:
		require.NoError(t, err)
		assert.True(t, finished.Load(), "runRelay returned before the in-flight request finished")
	case <-time.After(5 * time.Second):
		t.Fatal("runRelay did not return after cancel")
	}

	assert.Equal(t, http.StatusOK, <-status)
}

func TestRunRelay_ReturnsWhenIdle(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = runRelay(ctx, &http.Server{Handler: http.NotFoundHandler()}, ln, ui.NewLoggerTo(io.Discard, false))
	assert.NoError(t, err)
}
