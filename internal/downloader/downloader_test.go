package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashring/internal/progress"
)

// recordingReporter collects everything a source reports, for assertions.
type recordingReporter struct {
	mu      sync.Mutex
	updates []progress.Update
	results []progress.Result
}

func (r *recordingReporter) Update(u progress.Update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
}

func (r *recordingReporter) Result(res progress.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *recordingReporter) snapshot() ([]progress.Update, []progress.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]progress.Update(nil), r.updates...), append([]progress.Result(nil), r.results...)
}

func TestHTTPFetchSuccess(t *testing.T) {
	payload := make([]byte, 64*1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "65536")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "out.bin")
	rep := &recordingReporter{}
	d := HTTP{Interval: time.Millisecond}
	d.Fetch(context.Background(), srv.URL, dest, rep)

	_, results := rep.snapshot()
	require.Len(t, results, 1, "exactly one result per fetch")
	assert.Equal(t, progress.OutcomeSuccess, results[0].Outcome)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, int64(len(payload)), results[0].Bytes)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Len(t, data, len(payload))
}

func TestHTTPFetchReportsFinalProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "4")
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	rep := &recordingReporter{}
	d := HTTP{Interval: time.Millisecond}
	d.Fetch(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x"), rep)

	updates, _ := rep.snapshot()
	require.NotEmpty(t, updates, "a final update precedes the result")
	last := updates[len(updates)-1]
	assert.Equal(t, 1.0, last.Percent)
	assert.Equal(t, int64(4), last.Bytes)
	assert.Equal(t, int64(4), last.Total)
}

func TestHTTPFetchUnknownLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Transfer-Encoding", "chunked")
		_, _ = w.Write([]byte("streamed"))
	}))
	defer srv.Close()

	rep := &recordingReporter{}
	d := HTTP{Interval: time.Millisecond}
	d.Fetch(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x"), rep)

	updates, results := rep.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, progress.OutcomeSuccess, results[0].Outcome)
	for _, u := range updates[:len(updates)-1] {
		assert.Negative(t, u.Percent, "no Content-Length means indeterminate progress")
	}
}

func TestHTTPFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rep := &recordingReporter{}
	var d HTTP
	d.Fetch(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x"), rep)

	_, results := rep.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, progress.OutcomeFailure, results[0].Outcome)
	assert.Error(t, results[0].Err)
}

func TestHTTPFetchBadDestination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	rep := &recordingReporter{}
	var d HTTP
	d.Fetch(context.Background(), srv.URL, filepath.Join(t.TempDir(), "missing", "dir", "x"), rep)

	_, results := rep.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, progress.OutcomeFailure, results[0].Outcome)
	assert.Error(t, results[0].Err)
}

func TestHTTPFetchCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "1048576")
		_, _ = w.Write(make([]byte, 1024))
		w.(http.Flusher).Flush()
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	rep := &recordingReporter{}
	d := HTTP{Interval: time.Millisecond}

	done := make(chan struct{})
	go func() {
		d.Fetch(ctx, srv.URL, filepath.Join(t.TempDir(), "x"), rep)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not stop after cancellation")
	}
	_, results := rep.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, progress.OutcomeFailure, results[0].Outcome)
}
