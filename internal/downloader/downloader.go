// Package downloader provides the download sources that drive the
// indicator: a real HTTP fetch and a scripted simulation. Both report
// through a progress.Reporter and never touch the UI directly.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"dashring/internal/progress"
	"dashring/internal/util/format"
)

const defaultPollInterval = 100 * time.Millisecond

// HTTP downloads a URL to a local file, polling the byte counter on an
// interval and reporting fractional progress when the server provides a
// Content-Length. Every call ends with exactly one Result: success at EOF,
// failure on transport, filesystem, or HTTP errors. Cancelling the context
// aborts the transfer and reports a failure.
type HTTP struct {
	Client   *http.Client
	Interval time.Duration
}

// Fetch runs the download to completion, reporting through rep.
func (d HTTP) Fetch(ctx context.Context, url, dest string, rep progress.Reporter) {
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	interval := d.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		rep.Result(progress.Result{Outcome: progress.OutcomeFailure, Err: fmt.Errorf("building request: %w", err)})
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		rep.Result(progress.Result{Outcome: progress.OutcomeFailure, Err: fmt.Errorf("requesting %s: %w", url, err)})
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rep.Result(progress.Result{Outcome: progress.OutcomeFailure, Err: fmt.Errorf("server returned %s", resp.Status)})
		return
	}

	out, err := os.Create(dest)
	if err != nil {
		rep.Result(progress.Result{Outcome: progress.OutcomeFailure, Err: fmt.Errorf("creating %s: %w", dest, err)})
		return
	}
	defer func() { _ = out.Close() }()

	total := resp.ContentLength
	var completed atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- copyCounted(out, resp.Body, &completed)
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	var lastBytes int64
	lastAt := start
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			bytes := completed.Load()
			rep.Update(update(bytes, total, speed(bytes-lastBytes, now.Sub(lastAt))))
			lastBytes, lastAt = bytes, now
		case err := <-done:
			bytes := completed.Load()
			if err != nil {
				rep.Result(progress.Result{Outcome: progress.OutcomeFailure, Bytes: bytes, Err: err})
				return
			}
			rep.Update(update(bytes, total, ""))
			rep.Result(progress.Result{Outcome: progress.OutcomeSuccess, Bytes: bytes})
			return
		}
	}
}

func copyCounted(dst io.Writer, src io.Reader, counter *atomic.Int64) error {
	buf := make([]byte, 32*1024)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return fmt.Errorf("writing output: %w", werr)
			}
			counter.Add(int64(n))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
	}
}

func update(bytes, total int64, speed string) progress.Update {
	u := progress.Update{
		Percent: -1,
		Bytes:   bytes,
		Total:   total,
		Speed:   speed,
		Message: format.HumanizeBytes(bytes),
	}
	if total > 0 {
		u.Percent = float64(bytes) / float64(total)
		u.Message = fmt.Sprintf("%s of %s", format.HumanizeBytes(bytes), format.HumanizeBytes(total))
	}
	return u
}

func speed(deltaBytes int64, elapsed time.Duration) string {
	if elapsed <= 0 || deltaBytes < 0 {
		return ""
	}
	perSec := int64(float64(deltaBytes) / elapsed.Seconds())
	return format.HumanizeBytes(perSec) + "/s"
}
