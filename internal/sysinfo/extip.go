package sysinfo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const extIPEndpoint = "https://api.ipify.org"

// ExtIP is the shared cell holding the device's external address. A
// detached goroutine refreshes it periodically; the tick loop only ever
// reads it, so its network latency never stalls a tick.
type ExtIP struct {
	interval time.Duration
	client   *http.Client
	log      *slog.Logger

	mu   sync.RWMutex
	addr string
}

// NewExtIP creates the cell. The address reads as "..." until the first
// fetch completes.
func NewExtIP(interval time.Duration, log *slog.Logger) *ExtIP {
	return &ExtIP{
		interval: interval,
		client:   &http.Client{Timeout: 8 * time.Second},
		log:      log,
		addr:     "...",
	}
}

// Addr returns the most recently fetched external address.
func (e *ExtIP) Addr() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.addr
}

// Refresh fetches the external address once, synchronously. Failures
// store the unknown marker; startup tolerates a missing uplink.
func (e *ExtIP) Refresh(ctx context.Context) {
	addr := e.fetch(ctx)

	e.mu.Lock()
	e.addr = addr
	e.mu.Unlock()
}

// Start launches the background refresh loop. It returns immediately;
// the loop stops when ctx is cancelled.
func (e *ExtIP) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.Refresh(ctx)
			}
		}
	}()
}

func (e *ExtIP) fetch(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, extIPEndpoint, nil)
	if err != nil {
		return UnknownIP
	}
	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Warn("external IP fetch failed", "error", err)
		return UnknownIP
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil || resp.StatusCode != http.StatusOK {
		e.log.Warn("external IP fetch failed", "status", resp.StatusCode, "error", err)
		return UnknownIP
	}

	addr := strings.TrimSpace(string(body))
	if addr == "" {
		return UnknownIP
	}
	return addr
}
