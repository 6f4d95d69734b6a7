// Package notify delivers task-completion callbacks over HTTP. Deliveries
// run in the background so the processing pipeline never blocks on a slow
// subscriber endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Delivery is one callback to attempt.
type Delivery struct {
	TaskID  string
	URL     string
	Payload map[string]any
}

type Config struct {
	Timeout     time.Duration // per-request timeout, default 30s
	MaxAttempts int           // default 5
	BaseBackoff time.Duration // doubles per attempt, default 2s
	QueueSize   int           // default 256
	Workers     int           // default 2
}

// Notifier posts payloads to callback URLs with bounded retries. A 2xx
// response counts as delivered; anything else is retried with exponential
// backoff until attempts run out.
type Notifier struct {
	cfg    Config
	client *http.Client
	log    *slog.Logger

	ch       chan Delivery
	wg       sync.WaitGroup
	stopOnce sync.Once
	done     chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewNotifier(cfg Config, logger *slog.Logger) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 2 * time.Second
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if logger == nil {
		logger = slog.Default()
	}

	n := &Notifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger,
		ch:     make(chan Delivery, cfg.QueueSize),
		done:   make(chan struct{}),
	}
	for i := 0; i < cfg.Workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	return n
}

// Enqueue hands a delivery to the background workers. A delivery with no
// URL is silently skipped; a full queue or a notifier already shutting down
// is an error so callers can log it.
func (n *Notifier) Enqueue(d Delivery) error {
	if d.URL == "" {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return fmt.Errorf("notifier is shutting down, dropping callback for task %s", d.TaskID)
	}
	select {
	case n.ch <- d:
		return nil
	default:
		return fmt.Errorf("notify queue full, dropping callback for task %s", d.TaskID)
	}
}

// Shutdown stops accepting work and waits for in-flight deliveries, up to
// the context deadline. Queued deliveries still pending are drained.
func (n *Notifier) Shutdown(ctx context.Context) error {
	n.stopOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		close(n.done)
		close(n.ch)
		n.mu.Unlock()
	})

	finished := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for d := range n.ch {
		n.deliver(d)
	}
}

func (n *Notifier) deliver(d Delivery) {
	body, err := json.Marshal(d.Payload)
	if err != nil {
		n.log.Error("notify.marshal_failed", "task_id", d.TaskID, "error", err)
		return
	}

	for attempt := 1; attempt <= n.cfg.MaxAttempts; attempt++ {
		status, err := n.post(d.URL, body)
		if err == nil && status >= 200 && status < 300 {
			n.log.Info("notify.delivered", "task_id", d.TaskID, "url", d.URL, "attempt", attempt, "status", status)
			return
		}
		n.log.Warn("notify.attempt_failed",
			"task_id", d.TaskID, "url", d.URL,
			"attempt", attempt, "max_attempts", n.cfg.MaxAttempts,
			"status", status, "error", err,
		)
		if attempt == n.cfg.MaxAttempts {
			break
		}
		backoff := n.cfg.BaseBackoff << (attempt - 1)
		select {
		case <-time.After(backoff):
		case <-n.done:
			// shutdown: retry immediately so drain doesn't stall on backoff
		}
	}
	n.log.Error("notify.gave_up", "task_id", d.TaskID, "url", d.URL, "attempts", n.cfg.MaxAttempts)
}

func (n *Notifier) post(url string, body []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), n.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
