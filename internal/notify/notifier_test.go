package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNotifierDeliversOnFirstTry(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		got.Store(payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(Config{BaseBackoff: time.Millisecond}, nil)
	err := n.Enqueue(Delivery{
		TaskID:  "t-1",
		URL:     srv.URL,
		Payload: map[string]any{"task_id": "t-1", "status": "completed", "CustomerName": "Acme"},
	})
	if err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	payload, ok := got.Load().(map[string]any)
	if !ok {
		t.Fatal("callback never arrived")
	}
	if payload["status"] != "completed" || payload["CustomerName"] != "Acme" {
		t.Errorf("payload = %v", payload)
	}
}

func TestNotifierRetriesUntilSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(Config{BaseBackoff: time.Millisecond, MaxAttempts: 5}, nil)
	if err := n.Enqueue(Delivery{TaskID: "t-2", URL: srv.URL, Payload: map[string]any{"status": "failed"}}); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want exactly 3 (two failures then success)", got)
	}
}

func TestNotifierGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewNotifier(Config{BaseBackoff: time.Millisecond, MaxAttempts: 3}, nil)
	if err := n.Enqueue(Delivery{TaskID: "t-3", URL: srv.URL, Payload: map[string]any{}}); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestNotifierSkipsEmptyURL(t *testing.T) {
	n := NewNotifier(Config{}, nil)
	if err := n.Enqueue(Delivery{TaskID: "t-4", Payload: map[string]any{}}); err != nil {
		t.Fatalf("Enqueue() with empty URL should be a no-op, got %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := n.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
}

func TestNotifierEnqueueAfterShutdown(t *testing.T) {
	n := NewNotifier(Config{}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := n.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	// a worker finishing a task after shutdown must get an error, not a panic
	if err := n.Enqueue(Delivery{TaskID: "late", URL: "http://127.0.0.1:1", Payload: map[string]any{}}); err == nil {
		t.Error("expected error enqueueing after shutdown")
	}
}

func TestNotifierQueueFull(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(Config{QueueSize: 1, Workers: 1, BaseBackoff: time.Millisecond}, nil)
	// first delivery occupies the worker, second fills the queue
	_ = n.Enqueue(Delivery{TaskID: "a", URL: srv.URL, Payload: map[string]any{}})
	time.Sleep(50 * time.Millisecond)
	_ = n.Enqueue(Delivery{TaskID: "b", URL: srv.URL, Payload: map[string]any{}})

	if err := n.Enqueue(Delivery{TaskID: "c", URL: srv.URL, Payload: map[string]any{}}); err == nil {
		t.Error("expected queue-full error")
	}

	close(blocked)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
}
