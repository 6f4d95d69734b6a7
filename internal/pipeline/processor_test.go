package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"ai-doc-parser/constants"
	"ai-doc-parser/gen/ent"
	"ai-doc-parser/internal/common"
	"ai-doc-parser/internal/extract"
	"ai-doc-parser/internal/llm"
	"ai-doc-parser/internal/notify"
	"ai-doc-parser/internal/repository"
	"ai-doc-parser/internal/rules"
)

type fakeTaskRepo struct {
	mu          sync.Mutex
	transitions []string
	failMessage string
	documentID  uuid.UUID
}

func (f *fakeTaskRepo) Create(context.Context, repository.CreateTaskParams) (*ent.Task, error) {
	return nil, nil
}
func (f *fakeTaskRepo) Get(context.Context, uuid.UUID) (*ent.Task, error) { return nil, nil }
func (f *fakeTaskRepo) MarkProcessing(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitions = append(f.transitions, "processing")
	return nil
}
func (f *fakeTaskRepo) MarkCompleted(_ context.Context, _ uuid.UUID, documentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitions = append(f.transitions, "completed")
	f.documentID = documentID
	return nil
}
func (f *fakeTaskRepo) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitions = append(f.transitions, "failed")
	f.failMessage = message
	return nil
}

type fakeDocRepo struct {
	mu    sync.Mutex
	saved *repository.SaveDocumentParams
	id    uuid.UUID
}

func (f *fakeDocRepo) GetByHash(context.Context, string) (*ent.Document, error) {
	return nil, common.ErrNotFound
}
func (f *fakeDocRepo) GetByID(context.Context, uuid.UUID) (*ent.Document, error) {
	return nil, common.ErrNotFound
}
func (f *fakeDocRepo) Save(_ context.Context, p repository.SaveDocumentParams) (*ent.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = &p
	return &ent.Document{ID: f.id}, nil
}

type fakeBlobs struct {
	content map[string][]byte
}

func (f *fakeBlobs) Put(_ context.Context, key string, content []byte, _ string) (string, error) {
	f.content[key] = content
	return "s3://test/" + key, nil
}
func (f *fakeBlobs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := f.content[key]
	if !ok {
		return nil, common.WrapError(common.ErrStorageUnavailable, "no such key "+key)
	}
	return b, nil
}

type fakeStructurer struct {
	out json.RawMessage
	err error
}

func (f *fakeStructurer) Structure(context.Context, llm.StructureRequest) (json.RawMessage, error) {
	return f.out, f.err
}

func TestProcessCompletesAndNotifies(t *testing.T) {
	var payload atomicPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Errorf("decode callback: %v", err)
		}
		payload.store(m)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tasks := &fakeTaskRepo{}
	docs := &fakeDocRepo{id: uuid.New()}
	blobs := &fakeBlobs{content: map[string][]byte{
		"documents/abc.csv": []byte("field,value\nCustomerName,Acme Corp\nCommitmentFee,10000\n"),
	}}
	model := &fakeStructurer{out: json.RawMessage(`{"CustomerName": "Acme Corp", "CommitmentFee": 10000}`)}
	notifier := notify.NewNotifier(notify.Config{BaseBackoff: time.Millisecond}, nil)

	p := NewProcessor(tasks, docs, blobs, extract.NewExtractor(extract.Config{}, nil), model, rules.NewValidator(), notifier, nil)

	job := Job{
		TaskID:      uuid.New(),
		Kind:        constants.KindContract,
		FileName:    "contract.csv",
		FileHash:    "abc",
		FileSize:    56,
		StorageKey:  "documents/abc.csv",
		CallbackURL: srv.URL,
	}
	if err := p.Process(context.Background(), job); err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := notifier.Shutdown(ctx); err != nil {
		t.Fatalf("notifier shutdown: %v", err)
	}

	if got := strings.Join(tasks.transitions, ","); got != "processing,completed" {
		t.Errorf("transitions = %s", got)
	}
	if tasks.documentID != docs.id {
		t.Errorf("task linked to document %s, want %s", tasks.documentID, docs.id)
	}
	if docs.saved == nil {
		t.Fatal("document never saved")
	}
	if docs.saved.FileHash != "abc" || docs.saved.Kind != constants.KindContract {
		t.Errorf("saved params = %+v", docs.saved)
	}

	m := payload.load()
	if m == nil {
		t.Fatal("callback never delivered")
	}
	if m["status"] != "completed" || m["CustomerName"] != "Acme Corp" {
		t.Errorf("callback payload = %v", m)
	}
	if m["task_id"] != job.TaskID.String() {
		t.Errorf("task_id = %v", m["task_id"])
	}
	if _, ok := m["validation_status"]; !ok {
		t.Error("callback missing validation_status")
	}
}

func TestProcessFailureMarksTaskAndNotifies(t *testing.T) {
	var payload atomicPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m map[string]any
		_ = json.NewDecoder(r.Body).Decode(&m)
		payload.store(m)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tasks := &fakeTaskRepo{}
	docs := &fakeDocRepo{id: uuid.New()}
	blobs := &fakeBlobs{content: map[string][]byte{
		"documents/abc.csv": []byte("a,b\n1,2\n"),
	}}
	model := &fakeStructurer{err: common.WrapError(common.ErrStructuringFailed, "model kept returning invalid json")}
	notifier := notify.NewNotifier(notify.Config{BaseBackoff: time.Millisecond}, nil)

	p := NewProcessor(tasks, docs, blobs, extract.NewExtractor(extract.Config{}, nil), model, rules.NewValidator(), notifier, nil)

	job := Job{
		TaskID:      uuid.New(),
		Kind:        constants.KindContract,
		FileName:    "contract.csv",
		FileHash:    "abc",
		StorageKey:  "documents/abc.csv",
		CallbackURL: srv.URL,
	}
	if err := p.Process(context.Background(), job); err == nil {
		t.Fatal("Process() returned nil for failing structurer")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := notifier.Shutdown(ctx); err != nil {
		t.Fatalf("notifier shutdown: %v", err)
	}

	if got := strings.Join(tasks.transitions, ","); got != "processing,failed" {
		t.Errorf("transitions = %s", got)
	}
	if !strings.Contains(tasks.failMessage, "STRUCTURING_FAILED") {
		t.Errorf("fail message = %q, want STRUCTURING_FAILED code", tasks.failMessage)
	}
	if docs.saved != nil {
		t.Error("document saved despite failure")
	}

	m := payload.load()
	if m == nil {
		t.Fatal("failure callback never delivered")
	}
	if m["status"] != "failed" {
		t.Errorf("callback status = %v", m["status"])
	}
	if _, ok := m["error"]; !ok {
		t.Error("failure callback missing error")
	}
}

func TestProcessMissingBlob(t *testing.T) {
	tasks := &fakeTaskRepo{}
	docs := &fakeDocRepo{id: uuid.New()}
	blobs := &fakeBlobs{content: map[string][]byte{}}
	model := &fakeStructurer{out: json.RawMessage(`{"CustomerName": "Acme"}`)}

	p := NewProcessor(tasks, docs, blobs, extract.NewExtractor(extract.Config{}, nil), model, rules.NewValidator(), nil, nil)

	job := Job{TaskID: uuid.New(), Kind: constants.KindContract, FileName: "x.csv", StorageKey: "documents/missing.csv"}
	if err := p.Process(context.Background(), job); err == nil {
		t.Fatal("Process() returned nil for missing blob")
	}
	if !strings.Contains(tasks.failMessage, "STORAGE_UNAVAILABLE") {
		t.Errorf("fail message = %q, want STORAGE_UNAVAILABLE code", tasks.failMessage)
	}
}

func TestQueueProcessesAndDrains(t *testing.T) {
	tasks := &fakeTaskRepo{}
	docs := &fakeDocRepo{id: uuid.New()}
	blobs := &fakeBlobs{content: map[string][]byte{
		"documents/abc.csv": []byte("a,b\n1,2\n"),
	}}
	model := &fakeStructurer{out: json.RawMessage(`{"CustomerName": "Acme"}`)}

	p := NewProcessor(tasks, docs, blobs, extract.NewExtractor(extract.Config{}, nil), model, rules.NewValidator(), nil, nil)
	q := NewQueue(p, nil, WithWorkers(2), WithQueueSize(8), WithProcessTimeout(time.Minute))

	job := Job{TaskID: uuid.New(), Kind: constants.KindContract, FileName: "contract.csv", FileHash: "abc", StorageKey: "documents/abc.csv"}
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	tasks.mu.Lock()
	defer tasks.mu.Unlock()
	if got := strings.Join(tasks.transitions, ","); got != "processing,completed" {
		t.Errorf("transitions = %s", got)
	}
}

// atomicPayload guards callback payloads shared between test server and
// assertions.
type atomicPayload struct {
	mu sync.Mutex
	m  map[string]any
}

func (a *atomicPayload) store(m map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.m = m
}

func (a *atomicPayload) load() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.m
}
