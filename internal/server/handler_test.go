package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"ai-doc-parser/constants"
	"ai-doc-parser/gen/ent"
	"ai-doc-parser/internal/common"
	"ai-doc-parser/internal/pipeline"
	"ai-doc-parser/internal/repository"
)

var validPDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type fakeTaskRepo struct {
	created   []repository.CreateTaskParams
	completed []uuid.UUID
	tasks     map[uuid.UUID]*ent.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uuid.UUID]*ent.Task{}}
}

func (f *fakeTaskRepo) Create(_ context.Context, p repository.CreateTaskParams) (*ent.Task, error) {
	f.created = append(f.created, p)
	t := &ent.Task{
		ID:           uuid.New(),
		Status:       string(constants.TaskStatusPending),
		DocumentKind: string(p.Kind),
		FileName:     p.FileName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) Get(_ context.Context, id uuid.UUID) (*ent.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) MarkProcessing(_ context.Context, id uuid.UUID) error { return nil }

func (f *fakeTaskRepo) MarkCompleted(_ context.Context, id uuid.UUID, documentID uuid.UUID) error {
	f.completed = append(f.completed, id)
	if t, ok := f.tasks[id]; ok {
		t.Status = string(constants.TaskStatusCompleted)
		t.DocumentID = &documentID
	}
	return nil
}

func (f *fakeTaskRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	if t, ok := f.tasks[id]; ok {
		t.Status = string(constants.TaskStatusFailed)
		t.Error = &message
	}
	return nil
}

type fakeDocRepo struct {
	byHash map[string]*ent.Document
	byID   map[uuid.UUID]*ent.Document
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{byHash: map[string]*ent.Document{}, byID: map[uuid.UUID]*ent.Document{}}
}

func (f *fakeDocRepo) GetByHash(_ context.Context, hash string) (*ent.Document, error) {
	d, ok := f.byHash[hash]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDocRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDocRepo) Save(_ context.Context, p repository.SaveDocumentParams) (*ent.Document, error) {
	d := &ent.Document{ID: uuid.New(), FileHash: p.FileHash, StorageKey: p.StorageKey}
	f.byHash[p.FileHash] = d
	f.byID[d.ID] = d
	return d, nil
}

type fakeBlobs struct {
	stored map[string][]byte
}

func (f *fakeBlobs) Put(_ context.Context, key string, content []byte, _ string) (string, error) {
	f.stored[key] = content
	return "s3://test/" + key, nil
}

func (f *fakeBlobs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := f.stored[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return b, nil
}

type fakeQueue struct {
	jobs []pipeline.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, job pipeline.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

type testEnv struct {
	tasks  *fakeTaskRepo
	docs   *fakeDocRepo
	blobs  *fakeBlobs
	queue  *fakeQueue
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		tasks: newFakeTaskRepo(),
		docs:  newFakeDocRepo(),
		blobs: &fakeBlobs{stored: map[string][]byte{}},
		queue: &fakeQueue{},
	}
	env.router = NewRouter(NewHandler(env.tasks, env.docs, env.blobs, env.queue, nil))
	return env
}

func multipartBody(t *testing.T, fieldFile, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if fieldFile != "" {
		fw, err := w.CreateFormFile(fieldFile, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func doRequest(t *testing.T, router http.Handler, method, path string, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response not JSON: %v: %s", err, rec.Body.String())
		}
	}
	return rec, resp
}

func TestProcessDocumentAccepted(t *testing.T) {
	env := newTestEnv(t)
	body, ct := multipartBody(t, "file", "contract.pdf", validPDF, map[string]string{
		"callback_url": "https://callback.example/hook",
	})

	rec, resp := doRequest(t, env.router, http.MethodPost, "/api/process-document", body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if resp["status"] != "pending" {
		t.Errorf("status = %v, want pending", resp["status"])
	}
	if resp["task_id"] == "" {
		t.Error("missing task_id")
	}

	if len(env.queue.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(env.queue.jobs))
	}
	job := env.queue.jobs[0]
	if job.Kind != constants.KindContract {
		t.Errorf("job kind = %s", job.Kind)
	}
	if job.CallbackURL != "https://callback.example/hook" {
		t.Errorf("callback url = %q", job.CallbackURL)
	}
	if !strings.HasPrefix(job.StorageKey, "documents/") || !strings.HasSuffix(job.StorageKey, ".pdf") {
		t.Errorf("storage key = %q", job.StorageKey)
	}
	if _, ok := env.blobs.stored[job.StorageKey]; !ok {
		t.Error("blob never stored")
	}
}

func TestProcessPBMDocumentUsesOwnPrefix(t *testing.T) {
	env := newTestEnv(t)
	body, ct := multipartBody(t, "file", "pbm.pdf", validPDF, nil)

	rec, _ := doRequest(t, env.router, http.MethodPost, "/api/process-pbm-document", body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(env.queue.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(env.queue.jobs))
	}
	job := env.queue.jobs[0]
	if job.Kind != constants.KindPBMContract {
		t.Errorf("job kind = %s", job.Kind)
	}
	if !strings.HasPrefix(job.StorageKey, "pbm_documents/") {
		t.Errorf("storage key = %q", job.StorageKey)
	}
}

func TestProcessDocumentMissingFile(t *testing.T) {
	env := newTestEnv(t)
	body, ct := multipartBody(t, "", "", nil, map[string]string{"callback_url": "x"})

	rec, resp := doRequest(t, env.router, http.MethodPost, "/api/process-document", body, ct)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if resp["error"] != "No file provided" {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestProcessDocumentRejectsForgedPDF(t *testing.T) {
	env := newTestEnv(t)
	body, ct := multipartBody(t, "file", "invoice.pdf", []byte("MZ\x90\x00executable"), nil)

	rec, resp := doRequest(t, env.router, http.MethodPost, "/api/process-document", body, ct)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(resp["error"].(string), "Invalid PDF signature") {
		t.Errorf("error = %v", resp["error"])
	}
	if len(env.queue.jobs) != 0 {
		t.Error("invalid upload reached the queue")
	}
}

func TestProcessDocumentDedupe(t *testing.T) {
	env := newTestEnv(t)

	// first upload
	body, ct := multipartBody(t, "file", "contract.pdf", validPDF, nil)
	rec, _ := doRequest(t, env.router, http.MethodPost, "/api/process-document", body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("first upload status = %d", rec.Code)
	}
	job := env.queue.jobs[0]
	// simulate pipeline completion so the hash is in the document store
	if _, err := env.docs.Save(context.Background(), repository.SaveDocumentParams{
		FileHash:   job.FileHash,
		StorageKey: job.StorageKey,
	}); err != nil {
		t.Fatal(err)
	}

	// second upload of identical bytes
	body, ct = multipartBody(t, "file", "contract-copy.pdf", validPDF, nil)
	rec, resp := doRequest(t, env.router, http.MethodPost, "/api/process-document", body, ct)
	if rec.Code != http.StatusOK {
		t.Fatalf("dedupe upload status = %d", rec.Code)
	}
	if resp["status"] != "completed" {
		t.Errorf("status = %v, want completed", resp["status"])
	}
	if resp["message"] != "Document already processed" {
		t.Errorf("message = %v", resp["message"])
	}
	if len(env.queue.jobs) != 1 {
		t.Errorf("jobs = %d, duplicate bytes must not be reprocessed", len(env.queue.jobs))
	}
	if len(env.tasks.completed) != 1 {
		t.Errorf("completed tasks = %d, want dedupe task marked completed", len(env.tasks.completed))
	}
}

func TestGetTaskLifecycle(t *testing.T) {
	env := newTestEnv(t)

	t.Run("not found", func(t *testing.T) {
		rec, _ := doRequest(t, env.router, http.MethodGet, "/api/task/"+uuid.New().String(), nil, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		rec, _ := doRequest(t, env.router, http.MethodGet, "/api/task/not-a-uuid", nil, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("pending then completed", func(t *testing.T) {
		task, err := env.tasks.Create(context.Background(), repository.CreateTaskParams{
			Kind: constants.KindContract, FileName: "contract.pdf", StorageKey: "documents/x.pdf",
		})
		if err != nil {
			t.Fatal(err)
		}

		rec, resp := doRequest(t, env.router, http.MethodGet, "/api/task/"+task.ID.String(), nil, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if resp["status"] != "pending" {
			t.Errorf("status = %v", resp["status"])
		}
		if _, ok := resp["extracted_data"]; ok {
			t.Error("pending task exposes extracted_data")
		}

		doc, err := env.docs.Save(context.Background(), repository.SaveDocumentParams{
			FileHash: "h", StorageKey: "documents/x.pdf",
			ExtractedData: json.RawMessage(`{"CustomerName": "Acme"}`),
		})
		if err != nil {
			t.Fatal(err)
		}
		doc.ExtractedData = json.RawMessage(`{"CustomerName": "Acme"}`)
		if err := env.tasks.MarkCompleted(context.Background(), task.ID, doc.ID); err != nil {
			t.Fatal(err)
		}

		rec, resp = doRequest(t, env.router, http.MethodGet, "/api/task/"+task.ID.String(), nil, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if resp["status"] != "completed" {
			t.Errorf("status = %v", resp["status"])
		}
		if resp["document_id"] == nil {
			t.Error("completed task missing document_id")
		}
		if resp["extracted_data"] == nil {
			t.Error("completed task missing extracted_data")
		}
	})
}

func TestWelcome(t *testing.T) {
	env := newTestEnv(t)
	rec, resp := doRequest(t, env.router, http.MethodGet, "/api/welcome", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp["message"] != "Welcome to AI Doc Parser API" || resp["status"] != "active" {
		t.Errorf("resp = %v", resp)
	}
}
