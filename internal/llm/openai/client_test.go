package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/common"
	"ai-doc-parser/internal/llm"
)

func chatResponse(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return b
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"}, nil)
}

func TestStructureValidFirstTry(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write(chatResponse(`{"CustomerName": "Acme Corp", "CommitmentFee": 10000}`))
	})

	raw, err := c.Structure(context.Background(), llm.StructureRequest{
		Kind: constants.KindContract, Text: "contract text", FileName: "c.pdf",
	})
	if err != nil {
		t.Fatalf("Structure() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("result not JSON: %v", err)
	}
	if m["CustomerName"] != "Acme Corp" {
		t.Errorf("CustomerName = %v", m["CustomerName"])
	}
}

func TestStructureCorrectiveRetry(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// invalid: CustomerName missing
			w.Write(chatResponse(`{"AccountID": "ACC-1"}`))
			return
		}
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode retry request: %v", err)
		}
		// retry must carry the invalid answer plus a correction instruction
		if len(req.Messages) < 5 {
			t.Errorf("retry messages = %d, want invalid answer appended", len(req.Messages))
		}
		w.Write(chatResponse(`{"CustomerName": "Acme Corp", "AccountID": "ACC-1"}`))
	})

	raw, err := c.Structure(context.Background(), llm.StructureRequest{
		Kind: constants.KindContract, Text: "contract text", FileName: "c.pdf",
	})
	if err != nil {
		t.Fatalf("Structure() error after corrective retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	var f llm.ContractFields
	if err := json.Unmarshal(raw, &f); err != nil || f.CustomerName != "Acme Corp" {
		t.Errorf("result = %s, err = %v", raw, err)
	}
}

func TestStructureFailsAfterTwoInvalidAnswers(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write(chatResponse(`{"AccountID": "no customer name"}`))
	})

	_, err := c.Structure(context.Background(), llm.StructureRequest{
		Kind: constants.KindContract, Text: "contract text", FileName: "c.pdf",
	})
	if !errors.Is(err, common.ErrStructuringFailed) {
		t.Fatalf("Structure() error = %v, want ErrStructuringFailed", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want exactly one corrective retry", calls)
	}
}

func TestStructureSanitizesNAAndCodeFence(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatResponse("```json\n{\"CustomerName\": \"Acme\", \"RenewalDate\": \"N/A\"}\n```"))
	})

	raw, err := c.Structure(context.Background(), llm.StructureRequest{
		Kind: constants.KindContract, Text: "t", FileName: "c.pdf",
	})
	if err != nil {
		t.Fatalf("Structure() error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("result not JSON: %v", err)
	}
	if _, ok := m["RenewalDate"]; ok {
		t.Error("N/A date survived sanitize")
	}
}

func TestStructureUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	})

	_, err := c.Structure(context.Background(), llm.StructureRequest{
		Kind: constants.KindContract, Text: "t", FileName: "c.pdf",
	})
	if !errors.Is(err, common.ErrStructuringFailed) {
		t.Fatalf("Structure() error = %v, want ErrStructuringFailed", err)
	}
}

func TestStructurePBMContractType(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatResponse(`{"contract_type": "MHSA", "rebates": "Rebates means retrospective discounts."}`))
	})

	raw, err := c.Structure(context.Background(), llm.StructureRequest{
		Kind: constants.KindPBMContract, Text: "pbm contract text", FileName: "pbm.pdf",
	})
	if err != nil {
		t.Fatalf("Structure() error: %v", err)
	}
	var f llm.PBMContractFields
	if err := json.Unmarshal(raw, &f); err != nil || f.ContractType != llm.ContractTypeMHSA {
		t.Errorf("result = %s, err = %v", raw, err)
	}
}
