package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-doc-parser/internal/common"
	"ai-doc-parser/internal/llm"
)

// Structure implements llm.Structurer using text-only chat/completions.
// Output that fails schema validation gets ONE corrective round-trip: the
// invalid answer and the validation error go back to the model with an
// instruction to fix the JSON. A second failure is terminal.
func (c *Client) Structure(ctx context.Context, req llm.StructureRequest) (json.RawMessage, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.structure.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"kind", req.Kind,
		"file_name", req.FileName,
		"text_len", len(req.Text),
		"tables", len(req.Tables),
		"method", req.Method,
	)

	schema := llm.SchemaForKind(req.Kind)
	sys := llm.BuildSystemPrompt(req.Kind)
	user := llm.BuildUserPrompt(req)

	messages := []map[string]any{
		{"role": "system", "content": sys},
		{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
		{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
	}

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		content, err := c.complete(ctx, messages)
		if err != nil {
			c.log.Error("llm.structure.http_error",
				"req_id", rid, "attempt", attempt, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, common.WrapError(common.ErrStructuringFailed, err.Error())
		}

		cleaned, verr := c.validate(schema, content)
		if verr == nil {
			c.log.Info("llm.structure.ok",
				"req_id", rid,
				"attempt", attempt,
				"bytes", len(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return cleaned, nil
		}
		lastErr = verr

		c.log.Warn("llm.structure.invalid_output",
			"req_id", rid, "attempt", attempt, "error", verr,
		)
		messages = append(messages,
			map[string]any{"role": "assistant", "content": content},
			map[string]any{"role": "user", "content": "Your previous answer did not validate: " + verr.Error() +
				"\nReturn a corrected JSON object that matches the schema exactly. Output ONLY the JSON."},
		)
	}

	c.log.Error("llm.structure.failed",
		"req_id", rid, "error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil, common.WrapError(common.ErrStructuringFailed, lastErr.Error())
}

// validate sanitizes model output and checks it against the schema,
// returning the cleaned JSON on success.
func (c *Client) validate(schema map[string]any, content string) (json.RawMessage, error) {
	raw := []byte(llm.StripCodeFence(content))

	cleaned, dropped, err := llm.SanitizeFields(raw)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		c.log.Debug("llm.structure.sanitized", "dropped", dropped)
	}
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

func (c *Client) complete(ctx context.Context, messages []map[string]any) (string, error) {
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages":        messages,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in openai response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
