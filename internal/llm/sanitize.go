package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SanitizeFields normalizes model output before schema validation: fields
// whose value is "N/A" (any casing), an empty string, or null are dropped,
// since the schemas treat absence as the not-applicable signal. Returns the
// cleaned JSON and the names of dropped fields.
func SanitizeFields(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("unmarshal fields: %w", err)
	}

	var dropped []string
	for k, v := range m {
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k)
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "N/A") {
				delete(m, k)
				dropped = append(dropped, k)
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal fields: %w", err)
	}
	return out, dropped, nil
}

// StripCodeFence removes a Markdown ```json fence when the model wraps its
// answer in one despite the JSON-only instruction.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
