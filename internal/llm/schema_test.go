package llm

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/extract"
)

func TestContractSchemaAcceptsCompleteObject(t *testing.T) {
	doc := []byte(`{
		"CustomerName": "Acme Corp",
		"AccountID": "ACC-1001",
		"CommitmentFee": 10000,
		"SavingsPlanCredit": 2500,
		"NetPayableFee": 7500,
		"TermStartDate": "2024-01-01",
		"RenewalDate": "2027-01-01",
		"EmailInvoiceTo": "billing@acme.example"
	}`)
	if err := ValidateJSONAgainstSchema(BuildContractJSONSchema(), doc); err != nil {
		t.Fatalf("valid object rejected: %v", err)
	}
}

func TestContractSchemaRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing customer name", `{"AccountID": "ACC-1001"}`},
		{"empty customer name", `{"CustomerName": ""}`},
		{"fee as string", `{"CustomerName": "Acme", "CommitmentFee": "10000"}`},
		{"bad date format", `{"CustomerName": "Acme", "TermStartDate": "01/02/2024"}`},
		{"unknown field", `{"CustomerName": "Acme", "FaxNumber": "555"}`},
	}
	schema := BuildContractJSONSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tt.doc)); err == nil {
				t.Errorf("expected validation failure for %s", tt.doc)
			}
		})
	}
}

func TestPBMSchemaContractTypeEnum(t *testing.T) {
	schema := BuildPBMContractJSONSchema()

	ok := []byte(`{"contract_type": "MHSA", "rebates": "Rebates means all retrospective discounts."}`)
	if err := ValidateJSONAgainstSchema(schema, ok); err != nil {
		t.Fatalf("valid pbm object rejected: %v", err)
	}

	bad := []byte(`{"contract_type": "LEASE"}`)
	if err := ValidateJSONAgainstSchema(schema, bad); err == nil {
		t.Error("unknown contract_type accepted")
	}

	missing := []byte(`{"rebates": "definition"}`)
	if err := ValidateJSONAgainstSchema(schema, missing); err == nil {
		t.Error("missing contract_type accepted")
	}
}

func TestSchemaRoundTripsThroughFieldStructs(t *testing.T) {
	fee := 10000.0
	credit := 2500.0
	net := 7500.0
	f := ContractFields{
		CustomerName:      "Acme Corp",
		CommitmentFee:     &fee,
		SavingsPlanCredit: &credit,
		NetPayableFee:     &net,
		TermStartDate:     "2024-01-01",
	}
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal fields: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildContractJSONSchema(), raw); err != nil {
		t.Fatalf("marshaled ContractFields does not satisfy its own schema: %v", err)
	}

	p := PBMContractFields{
		ContractType: ContractTypeASO,
		Rebates:      "Rebates means retrospective discounts paid by manufacturers.",
		DateSigned:   "2023-06-15",
	}
	raw, err = json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal pbm fields: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildPBMContractJSONSchema(), raw); err != nil {
		t.Fatalf("marshaled PBMContractFields does not satisfy its own schema: %v", err)
	}
}

func TestSanitizeFieldsDropsNAAndNull(t *testing.T) {
	raw := []byte(`{"CustomerName": "Acme", "RenewalDate": "N/A", "VATID": null, "PO": "  ", "Quote": "Q-9"}`)
	cleaned, dropped, err := SanitizeFields(raw)
	if err != nil {
		t.Fatalf("SanitizeFields() error: %v", err)
	}
	if len(dropped) != 3 {
		t.Errorf("dropped = %v, want 3 fields", dropped)
	}
	var m map[string]any
	if err := json.Unmarshal(cleaned, &m); err != nil {
		t.Fatalf("cleaned output not JSON: %v", err)
	}
	for _, k := range []string{"RenewalDate", "VATID", "PO"} {
		if _, ok := m[k]; ok {
			t.Errorf("field %s survived sanitize", k)
		}
	}
	if m["CustomerName"] != "Acme" || m["Quote"] != "Q-9" {
		t.Errorf("kept fields mangled: %v", m)
	}
}

func TestStripCodeFence(t *testing.T) {
	in := "```json\n{\"CustomerName\": \"Acme\"}\n```"
	if got := StripCodeFence(in); got != `{"CustomerName": "Acme"}` {
		t.Errorf("StripCodeFence() = %q", got)
	}
	plain := `{"a": 1}`
	if got := StripCodeFence(plain); got != plain {
		t.Errorf("unfenced input changed: %q", got)
	}
}

func TestBuildUserPromptIncludesTables(t *testing.T) {
	p := BuildUserPrompt(StructureRequest{
		Kind:     constants.KindContract,
		Text:     "Commitment agreement body.",
		FileName: "deal.xlsx",
		Tables: []extract.Table{
			{Name: "Fees", Rows: [][]string{{"CommitmentFee", "10000"}, {"SavingsPlanCredit", "2500"}}},
		},
	})
	if !strings.Contains(p, "deal.xlsx") || !strings.Contains(p, "Commitment agreement body.") {
		t.Errorf("prompt missing content: %q", p)
	}
	if !strings.Contains(p, "CommitmentFee | 10000") {
		t.Errorf("prompt missing table row: %q", p)
	}
}

func TestBuildUserPromptTruncatesOnRuneBoundary(t *testing.T) {
	// two-byte runes guarantee the byte limit lands mid-rune
	p := BuildUserPrompt(StructureRequest{
		Kind:     constants.KindContract,
		Text:     strings.Repeat("é", maxPromptChars),
		FileName: "long.pdf",
	})
	if !utf8.ValidString(p) {
		t.Fatal("truncated prompt contains invalid UTF-8")
	}
	if !strings.Contains(p, "(truncated)") {
		t.Error("oversized text was not truncated")
	}
}
