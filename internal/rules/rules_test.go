package rules

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ai-doc-parser/constants"
)

func fixedValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator()
	now, err := time.Parse("2006-01-02", "2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	v.now = func() time.Time { return now }
	return v
}

func TestValidateContractCleanDocument(t *testing.T) {
	raw := json.RawMessage(`{
		"CustomerName": "Acme Corp",
		"CommitmentFee": 10000,
		"SavingsPlanCredit": 2500,
		"NetPayableFee": 7500,
		"TermStartDate": "2024-01-01",
		"RenewalDate": "2027-01-01",
		"DateSigned": "2023-12-15",
		"EmailInvoiceTo": "billing@acme.example"
	}`)
	rep := fixedValidator(t).Validate(constants.KindContract, raw)
	if !rep.IsValid {
		t.Fatalf("clean document invalid: errors = %v", rep.Errors)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", rep.Warnings)
	}
	if rep.Fields["NetPayableFee"].Status != "pass" {
		t.Errorf("NetPayableFee = %+v, want pass", rep.Fields["NetPayableFee"])
	}
}

func TestValidateContractMissingCustomerName(t *testing.T) {
	rep := fixedValidator(t).Validate(constants.KindContract, json.RawMessage(`{"AccountID": "ACC-1"}`))
	if rep.IsValid {
		t.Fatal("missing CustomerName accepted")
	}
	if len(rep.Errors) != 1 || rep.Errors[0] != "CustomerName is required" {
		t.Errorf("errors = %v", rep.Errors)
	}
}

func TestValidateContractWarnings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // substring expected in warnings
	}{
		{
			"future date signed",
			`{"CustomerName": "Acme", "DateSigned": "2031-01-01"}`,
			"DateSigned is in the future",
		},
		{
			"future renewal date ok",
			`{"CustomerName": "Acme", "RenewalDate": "2031-01-01"}`,
			"",
		},
		{
			"negative fee",
			`{"CustomerName": "Acme", "CommitmentFee": -50}`,
			"CommitmentFee is negative",
		},
		{
			"bad email",
			`{"CustomerName": "Acme", "EmailInvoiceTo": "not-an-email"}`,
			"Invalid email format in EmailInvoiceTo",
		},
		{
			"net fee mismatch",
			`{"CustomerName": "Acme", "CommitmentFee": 10000, "SavingsPlanCredit": 2500, "NetPayableFee": 8000}`,
			"NetPayableFee doesn't match",
		},
	}
	v := fixedValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := v.Validate(constants.KindContract, json.RawMessage(tt.raw))
			if !rep.IsValid {
				t.Fatalf("soft rule failed the document: %v", rep.Errors)
			}
			if tt.want == "" {
				if len(rep.Warnings) != 0 {
					t.Errorf("warnings = %v, want none", rep.Warnings)
				}
				return
			}
			found := false
			for _, w := range rep.Warnings {
				if strings.Contains(w, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings = %v, want one containing %q", rep.Warnings, tt.want)
			}
		})
	}
}

func TestValidateContractUnparseableDateIsHardError(t *testing.T) {
	rep := fixedValidator(t).Validate(constants.KindContract,
		json.RawMessage(`{"CustomerName": "Acme", "TermStartDate": "sometime in 2024"}`))
	if rep.IsValid {
		t.Fatal("unparseable date accepted")
	}
	if rep.Fields["TermStartDate"].Status != "fail" {
		t.Errorf("TermStartDate = %+v, want fail", rep.Fields["TermStartDate"])
	}
}

func TestValidatePBMContract(t *testing.T) {
	v := fixedValidator(t)

	t.Run("missing contract_type", func(t *testing.T) {
		rep := v.Validate(constants.KindPBMContract, json.RawMessage(`{"rebates": "def"}`))
		if rep.IsValid {
			t.Fatal("missing contract_type accepted")
		}
	})

	t.Run("sparse key elements", func(t *testing.T) {
		rep := v.Validate(constants.KindPBMContract, json.RawMessage(`{"contract_type": "OTHER", "rebates": "def"}`))
		if !rep.IsValid {
			t.Fatalf("errors = %v", rep.Errors)
		}
		found := false
		for _, w := range rep.Warnings {
			if strings.Contains(w, "Missing several key PBM contract elements") {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want sparse-elements warning", rep.Warnings)
		}
	})

	t.Run("mhsa without covered services", func(t *testing.T) {
		rep := v.Validate(constants.KindPBMContract, json.RawMessage(`{
			"contract_type": "MHSA",
			"awp_pricing_discount_guarantees": "AWP minus 17%",
			"retail_brand_30_day_discount": "AWP-17% / $1.50",
			"retail_generic_30_day_discount": "AWP-78% / $1.00",
			"rebates": "guaranteed minimums apply"
		}`))
		if !rep.IsValid {
			t.Fatalf("errors = %v", rep.Errors)
		}
		found := false
		for _, w := range rep.Warnings {
			if strings.Contains(w, "covered pharmacy products and services") {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want MHSA coverage warning", rep.Warnings)
		}
	})

	t.Run("aso without audit parameters", func(t *testing.T) {
		rep := v.Validate(constants.KindPBMContract, json.RawMessage(`{
			"contract_type": "ASO",
			"awp_pricing_discount_guarantees": "AWP minus 17%",
			"retail_brand_30_day_discount": "AWP-17%",
			"retail_generic_30_day_discount": "AWP-78%",
			"rebates": "minimums"
		}`))
		found := false
		for _, w := range rep.Warnings {
			if strings.Contains(w, "audit parameters") {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want audit warning", rep.Warnings)
		}
	})
}
