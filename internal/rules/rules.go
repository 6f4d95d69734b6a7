package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/llm"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const dateLayout = "2006-01-02"

// Validator applies kind-specific business rules to structured output.
// now is injectable for future-date checks.
type Validator struct {
	now func() time.Time
}

func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// Validate dispatches on document kind. The input has already passed
// schema validation, so unmarshal failures are reported, not panicked on.
func (v *Validator) Validate(kind constants.DocumentKind, raw json.RawMessage) *Report {
	if kind == constants.KindPBMContract {
		return v.validatePBM(raw)
	}
	return v.validateContract(raw)
}

func (v *Validator) validateContract(raw json.RawMessage) *Report {
	rep := newReport()

	var f llm.ContractFields
	if err := json.Unmarshal(raw, &f); err != nil {
		rep.addError("", fmt.Sprintf("unreadable extracted data: %v", err))
		return rep
	}

	if f.CustomerName == "" {
		rep.addError("CustomerName", "CustomerName is required")
		return rep
	}
	rep.pass("CustomerName")

	v.checkDate(rep, "TermStartDate", f.TermStartDate, false)
	v.checkDate(rep, "RenewalDate", f.RenewalDate, true)
	v.checkDate(rep, "DateSigned", f.DateSigned, false)

	checkNonNegative(rep, "CommitmentFee", f.CommitmentFee)
	checkNonNegative(rep, "SavingsPlanCredit", f.SavingsPlanCredit)
	checkNonNegative(rep, "NetPayableFee", f.NetPayableFee)

	checkEmail(rep, "EmailInvoiceTo", f.EmailInvoiceTo)

	// NetPayableFee = CommitmentFee - SavingsPlanCredit, to the cent
	if f.CommitmentFee != nil && f.SavingsPlanCredit != nil && f.NetPayableFee != nil {
		calculated := *f.CommitmentFee - *f.SavingsPlanCredit
		if math.Abs(calculated-*f.NetPayableFee) > 0.01 {
			rep.addWarning("NetPayableFee", "NetPayableFee doesn't match CommitmentFee minus SavingsPlanCredit")
		} else {
			rep.pass("NetPayableFee")
		}
	}

	return rep
}

func (v *Validator) validatePBM(raw json.RawMessage) *Report {
	rep := newReport()

	var f llm.PBMContractFields
	if err := json.Unmarshal(raw, &f); err != nil {
		rep.addError("", fmt.Sprintf("unreadable extracted data: %v", err))
		return rep
	}

	if f.ContractType == "" {
		rep.addError("contract_type", "contract_type is required")
		return rep
	}
	known := false
	for _, ct := range llm.ContractTypes {
		if f.ContractType == ct {
			known = true
			break
		}
	}
	if !known {
		rep.addWarning("contract_type", fmt.Sprintf("Unknown contract_type: %s", f.ContractType))
	} else {
		rep.pass("contract_type")
	}

	v.checkDate(rep, "term_start_date", f.TermStartDate, false)
	v.checkDate(rep, "renewal_date", f.RenewalDate, true)
	v.checkDate(rep, "date_signed", f.DateSigned, false)

	checkEmail(rep, "email_invoice_to", f.EmailInvoiceTo)

	// A PBM contract with most of its key financial elements missing is
	// probably the wrong kind of document.
	keyFields := map[string]string{
		"awp_pricing_discount_guarantees": f.AWPPricingDiscountGuarantees,
		"retail_brand_30_day_discount":    f.RetailBrand30DayDiscount,
		"retail_generic_30_day_discount":  f.RetailGeneric30DayDiscount,
		"rebates":                         f.Rebates,
	}
	var missing []string
	for _, name := range []string{
		"awp_pricing_discount_guarantees",
		"retail_brand_30_day_discount",
		"retail_generic_30_day_discount",
		"rebates",
	} {
		if keyFields[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 2 {
		rep.addWarning("", "Missing several key PBM contract elements: "+strings.Join(missing, ", "))
	}

	switch f.ContractType {
	case llm.ContractTypeMHSA:
		if f.CoveredPharmacyProductsAndServices == "" {
			rep.addWarning("covered_pharmacy_products_and_services", "MHSA contracts typically include covered pharmacy products and services")
		}
	case llm.ContractTypeASO, llm.ContractTypeASA:
		if f.AuditParameters == "" {
			rep.addWarning("audit_parameters", "ASO/ASA contracts typically include audit parameters")
		}
	}

	return rep
}

// checkDate validates format and, unless future dates are expected for the
// field (renewals), warns when the date lies ahead of today.
func (v *Validator) checkDate(rep *Report, field, value string, futureOK bool) {
	if value == "" {
		return
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		rep.addError(field, fmt.Sprintf("%s is not a valid date: %q", field, value))
		return
	}
	if !futureOK && d.After(v.now()) {
		rep.addWarning(field, fmt.Sprintf("%s is in the future", field))
		return
	}
	rep.pass(field)
}

func checkNonNegative(rep *Report, field string, value *float64) {
	if value == nil {
		return
	}
	if *value < 0 {
		rep.addWarning(field, fmt.Sprintf("%s is negative", field))
		return
	}
	rep.pass(field)
}

func checkEmail(rep *Report, field, value string) {
	if value == "" {
		return
	}
	if !emailPattern.MatchString(value) {
		rep.addWarning(field, fmt.Sprintf("Invalid email format in %s", field))
		return
	}
	rep.pass(field)
}
