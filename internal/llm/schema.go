package llm

import "ai-doc-parser/constants"

// SchemaForKind returns the JSON-Schema constraining model output for a
// document kind.
func SchemaForKind(kind constants.DocumentKind) map[string]any {
	if kind == constants.KindPBMContract {
		return BuildPBMContractJSONSchema()
	}
	return BuildContractJSONSchema()
}

// BuildContractJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint
// and also use it locally to validate.
func BuildContractJSONSchema() map[string]any {
	props := map[string]any{
		"CustomerName":      map[string]any{"type": "string", "minLength": 1},
		"AccountID":         map[string]any{"type": "string"},
		"Quote":             map[string]any{"type": "string"},
		"CommitmentTerms":   map[string]any{"type": "string"},
		"BuyingProgram":     map[string]any{"type": "string"},
		"CommitmentFee":     map[string]any{"type": "number"},
		"SavingsPlanCredit": map[string]any{"type": "number"},
		"NetPayableFee":     map[string]any{"type": "number"},
		"ContactName":       map[string]any{"type": "string"},
		"TermStartDate":     dateProp(),
		"RenewalDate":       dateProp(),
		"BillingTerms":      map[string]any{"type": "string"},
		"PaymentTerms":      map[string]any{"type": "string"},
		"PaymentMethod":     map[string]any{"type": "string"},
		"VATID":             map[string]any{"type": "string"},
		"PO":                map[string]any{"type": "string"},
		"CompanyAddress1":   map[string]any{"type": "string"},
		"CompanyAddress2":   map[string]any{"type": "string"},
		"City":              map[string]any{"type": "string"},
		"State":             map[string]any{"type": "string"},
		"Zip":               map[string]any{"type": "string"},
		"Country":           map[string]any{"type": "string"},
		"EmailInvoiceTo":    map[string]any{"type": "string"},
		"CustomerTitle":     map[string]any{"type": "string"},
		"DateSigned":        dateProp(),
	}
	required := []string{"CustomerName"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

// BuildPBMContractJSONSchema covers the PBM shape: classification enum,
// definitions, financial guarantees, term/audit/fee sections, and common
// identity fields.
func BuildPBMContractJSONSchema() map[string]any {
	props := map[string]any{
		"contract_type": map[string]any{"type": "string", "enum": ContractTypes},
	}
	for _, name := range []string{
		"average_wholesale_price",
		"brand_drug",
		"compound_drug_product",
		"covered_pharmacy_products_and_services",
		"generic_drug",
		"maximum_allowable_cost",
		"dispensing_fee",
		"pass_through",
		"professional_fee",
		"paid_claim",
		"rebates",
		"single_source_generic",
		"specialty_drug_or_specialty_product",
		"specialty_product_list",
		"specialty_pharmacy",
		"mail_order_pharmacy",
		"network_pharmacy",
		"usual_and_customary_charge",
		"wholesale_acquisition_cost",
		"ingredient_cost",
		"limited_distribution_drug",
		"limited_distribution_pharmacy",
		"member_cost_share",
		"new_to_market",
		"over_the_counter",
		"participating_pharmacy",
		"single_source_generic_drugs",
		"medical_benefit_drug_rebate",
		"network",
		"network_provider",
		"participating_provider",
		"plan_administrator",
		"proprietary_business_information",
		"term_or_term_of_agreement",
		"awp_pricing_discount_guarantees",
		"retail_brand_30_day_discount",
		"retail_generic_30_day_discount",
		"mail_discounts",
		"retail_specialty_discounts",
		"pricing_guarantee_calculation",
		"pricing_guarantee_exclusions_list",
		"guaranteed_minimum_rebates",
		"rebate_terms_and_conditions",
		"length_of_term",
		"termination_notice",
		"audit_parameters",
		"fees_details",
		"fees_at_risk",
		"customer_name",
		"account_id",
		"contact_name",
		"billing_terms",
		"payment_terms",
		"payment_method",
		"company_address1",
		"company_address2",
		"city1",
		"state1",
		"zipcode1",
		"country1",
		"email_invoice_to",
		"customer_title",
	} {
		props[name] = map[string]any{"type": "string"}
	}
	props["term_start_date"] = dateProp()
	props["renewal_date"] = dateProp()
	props["date_signed"] = dateProp()

	required := []string{"contract_type"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}
