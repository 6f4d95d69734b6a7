package llm

// ContractFields is the normalized shape we want from the model for a
// general purchase/commitment contract. Field names follow the downstream
// billing system, hence the PascalCase JSON keys.
type ContractFields struct {
	CustomerName      string   `json:"CustomerName"`
	AccountID         string   `json:"AccountID,omitempty"`
	Quote             string   `json:"Quote,omitempty"`
	CommitmentTerms   string   `json:"CommitmentTerms,omitempty"`
	BuyingProgram     string   `json:"BuyingProgram,omitempty"`
	CommitmentFee     *float64 `json:"CommitmentFee,omitempty"`
	SavingsPlanCredit *float64 `json:"SavingsPlanCredit,omitempty"`
	NetPayableFee     *float64 `json:"NetPayableFee,omitempty"`
	ContactName       string   `json:"ContactName,omitempty"`
	TermStartDate     string   `json:"TermStartDate,omitempty"` // YYYY-MM-DD
	RenewalDate       string   `json:"RenewalDate,omitempty"`   // YYYY-MM-DD
	BillingTerms      string   `json:"BillingTerms,omitempty"`
	PaymentTerms      string   `json:"PaymentTerms,omitempty"`
	PaymentMethod     string   `json:"PaymentMethod,omitempty"`
	VATID             string   `json:"VATID,omitempty"`
	PO                string   `json:"PO,omitempty"`
	CompanyAddress1   string   `json:"CompanyAddress1,omitempty"`
	CompanyAddress2   string   `json:"CompanyAddress2,omitempty"`
	City              string   `json:"City,omitempty"`
	State             string   `json:"State,omitempty"`
	Zip               string   `json:"Zip,omitempty"`
	Country           string   `json:"Country,omitempty"`
	EmailInvoiceTo    string   `json:"EmailInvoiceTo,omitempty"`
	CustomerTitle     string   `json:"CustomerTitle,omitempty"`
	DateSigned        string   `json:"DateSigned,omitempty"` // YYYY-MM-DD
}

// PBM contract type classification.
const (
	ContractTypeMHSA  = "MHSA"  // Master Health Services Agreement
	ContractTypeASO   = "ASO"   // Administrative Services Only Agreement
	ContractTypeASA   = "ASA"   // Administrative Services Agreement
	ContractTypeOther = "OTHER"
)

// ContractTypes holds the accepted contract_type values.
var ContractTypes = []string{ContractTypeMHSA, ContractTypeASO, ContractTypeASA, ContractTypeOther}

// PBMContractFields is the normalized shape for a pharmacy benefits
// management contract: the definitions section, financial guarantees, term
// and termination, audits, fees, and the common identity fields.
type PBMContractFields struct {
	ContractType string `json:"contract_type"`

	// Definitions
	AverageWholesalePrice              string `json:"average_wholesale_price,omitempty"`
	BrandDrug                          string `json:"brand_drug,omitempty"`
	CompoundDrugProduct                string `json:"compound_drug_product,omitempty"`
	CoveredPharmacyProductsAndServices string `json:"covered_pharmacy_products_and_services,omitempty"`
	GenericDrug                        string `json:"generic_drug,omitempty"`
	MaximumAllowableCost               string `json:"maximum_allowable_cost,omitempty"`
	DispensingFee                      string `json:"dispensing_fee,omitempty"`
	PassThrough                        string `json:"pass_through,omitempty"`
	ProfessionalFee                    string `json:"professional_fee,omitempty"`
	PaidClaim                          string `json:"paid_claim,omitempty"`
	Rebates                            string `json:"rebates,omitempty"`
	SingleSourceGeneric                string `json:"single_source_generic,omitempty"`
	SpecialtyDrugOrSpecialtyProduct    string `json:"specialty_drug_or_specialty_product,omitempty"`
	SpecialtyProductList               string `json:"specialty_product_list,omitempty"`
	SpecialtyPharmacy                  string `json:"specialty_pharmacy,omitempty"`
	MailOrderPharmacy                  string `json:"mail_order_pharmacy,omitempty"`
	NetworkPharmacy                    string `json:"network_pharmacy,omitempty"`
	UsualAndCustomaryCharge            string `json:"usual_and_customary_charge,omitempty"`
	WholesaleAcquisitionCost           string `json:"wholesale_acquisition_cost,omitempty"`
	IngredientCost                     string `json:"ingredient_cost,omitempty"`
	LimitedDistributionDrug            string `json:"limited_distribution_drug,omitempty"`
	LimitedDistributionPharmacy        string `json:"limited_distribution_pharmacy,omitempty"`
	MemberCostShare                    string `json:"member_cost_share,omitempty"`
	NewToMarket                        string `json:"new_to_market,omitempty"`
	OverTheCounter                     string `json:"over_the_counter,omitempty"`
	ParticipatingPharmacy              string `json:"participating_pharmacy,omitempty"`
	SingleSourceGenericDrugs           string `json:"single_source_generic_drugs,omitempty"`
	MedicalBenefitDrugRebate           string `json:"medical_benefit_drug_rebate,omitempty"`
	Network                            string `json:"network,omitempty"`
	NetworkProvider                    string `json:"network_provider,omitempty"`
	ParticipatingProvider              string `json:"participating_provider,omitempty"`
	PlanAdministrator                  string `json:"plan_administrator,omitempty"`
	ProprietaryBusinessInformation     string `json:"proprietary_business_information,omitempty"`
	TermOrTermOfAgreement              string `json:"term_or_term_of_agreement,omitempty"`

	// Financial guarantees
	AWPPricingDiscountGuarantees   string `json:"awp_pricing_discount_guarantees,omitempty"`
	RetailBrand30DayDiscount       string `json:"retail_brand_30_day_discount,omitempty"`
	RetailGeneric30DayDiscount     string `json:"retail_generic_30_day_discount,omitempty"`
	MailDiscounts                  string `json:"mail_discounts,omitempty"`
	RetailSpecialtyDiscounts       string `json:"retail_specialty_discounts,omitempty"`
	PricingGuaranteeCalculation    string `json:"pricing_guarantee_calculation,omitempty"`
	PricingGuaranteeExclusionsList string `json:"pricing_guarantee_exclusions_list,omitempty"`
	GuaranteedMinimumRebates       string `json:"guaranteed_minimum_rebates,omitempty"`
	RebateTermsAndConditions       string `json:"rebate_terms_and_conditions,omitempty"`

	// Term, audits, fees
	LengthOfTerm      string `json:"length_of_term,omitempty"`
	TerminationNotice string `json:"termination_notice,omitempty"`
	AuditParameters   string `json:"audit_parameters,omitempty"`
	FeesDetails       string `json:"fees_details,omitempty"`
	FeesAtRisk        string `json:"fees_at_risk,omitempty"`

	// Common contract fields
	CustomerName    string `json:"customer_name,omitempty"`
	AccountID       string `json:"account_id,omitempty"`
	ContactName     string `json:"contact_name,omitempty"`
	TermStartDate   string `json:"term_start_date,omitempty"` // YYYY-MM-DD
	RenewalDate     string `json:"renewal_date,omitempty"`    // YYYY-MM-DD
	BillingTerms    string `json:"billing_terms,omitempty"`
	PaymentTerms    string `json:"payment_terms,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
	CompanyAddress1 string `json:"company_address1,omitempty"`
	CompanyAddress2 string `json:"company_address2,omitempty"`
	City            string `json:"city1,omitempty"`
	State           string `json:"state1,omitempty"`
	Zip             string `json:"zipcode1,omitempty"`
	Country         string `json:"country1,omitempty"`
	EmailInvoiceTo  string `json:"email_invoice_to,omitempty"`
	CustomerTitle   string `json:"customer_title,omitempty"`
	DateSigned      string `json:"date_signed,omitempty"` // YYYY-MM-DD
}
