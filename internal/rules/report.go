// Package rules checks structured contract fields against business rules.
// Rule failures come in two severities: errors mark the extraction invalid,
// warnings flag suspect values without failing the task.
package rules

// FieldResult records the outcome of the checks that touched one field.
type FieldResult struct {
	Status string `json:"status"` // "pass" | "fail"
	Reason string `json:"reason,omitempty"`
}

// Report is the validation summary stored with the document and returned
// to callers alongside the extracted data.
type Report struct {
	IsValid  bool                   `json:"is_valid"`
	Errors   []string               `json:"errors"`
	Warnings []string               `json:"warnings"`
	Fields   map[string]FieldResult `json:"fields,omitempty"`
}

func newReport() *Report {
	return &Report{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
		Fields:   map[string]FieldResult{},
	}
}

func (r *Report) addError(field, msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, msg)
	if field != "" {
		r.Fields[field] = FieldResult{Status: "fail", Reason: msg}
	}
}

func (r *Report) addWarning(field, msg string) {
	r.Warnings = append(r.Warnings, msg)
	if field != "" {
		r.Fields[field] = FieldResult{Status: "fail", Reason: msg}
	}
}

func (r *Report) pass(field string) {
	if _, taken := r.Fields[field]; !taken {
		r.Fields[field] = FieldResult{Status: "pass"}
	}
}
