package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ai-doc-parser/constants"
)

const maxPromptChars = 24000

// BuildSystemPrompt composes the system message for a document kind with
// strict-but-practical formatting rules.
func BuildSystemPrompt(kind constants.DocumentKind) string {
	parts := []string{
		"You are a contract document parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Use ISO-8601 dates (YYYY-MM-DD). If only a month and year are visible, use the first day of the month.",
		"Monetary amounts are plain numbers without currency symbols or thousands separators.",
		"Copy values from the document; never invent values that are not present.",
		"Never output null. If a field is not present in the document, omit it.",
	}
	if kind == constants.KindPBMContract {
		parts = append(parts,
			"The document is a pharmacy benefits management (PBM) contract.",
			"'contract_type' is REQUIRED and MUST be exactly one of: "+strings.Join(ContractTypes, ", ")+". Use OTHER when none applies.",
			"For each definition field, quote or closely paraphrase the contract's own definition text.",
			"For financial guarantee fields, capture the discount/fee numbers together with their qualifying conditions.",
		)
	} else {
		parts = append(parts,
			"The document is a purchase or commitment contract.",
			"'CustomerName' is REQUIRED: the customer or company the contract is with.",
			"NetPayableFee should equal CommitmentFee minus SavingsPlanCredit when all three appear.",
		)
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the extracted text and tables. Table grids are
// rendered inline so sheet-only documents still reach the model.
func BuildUserPrompt(req StructureRequest) string {
	var b strings.Builder
	b.WriteString("Filename: ")
	b.WriteString(req.FileName)
	if req.Pages > 0 {
		fmt.Fprintf(&b, "\nPages: %d", req.Pages)
	}

	text := strings.TrimSpace(req.Text)
	b.WriteString("\n\nDocument text:\n")
	if len(text) > maxPromptChars {
		// back off to a rune boundary so the cut never emits invalid UTF-8
		cut := maxPromptChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		b.WriteString(text[:cut])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}

	for _, t := range req.Tables {
		b.WriteString("\n\nTable")
		if t.Name != "" {
			b.WriteString(" " + t.Name)
		}
		b.WriteString(":\n")
		for _, row := range t.Rows {
			b.WriteString(strings.Join(row, " | "))
			b.WriteString("\n")
			if b.Len() > maxPromptChars*2 {
				b.WriteString("…(truncated)\n")
				return b.String()
			}
		}
	}
	return b.String()
}
