package expense

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Outcome classifies how the model's extraction reply was interpreted.
type Outcome int

const (
	OutcomeUnparsable Outcome = iota
	OutcomeNotExpense
	OutcomeExpense
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExpense:
		return "expense"
	case OutcomeNotExpense:
		return "not_expense"
	default:
		return "unparsable"
	}
}

const (
	fallbackAnswer   = "Unable to process your question."
	unparsableAnswer = "Sorry, I couldn't understand that as an expense. Please try rephrasing, for example: \"Spent 250 on lunch today\"."
	addedAnswer      = "Expense added."
	notExpenseAnswer = "I can help you add expenses. Try something like \"Spent 250 on lunch today\"."
)

type rawExtraction struct {
	Answer      string          `json:"answer"`
	ExpenseData json.RawMessage `json:"expenseData"`
}

// DecodeExtraction interprets the model's reply. Surrounding prose and code
// fences are tolerated. The error is ErrUnparsable iff the outcome is
// OutcomeUnparsable.
func DecodeExtraction(text string) (Extraction, Outcome, error) {
	raw, err := decodeObject(text)
	if err != nil {
		return Extraction{}, OutcomeUnparsable, err
	}
	out := Extraction{Answer: strings.TrimSpace(raw.Answer)}

	data := bytes.TrimSpace(raw.ExpenseData)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out, OutcomeNotExpense, nil
	}
	if data[0] != '{' {
		return Extraction{}, OutcomeUnparsable, fmt.Errorf("%w: expenseData is not an object", ErrUnparsable)
	}
	var ed ExpenseData
	if err := json.Unmarshal(data, &ed); err != nil {
		return Extraction{}, OutcomeUnparsable, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	out.ExpenseData = &ed
	return out, OutcomeExpense, nil
}

func decodeObject(text string) (rawExtraction, error) {
	text = strings.TrimSpace(text)
	var out rawExtraction
	if strings.HasPrefix(text, "{") {
		if err := json.Unmarshal([]byte(text), &out); err == nil {
			return out, nil
		}
	}
	// try to extract JSON from fenced block or surrounding prose
	if i := strings.Index(text, "{"); i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i {
			out = rawExtraction{}
			if err := json.Unmarshal([]byte(text[i:j+1]), &out); err == nil {
				return out, nil
			}
		}
	}
	return rawExtraction{}, ErrUnparsable
}

// Normalize fills the date and canonicalizes the category against the
// caller's list. Amount coercion already happened while decoding.
func Normalize(d *ExpenseData, categories []string, today string) {
	if strings.TrimSpace(d.Date) == "" {
		d.Date = today
	}
	if match, ok := matchCategory(d.Category, categories); ok {
		d.Category = match
	}
}

func matchCategory(category string, categories []string) (string, bool) {
	want := strings.TrimSpace(category)
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(c), want) {
			return c, true
		}
	}
	return "", false
}
