package expense

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Expense is a caller-supplied spending record. It is never mutated.
type Expense struct {
	Title    string `json:"title"`
	Amount   Amount `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Notes    string `json:"notes,omitempty"`
}

// ExpenseData is the record extracted from the model's reply.
type ExpenseData struct {
	Title    string `json:"title"`
	Amount   Amount `json:"amount"`
	Category string `json:"category"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date"`
}

// Extraction is the add-expense result. ExpenseData is nil when the input
// was not a request to add an expense.
type Extraction struct {
	Answer      string       `json:"answer"`
	ExpenseData *ExpenseData `json:"expenseData"`
}

// Summary is computed locally from the request, independent of the model.
type Summary struct {
	Breakdown     CategoryTotals `json:"breakdown"`
	TotalExpenses Amount         `json:"totalExpenses"`
	ExpenseCount  int            `json:"expenseCount"`
}

// Analysis is the answer to a free-form question.
type Analysis struct {
	Answer  string  `json:"answer"`
	Summary Summary `json:"summary"`
}

type AnalyzeInput struct {
	Question string
	Expenses []Expense
}

type AddExpenseInput struct {
	Input               string
	RecentExpenses      []Expense
	AvailableCategories []string
}

// Amount is a decimal money value. It decodes from a JSON number or a numeric
// string; anything else becomes zero. It always encodes as a JSON number.
type Amount struct {
	decimal.Decimal
}

func NewAmount(f float64) Amount { return Amount{decimal.NewFromFloat(f)} }

func (a *Amount) UnmarshalJSON(b []byte) error {
	a.Decimal = coerceAmount(b)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

func coerceAmount(raw []byte) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero
		}
		return parseAmountString(s)
	}
	return boundedDecimal(string(raw))
}

// parseAmountString reads the leading numeric part of s ("12.5 rupees" -> 12.5).
func parseAmountString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if _, err := decimal.NewFromString(s); err == nil {
		return boundedDecimal(s)
	}
	return boundedDecimal(leadingNumber.FindString(s))
}

// maxExponent bounds the decimal exponent of an accepted amount. Arithmetic
// and formatting cost grows with the exponent, so wider values become zero.
const maxExponent = 30

func boundedDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero
	}
	return d
}

// CategoryTotals maps category to summed amount, keeping first-seen order.
type CategoryTotals struct {
	order []string
	sums  map[string]decimal.Decimal
}

func (t *CategoryTotals) Add(category string, amount decimal.Decimal) {
	if t.sums == nil {
		t.sums = make(map[string]decimal.Decimal)
	}
	cur, ok := t.sums[category]
	if !ok {
		t.order = append(t.order, category)
	}
	t.sums[category] = cur.Add(amount)
}

// Categories returns the category names in first-seen order.
func (t CategoryTotals) Categories() []string {
	return append([]string(nil), t.order...)
}

func (t CategoryTotals) Get(category string) decimal.Decimal {
	return t.sums[category]
}

func (t CategoryTotals) Len() int { return len(t.order) }

func (t CategoryTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(t.sums[cat].String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Summarize totals the expenses per category and overall.
func Summarize(expenses []Expense) Summary {
	var (
		totals CategoryTotals
		total  decimal.Decimal
	)
	for _, e := range expenses {
		totals.Add(e.Category, e.Amount.Decimal)
		total = total.Add(e.Amount.Decimal)
	}
	return Summary{
		Breakdown:     totals,
		TotalExpenses: Amount{total},
		ExpenseCount:  len(expenses),
	}
}
