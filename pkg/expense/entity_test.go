package expense

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`12.5`, "12.5"},
		{`"12.5"`, "12.5"},
		{`" 40 "`, "40"},
		{`"99.90 rupees"`, "99.9"},
		{`"abc"`, "0"},
		{`null`, "0"},
		{`true`, "0"},
		{`-3`, "-3"},
		{`1.5e3`, "1500"},
		{`1e400`, "0"},
		{`-1e400`, "0"},
		{`1e300000000`, "0"},
		{`"1e999999999"`, "0"},
		{`"1e-999999999 rupees"`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, tc.want, a.String())
		})
	}
}

func TestSummarizeHugeExponentIsZero(t *testing.T) {
	var expenses []Expense
	require.NoError(t, json.Unmarshal([]byte(`[
		{"title":"a","amount":1e300000000,"category":"Food"},
		{"title":"b","amount":1,"category":"Food"}
	]`), &expenses))

	s := Summarize(expenses)
	assert.Equal(t, "1", s.TotalExpenses.String())
	p := BuildAnalyzePrompt("₹", "q", expenses, s)
	assert.Contains(t, p.User, "Total Expenses: ₹1.00")
}

func TestAmountMarshalsAsNumber(t *testing.T) {
	b, err := json.Marshal(struct {
		A Amount `json:"a"`
	}{A: NewAmount(12.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12.5}`, string(b))
}

func TestSummarizeExactTotals(t *testing.T) {
	expenses := []Expense{
		{Title: "Coffee", Amount: NewAmount(0.1), Category: "Food"},
		{Title: "Bus", Amount: NewAmount(0.2), Category: "Transport"},
		{Title: "Lunch", Amount: NewAmount(0.2), Category: "Food"},
	}
	s := Summarize(expenses)

	assert.Equal(t, 3, s.ExpenseCount)
	assert.True(t, s.TotalExpenses.Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, []string{"Food", "Transport"}, s.Breakdown.Categories())
	assert.True(t, s.Breakdown.Get("Food").Equal(decimal.RequireFromString("0.3")))

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"breakdown":{"Food":0.3,"Transport":0.2},"totalExpenses":0.5,"expenseCount":3}`, string(b))
}

func TestSummarizeEmpty(t *testing.T) {
	b, err := json.Marshal(Summarize([]Expense{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"breakdown":{},"totalExpenses":0,"expenseCount":0}`, string(b))
}

func TestCategoryTotalsKeepsFirstSeenOrder(t *testing.T) {
	var ct CategoryTotals
	for _, c := range []string{"Zeta", "Alpha", "Zeta", "Mid \"quoted\""} {
		ct.Add(c, decimal.NewFromInt(1))
	}
	b, err := json.Marshal(ct)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":2,"Alpha":1,"Mid \"quoted\"":1}`, string(b))
}
