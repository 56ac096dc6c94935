package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtraction(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		out, outcome, err := DecodeExtraction(`{"answer":"Added lunch","expenseData":{"title":"Lunch","amount":"12.5","category":"food","date":"2024-01-02"}}`)
		require.NoError(t, err)
		assert.Equal(t, OutcomeExpense, outcome)
		assert.Equal(t, "Added lunch", out.Answer)
		require.NotNil(t, out.ExpenseData)
		assert.Equal(t, "12.5", out.ExpenseData.Amount.String())
	})

	t.Run("fenced json", func(t *testing.T) {
		out, outcome, err := DecodeExtraction("Sure!\n```json\n{\"answer\":\"ok\",\"expenseData\":{\"title\":\"Cab\",\"amount\":80}}\n```")
		require.NoError(t, err)
		assert.Equal(t, OutcomeExpense, outcome)
		assert.Equal(t, "Cab", out.ExpenseData.Title)
	})

	t.Run("not an expense", func(t *testing.T) {
		out, outcome, err := DecodeExtraction(`{"answer":"You spent 500 this week.","expenseData":null}`)
		require.NoError(t, err)
		assert.Equal(t, OutcomeNotExpense, outcome)
		assert.Nil(t, out.ExpenseData)
		assert.Equal(t, "You spent 500 this week.", out.Answer)
	})

	t.Run("missing expenseData", func(t *testing.T) {
		_, outcome, err := DecodeExtraction(`{"answer":"hello"}`)
		require.NoError(t, err)
		assert.Equal(t, OutcomeNotExpense, outcome)
	})

	for name, text := range map[string]string{
		"prose":            "I added your expense.",
		"empty":            "",
		"array":            `[1,2]`,
		"bad expense data": `{"answer":"x","expenseData":"lunch"}`,
		"wrong types":      `{"answer":"x","expenseData":{"title":42}}`,
		"truncated":        `{"answer":"x","expenseData":{"title":"Lunch"`,
	} {
		t.Run(name, func(t *testing.T) {
			out, outcome, err := DecodeExtraction(text)
			require.ErrorIs(t, err, ErrUnparsable)
			assert.Equal(t, OutcomeUnparsable, outcome)
			assert.Nil(t, out.ExpenseData)
		})
	}
}

func TestNormalize(t *testing.T) {
	cats := []string{"Food & Dining", "Transport"}

	d := ExpenseData{Title: "Lunch", Category: "food & dining"}
	Normalize(&d, cats, "2024-06-01")
	assert.Equal(t, "Food & Dining", d.Category)
	assert.Equal(t, "2024-06-01", d.Date)

	d = ExpenseData{Title: "Gym", Category: "Health", Date: "2024-05-30"}
	Normalize(&d, cats, "2024-06-01")
	assert.Equal(t, "Health", d.Category)
	assert.Equal(t, "2024-05-30", d.Date)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "expense", OutcomeExpense.String())
	assert.Equal(t, "not_expense", OutcomeNotExpense.String())
	assert.Equal(t, "unparsable", OutcomeUnparsable.String())
}
