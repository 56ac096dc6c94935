package expense

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnalyzePrompt(t *testing.T) {
	expenses := []Expense{
		{Title: "Lunch", Amount: NewAmount(250), Category: "Food", Date: "2024-03-01", Notes: "with team"},
		{Title: "Cab", Amount: NewAmount(120.5), Category: "Transport", Date: "2024-03-02"},
		{Title: "Dinner", Amount: NewAmount(300), Category: "Food", Date: "2024-03-02"},
	}
	p := BuildAnalyzePrompt("₹", "Where do I spend most?", expenses, Summarize(expenses))

	assert.Contains(t, p.System, "helpful financial assistant")
	assert.Contains(t, p.User, "- Lunch: ₹250 (Food) on 2024-03-01 - with team\n")
	assert.Contains(t, p.User, "- Cab: ₹120.5 (Transport) on 2024-03-02\n")
	assert.Contains(t, p.User, "Category Breakdown:\nFood: ₹550.00\nTransport: ₹120.50\n")
	assert.Contains(t, p.User, "Total Expenses: ₹670.50")
	assert.Contains(t, p.User, "User's Question: Where do I spend most?")
	assert.True(t, strings.HasSuffix(p.User, "Please answer the question based on the provided expense data."))
}

func TestBuildExtractionPromptLimitsRecent(t *testing.T) {
	recent := make([]Expense, 0, 15)
	for i := 0; i < 15; i++ {
		recent = append(recent, Expense{Title: fmt.Sprintf("item%02d", i), Amount: NewAmount(10), Category: "Misc", Date: "2024-01-01", Notes: "secret"})
	}
	p := BuildExtractionPrompt("$", "2024-05-06", AddExpenseInput{
		Input:               "spent 20 on snacks",
		RecentExpenses:      recent,
		AvailableCategories: []string{"Food", "Misc"},
	})

	assert.Contains(t, p.System, "Today's date is 2024-05-06.")
	assert.Contains(t, p.System, `"expenseData"`)
	assert.Contains(t, p.User, "Available categories: Food, Misc")
	assert.Contains(t, p.User, "- item09: $10 (Misc) on 2024-01-01\n")
	assert.NotContains(t, p.User, "item10")
	assert.NotContains(t, p.User, "secret")
	assert.True(t, strings.HasSuffix(p.User, "User input: spent 20 on snacks"))
}

func TestBuildExtractionPromptWithoutRecent(t *testing.T) {
	p := BuildExtractionPrompt("₹", "2024-05-06", AddExpenseInput{Input: "hi", AvailableCategories: []string{}})
	assert.Contains(t, p.User, "Recent expenses: none")
}
