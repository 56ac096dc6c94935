package expense

import (
	"fmt"
	"strings"
)

// maxRecentExpenses bounds the context sent with an extraction request.
const maxRecentExpenses = 10

// Prompt is a system + user message pair.
type Prompt struct {
	System string
	User   string
}

const analyzeSystemPrompt = `You are a helpful financial assistant. Analyze the user's expenses and answer their question concisely and accurately.
Provide specific numbers and insights. Keep responses brief and actionable.`

// BuildAnalyzePrompt renders the expense list, category breakdown and total
// around the user's question.
func BuildAnalyzePrompt(currency, question string, expenses []Expense, summary Summary) Prompt {
	lines := make([]string, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, formatExpenseLine(currency, e, true))
	}

	breakdown := make([]string, 0, summary.Breakdown.Len())
	for _, cat := range summary.Breakdown.Categories() {
		breakdown = append(breakdown, fmt.Sprintf("%s: %s%s", cat, currency, summary.Breakdown.Get(cat).StringFixed(2)))
	}

	user := fmt.Sprintf(
		"Here are the user's recent expenses:\n\n%s\n\nCategory Breakdown:\n%s\n\nTotal Expenses: %s%s\n\nUser's Question: %s\n\nPlease answer the question based on the provided expense data.",
		strings.Join(lines, "\n"),
		strings.Join(breakdown, "\n"),
		currency,
		summary.TotalExpenses.StringFixed(2),
		question,
	)
	return Prompt{System: analyzeSystemPrompt, User: user}
}

const extractionSystemTemplate = `You are an expense tracking assistant. Decide whether the user's message asks to record a new expense.
Today's date is %s.

Respond with a single JSON object and nothing else, in exactly this shape:
{
  "answer": "a short confirmation or reply for the user",
  "expenseData": {
    "title": "short description of the expense",
    "amount": 0,
    "category": "one of the available categories",
    "notes": "extra details, or an empty string",
    "date": "YYYY-MM-DD"
  }
}

Rules:
- "amount" is a plain number without currency symbols.
- "category" must be one of the available categories; pick the closest match.
- Resolve relative dates such as "yesterday" against today's date. If no date is mentioned, use today's date.
- If the message is not a request to add an expense, set "expenseData" to null and use "answer" to reply to the user.`

// BuildExtractionPrompt asks the model to turn free text into an expense record.
func BuildExtractionPrompt(currency, today string, in AddExpenseInput) Prompt {
	recent := in.RecentExpenses
	if len(recent) > maxRecentExpenses {
		recent = recent[:maxRecentExpenses]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available categories: %s\n\n", strings.Join(in.AvailableCategories, ", "))
	if len(recent) == 0 {
		b.WriteString("Recent expenses: none\n\n")
	} else {
		b.WriteString("Recent expenses (for context):\n")
		for _, e := range recent {
			b.WriteString(formatExpenseLine(currency, e, false))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "User input: %s", in.Input)

	return Prompt{
		System: fmt.Sprintf(extractionSystemTemplate, today),
		User:   b.String(),
	}
}

func formatExpenseLine(currency string, e Expense, withNotes bool) string {
	line := fmt.Sprintf("- %s: %s%s (%s) on %s", e.Title, currency, e.Amount.String(), e.Category, e.Date)
	if withNotes && e.Notes != "" {
		line += " - " + e.Notes
	}
	return line
}
