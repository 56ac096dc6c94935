package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/expense-assistant/api/http/middleware"
	"github.com/artem13815/expense-assistant/api/http/presenter"
	"github.com/artem13815/expense-assistant/pkg/expense"
	"github.com/artem13815/expense-assistant/pkg/llm"
)

const (
	msgInvalidAnalyze    = "Invalid request. Required: question (string), expenses (array)"
	msgInvalidAddExpense = "Invalid request. Required: input (string), availableCategories (array)"
	msgNotConfigured     = "OpenRouter API key not configured"
	msgAnalyzeFailed     = "Failed to analyze expenses"
	msgAddExpenseFailed  = "Failed to process expense"

	answerInvalidRequest = "Please describe the expense you want to add."
	answerNotConfigured  = "The assistant is not available right now. Please try again later."
	answerFailed         = "Sorry, something went wrong while processing your request. Please try again."
)

type ExpenseHandler struct {
	uc  expense.UseCase
	log *zap.Logger
}

func NewExpenseHandler(uc expense.UseCase, log *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, log: log}
}

type analyzeRequest struct {
	Question string            `json:"question"`
	Expenses []expense.Expense `json:"expenses"`
}

type addExpenseRequest struct {
	Input               string            `json:"input"`
	RecentExpenses      []expense.Expense `json:"recentExpenses"`
	AvailableCategories []string          `json:"availableCategories"`
}

// extractionResponse keeps answer and expenseData on every add-expense reply
// so clients can always render something.
type extractionResponse struct {
	Error       string               `json:"error,omitempty"`
	Details     string               `json:"details,omitempty"`
	Answer      string               `json:"answer"`
	ExpenseData *expense.ExpenseData `json:"expenseData"`
}

// Analyze answers a free-form question about the supplied expenses.
// @Summary Ask a question about expenses
// @Tags    expenses
// @Accept  json
// @Produce json
// @Param   input body analyzeRequest true "Question and expense list"
// @Success 200 {object} expense.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analyze [post]
func (h *ExpenseHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgInvalidAnalyze)
	}
	out, err := h.uc.Analyze(c.UserContext(), expense.AnalyzeInput{
		Question: req.Question,
		Expenses: req.Expenses,
	})
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, out)
	case errors.Is(err, expense.ErrInvalidInput):
		return presenter.Error(c, http.StatusBadRequest, msgInvalidAnalyze)
	case errors.Is(err, llm.ErrNotConfigured):
		h.log.Error("llm credential missing", zap.String("requestId", middleware.RequestID(c)))
		return presenter.Error(c, http.StatusInternalServerError, msgNotConfigured)
	default:
		h.log.Error("analyze expenses", zap.String("requestId", middleware.RequestID(c)), zap.Error(err))
		return presenter.ErrorWithDetails(c, http.StatusInternalServerError, msgAnalyzeFailed, err.Error())
	}
}

// AddExpense turns a natural-language command into a structured expense.
// @Summary Extract an expense from text
// @Tags    expenses
// @Accept  json
// @Produce json
// @Param   input body addExpenseRequest true "User input, categories and recent expenses"
// @Success 200 {object} expense.Extraction
// @Failure 400 {object} extractionResponse
// @Failure 500 {object} extractionResponse
// @Router  /add-expense [post]
func (h *ExpenseHandler) AddExpense(c *fiber.Ctx) error {
	var req addExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.JSON(c, http.StatusBadRequest, extractionResponse{Error: msgInvalidAddExpense, Answer: answerInvalidRequest})
	}
	out, err := h.uc.AddExpense(c.UserContext(), expense.AddExpenseInput{
		Input:               req.Input,
		RecentExpenses:      req.RecentExpenses,
		AvailableCategories: req.AvailableCategories,
	})
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, out)
	case errors.Is(err, expense.ErrInvalidInput):
		return presenter.JSON(c, http.StatusBadRequest, extractionResponse{Error: msgInvalidAddExpense, Answer: answerInvalidRequest})
	case errors.Is(err, expense.ErrUnparsable):
		return presenter.JSON(c, http.StatusBadRequest, extractionResponse{Answer: out.Answer})
	case errors.Is(err, llm.ErrNotConfigured):
		h.log.Error("llm credential missing", zap.String("requestId", middleware.RequestID(c)))
		return presenter.JSON(c, http.StatusInternalServerError, extractionResponse{Error: msgNotConfigured, Answer: answerNotConfigured})
	default:
		h.log.Error("add expense", zap.String("requestId", middleware.RequestID(c)), zap.Error(err))
		return presenter.JSON(c, http.StatusInternalServerError, extractionResponse{
			Error:   msgAddExpenseFailed,
			Details: err.Error(),
			Answer:  answerFailed,
		})
	}
}
