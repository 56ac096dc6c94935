package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/expense-assistant/pkg/llm"
)

var (
	analyzeParams    = llm.Params{Temperature: 0.7, MaxTokens: 500}
	extractionParams = llm.Params{Temperature: 0.3, MaxTokens: 300, JSONOutput: true}
)

// UseCase — question answering and expense extraction over caller-supplied data.
type UseCase interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error)
	// AddExpense dates undated records with the current date (UTC). It returns
	// ErrUnparsable together with a user-facing Extraction when the model reply
	// cannot be decoded.
	AddExpense(ctx context.Context, in AddExpenseInput) (Extraction, error)
}

type service struct {
	llm      llm.ChatModel
	currency string
	log      *zap.Logger
	now      func() time.Time
}

func NewService(model llm.ChatModel, currency string, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		llm:      model,
		currency: currency,
		log:      log,
		now:      time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error) {
	if strings.TrimSpace(in.Question) == "" || in.Expenses == nil {
		return Analysis{}, ErrInvalidInput
	}
	summary := Summarize(in.Expenses)
	p := BuildAnalyzePrompt(s.currency, in.Question, in.Expenses, summary)

	answer, err := s.llm.Ask(ctx, p.System, p.User, analyzeParams)
	if err != nil {
		return Analysis{}, fmt.Errorf("analyze expenses: %w", err)
	}
	if strings.TrimSpace(answer) == "" {
		answer = fallbackAnswer
	}
	return Analysis{Answer: answer, Summary: summary}, nil
}

func (s *service) AddExpense(ctx context.Context, in AddExpenseInput) (Extraction, error) {
	if strings.TrimSpace(in.Input) == "" || in.AvailableCategories == nil {
		return Extraction{}, ErrInvalidInput
	}
	today := s.now().UTC().Format(time.DateOnly)
	p := BuildExtractionPrompt(s.currency, today, in)

	raw, err := s.llm.Ask(ctx, p.System, p.User, extractionParams)
	if err != nil {
		return Extraction{}, fmt.Errorf("extract expense: %w", err)
	}

	out, outcome, err := DecodeExtraction(raw)
	switch outcome {
	case OutcomeUnparsable:
		s.log.Warn("model reply is not an expense payload",
			zap.Stringer("outcome", outcome),
			zap.Int("replyLen", len(raw)),
			zap.Error(err),
		)
		return Extraction{Answer: unparsableAnswer}, err
	case OutcomeNotExpense:
		s.log.Debug("input is not an expense", zap.Stringer("outcome", outcome))
		if out.Answer == "" {
			out.Answer = notExpenseAnswer
		}
		return out, nil
	}

	Normalize(out.ExpenseData, in.AvailableCategories, today)
	if out.ExpenseData.Amount.IsNegative() {
		s.log.Warn("extracted expense has a negative amount", zap.String("amount", out.ExpenseData.Amount.String()))
	}
	if out.Answer == "" {
		out.Answer = addedAnswer
	}
	return out, nil
}
