package projection

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// refreshRaised sums the deposits of a suggestion and derives its status.
// Deposits are keyed by position, so a redelivered deposit is counted once.
func refreshRaised(ctx context.Context, tx store.ProjectionStore, s *schema.Suggestion) error {
	deposits, err := tx.ListSuggestionDeposits(ctx, s.ID)
	if err != nil {
		return err
	}

	raised := new(big.Int)
	for _, d := range deposits {
		amount, ok := domain.ParseAmount(d.Amount)
		if !ok {
			return fmt.Errorf("invalid deposit amount %q for suggestion %s", d.Amount, s.ID)
		}
		raised.Add(raised, amount)
	}
	s.Raised = raised.String()

	if s.Status == schema.SuggestionStatusWithdrawn {
		return nil
	}
	s.Status = schema.SuggestionStatusInProgress
	if goal, ok := domain.ParseAmount(s.Goal); ok && raised.Cmp(goal) >= 0 {
		s.Status = schema.SuggestionStatusCompleted
	}
	return nil
}

func (e *Engine) applySuggestionCreated(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	existing, err := tx.GetSuggestion(ctx, ev.SuggestionID)
	if err != nil {
		return Effects{}, err
	}
	if existing != nil {
		return Effects{}, nil
	}

	suggestion := &schema.Suggestion{
		ID:          ev.SuggestionID,
		Proposer:    ev.Participants.Creator,
		Title:       ev.Name,
		Description: ev.Description,
		Goal:        ev.Amounts.Goal,
		Status:      schema.SuggestionStatusInProgress,
		CreatedAt:   ev.Timestamp,
		CreatedPos:  ev.Position,
	}
	// Deposits seen before the creation are counted now
	if err := refreshRaised(ctx, tx, suggestion); err != nil {
		return Effects{}, err
	}

	return Effects{}, tx.SaveSuggestion(ctx, suggestion)
}

func (e *Engine) applySuggestionFunded(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	err := tx.SaveSuggestionDeposit(ctx, &schema.SuggestionDeposit{
		ID:           schema.PositionID(ev.Position),
		SuggestionID: ev.SuggestionID,
		Depositor:    ev.Participants.Depositor,
		Amount:       ev.Amounts.Amount,
		DepositedAt:  ev.Timestamp,
		Pos:          ev.Position,
	})
	if err != nil {
		return Effects{}, err
	}

	suggestion, err := tx.GetSuggestion(ctx, ev.SuggestionID)
	if err != nil {
		return Effects{}, err
	}
	if suggestion == nil {
		logger.DebugCtx(ctx, "Deposit recorded before its suggestion",
			zap.String("suggestionID", ev.SuggestionID),
			zap.Stringer("position", ev.Position))
		return Effects{}, nil
	}

	if err := refreshRaised(ctx, tx, suggestion); err != nil {
		return Effects{}, err
	}
	return Effects{}, tx.SaveSuggestion(ctx, suggestion)
}

func (e *Engine) applySuggestionWithdrawn(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	suggestion, err := tx.GetSuggestion(ctx, ev.SuggestionID)
	if err != nil {
		return Effects{}, err
	}
	if suggestion == nil {
		logger.WarnCtx(ctx, "No suggestion to withdraw",
			zap.String("suggestionID", ev.SuggestionID),
			zap.Stringer("position", ev.Position))
		return Effects{}, nil
	}

	if !ev.Position.After(suggestion.WithdrawnPos) {
		return Effects{}, nil
	}
	suggestion.Status = schema.SuggestionStatusWithdrawn
	suggestion.WithdrawnPos = ev.Position

	return Effects{}, tx.SaveSuggestion(ctx, suggestion)
}
