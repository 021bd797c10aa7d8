package usecase

import (
	"context"
	"fmt"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Transactions priced inside (ratioFloor, ratioCeiling) relative to
// the market average look like ordinary trade and are dropped; only
// far-off-market pricing suggests a disguised value transfer. Small
// trades are dropped outright.
var (
	ratioFloor       = decimal.RequireFromString("0.1")
	ratioCeiling     = decimal.NewFromInt(2)
	minNotableAmount = decimal.NewFromInt(10_000_000)
	percent          = decimal.NewFromInt(100)
)

func (s *EventService) transactionEvents(ctx context.Context, owned domain.CharacterSet) ([]domain.CharacterEvent, error) {
	transactions, err := s.wallet.TransactionsOf(ctx, owned.IDs())
	if err != nil {
		return nil, fmt.Errorf("fetch wallet transactions: %w", err)
	}

	var events []domain.CharacterEvent
	for _, tx := range transactions {
		if !externalCharacter(tx.Client, owned) {
			continue
		}
		if tx.AveragePrice == nil || !tx.AveragePrice.IsPositive() {
			continue
		}
		ratio := tx.UnitPrice.Div(*tx.AveragePrice)
		if ratio.GreaterThan(ratioFloor) && ratio.LessThan(ratioCeiling) {
			continue
		}
		total := tx.TotalValue()
		if total.LessThan(minNotableAmount) {
			continue
		}

		verb := "Sell"
		if tx.IsBuy {
			verb = "Buy"
		}
		timestamp := tx.Date
		events = append(events, domain.CharacterEvent{
			RecruitID:          tx.Character.ID,
			RecruitName:        tx.Character.Name,
			OtherCharacterID:   tx.Client.ID,
			OtherCharacterName: tx.Client.Name,
			Summary:            fmt.Sprintf("%s %dx %s", verb, tx.Quantity, tx.TypeName),
			Details: fmt.Sprintf("Unit price:%s, Average price:%s, Ratio:%s%%",
				tx.UnitPrice.StringFixed(2), tx.AveragePrice.StringFixed(2), ratio.Mul(percent).StringFixed(1)),
			Timestamp: &timestamp,
			ISKValue:  &total,
		})
	}
	return events, nil
}
