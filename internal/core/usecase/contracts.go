package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

const marketURLFormat = "https://evetycoon.com/market/%d"

// contractEvents converts contracts into events, exactly one per
// contract with a qualifying counterparty. The counterparty is picked
// by priority: assignee, then acceptor, then issuer.
func (s *EventService) contractEvents(ctx context.Context, owned domain.CharacterSet) ([]domain.CharacterEvent, error) {
	contracts, err := s.contracts.ContractsOf(ctx, owned.IDs())
	if err != nil {
		return nil, fmt.Errorf("fetch contracts: %w", err)
	}

	var events []domain.CharacterEvent
	for _, contract := range contracts {
		other := contractCounterparty(contract, owned)
		if other == nil {
			continue
		}
		value := contract.MarketValue()
		events = append(events, domain.CharacterEvent{
			RecruitID:          contract.Character.ID,
			RecruitName:        contract.Character.Name,
			OtherCharacterID:   other.ID,
			OtherCharacterName: other.Name,
			Summary:            contractSummary(contract),
			Details:            contractDetails(contract, value),
			Timestamp:          contract.Timestamp(),
			ISKValue:           value,
		})
	}
	return events, nil
}

func contractCounterparty(contract domain.CharacterContract, owned domain.CharacterSet) *domain.EveEntity {
	for _, entity := range []*domain.EveEntity{contract.Assignee, contract.Acceptor, contract.Issuer} {
		if externalCharacter(entity, owned) {
			return entity
		}
	}
	return nil
}

func contractSummary(contract domain.CharacterContract) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s (%s)", titleize(contract.Type), titleize(contract.Status)))
	if contract.Issuer != nil {
		parts = append(parts, "Issuer: "+contract.Issuer.Label())
	}
	if contract.Availability != "" {
		label := titleize(contract.Availability)
		if contract.Assignee != nil {
			label += " - " + contract.Assignee.Label()
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " | ")
}

func contractDetails(contract domain.CharacterContract, value *decimal.Decimal) string {
	var lines []string
	if contract.Title != "" {
		// titles are issuer-provided free text landing in a details
		// block that legitimately carries anchor markup for items
		lines = append(lines, "Info by Issuer:"+html.EscapeString(contract.Title))
	}
	lines = append(lines, "Status:"+titleize(contract.Status))

	var iskFields []string
	if value != nil {
		iskFields = append(iskFields, "Value:"+value.StringFixed(2))
	}
	for _, field := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Price", contract.Price},
		{"Reward", contract.Reward},
		{"Collateral", contract.Collateral},
		{"Buyout", contract.Buyout},
	} {
		if !field.amount.IsZero() {
			iskFields = append(iskFields, field.label+":"+field.amount.StringFixed(2))
		}
	}
	if len(iskFields) > 0 {
		lines = append(lines, strings.Join(iskFields, ", "))
	}

	for _, item := range contract.Items {
		lines = append(lines, fmt.Sprintf("%dx <a href=%s>%s</a>",
			item.Quantity, fmt.Sprintf(marketURLFormat, item.TypeID), item.TypeName))
	}
	return strings.Join(lines, "\n")
}
