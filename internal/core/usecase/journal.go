package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

// journalEvents converts wallet journal entries into events. Only
// player donations qualify: every other reference type (market
// escrow, bounties, taxes) is noise for recruiting purposes.
func (s *EventService) journalEvents(ctx context.Context, owned domain.CharacterSet) ([]domain.CharacterEvent, error) {
	entries, err := s.wallet.JournalEntriesOf(ctx, owned.IDs())
	if err != nil {
		return nil, fmt.Errorf("fetch wallet journal: %w", err)
	}

	var events []domain.CharacterEvent
	for _, entry := range entries {
		if entry.RefType != domain.RefTypePlayerDonation {
			continue
		}
		other := journalCounterparty(entry, owned)
		if other == nil {
			continue
		}
		timestamp := entry.Date
		amount := entry.Amount
		events = append(events, domain.CharacterEvent{
			RecruitID:          entry.Character.ID,
			RecruitName:        entry.Character.Name,
			OtherCharacterID:   other.ID,
			OtherCharacterName: other.Name,
			Summary:            titleize(entry.RefType),
			Details:            journalDetails(entry),
			Timestamp:          &timestamp,
			ISKValue:           &amount,
		})
	}
	return events, nil
}

func journalCounterparty(entry domain.WalletJournalEntry, owned domain.CharacterSet) *domain.EveEntity {
	for _, entity := range []*domain.EveEntity{entry.FirstParty, entry.SecondParty} {
		if externalCharacter(entity, owned) {
			return entity
		}
	}
	return nil
}

func journalDetails(entry domain.WalletJournalEntry) string {
	var lines []string
	if entry.ContextID != 0 {
		lines = append(lines, fmt.Sprintf("Context:%s (%d)", titleize(entry.ContextIDType), entry.ContextID))
	}
	if entry.Reason != "" {
		lines = append(lines, "Reason:"+entry.Reason)
	}
	return strings.Join(lines, "\n")
}
