package usecase

import (
	"context"
	"fmt"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

// contactEvents converts standings entries into events. Standings are
// a durable signal of relationship polarity but carry no event time,
// so contact events always sort last within a counterparty group.
func (s *EventService) contactEvents(ctx context.Context, owned domain.CharacterSet) ([]domain.CharacterEvent, error) {
	contacts, err := s.contacts.ContactsOf(ctx, owned.IDs())
	if err != nil {
		return nil, fmt.Errorf("fetch contacts: %w", err)
	}

	var events []domain.CharacterEvent
	for _, contact := range contacts {
		target := contact.Contact
		if !externalCharacter(&target, owned) {
			continue
		}
		events = append(events, domain.CharacterEvent{
			RecruitID:          contact.Character.ID,
			RecruitName:        contact.Character.Name,
			OtherCharacterID:   target.ID,
			OtherCharacterName: target.Name,
			Summary:            fmt.Sprintf("Standing %+.1f", contact.Standing),
		})
	}
	return events, nil
}
