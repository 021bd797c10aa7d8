package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

// mailEvents converts mails into events, one per outside participant.
// A mail with several qualifying counterparties yields several events
// sharing the same summary, details and timestamp.
func (s *EventService) mailEvents(ctx context.Context, owned domain.CharacterSet) ([]domain.CharacterEvent, error) {
	mails, err := s.mails.MailsOf(ctx, owned.IDs())
	if err != nil {
		return nil, fmt.Errorf("fetch mails: %w", err)
	}

	var events []domain.CharacterEvent
	for _, mail := range mails {
		summary := mailSummary(mail)
		details := mailDetails(mail)
		seen := make(map[int64]struct{})
		for _, participant := range mail.Participants() {
			if !externalCharacter(&participant, owned) {
				continue
			}
			// one event per distinct counterparty even if a party is
			// both sender and recipient
			if _, ok := seen[participant.ID]; ok {
				continue
			}
			seen[participant.ID] = struct{}{}
			timestamp := mail.Timestamp
			events = append(events, domain.CharacterEvent{
				RecruitID:          mail.Character.ID,
				RecruitName:        mail.Character.Name,
				OtherCharacterID:   participant.ID,
				OtherCharacterName: participant.Name,
				Summary:            summary,
				Details:            details,
				Timestamp:          &timestamp,
			})
		}
	}
	return events, nil
}

func mailSummary(mail domain.CharacterMail) string {
	return fmt.Sprintf("Mail %s->%s", mail.Sender.Label(), joinLabels(mail.Recipients))
}

func mailDetails(mail domain.CharacterMail) string {
	var b strings.Builder
	if !mail.IsRead {
		b.WriteString("Unread:")
	}
	fmt.Fprintf(&b, "Subject:%s\n", mail.Subject)
	fmt.Fprintf(&b, "From:%s\n", mail.Sender.Label())
	fmt.Fprintf(&b, "To:%s\n", joinLabels(mail.Recipients))
	b.WriteString(mail.Body)
	return b.String()
}

func joinLabels(entities []domain.EveEntity) string {
	labels := make([]string, 0, len(entities))
	for _, entity := range entities {
		labels = append(labels, entity.Label())
	}
	return strings.Join(labels, ",")
}
