package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/atvirokodosprendimai/recruitdash/internal/core/ports"
	"github.com/atvirokodosprendimai/recruitdash/internal/metrics"
)

// EventService aggregates recruiting-relevant events from all audit
// sources for one owned-character set. It holds no state between
// calls; every invocation is a fresh pass over the store.
type EventService struct {
	contacts  ports.ContactSource
	mails     ports.MailSource
	contracts ports.ContractSource
	wallet    ports.WalletSource
}

func NewEventService(contacts ports.ContactSource, mails ports.MailSource, contracts ports.ContractSource, wallet ports.WalletSource) *EventService {
	return &EventService{contacts: contacts, mails: mails, contracts: contracts, wallet: wallet}
}

// AllEvents runs every source converter over the owned characters and
// concatenates their output in fixed source order. A failing converter
// is logged and skipped so the remaining sources still contribute;
// only context cancellation aborts the pass. No cross-source dedup:
// an interaction visible in both mail and wallet journal legitimately
// produces two events.
func (s *EventService) AllEvents(ctx context.Context, owned domain.CharacterSet) ([]domain.CharacterEvent, error) {
	if owned.Len() == 0 {
		return nil, nil
	}

	converters := []struct {
		source string
		run    func(context.Context, domain.CharacterSet) ([]domain.CharacterEvent, error)
	}{
		{"contacts", s.contactEvents},
		{"mail", s.mailEvents},
		{"contracts", s.contractEvents},
		{"wallet_journal", s.journalEvents},
		{"wallet_transactions", s.transactionEvents},
	}

	metrics.AggregationPass()

	var all []domain.CharacterEvent
	for _, converter := range converters {
		events, err := converter.run(ctx, owned)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			log.Printf("scan %s: %v", converter.source, err)
			metrics.ConverterFailure(converter.source)
			continue
		}
		metrics.EventsExtracted(converter.source, len(events))
		all = append(all, events...)
	}
	return all, nil
}
