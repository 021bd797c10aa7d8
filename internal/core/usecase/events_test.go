package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

type stubSources struct {
	contactsFn     func(ctx context.Context, characterIDs []int64) ([]domain.CharacterContact, error)
	mailsFn        func(ctx context.Context, characterIDs []int64) ([]domain.CharacterMail, error)
	contractsFn    func(ctx context.Context, characterIDs []int64) ([]domain.CharacterContract, error)
	journalFn      func(ctx context.Context, characterIDs []int64) ([]domain.WalletJournalEntry, error)
	transactionsFn func(ctx context.Context, characterIDs []int64) ([]domain.WalletTransaction, error)
}

func (s *stubSources) ContactsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterContact, error) {
	if s.contactsFn != nil {
		return s.contactsFn(ctx, characterIDs)
	}
	return nil, nil
}

func (s *stubSources) MailsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterMail, error) {
	if s.mailsFn != nil {
		return s.mailsFn(ctx, characterIDs)
	}
	return nil, nil
}

func (s *stubSources) ContractsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterContract, error) {
	if s.contractsFn != nil {
		return s.contractsFn(ctx, characterIDs)
	}
	return nil, nil
}

func (s *stubSources) JournalEntriesOf(ctx context.Context, characterIDs []int64) ([]domain.WalletJournalEntry, error) {
	if s.journalFn != nil {
		return s.journalFn(ctx, characterIDs)
	}
	return nil, nil
}

func (s *stubSources) TransactionsOf(ctx context.Context, characterIDs []int64) ([]domain.WalletTransaction, error) {
	if s.transactionsFn != nil {
		return s.transactionsFn(ctx, characterIDs)
	}
	return nil, nil
}

func newStubService(sources *stubSources) *EventService {
	return NewEventService(sources, sources, sources, sources)
}

var (
	mainPilot = domain.Character{ID: 93_000_001, Name: "Main Pilot"}
	altPilot  = domain.Character{ID: 93_000_002, Name: "Alt Pilot"}

	ownedSet = domain.NewCharacterSet(mainPilot, altPilot)
)

func playerEntity(id int64, name string) domain.EveEntity {
	return domain.EveEntity{ID: id, Name: name, Category: domain.CategoryCharacter}
}

func npcEntity(id int64, name string) domain.EveEntity {
	return domain.EveEntity{ID: id, Name: name, Category: domain.CategoryCharacter}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func atPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	ts := at(t, value)
	return &ts
}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return d
}

func decPtr(t *testing.T, value string) *decimal.Decimal {
	t.Helper()
	d := dec(t, value)
	return &d
}

func TestAllEventsKeepsSourceOrder(t *testing.T) {
	outsider := playerEntity(94_000_001, "Neutral Trader")
	donation := domain.WalletJournalEntry{
		ID:          1,
		Character:   mainPilot,
		FirstParty:  &outsider,
		SecondParty: &domain.EveEntity{ID: mainPilot.ID, Name: mainPilot.Name, Category: domain.CategoryCharacter},
		RefType:     domain.RefTypePlayerDonation,
		Amount:      dec(t, "5000000"),
		Date:        at(t, "2025-05-01T12:00:00Z"),
	}
	contact := domain.CharacterContact{Character: altPilot, Contact: outsider, Standing: 5}

	svc := newStubService(&stubSources{
		contactsFn: func(_ context.Context, _ []int64) ([]domain.CharacterContact, error) {
			return []domain.CharacterContact{contact}, nil
		},
		journalFn: func(_ context.Context, _ []int64) ([]domain.WalletJournalEntry, error) {
			return []domain.WalletJournalEntry{donation}, nil
		},
	})

	events, err := svc.AllEvents(context.Background(), ownedSet)
	if err != nil {
		t.Fatalf("all events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Timestamp != nil {
		t.Fatalf("expected contact event first, got %+v", events[0])
	}
	if events[1].Timestamp == nil {
		t.Fatalf("expected journal event second, got %+v", events[1])
	}
}

func TestAllEventsIsolatesFailingConverter(t *testing.T) {
	outsider := playerEntity(94_000_001, "Neutral Trader")
	svc := newStubService(&stubSources{
		contactsFn: func(_ context.Context, _ []int64) ([]domain.CharacterContact, error) {
			return nil, errors.New("contacts table locked")
		},
		mailsFn: func(_ context.Context, _ []int64) ([]domain.CharacterMail, error) {
			return []domain.CharacterMail{{
				ID:        7,
				Character: mainPilot,
				Sender:    outsider,
				Recipients: []domain.EveEntity{
					{ID: mainPilot.ID, Name: mainPilot.Name, Category: domain.CategoryCharacter},
				},
				Subject:   "o7",
				Timestamp: at(t, "2025-05-02T09:00:00Z"),
			}}, nil
		},
	})

	events, err := svc.AllEvents(context.Background(), ownedSet)
	if err != nil {
		t.Fatalf("all events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected mail event despite contacts failure, got %d events", len(events))
	}
	if events[0].OtherCharacterID != outsider.ID {
		t.Fatalf("unexpected counterparty: %+v", events[0])
	}
}

func TestAllEventsPropagatesCancellation(t *testing.T) {
	svc := newStubService(&stubSources{
		contactsFn: func(ctx context.Context, _ []int64) ([]domain.CharacterContact, error) {
			return nil, context.Canceled
		},
	})

	_, err := svc.AllEvents(context.Background(), ownedSet)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAllEventsEmptyOwnedSet(t *testing.T) {
	called := false
	svc := newStubService(&stubSources{
		contactsFn: func(_ context.Context, _ []int64) ([]domain.CharacterContact, error) {
			called = true
			return nil, nil
		},
	})

	events, err := svc.AllEvents(context.Background(), domain.CharacterSet{})
	if err != nil {
		t.Fatalf("all events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if called {
		t.Fatal("expected no source queries for an empty owned set")
	}
}

func TestAllEventsIsIdempotent(t *testing.T) {
	outsider := playerEntity(94_000_002, "Repeat Customer")
	sources := &stubSources{
		contactsFn: func(_ context.Context, _ []int64) ([]domain.CharacterContact, error) {
			return []domain.CharacterContact{
				{Character: mainPilot, Contact: outsider, Standing: -10},
			}, nil
		},
	}
	svc := newStubService(sources)

	first, err := svc.AllEvents(context.Background(), ownedSet)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := svc.AllEvents(context.Background(), ownedSet)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical passes, got %+v then %+v", first, second)
	}
}

func TestAllEventsPassesBatchIDs(t *testing.T) {
	var got []int64
	svc := newStubService(&stubSources{
		contactsFn: func(_ context.Context, characterIDs []int64) ([]domain.CharacterContact, error) {
			got = append([]int64(nil), characterIDs...)
			return nil, nil
		},
	})

	if _, err := svc.AllEvents(context.Background(), ownedSet); err != nil {
		t.Fatalf("all events: %v", err)
	}
	want := []int64{mainPilot.ID, altPilot.ID}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected batch %v, got %v", want, got)
	}
}
