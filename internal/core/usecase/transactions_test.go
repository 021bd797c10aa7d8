package usecase

import (
	"context"
	"testing"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

func transactionFixture(t *testing.T, client domain.EveEntity, quantity int64, unitPrice, averagePrice string) domain.WalletTransaction {
	t.Helper()
	return domain.WalletTransaction{
		TransactionID: 41,
		Character:     mainPilot,
		Client:        &client,
		Date:          at(t, "2025-01-15T16:00:00Z"),
		IsBuy:         false,
		Quantity:      quantity,
		UnitPrice:     dec(t, unitPrice),
		TypeID:        44992,
		TypeName:      "PLEX",
		AveragePrice:  decPtr(t, averagePrice),
	}
}

func runTransactions(t *testing.T, transactions ...domain.WalletTransaction) []domain.CharacterEvent {
	t.Helper()
	svc := newStubService(&stubSources{
		transactionsFn: func(_ context.Context, _ []int64) ([]domain.WalletTransaction, error) {
			return transactions, nil
		},
	})
	events, err := svc.transactionEvents(context.Background(), ownedSet)
	if err != nil {
		t.Fatalf("transaction events: %v", err)
	}
	return events
}

func TestTransactionEventsRatioDeadZone(t *testing.T) {
	client := playerEntity(94_500_001, "Market Buddy")

	// ratio 0.1 sits on the boundary and is retained
	events := runTransactions(t, transactionFixture(t, client, 200_000, "100", "1000"))
	if len(events) != 1 {
		t.Fatalf("expected boundary ratio 0.1 retained, got %d events", len(events))
	}

	// ratio 0.15 is inside the dead zone
	events = runTransactions(t, transactionFixture(t, client, 200_000, "150", "1000"))
	if len(events) != 0 {
		t.Fatalf("expected dead-zone ratio filtered, got %d events", len(events))
	}

	// ratio 2.0 sits on the upper boundary and is retained
	events = runTransactions(t, transactionFixture(t, client, 10_000, "2000", "1000"))
	if len(events) != 1 {
		t.Fatalf("expected boundary ratio 2.0 retained, got %d events", len(events))
	}
}

func TestTransactionEventsMinimumTotalValue(t *testing.T) {
	client := playerEntity(94_500_002, "Small Fry")

	// far-off-market ratio but only 9,999,900 ISK total
	events := runTransactions(t, transactionFixture(t, client, 99_999, "100", "1000"))
	if len(events) != 0 {
		t.Fatalf("expected small trade filtered, got %d events", len(events))
	}

	// 10,000,000 ISK total passes
	events = runTransactions(t, transactionFixture(t, client, 100_000, "100", "1000"))
	if len(events) != 1 {
		t.Fatalf("expected 10M trade retained, got %d events", len(events))
	}
}

func TestTransactionEventsUnknownAveragePrice(t *testing.T) {
	client := playerEntity(94_500_003, "Trader")
	tx := transactionFixture(t, client, 1_000_000, "100", "1000")
	tx.AveragePrice = nil
	if events := runTransactions(t, tx); len(events) != 0 {
		t.Fatalf("expected unpriced type filtered, got %d events", len(events))
	}

	zero := dec(t, "0")
	tx.AveragePrice = &zero
	if events := runTransactions(t, tx); len(events) != 0 {
		t.Fatalf("expected zero average price filtered, got %d events", len(events))
	}
}

func TestTransactionEventsClientFilter(t *testing.T) {
	npcClient := npcEntity(3_300_000, "NPC Buy Order")
	ownedClient := playerEntity(altPilot.ID, altPilot.Name)

	events := runTransactions(t,
		transactionFixture(t, npcClient, 200_000, "100", "1000"),
		transactionFixture(t, ownedClient, 200_000, "100", "1000"),
	)
	if len(events) != 0 {
		t.Fatalf("expected NPC and owned clients filtered, got %d events", len(events))
	}
}

func TestTransactionEventsFields(t *testing.T) {
	client := playerEntity(94_500_004, "Overpayer")
	tx := transactionFixture(t, client, 4, "12500000", "1000000")
	tx.IsBuy = true

	events := runTransactions(t, tx)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	event := events[0]
	if event.Summary != "Buy 4x PLEX" {
		t.Fatalf("unexpected summary: %q", event.Summary)
	}
	if event.Details != "Unit price:12500000.00, Average price:1000000.00, Ratio:1250.0%" {
		t.Fatalf("unexpected details: %q", event.Details)
	}
	if event.ISKValue == nil || !event.ISKValue.Equal(dec(t, "50000000")) {
		t.Fatalf("unexpected ISK value: %v", event.ISKValue)
	}
}
