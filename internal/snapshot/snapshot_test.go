package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSnapshot = `{
  "users": [
    {"id": 1, "username": "recruiter", "joined_at": "2024-03-01T10:00:00Z", "main_character_id": 93000001}
  ],
  "characters": [
    {"character_id": 93000001, "user_id": 1, "name": "Main Pilot"}
  ],
  "entities": [
    {"id": 93000001, "name": "Main Pilot", "category": "character"},
    {"id": 95000001, "name": "Neutral Trader", "category": "character"}
  ],
  "types": [
    {"type_id": 587, "name": "Rifter"}
  ],
  "market_prices": [
    {"type_id": 587, "average_price": 450000.5}
  ],
  "contacts": [
    {"character_id": 93000001, "contact_id": 95000001, "standing": 5.0}
  ],
  "mails": [
    {"id": 10, "character_id": 93000001, "sender_id": 95000001, "recipient_ids": [93000001], "subject": "o7", "body": "hello", "is_read": false, "timestamp": "2024-04-01T12:00:00Z"}
  ],
  "contracts": [],
  "wallet_journal": [
    {"id": 20, "character_id": 93000001, "first_party_id": 95000001, "second_party_id": 93000001, "ref_type": "player_donation", "amount": 250000000, "date": "2024-04-02T09:00:00Z", "description": "", "reason": "gl", "context_id": 0, "context_id_type": ""}
  ],
  "wallet_transactions": [
    {"transaction_id": 30, "character_id": 93000001, "client_id": 95000001, "date": "2024-04-03T15:00:00Z", "is_buy": true, "quantity": 4, "unit_price": 12500000, "type_id": 587}
  ]
}`

func TestParseValidSnapshot(t *testing.T) {
	snap, err := Parse([]byte(validSnapshot))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Users) != 1 || snap.Users[0].Username != "recruiter" {
		t.Fatalf("unexpected users: %+v", snap.Users)
	}
	if snap.Users[0].MainCharacterID == nil || *snap.Users[0].MainCharacterID != 93000001 {
		t.Fatalf("unexpected main character: %+v", snap.Users[0].MainCharacterID)
	}
	if len(snap.Mails) != 1 || len(snap.Mails[0].RecipientIDs) != 1 {
		t.Fatalf("unexpected mails: %+v", snap.Mails)
	}
	if len(snap.WalletJournal) != 1 || snap.WalletJournal[0].RefType != "player_donation" {
		t.Fatalf("unexpected journal: %+v", snap.WalletJournal)
	}
	if got := snap.WalletTransactions[0].UnitPrice.String(); got != "12500000" {
		t.Fatalf("unexpected unit price: %s", got)
	}
}

func TestParseRejectsInvalidCategory(t *testing.T) {
	raw := `{"entities": [{"id": 1, "name": "x", "category": "starbase"}]}`

	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected schema violation")
	} else if !strings.Contains(err.Error(), "schema violation") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"users": [`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(validSnapshot), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	snap, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Characters) != 1 {
		t.Fatalf("unexpected characters: %+v", snap.Characters)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
