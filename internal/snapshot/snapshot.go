// Package snapshot reads JSON audit snapshots used to populate a
// local database for development and testing. Files are validated
// against an embedded schema before any row is written.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"
)

//go:embed schema.json
var schemaJSON []byte

type Snapshot struct {
	Users              []User               `json:"users"`
	Characters         []Character          `json:"characters"`
	Entities           []Entity             `json:"entities"`
	Types              []EveType            `json:"types"`
	MarketPrices       []MarketPrice        `json:"market_prices"`
	Contacts           []Contact            `json:"contacts"`
	Mails              []Mail               `json:"mails"`
	Contracts          []Contract           `json:"contracts"`
	WalletJournal      []WalletJournalEntry `json:"wallet_journal"`
	WalletTransactions []WalletTransaction  `json:"wallet_transactions"`
}

type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	JoinedAt        time.Time `json:"joined_at"`
	MainCharacterID *int64    `json:"main_character_id"`
}

type Character struct {
	CharacterID int64  `json:"character_id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
}

type Entity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type EveType struct {
	TypeID int64  `json:"type_id"`
	Name   string `json:"name"`
}

type MarketPrice struct {
	TypeID       int64           `json:"type_id"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

type Contact struct {
	CharacterID int64   `json:"character_id"`
	ContactID   int64   `json:"contact_id"`
	Standing    float64 `json:"standing"`
}

type Mail struct {
	ID           int64     `json:"id"`
	CharacterID  int64     `json:"character_id"`
	SenderID     int64     `json:"sender_id"`
	RecipientIDs []int64   `json:"recipient_ids"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	IsRead       bool      `json:"is_read"`
	Timestamp    time.Time `json:"timestamp"`
}

type Contract struct {
	ID            int64           `json:"id"`
	CharacterID   int64           `json:"character_id"`
	IssuerID      *int64          `json:"issuer_id"`
	AssigneeID    *int64          `json:"assignee_id"`
	AcceptorID    *int64          `json:"acceptor_id"`
	ContractType  string          `json:"contract_type"`
	Status        string          `json:"status"`
	Availability  string          `json:"availability"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	Reward        decimal.Decimal `json:"reward"`
	Collateral    decimal.Decimal `json:"collateral"`
	Buyout        decimal.Decimal `json:"buyout"`
	DateIssued    time.Time       `json:"date_issued"`
	DateAccepted  *time.Time      `json:"date_accepted"`
	DateExpired   *time.Time      `json:"date_expired"`
	DateCompleted *time.Time      `json:"date_completed"`
	Items         []ContractItem  `json:"items"`
}

type ContractItem struct {
	TypeID      int64 `json:"type_id"`
	Quantity    int64 `json:"quantity"`
	RawQuantity int64 `json:"raw_quantity"`
}

type WalletJournalEntry struct {
	ID            int64           `json:"id"`
	CharacterID   int64           `json:"character_id"`
	FirstPartyID  *int64          `json:"first_party_id"`
	SecondPartyID *int64          `json:"second_party_id"`
	RefType       string          `json:"ref_type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Reason        string          `json:"reason"`
	ContextID     int64           `json:"context_id"`
	ContextIDType string          `json:"context_id_type"`
}

type WalletTransaction struct {
	TransactionID int64           `json:"transaction_id"`
	CharacterID   int64           `json:"character_id"`
	ClientID      int64           `json:"client_id"`
	Date          time.Time       `json:"date"`
	IsBuy         bool            `json:"is_buy"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TypeID        int64           `json:"type_id"`
}

// Parse validates raw snapshot JSON against the embedded schema and
// decodes it.
func Parse(data []byte) (*Snapshot, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var snap Snapshot
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// LoadFile reads and parses a snapshot file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(data)
}

func validate(data []byte) error {
	compiler := santhosh.NewCompiler()
	compiler.Draft = santhosh.Draft7
	if err := compiler.AddResource("snapshot.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("load snapshot schema: %w", err)
	}
	schema, err := compiler.Compile("snapshot.json")
	if err != nil {
		return fmt.Errorf("compile snapshot schema: %w", err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		var ve *santhosh.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("snapshot schema violation: %s", ve.Error())
		}
		return fmt.Errorf("snapshot schema violation: %w", err)
	}
	return nil
}
