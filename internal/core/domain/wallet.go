package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefTypePlayerDonation is the journal reference type for a direct
// ISK transfer between players. All other reference types are noise
// for recruiting purposes.
const RefTypePlayerDonation = "player_donation"

// WalletJournalEntry is one entry from an audited character's wallet
// journal. First and second party are inconsistent across reference
// types and either may be absent.
type WalletJournalEntry struct {
	ID            int64
	Character     Character
	FirstParty    *EveEntity
	SecondParty   *EveEntity
	RefType       string
	Amount        decimal.Decimal
	Date          time.Time
	Description   string
	Reason        string
	ContextID     int64
	ContextIDType string
}

// WalletTransaction is one market transaction from an audited
// character's wallet. AveragePrice is the market average for the
// traded type, nil when unknown.
type WalletTransaction struct {
	TransactionID int64
	Character     Character
	Client        *EveEntity
	Date          time.Time
	IsBuy         bool
	Quantity      int64
	UnitPrice     decimal.Decimal
	TypeID        int64
	TypeName      string
	AveragePrice  *decimal.Decimal
}

// TotalValue is quantity times unit price.
func (t WalletTransaction) TotalValue() decimal.Decimal {
	return decimal.NewFromInt(t.Quantity).Mul(t.UnitPrice)
}
