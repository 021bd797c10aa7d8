package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CharacterContract is one contract from an audited character's
// records. Issuer, assignee and acceptor may each be absent or be a
// non-character entity. ISK fields use zero for "not set", matching
// how the audit store records them.
type CharacterContract struct {
	ID            int64
	Character     Character
	Issuer        *EveEntity
	Assignee      *EveEntity
	Acceptor      *EveEntity
	Type          string
	Status        string
	Availability  string
	Title         string
	Price         decimal.Decimal
	Reward        decimal.Decimal
	Collateral    decimal.Decimal
	Buyout        decimal.Decimal
	DateIssued    time.Time
	DateAccepted  *time.Time
	DateExpired   *time.Time
	DateCompleted *time.Time
	Items         []ContractItem
}

// Timestamp picks the most final known date of the contract.
func (c CharacterContract) Timestamp() *time.Time {
	for _, ts := range []*time.Time{c.DateCompleted, c.DateExpired, c.DateAccepted} {
		if ts != nil {
			return ts
		}
	}
	if c.DateIssued.IsZero() {
		return nil
	}
	issued := c.DateIssued
	return &issued
}

// ContractItem is one line item on a contract. RawQuantity is negative
// for items the issuer requests rather than offers. AveragePrice is
// the market average for the item type, nil when the market has no
// recorded price.
type ContractItem struct {
	TypeID       int64
	TypeName     string
	Quantity     int64
	RawQuantity  int64
	AveragePrice *decimal.Decimal
}

// MarketValue totals quantity times average market price over the
// offered (non-negative raw quantity) items. Items without a recorded
// price contribute nothing; nil means no item could be valued.
func (c CharacterContract) MarketValue() *decimal.Decimal {
	var total decimal.Decimal
	valued := false
	for _, item := range c.Items {
		if item.RawQuantity < 0 || item.AveragePrice == nil {
			continue
		}
		total = total.Add(decimal.NewFromInt(item.Quantity).Mul(*item.AveragePrice))
		valued = true
	}
	if !valued {
		return nil
	}
	return &total
}
