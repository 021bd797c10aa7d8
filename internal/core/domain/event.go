package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CharacterEvent is one normalized interaction between a recruit's
// character and an outside character. Timestamp and ISK value are
// optional because not every event carries temporal or financial
// context: contacts have no inherent time, and a contract without
// priced items has no computable value.
type CharacterEvent struct {
	RecruitID          int64
	RecruitName        string
	OtherCharacterID   int64
	OtherCharacterName string
	Summary            string
	Details            string
	Timestamp          *time.Time
	ISKValue           *decimal.Decimal
}

// Before orders events chronologically, with undated events sorting
// after every dated one.
func (e CharacterEvent) Before(other CharacterEvent) bool {
	if e.Timestamp == nil {
		return false
	}
	if other.Timestamp == nil {
		return true
	}
	return e.Timestamp.Before(*other.Timestamp)
}

// Compare provides a total order for deterministic output: time first
// (undated last), then recruit, counterparty and summary.
func (e CharacterEvent) Compare(other CharacterEvent) int {
	switch {
	case e.Before(other):
		return -1
	case other.Before(e):
		return 1
	}
	if e.RecruitID != other.RecruitID {
		if e.RecruitID < other.RecruitID {
			return -1
		}
		return 1
	}
	if e.OtherCharacterID != other.OtherCharacterID {
		if e.OtherCharacterID < other.OtherCharacterID {
			return -1
		}
		return 1
	}
	return strings.Compare(e.Summary, other.Summary)
}
