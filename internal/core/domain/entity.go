package domain

import "strconv"

type EntityCategory string

const (
	CategoryCharacter   EntityCategory = "character"
	CategoryCorporation EntityCategory = "corporation"
	CategoryAlliance    EntityCategory = "alliance"
	CategoryFaction     EntityCategory = "faction"
	CategoryMailingList EntityCategory = "mailing_list"
)

// NPC entities occupy a reserved ID range below player ID space.
const (
	npcIDFloor   = 1_000_000
	npcIDCeiling = 4_000_000
)

// EveEntity identifies any named party that can appear on an audit
// record: a character, corporation, alliance, faction or mailing list.
type EveEntity struct {
	ID       int64
	Name     string
	Category EntityCategory
}

func (e EveEntity) IsCharacter() bool {
	return e.Category == CategoryCharacter
}

func (e EveEntity) IsNPC() bool {
	return e.ID >= npcIDFloor && e.ID < npcIDCeiling
}

// Label returns the entity name, falling back to the numeric ID for
// entities whose name has not been resolved yet.
func (e EveEntity) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return strconv.FormatInt(e.ID, 10)
}
