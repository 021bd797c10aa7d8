package domain

// CharacterContact is one standings entry held by an audited
// character. The contact target may be any entity category; only
// character targets carry recruiting signal.
type CharacterContact struct {
	Character Character
	Contact   EveEntity
	Standing  float64
}
