package usecase

import (
	"strings"
	"unicode"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

// externalCharacter reports whether an entity is a genuine outside
// party: a player character that is not one of the recruit's own. All
// five converters share this predicate so the filter cannot drift
// between sources.
func externalCharacter(entity *domain.EveEntity, owned domain.CharacterSet) bool {
	if entity == nil {
		return false
	}
	if !entity.IsCharacter() || entity.IsNPC() {
		return false
	}
	return !owned.Contains(entity.ID)
}

// titleize turns a snake_case audit label into a display label, e.g.
// "player_donation" into "Player Donation".
func titleize(label string) string {
	words := strings.Fields(strings.ReplaceAll(label, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
