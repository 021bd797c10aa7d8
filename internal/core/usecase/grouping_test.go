package usecase

import (
	"testing"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

func TestGroupByCounterpartyOrderAndSorting(t *testing.T) {
	a1 := domain.CharacterEvent{
		RecruitID: mainPilot.ID, RecruitName: mainPilot.Name,
		OtherCharacterID: 94_600_001, OtherCharacterName: "Alpha",
		Summary: "A1", Timestamp: atPtr(t, "2025-06-02T00:00:00Z"),
	}
	b1 := domain.CharacterEvent{
		RecruitID: mainPilot.ID, RecruitName: mainPilot.Name,
		OtherCharacterID: 94_600_002, OtherCharacterName: "Bravo",
		Summary: "B1", Timestamp: atPtr(t, "2025-06-03T00:00:00Z"),
	}
	a2 := domain.CharacterEvent{
		RecruitID: altPilot.ID, RecruitName: altPilot.Name,
		OtherCharacterID: 94_600_001, OtherCharacterName: "Alpha",
		Summary: "A2", Timestamp: atPtr(t, "2025-06-01T00:00:00Z"),
	}

	groups := GroupByCounterparty([]domain.CharacterEvent{a1, b1, a2})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Alpha" || groups[1].Name != "Bravo" {
		t.Fatalf("expected groups in first-appearance order, got %q then %q", groups[0].Name, groups[1].Name)
	}
	if groups[0].ProfileURL != "https://evewho.com/character/94600001" {
		t.Fatalf("unexpected profile URL: %q", groups[0].ProfileURL)
	}

	// events from different recruit characters collapse into one
	// group, time-sorted
	alpha := groups[0].Events
	if len(alpha) != 2 {
		t.Fatalf("expected 2 events in Alpha group, got %d", len(alpha))
	}
	if alpha[0].Summary != "A2" || alpha[1].Summary != "A1" {
		t.Fatalf("expected chronological order [A2 A1], got [%s %s]", alpha[0].Summary, alpha[1].Summary)
	}
}

func TestGroupByCounterpartyUndatedEventsLast(t *testing.T) {
	contact := domain.CharacterEvent{
		OtherCharacterID: 94_600_003, OtherCharacterName: "Charlie",
		Summary: "Standing +5.0",
	}
	dated := domain.CharacterEvent{
		OtherCharacterID: 94_600_003, OtherCharacterName: "Charlie",
		Summary: "Mail", Timestamp: atPtr(t, "2025-06-04T00:00:00Z"),
	}

	// undated first in insertion order, still sorted to the end
	groups := GroupByCounterparty([]domain.CharacterEvent{contact, dated})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	events := groups[0].Events
	if events[0].Summary != "Mail" || events[1].Summary != "Standing +5.0" {
		t.Fatalf("expected undated event last, got [%s %s]", events[0].Summary, events[1].Summary)
	}
}

func TestGroupByCounterpartyStableTies(t *testing.T) {
	first := domain.CharacterEvent{
		OtherCharacterID: 94_600_004, OtherCharacterName: "Delta", Summary: "first",
	}
	second := domain.CharacterEvent{
		OtherCharacterID: 94_600_004, OtherCharacterName: "Delta", Summary: "second",
	}

	groups := GroupByCounterparty([]domain.CharacterEvent{first, second})
	events := groups[0].Events
	if events[0].Summary != "first" || events[1].Summary != "second" {
		t.Fatalf("expected stable order for ties, got [%s %s]", events[0].Summary, events[1].Summary)
	}
}

func TestGroupByCounterpartyEmpty(t *testing.T) {
	if groups := GroupByCounterparty(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}
