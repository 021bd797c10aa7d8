package usecase

import (
	"fmt"
	"sort"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

const profileURLFormat = "https://evewho.com/character/%d"

// CounterpartyGroup is all events shared with one outside character,
// ordered in time with undated events last.
type CounterpartyGroup struct {
	CharacterID int64
	Name        string
	ProfileURL  string
	Events      []domain.CharacterEvent
}

// GroupByCounterparty groups events by (counterparty id, name).
// Groups appear in order of their first event in the input stream;
// within a group events are sorted ascending by timestamp, undated
// events last, ties keeping their input order.
func GroupByCounterparty(events []domain.CharacterEvent) []CounterpartyGroup {
	type groupKey struct {
		id   int64
		name string
	}

	index := make(map[groupKey]int)
	var groups []CounterpartyGroup
	for _, event := range events {
		key := groupKey{id: event.OtherCharacterID, name: event.OtherCharacterName}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CounterpartyGroup{
				CharacterID: key.id,
				Name:        key.name,
				ProfileURL:  fmt.Sprintf(profileURLFormat, key.id),
			})
		}
		groups[i].Events = append(groups[i].Events, event)
	}

	for i := range groups {
		events := groups[i].Events
		sort.SliceStable(events, func(a, b int) bool {
			return events[a].Before(events[b])
		})
	}
	return groups
}
