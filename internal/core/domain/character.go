package domain

import "time"

// Character is one audited character owned by a user account.
type Character struct {
	ID   int64
	Name string
}

// UserProfile is one user account with a main character, as shown in
// the recruiter's selection roster.
type UserProfile struct {
	UserID            int64
	Username          string
	MainCharacterName string
	JoinedAt          time.Time
}

// CharacterSet is the set of characters (main plus alts) linked to the
// user under evaluation. It preserves the order characters were listed
// in so batch queries stay deterministic.
type CharacterSet struct {
	characters []Character
	ids        map[int64]struct{}
}

func NewCharacterSet(characters ...Character) CharacterSet {
	ids := make(map[int64]struct{}, len(characters))
	for _, c := range characters {
		ids[c.ID] = struct{}{}
	}
	return CharacterSet{characters: characters, ids: ids}
}

func (s CharacterSet) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s CharacterSet) Len() int {
	return len(s.characters)
}

// IDs returns the character IDs in listed order.
func (s CharacterSet) IDs() []int64 {
	ids := make([]int64, 0, len(s.characters))
	for _, c := range s.characters {
		ids = append(ids, c.ID)
	}
	return ids
}
