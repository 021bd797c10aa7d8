package domain

import "time"

// CharacterMail is one mail from an audited character's mailbox,
// with the sender and full recipient list resolved.
type CharacterMail struct {
	ID         int64
	Character  Character
	Sender     EveEntity
	Recipients []EveEntity
	Subject    string
	Body       string
	IsRead     bool
	Timestamp  time.Time
}

// Participants returns every party on the mail: all recipients plus
// the sender.
func (m CharacterMail) Participants() []EveEntity {
	participants := make([]EveEntity, 0, len(m.Recipients)+1)
	participants = append(participants, m.Recipients...)
	participants = append(participants, m.Sender)
	return participants
}
