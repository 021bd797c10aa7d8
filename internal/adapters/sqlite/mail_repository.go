package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"gorm.io/gorm"
)

type mailModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CharacterID int64     `gorm:"column:character_id;not null"`
	SenderID    int64     `gorm:"column:sender_id;not null"`
	Subject     string    `gorm:"column:subject;not null"`
	Body        string    `gorm:"column:body;not null"`
	IsRead      bool      `gorm:"column:is_read;not null"`
	Timestamp   time.Time `gorm:"column:timestamp;not null"`
}

func (mailModel) TableName() string {
	return "character_mails"
}

type mailRecipientModel struct {
	MailID      int64 `gorm:"column:mail_id;not null"`
	RecipientID int64 `gorm:"column:recipient_id;not null"`
}

func (mailRecipientModel) TableName() string {
	return "character_mail_recipients"
}

// MailRepository reads mailbox contents for a batch of audited
// characters, with sender and recipients resolved.
type MailRepository struct {
	db *gorm.DB
}

func NewMailRepository(db *gorm.DB) *MailRepository {
	return &MailRepository{db: db}
}

func (r *MailRepository) MailsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterMail, error) {
	if len(characterIDs) == 0 {
		return nil, nil
	}

	var mails []mailModel
	err := r.db.WithContext(ctx).
		Where("character_id IN ?", characterIDs).
		Order("timestamp ASC, id ASC").
		Find(&mails).Error
	if err != nil {
		return nil, fmt.Errorf("scan mails: %w", err)
	}
	if len(mails) == 0 {
		return nil, nil
	}

	mailIDs := make([]int64, 0, len(mails))
	for _, mail := range mails {
		mailIDs = append(mailIDs, mail.ID)
	}
	var recipients []mailRecipientModel
	err = r.db.WithContext(ctx).
		Where("mail_id IN ?", mailIDs).
		Order("mail_id ASC, recipient_id ASC").
		Find(&recipients).Error
	if err != nil {
		return nil, fmt.Errorf("scan mail recipients: %w", err)
	}

	recipientsByMail := make(map[int64][]int64, len(mails))
	var partyIDs []int64
	for _, recipient := range recipients {
		recipientsByMail[recipient.MailID] = append(recipientsByMail[recipient.MailID], recipient.RecipientID)
		partyIDs = append(partyIDs, recipient.RecipientID)
	}
	for _, mail := range mails {
		partyIDs = append(partyIDs, mail.SenderID)
	}

	characters, err := loadCharacters(ctx, r.db, characterIDs)
	if err != nil {
		return nil, err
	}
	entities, err := loadEntities(ctx, r.db, dedupeIDs(partyIDs))
	if err != nil {
		return nil, err
	}

	result := make([]domain.CharacterMail, 0, len(mails))
	for _, mail := range mails {
		owner, ok := characters[mail.CharacterID]
		if !ok {
			continue
		}
		recipientEntities := make([]domain.EveEntity, 0, len(recipientsByMail[mail.ID]))
		for _, id := range recipientsByMail[mail.ID] {
			recipientEntities = append(recipientEntities, *entityRef(entities, &id))
		}
		result = append(result, domain.CharacterMail{
			ID:         mail.ID,
			Character:  owner,
			Sender:     *entityRef(entities, &mail.SenderID),
			Recipients: recipientEntities,
			Subject:    mail.Subject,
			Body:       mail.Body,
			IsRead:     mail.IsRead,
			Timestamp:  mail.Timestamp,
		})
	}
	return result, nil
}
