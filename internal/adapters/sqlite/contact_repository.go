package sqlite

import (
	"context"
	"fmt"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"gorm.io/gorm"
)

type contactModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	CharacterID int64   `gorm:"column:character_id;not null"`
	ContactID   int64   `gorm:"column:contact_id;not null"`
	Standing    float64 `gorm:"column:standing;not null"`
}

func (contactModel) TableName() string {
	return "character_contacts"
}

// ContactRepository reads standings entries for a batch of audited
// characters.
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) ContactsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterContact, error) {
	if len(characterIDs) == 0 {
		return nil, nil
	}

	var models []contactModel
	err := r.db.WithContext(ctx).
		Where("character_id IN ?", characterIDs).
		Order("character_id ASC, contact_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("scan contacts: %w", err)
	}

	characters, err := loadCharacters(ctx, r.db, characterIDs)
	if err != nil {
		return nil, err
	}
	contactIDs := make([]int64, 0, len(models))
	for _, model := range models {
		contactIDs = append(contactIDs, model.ContactID)
	}
	entities, err := loadEntities(ctx, r.db, dedupeIDs(contactIDs))
	if err != nil {
		return nil, err
	}

	contacts := make([]domain.CharacterContact, 0, len(models))
	for _, model := range models {
		holder, ok := characters[model.CharacterID]
		if !ok {
			continue
		}
		target := entityRef(entities, &model.ContactID)
		contacts = append(contacts, domain.CharacterContact{
			Character: holder,
			Contact:   *target,
			Standing:  model.Standing,
		})
	}
	return contacts, nil
}
