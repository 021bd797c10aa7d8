package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"gorm.io/gorm"
)

// CharacterRepository resolves user accounts and owned characters.
type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) ListUsers(ctx context.Context) ([]domain.UserProfile, error) {
	var users []userModel
	err := r.db.WithContext(ctx).
		Where("main_character_id IS NOT NULL").
		Order("joined_at ASC, id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	mainIDs := make([]int64, 0, len(users))
	for _, user := range users {
		mainIDs = append(mainIDs, *user.MainCharacterID)
	}
	characters, err := loadCharacters(ctx, r.db, dedupeIDs(mainIDs))
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.UserProfile, 0, len(users))
	for _, user := range users {
		main, ok := characters[*user.MainCharacterID]
		if !ok {
			continue
		}
		profiles = append(profiles, domain.UserProfile{
			UserID:            user.ID,
			Username:          user.Username,
			MainCharacterName: main.Name,
			JoinedAt:          user.JoinedAt,
		})
	}
	return profiles, nil
}

func (r *CharacterRepository) OwnedCharacters(ctx context.Context, userID int64) ([]domain.Character, error) {
	var user userModel
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	var models []characterModel
	err = r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list owned characters: %w", err)
	}

	// main character first, alts alphabetically
	sort.SliceStable(models, func(a, b int) bool {
		if user.MainCharacterID != nil {
			if models[a].CharacterID == *user.MainCharacterID {
				return true
			}
			if models[b].CharacterID == *user.MainCharacterID {
				return false
			}
		}
		return models[a].Name < models[b].Name
	})

	characters := make([]domain.Character, 0, len(models))
	for _, model := range models {
		characters = append(characters, domain.Character{ID: model.CharacterID, Name: model.Name})
	}
	return characters, nil
}
