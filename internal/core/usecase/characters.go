package usecase

import (
	"context"
	"fmt"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/atvirokodosprendimai/recruitdash/internal/core/ports"
)

// CharacterService answers roster questions: which users can be
// evaluated, and which characters make up one user's owned set.
type CharacterService struct {
	directory ports.CharacterDirectory
}

func NewCharacterService(directory ports.CharacterDirectory) *CharacterService {
	return &CharacterService{directory: directory}
}

// ListUsers returns every user with a main character, ordered by
// account join date.
func (s *CharacterService) ListUsers(ctx context.Context) ([]domain.UserProfile, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// OwnedSet resolves the full owned-character set (main plus alts) of
// one user. domain.ErrUnknownUser when the user does not exist.
func (s *CharacterService) OwnedSet(ctx context.Context, userID int64) (domain.CharacterSet, error) {
	characters, err := s.directory.OwnedCharacters(ctx, userID)
	if err != nil {
		return domain.CharacterSet{}, err
	}
	if len(characters) == 0 {
		return domain.CharacterSet{}, domain.ErrUnknownUser
	}
	return domain.NewCharacterSet(characters...), nil
}
