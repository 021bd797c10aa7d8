package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

type stubDirectory struct {
	listFn  func(ctx context.Context) ([]domain.UserProfile, error)
	ownedFn func(ctx context.Context, userID int64) ([]domain.Character, error)
}

func (s *stubDirectory) ListUsers(ctx context.Context) ([]domain.UserProfile, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubDirectory) OwnedCharacters(ctx context.Context, userID int64) ([]domain.Character, error) {
	if s.ownedFn != nil {
		return s.ownedFn(ctx, userID)
	}
	return nil, nil
}

func TestOwnedSetResolvesAllCharacters(t *testing.T) {
	svc := NewCharacterService(&stubDirectory{
		ownedFn: func(_ context.Context, userID int64) ([]domain.Character, error) {
			if userID != 7 {
				t.Fatalf("unexpected user id %d", userID)
			}
			return []domain.Character{mainPilot, altPilot}, nil
		},
	})

	owned, err := svc.OwnedSet(context.Background(), 7)
	if err != nil {
		t.Fatalf("owned set: %v", err)
	}
	if owned.Len() != 2 || !owned.Contains(mainPilot.ID) || !owned.Contains(altPilot.ID) {
		t.Fatalf("unexpected owned set: %v", owned.IDs())
	}
}

func TestOwnedSetUnknownUser(t *testing.T) {
	svc := NewCharacterService(&stubDirectory{
		ownedFn: func(_ context.Context, _ int64) ([]domain.Character, error) {
			return nil, nil
		},
	})

	_, err := svc.OwnedSet(context.Background(), 404)
	if !errors.Is(err, domain.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}
