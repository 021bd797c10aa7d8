package sqlite

import (
	"context"
	"fmt"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Batch lookup helpers shared by the source repositories. Each runs a
// single IN-query so every repository stays at a constant number of
// round trips per request.

func loadCharacters(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]domain.Character, error) {
	result := make(map[int64]domain.Character, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var models []characterModel
	if err := db.WithContext(ctx).Where("character_id IN ?", ids).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load characters: %w", err)
	}
	for _, model := range models {
		result[model.CharacterID] = domain.Character{ID: model.CharacterID, Name: model.Name}
	}
	return result, nil
}

func loadEntities(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]domain.EveEntity, error) {
	result := make(map[int64]domain.EveEntity, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var models []entityModel
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load entities: %w", err)
	}
	for _, model := range models {
		result[model.ID] = domain.EveEntity{
			ID:       model.ID,
			Name:     model.Name,
			Category: domain.EntityCategory(model.Category),
		}
	}
	return result, nil
}

func loadTypeNames(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]string, error) {
	result := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var models []eveTypeModel
	if err := db.WithContext(ctx).Where("type_id IN ?", ids).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load types: %w", err)
	}
	for _, model := range models {
		result[model.TypeID] = model.Name
	}
	return result, nil
}

func loadAveragePrices(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]decimal.Decimal, error) {
	result := make(map[int64]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var models []marketPriceModel
	if err := db.WithContext(ctx).Where("type_id IN ?", ids).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load market prices: %w", err)
	}
	for _, model := range models {
		result[model.TypeID] = model.AveragePrice
	}
	return result, nil
}

// entityRef resolves an optional entity reference. Unknown IDs still
// yield an entity so the name fallback can render the raw ID; the
// zero category keeps them out of character-only filters.
func entityRef(entities map[int64]domain.EveEntity, id *int64) *domain.EveEntity {
	if id == nil {
		return nil
	}
	entity, ok := entities[*id]
	if !ok {
		entity = domain.EveEntity{ID: *id}
	}
	return &entity
}

// priceRef resolves an optional market price; nil when the market has
// no recorded price for the type.
func priceRef(prices map[int64]decimal.Decimal, typeID int64) *decimal.Decimal {
	price, ok := prices[typeID]
	if !ok {
		return nil
	}
	return &price
}

// dedupeIDs drops duplicates and zero IDs while keeping first-seen
// order, so IN-lists stay small and deterministic.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
