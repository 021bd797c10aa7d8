package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type contractModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	CharacterID   int64           `gorm:"column:character_id;not null"`
	IssuerID      *int64          `gorm:"column:issuer_id"`
	AssigneeID    *int64          `gorm:"column:assignee_id"`
	AcceptorID    *int64          `gorm:"column:acceptor_id"`
	ContractType  string          `gorm:"column:contract_type;not null"`
	Status        string          `gorm:"column:status;not null"`
	Availability  string          `gorm:"column:availability;not null"`
	Title         string          `gorm:"column:title;not null"`
	Price         decimal.Decimal `gorm:"column:price;not null"`
	Reward        decimal.Decimal `gorm:"column:reward;not null"`
	Collateral    decimal.Decimal `gorm:"column:collateral;not null"`
	Buyout        decimal.Decimal `gorm:"column:buyout;not null"`
	DateIssued    time.Time       `gorm:"column:date_issued;not null"`
	DateAccepted  *time.Time      `gorm:"column:date_accepted"`
	DateExpired   *time.Time      `gorm:"column:date_expired"`
	DateCompleted *time.Time      `gorm:"column:date_completed"`
}

func (contractModel) TableName() string {
	return "character_contracts"
}

type contractItemModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	ContractID  int64 `gorm:"column:contract_id;not null"`
	TypeID      int64 `gorm:"column:type_id;not null"`
	Quantity    int64 `gorm:"column:quantity;not null"`
	RawQuantity int64 `gorm:"column:raw_quantity;not null"`
}

func (contractItemModel) TableName() string {
	return "character_contract_items"
}

// ContractRepository reads contracts for a batch of audited
// characters, with parties, items, type names and market prices
// resolved.
type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) ContractsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterContract, error) {
	if len(characterIDs) == 0 {
		return nil, nil
	}

	var contracts []contractModel
	err := r.db.WithContext(ctx).
		Where("character_id IN ?", characterIDs).
		Order("date_issued ASC, id ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("scan contracts: %w", err)
	}
	if len(contracts) == 0 {
		return nil, nil
	}

	contractIDs := make([]int64, 0, len(contracts))
	var partyIDs []int64
	for _, contract := range contracts {
		contractIDs = append(contractIDs, contract.ID)
		for _, id := range []*int64{contract.IssuerID, contract.AssigneeID, contract.AcceptorID} {
			if id != nil {
				partyIDs = append(partyIDs, *id)
			}
		}
	}

	var items []contractItemModel
	err = r.db.WithContext(ctx).
		Where("contract_id IN ?", contractIDs).
		Order("contract_id ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("scan contract items: %w", err)
	}

	typeIDs := make([]int64, 0, len(items))
	for _, item := range items {
		typeIDs = append(typeIDs, item.TypeID)
	}
	typeIDs = dedupeIDs(typeIDs)

	characters, err := loadCharacters(ctx, r.db, characterIDs)
	if err != nil {
		return nil, err
	}
	entities, err := loadEntities(ctx, r.db, dedupeIDs(partyIDs))
	if err != nil {
		return nil, err
	}
	typeNames, err := loadTypeNames(ctx, r.db, typeIDs)
	if err != nil {
		return nil, err
	}
	prices, err := loadAveragePrices(ctx, r.db, typeIDs)
	if err != nil {
		return nil, err
	}

	itemsByContract := make(map[int64][]domain.ContractItem, len(contracts))
	for _, item := range items {
		itemsByContract[item.ContractID] = append(itemsByContract[item.ContractID], domain.ContractItem{
			TypeID:       item.TypeID,
			TypeName:     typeNames[item.TypeID],
			Quantity:     item.Quantity,
			RawQuantity:  item.RawQuantity,
			AveragePrice: priceRef(prices, item.TypeID),
		})
	}

	result := make([]domain.CharacterContract, 0, len(contracts))
	for _, contract := range contracts {
		owner, ok := characters[contract.CharacterID]
		if !ok {
			continue
		}
		result = append(result, domain.CharacterContract{
			ID:            contract.ID,
			Character:     owner,
			Issuer:        entityRef(entities, contract.IssuerID),
			Assignee:      entityRef(entities, contract.AssigneeID),
			Acceptor:      entityRef(entities, contract.AcceptorID),
			Type:          contract.ContractType,
			Status:        contract.Status,
			Availability:  contract.Availability,
			Title:         contract.Title,
			Price:         contract.Price,
			Reward:        contract.Reward,
			Collateral:    contract.Collateral,
			Buyout:        contract.Buyout,
			DateIssued:    contract.DateIssued,
			DateAccepted:  contract.DateAccepted,
			DateExpired:   contract.DateExpired,
			DateCompleted: contract.DateCompleted,
			Items:         itemsByContract[contract.ID],
		})
	}
	return result, nil
}
