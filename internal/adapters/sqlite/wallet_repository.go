package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type journalEntryModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	CharacterID   int64           `gorm:"column:character_id;not null"`
	FirstPartyID  *int64          `gorm:"column:first_party_id"`
	SecondPartyID *int64          `gorm:"column:second_party_id"`
	RefType       string          `gorm:"column:ref_type;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;not null"`
	Date          time.Time       `gorm:"column:date;not null"`
	Description   string          `gorm:"column:description;not null"`
	Reason        string          `gorm:"column:reason;not null"`
	ContextID     int64           `gorm:"column:context_id;not null"`
	ContextIDType string          `gorm:"column:context_id_type;not null"`
}

func (journalEntryModel) TableName() string {
	return "wallet_journal_entries"
}

type transactionModel struct {
	TransactionID int64           `gorm:"column:transaction_id;primaryKey"`
	CharacterID   int64           `gorm:"column:character_id;not null"`
	ClientID      int64           `gorm:"column:client_id;not null"`
	Date          time.Time       `gorm:"column:date;not null"`
	IsBuy         bool            `gorm:"column:is_buy;not null"`
	Quantity      int64           `gorm:"column:quantity;not null"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;not null"`
	TypeID        int64           `gorm:"column:type_id;not null"`
}

func (transactionModel) TableName() string {
	return "wallet_transactions"
}

// WalletRepository reads wallet journal entries and market
// transactions for a batch of audited characters.
type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) JournalEntriesOf(ctx context.Context, characterIDs []int64) ([]domain.WalletJournalEntry, error) {
	if len(characterIDs) == 0 {
		return nil, nil
	}

	var entries []journalEntryModel
	err := r.db.WithContext(ctx).
		Where("character_id IN ?", characterIDs).
		Order("date ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("scan wallet journal: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	var partyIDs []int64
	for _, entry := range entries {
		for _, id := range []*int64{entry.FirstPartyID, entry.SecondPartyID} {
			if id != nil {
				partyIDs = append(partyIDs, *id)
			}
		}
	}

	characters, err := loadCharacters(ctx, r.db, characterIDs)
	if err != nil {
		return nil, err
	}
	entities, err := loadEntities(ctx, r.db, dedupeIDs(partyIDs))
	if err != nil {
		return nil, err
	}

	result := make([]domain.WalletJournalEntry, 0, len(entries))
	for _, entry := range entries {
		owner, ok := characters[entry.CharacterID]
		if !ok {
			continue
		}
		result = append(result, domain.WalletJournalEntry{
			ID:            entry.ID,
			Character:     owner,
			FirstParty:    entityRef(entities, entry.FirstPartyID),
			SecondParty:   entityRef(entities, entry.SecondPartyID),
			RefType:       entry.RefType,
			Amount:        entry.Amount,
			Date:          entry.Date,
			Description:   entry.Description,
			Reason:        entry.Reason,
			ContextID:     entry.ContextID,
			ContextIDType: entry.ContextIDType,
		})
	}
	return result, nil
}

func (r *WalletRepository) TransactionsOf(ctx context.Context, characterIDs []int64) ([]domain.WalletTransaction, error) {
	if len(characterIDs) == 0 {
		return nil, nil
	}

	var transactions []transactionModel
	err := r.db.WithContext(ctx).
		Where("character_id IN ?", characterIDs).
		Order("date ASC, transaction_id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("scan wallet transactions: %w", err)
	}
	if len(transactions) == 0 {
		return nil, nil
	}

	clientIDs := make([]int64, 0, len(transactions))
	typeIDs := make([]int64, 0, len(transactions))
	for _, tx := range transactions {
		clientIDs = append(clientIDs, tx.ClientID)
		typeIDs = append(typeIDs, tx.TypeID)
	}
	typeIDs = dedupeIDs(typeIDs)

	characters, err := loadCharacters(ctx, r.db, characterIDs)
	if err != nil {
		return nil, err
	}
	entities, err := loadEntities(ctx, r.db, dedupeIDs(clientIDs))
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

	result := make([]domain.WalletTransaction, 0, len(transactions))
	for _, tx := range transactions {
		owner, ok := characters[tx.CharacterID]
		if !ok {
			continue
		}
		result = append(result, domain.WalletTransaction{
			TransactionID: tx.TransactionID,
			Character:     owner,
			Client:        entityRef(entities, &tx.ClientID),
			Date:          tx.Date,
			IsBuy:         tx.IsBuy,
			Quantity:      tx.Quantity,
			UnitPrice:     tx.UnitPrice,
			TypeID:        tx.TypeID,
			TypeName:      typeNames[tx.TypeID],
			AveragePrice:  priceRef(prices, tx.TypeID),
		})
	}
	return result, nil
}
