package sqlite

import (
	"context"
	"fmt"

	"github.com/atvirokodosprendimai/recruitdash/internal/snapshot"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Importer writes audit snapshots into the database. Imports are
// idempotent: keyed rows are upserted and dependent rows (mail
// recipients, contract items) are replaced per parent.
type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

func (i *Importer) Import(ctx context.Context, snap *snapshot.Snapshot) error {
	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := importUsers(tx, snap.Users); err != nil {
			return err
		}
		if err := importCharacters(tx, snap.Characters); err != nil {
			return err
		}
		if err := importEntities(tx, snap.Entities); err != nil {
			return err
		}
		if err := importTypes(tx, snap.Types); err != nil {
			return err
		}
		if err := importMarketPrices(tx, snap.MarketPrices); err != nil {
			return err
		}
		if err := importContacts(tx, snap.Contacts); err != nil {
			return err
		}
		if err := importMails(tx, snap.Mails); err != nil {
			return err
		}
		if err := importContracts(tx, snap.Contracts); err != nil {
			return err
		}
		if err := importJournal(tx, snap.WalletJournal); err != nil {
			return err
		}
		return importTransactions(tx, snap.WalletTransactions)
	})
}

func importUsers(tx *gorm.DB, users []snapshot.User) error {
	if len(users) == 0 {
		return nil
	}
	models := make([]userModel, 0, len(users))
	for _, user := range users {
		models = append(models, userModel{
			ID:              user.ID,
			Username:        user.Username,
			JoinedAt:        user.JoinedAt,
			MainCharacterID: user.MainCharacterID,
		})
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import users: %w", err)
	}
	return nil
}

func importCharacters(tx *gorm.DB, characters []snapshot.Character) error {
	if len(characters) == 0 {
		return nil
	}
	models := make([]characterModel, 0, len(characters))
	for _, character := range characters {
		models = append(models, characterModel{
			CharacterID: character.CharacterID,
			UserID:      character.UserID,
			Name:        character.Name,
		})
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import characters: %w", err)
	}
	return nil
}

func importEntities(tx *gorm.DB, entities []snapshot.Entity) error {
	if len(entities) == 0 {
		return nil
	}
	models := make([]entityModel, 0, len(entities))
	for _, entity := range entities {
		models = append(models, entityModel{
			ID:       entity.ID,
			Name:     entity.Name,
			Category: entity.Category,
		})
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import entities: %w", err)
	}
	return nil
}

func importTypes(tx *gorm.DB, types []snapshot.EveType) error {
	if len(types) == 0 {
		return nil
	}
	models := make([]eveTypeModel, 0, len(types))
	for _, eveType := range types {
		models = append(models, eveTypeModel{TypeID: eveType.TypeID, Name: eveType.Name})
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import types: %w", err)
	}
	return nil
}

func importMarketPrices(tx *gorm.DB, prices []snapshot.MarketPrice) error {
	if len(prices) == 0 {
		return nil
	}
	models := make([]marketPriceModel, 0, len(prices))
	for _, price := range prices {
		models = append(models, marketPriceModel{TypeID: price.TypeID, AveragePrice: price.AveragePrice})
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import market prices: %w", err)
	}
	return nil
}

func importContacts(tx *gorm.DB, contacts []snapshot.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	models := make([]contactModel, 0, len(contacts))
	for _, contact := range contacts {
		models = append(models, contactModel{
			CharacterID: contact.CharacterID,
			ContactID:   contact.ContactID,
			Standing:    contact.Standing,
		})
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "character_id"}, {Name: "contact_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"standing"}),
	}).CreateInBatches(models, importBatchSize).Error
	if err != nil {
		return fmt.Errorf("import contacts: %w", err)
	}
	return nil
}

func importMails(tx *gorm.DB, mails []snapshot.Mail) error {
	if len(mails) == 0 {
		return nil
	}
	models := make([]mailModel, 0, len(mails))
	mailIDs := make([]int64, 0, len(mails))
	var recipients []mailRecipientModel
	for _, mail := range mails {
		models = append(models, mailModel{
			ID:          mail.ID,
			CharacterID: mail.CharacterID,
			SenderID:    mail.SenderID,
			Subject:     mail.Subject,
			Body:        mail.Body,
			IsRead:      mail.IsRead,
			Timestamp:   mail.Timestamp,
		})
		mailIDs = append(mailIDs, mail.ID)
		for _, recipientID := range mail.RecipientIDs {
			recipients = append(recipients, mailRecipientModel{MailID: mail.ID, RecipientID: recipientID})
		}
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import mails: %w", err)
	}
	if err := tx.Where("mail_id IN ?", mailIDs).Delete(&mailRecipientModel{}).Error; err != nil {
		return fmt.Errorf("clear mail recipients: %w", err)
	}
	if len(recipients) > 0 {
		if err := tx.CreateInBatches(recipients, importBatchSize).Error; err != nil {
			return fmt.Errorf("import mail recipients: %w", err)
		}
	}
	return nil
}

func importContracts(tx *gorm.DB, contracts []snapshot.Contract) error {
	if len(contracts) == 0 {
		return nil
	}
	models := make([]contractModel, 0, len(contracts))
	contractIDs := make([]int64, 0, len(contracts))
	var items []contractItemModel
	for _, contract := range contracts {
		models = append(models, contractModel{
			ID:            contract.ID,
			CharacterID:   contract.CharacterID,
			IssuerID:      contract.IssuerID,
			AssigneeID:    contract.AssigneeID,
			AcceptorID:    contract.AcceptorID,
			ContractType:  contract.ContractType,
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
		})
		contractIDs = append(contractIDs, contract.ID)
		for _, item := range contract.Items {
			items = append(items, contractItemModel{
				ContractID:  contract.ID,
				TypeID:      item.TypeID,
				Quantity:    item.Quantity,
				RawQuantity: item.RawQuantity,
			})
		}
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import contracts: %w", err)
	}
	if err := tx.Where("contract_id IN ?", contractIDs).Delete(&contractItemModel{}).Error; err != nil {
		return fmt.Errorf("clear contract items: %w", err)
	}
	if len(items) > 0 {
		if err := tx.CreateInBatches(items, importBatchSize).Error; err != nil {
			return fmt.Errorf("import contract items: %w", err)
		}
	}
	return nil
}

func importJournal(tx *gorm.DB, entries []snapshot.WalletJournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]journalEntryModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, journalEntryModel{
			ID:            entry.ID,
			CharacterID:   entry.CharacterID,
			FirstPartyID:  entry.FirstPartyID,
			SecondPartyID: entry.SecondPartyID,
			RefType:       entry.RefType,
			Amount:        entry.Amount,
			Date:          entry.Date,
			Description:   entry.Description,
			Reason:        entry.Reason,
			ContextID:     entry.ContextID,
			ContextIDType: entry.ContextIDType,
		})
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import wallet journal: %w", err)
	}
	return nil
}

func importTransactions(tx *gorm.DB, transactions []snapshot.WalletTransaction) error {
	if len(transactions) == 0 {
		return nil
	}
	models := make([]transactionModel, 0, len(transactions))
	for _, transaction := range transactions {
		models = append(models, transactionModel{
			TransactionID: transaction.TransactionID,
			CharacterID:   transaction.CharacterID,
			ClientID:      transaction.ClientID,
			Date:          transaction.Date,
			IsBuy:         transaction.IsBuy,
			Quantity:      transaction.Quantity,
			UnitPrice:     transaction.UnitPrice,
			TypeID:        transaction.TypeID,
		})
	}
	if err := upsertAll(tx, models); err != nil {
		return fmt.Errorf("import wallet transactions: %w", err)
	}
	return nil
}

const importBatchSize = 200

func upsertAll[M any](tx *gorm.DB, models []M) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(models, importBatchSize).Error
}
