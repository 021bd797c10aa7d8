package ports

import (
	"context"

	"github.com/atvirokodosprendimai/recruitdash/internal/core/domain"
)

// CharacterDirectory resolves user accounts and their owned
// characters from the audit store.
type CharacterDirectory interface {
	// ListUsers returns every user with a main character, ordered by
	// account join date.
	ListUsers(ctx context.Context) ([]domain.UserProfile, error)
	// OwnedCharacters returns all characters linked to a user, main
	// first. domain.ErrNotFound when the user does not exist.
	OwnedCharacters(ctx context.Context, userID int64) ([]domain.Character, error)
}

// Each source interface takes the full batch of character IDs so an
// adapter can satisfy it with a constant number of queries regardless
// of how many characters the recruit owns. Related lookups (entities,
// recipients, items, market prices) are resolved by the adapter; the
// returned records are complete.

type ContactSource interface {
	ContactsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterContact, error)
}

type MailSource interface {
	MailsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterMail, error)
}

type ContractSource interface {
	ContractsOf(ctx context.Context, characterIDs []int64) ([]domain.CharacterContract, error)
}

type WalletSource interface {
	JournalEntriesOf(ctx context.Context, characterIDs []int64) ([]domain.WalletJournalEntry, error)
	TransactionsOf(ctx context.Context, characterIDs []int64) ([]domain.WalletTransaction, error)
}
