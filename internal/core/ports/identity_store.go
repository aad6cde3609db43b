package ports

import (
	"context"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
)

// IdentityStore abstracts the external credential store. It fails
// independently of the document store; the account service owns the
// cross-store consistency contract.
type IdentityStore interface {
	Create(ctx context.Context, rec *domain.Identity) error
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	// Delete removes the record. Deleting an unknown id returns
	// domain.ErrIdentityNotFound.
	Delete(ctx context.Context, id string) error
}
