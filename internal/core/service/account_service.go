package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tfxsoftware/PickPegaAPI/internal/api/metrics"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// AccountService coordinates the restaurant account lifecycle across the
// identity store and the document store. The two stores share one id space:
// the document id is allocated first and reused as the identity user id.
//
// Dual-store writes follow a forward-action / compensating-action pair with a
// journal entry around them. When a compensation succeeds the caller sees a
// plain backend failure and the stores stay consistent; when it fails the
// caller sees ErrPartialWrite and the journal entry stays behind for the
// reconciler.
type AccountService struct {
	restaurants ports.RestaurantRepository
	menus       ports.MenuRepository
	orders      ports.OrderRepository
	identity    ports.IdentityStore
	journal     ports.DualWriteJournal
	logger      zerolog.Logger
}

func NewAccountService(
	restaurants ports.RestaurantRepository,
	menus ports.MenuRepository,
	orders ports.OrderRepository,
	identity ports.IdentityStore,
	journal ports.DualWriteJournal,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		restaurants: restaurants,
		menus:       menus,
		orders:      orders,
		identity:    identity,
		journal:     journal,
		logger:      logger,
	}
}

// Create provisions a new account: identity record first, then the account
// document plus an empty menu root in one atomic document batch. If the batch
// fails after the identity record exists, the identity record is deleted
// again (compensation).
func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id := s.restaurants.AllocateID()
	s.begin(ctx, ports.JournalOpCreate, id)

	rec := &domain.Identity{
		ID:           id,
		Email:        input.Email,
		DisplayName:  input.Name,
		PasswordHash: string(hash),
	}
	if err := s.identity.Create(ctx, rec); err != nil {
		// Nothing written to the document store yet: safe failure path.
		s.clear(ctx, ports.JournalOpCreate, id)
		return "", fmt.Errorf("create identity record: %w", err)
	}

	restaurant := &domain.Restaurant{
		ID:           id,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Extra:        input.Extra,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		if compErr := s.identity.Delete(ctx, id); compErr != nil {
			s.logger.Error().Err(compErr).Str("account_id", id).
				Msg("identity rollback failed, orphan left for reconciler")
			metrics.PartialWritesTotal.WithLabelValues("create").Inc()
			return "", fmt.Errorf("document batch failed (%v), identity rollback failed (%v): %w",
				err, compErr, domain.ErrPartialWrite)
		}
		s.clear(ctx, ports.JournalOpCreate, id)
		return "", fmt.Errorf("commit account documents: %w", err)
	}

	s.clear(ctx, ports.JournalOpCreate, id)
	metrics.AccountsCreatedTotal.Inc()
	s.logger.Info().Str("account_id", id).Msg("restaurant account created")
	return id, nil
}

// Delete removes the account document (plus the menu and order documents that
// hang off it), then the identity record. The document delete is idempotent;
// any identity-side failure, including an unknown user id, surfaces as a
// partial write so the caller can tell it apart from a plain backend error.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	s.begin(ctx, ports.JournalOpDelete, id)

	if err := s.orders.DeleteAll(ctx, id); err != nil {
		s.clear(ctx, ports.JournalOpDelete, id)
		return fmt.Errorf("delete orders: %w", err)
	}
	if err := s.menus.DeleteAll(ctx, id); err != nil {
		s.clear(ctx, ports.JournalOpDelete, id)
		return fmt.Errorf("delete menu: %w", err)
	}
	if err := s.restaurants.Delete(ctx, id); err != nil {
		s.clear(ctx, ports.JournalOpDelete, id)
		return fmt.Errorf("delete account document: %w", err)
	}

	if err := s.identity.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("account_id", id).
			Msg("identity delete failed after document delete")
		metrics.PartialWritesTotal.WithLabelValues("delete").Inc()
		return fmt.Errorf("identity delete failed (%v): %w", err, domain.ErrPartialWrite)
	}

	s.clear(ctx, ports.JournalOpDelete, id)
	s.logger.Info().Str("account_id", id).Msg("restaurant account deleted")
	return nil
}

// UpdatePassword changes the credential in both stores: document first, then
// identity. When the identity update fails, the previous document hash is
// restored so the stored profile never claims a credential the identity store
// rejects.
func (s *AccountService) UpdatePassword(ctx context.Context, id, newPassword string) error {
	if _, err := s.identity.FindByID(ctx, id); err != nil {
		return fmt.Errorf("check identity record: %w", err)
	}
	current, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load account document: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.begin(ctx, ports.JournalOpPassword, id)

	if err := s.restaurants.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
		s.clear(ctx, ports.JournalOpPassword, id)
		return fmt.Errorf("update document credential: %w", err)
	}

	if err := s.identity.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
		if compErr := s.restaurants.UpdatePasswordHash(ctx, id, current.PasswordHash); compErr != nil {
			s.logger.Error().Err(compErr).Str("account_id", id).
				Msg("credential rollback failed, stores diverged")
			metrics.PartialWritesTotal.WithLabelValues("password").Inc()
			return fmt.Errorf("identity update failed (%v), document rollback failed (%v): %w",
				err, compErr, domain.ErrPartialWrite)
		}
		s.clear(ctx, ports.JournalOpPassword, id)
		return fmt.Errorf("update identity credential: %w", err)
	}

	s.clear(ctx, ports.JournalOpPassword, id)
	s.logger.Info().Str("account_id", id).Msg("password updated")
	return nil
}

// EditProfile merge-updates the account document. The identity store is not
// involved; credential fields are ignored here.
func (s *AccountService) EditProfile(ctx context.Context, id string, fields map[string]any) error {
	delete(fields, "id")
	delete(fields, "password")
	delete(fields, "password_hash")
	if err := s.restaurants.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update account document: %w", err)
	}
	return nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (map[string]any, error) {
	r, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.Profile(), nil
}

func (s *AccountService) GetAll(ctx context.Context) ([]map[string]any, error) {
	rs, err := s.restaurants.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return profiles(rs), nil
}

func (s *AccountService) GetByName(ctx context.Context, name string) ([]map[string]any, error) {
	rs, err := s.restaurants.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return profiles(rs), nil
}

func profiles(rs []*domain.Restaurant) []map[string]any {
	out := make([]map[string]any, len(rs))
	for i, r := range rs {
		out[i] = r.Profile()
	}
	return out
}

// Journal errors are logged and the operation proceeds: losing an entry costs
// crash-safety, not the correctness of the request itself.
func (s *AccountService) begin(ctx context.Context, op, id string) {
	if err := s.journal.Begin(ctx, op, id); err != nil {
		s.logger.Warn().Err(err).Str("op", op).Str("account_id", id).Msg("journal begin failed")
	}
}

func (s *AccountService) clear(ctx context.Context, op, id string) {
	if err := s.journal.Clear(ctx, op, id); err != nil {
		s.logger.Warn().Err(err).Str("op", op).Str("account_id", id).Msg("journal clear failed")
	}
}

var _ ports.AccountService = (*AccountService)(nil)
