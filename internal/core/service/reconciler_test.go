package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

type reconcilerFixture struct {
	restaurants *stubRestaurantRepo
	identity    *stubIdentityStore
	journal     *stubJournal
	rec         *Reconciler
}

func newReconcilerFixture(grace time.Duration) *reconcilerFixture {
	menus := newStubMenuRepo()
	restaurants := newStubRestaurantRepo(menus)
	identity := newStubIdentityStore()
	journal := newStubJournal()
	return &reconcilerFixture{
		restaurants: restaurants,
		identity:    identity,
		journal:     journal,
		rec:         NewReconciler(restaurants, identity, journal, grace, zerolog.Nop()),
	}
}

func TestReconciler_SweepRemovesOrphanIdentity(t *testing.T) {
	f := newReconcilerFixture(5 * time.Minute)

	// Identity record exists, account document never landed.
	f.identity.recs["acc-1"] = &domain.Identity{ID: "acc-1", Email: "dono@pickpega.com"}
	_ = f.journal.Begin(context.Background(), ports.JournalOpCreate, "acc-1")
	f.journal.backdate(ports.JournalOpCreate, "acc-1", 10*time.Minute)

	f.rec.Sweep(context.Background())

	if _, err := f.identity.FindByID(context.Background(), "acc-1"); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("orphan identity should be removed, got %v", err)
	}
	if f.journal.has(ports.JournalOpCreate, "acc-1") {
		t.Fatalf("journal entry should be cleared")
	}
}

func TestReconciler_SweepKeepsCompletedAccount(t *testing.T) {
	f := newReconcilerFixture(5 * time.Minute)

	// Both records exist: the operation completed but the journal clear was lost.
	f.restaurants.docs["acc-1"] = &domain.Restaurant{ID: "acc-1", Name: "Casa da Feijoada"}
	f.identity.recs["acc-1"] = &domain.Identity{ID: "acc-1"}
	_ = f.journal.Begin(context.Background(), ports.JournalOpCreate, "acc-1")
	f.journal.backdate(ports.JournalOpCreate, "acc-1", 10*time.Minute)

	f.rec.Sweep(context.Background())

	if _, err := f.identity.FindByID(context.Background(), "acc-1"); err != nil {
		t.Fatalf("identity of a completed account must survive: %v", err)
	}
	if f.journal.has(ports.JournalOpCreate, "acc-1") {
		t.Fatalf("stale journal entry should be cleared")
	}
}

func TestReconciler_SweepLeavesRecentEntries(t *testing.T) {
	f := newReconcilerFixture(5 * time.Minute)

	// In-flight create: entry is fresh, identity written, document pending.
	f.identity.recs["acc-1"] = &domain.Identity{ID: "acc-1"}
	_ = f.journal.Begin(context.Background(), ports.JournalOpCreate, "acc-1")

	f.rec.Sweep(context.Background())

	if _, err := f.identity.FindByID(context.Background(), "acc-1"); err != nil {
		t.Fatalf("identity inside the grace period must not be touched: %v", err)
	}
	if !f.journal.has(ports.JournalOpCreate, "acc-1") {
		t.Fatalf("fresh journal entry must survive the sweep")
	}
}

func TestReconciler_SweepHandlesDeleteLeftover(t *testing.T) {
	f := newReconcilerFixture(5 * time.Minute)

	// Delete removed the document but the identity delete failed.
	f.identity.recs["acc-1"] = &domain.Identity{ID: "acc-1"}
	_ = f.journal.Begin(context.Background(), ports.JournalOpDelete, "acc-1")
	f.journal.backdate(ports.JournalOpDelete, "acc-1", 10*time.Minute)

	f.rec.Sweep(context.Background())

	if _, err := f.identity.FindByID(context.Background(), "acc-1"); !errors.Is(err, domain.ErrIdentityNotFound) {
		t.Fatalf("leftover identity should be removed, got %v", err)
	}
	if f.journal.has(ports.JournalOpDelete, "acc-1") {
		t.Fatalf("journal entry should be cleared")
	}
}

func TestReconciler_SweepClearsPasswordEntries(t *testing.T) {
	f := newReconcilerFixture(5 * time.Minute)

	f.identity.recs["acc-1"] = &domain.Identity{ID: "acc-1"}
	_ = f.journal.Begin(context.Background(), ports.JournalOpPassword, "acc-1")
	f.journal.backdate(ports.JournalOpPassword, "acc-1", 10*time.Minute)

	f.rec.Sweep(context.Background())

	// Password divergence cannot be auto-repaired; the entry is logged and cleared.
	if f.journal.has(ports.JournalOpPassword, "acc-1") {
		t.Fatalf("password journal entry should be cleared")
	}
	if _, err := f.identity.FindByID(context.Background(), "acc-1"); err != nil {
		t.Fatalf("identity must not be deleted for password entries: %v", err)
	}
}
