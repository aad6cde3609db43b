package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests. Error fields inject faults.
// ---------------------------------------------------------------------------

type stubRestaurantRepo struct {
	docs   map[string]*domain.Restaurant
	menus  *stubMenuRepo // batch partner: Create also writes the menu root
	nextID int

	createErr error
	updateErr error
	deleteErr error
}

func newStubRestaurantRepo(menus *stubMenuRepo) *stubRestaurantRepo {
	return &stubRestaurantRepo{docs: make(map[string]*domain.Restaurant), menus: menus}
}

func (r *stubRestaurantRepo) AllocateID() string {
	r.nextID++
	return fmt.Sprintf("acc-%04d", r.nextID)
}

func (r *stubRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *restaurant
	r.docs[restaurant.ID] = &clone
	if r.menus != nil {
		r.menus.roots[restaurant.ID] = []string{}
	}
	return nil
}

func (r *stubRestaurantRepo) FindByID(_ context.Context, id string) (*domain.Restaurant, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	clone := *doc
	return &clone, nil
}

func (r *stubRestaurantRepo) FindAll(_ context.Context) ([]*domain.Restaurant, error) {
	out := make([]*domain.Restaurant, 0, len(r.docs))
	for _, doc := range r.docs {
		clone := *doc
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRestaurantRepo) FindByName(_ context.Context, name string) ([]*domain.Restaurant, error) {
	var out []*domain.Restaurant
	for _, doc := range r.docs {
		if doc.Name == name {
			clone := *doc
			out = append(out, &clone)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrRestaurantNotFound
	}
	return out, nil
}

func (r *stubRestaurantRepo) Update(_ context.Context, id string, fields map[string]any) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	doc, ok := r.docs[id]
	if !ok {
		return domain.ErrRestaurantNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			doc.Name, _ = v.(string)
		case "email":
			doc.Email, _ = v.(string)
		default:
			if doc.Extra == nil {
				doc.Extra = map[string]any{}
			}
			doc.Extra[k] = v
		}
	}
	return nil
}

func (r *stubRestaurantRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	doc, ok := r.docs[id]
	if !ok {
		return domain.ErrRestaurantNotFound
	}
	doc.PasswordHash = hash
	return nil
}

func (r *stubRestaurantRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.docs, id) // idempotent
	return nil
}

type stubMenuRepo struct {
	roots  map[string][]string
	items  map[string]*domain.MenuItem
	nextID int
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{roots: make(map[string][]string), items: make(map[string]*domain.MenuItem)}
}

func (r *stubMenuRepo) RegisterCategory(_ context.Context, restaurantID, category string) error {
	categories, ok := r.roots[restaurantID]
	if !ok {
		return domain.ErrMenuNotFound
	}
	for _, c := range categories {
		if c == category {
			return nil
		}
	}
	r.roots[restaurantID] = append(categories, category)
	return nil
}

func (r *stubMenuRepo) Categories(_ context.Context, restaurantID string) ([]string, error) {
	categories, ok := r.roots[restaurantID]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	return append([]string(nil), categories...), nil
}

func (r *stubMenuRepo) InsertItem(_ context.Context, item *domain.MenuItem) (string, error) {
	r.nextID++
	clone := *item
	clone.ID = fmt.Sprintf("item-%04d", r.nextID)
	r.items[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubMenuRepo) UpdateItem(_ context.Context, id, restaurantID, category string, fields map[string]any) error {
	item, ok := r.items[id]
	if !ok || item.RestaurantID != restaurantID || item.Category != category {
		return domain.ErrItemNotFound
	}
	for k, v := range fields {
		if k == "name" {
			item.Name, _ = v.(string)
			continue
		}
		if item.Extra == nil {
			item.Extra = map[string]any{}
		}
		item.Extra[k] = v
	}
	return nil
}

func (r *stubMenuRepo) DeleteItem(_ context.Context, id, restaurantID, category string) error {
	item, ok := r.items[id]
	if !ok || item.RestaurantID != restaurantID || item.Category != category {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubMenuRepo) ItemsByCategory(_ context.Context, restaurantID, category string) ([]*domain.MenuItem, error) {
	items := []*domain.MenuItem{}
	for _, item := range r.items {
		if item.RestaurantID == restaurantID && item.Category == category {
			clone := *item
			items = append(items, &clone)
		}
	}
	return items, nil
}

func (r *stubMenuRepo) ItemsByName(_ context.Context, restaurantID, category, name string) ([]*domain.MenuItem, error) {
	var items []*domain.MenuItem
	for _, item := range r.items {
		if item.RestaurantID == restaurantID && item.Category == category && item.Name == name {
			clone := *item
			items = append(items, &clone)
		}
	}
	if len(items) == 0 {
		return nil, domain.ErrItemNotFound
	}
	return items, nil
}

func (r *stubMenuRepo) DeleteAll(_ context.Context, restaurantID string) error {
	delete(r.roots, restaurantID)
	for id, item := range r.items {
		if item.RestaurantID == restaurantID {
			delete(r.items, id)
		}
	}
	return nil
}

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Insert(_ context.Context, o *domain.Order) (string, error) {
	r.nextID++
	clone := *o
	clone.ID = fmt.Sprintf("order-%04d", r.nextID)
	r.orders[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubOrderRepo) Update(_ context.Context, id string, fields map[string]any) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	for k, v := range fields {
		if k == "date" {
			o.Date, _ = v.(string)
			continue
		}
		if o.Extra == nil {
			o.Extra = map[string]any{}
		}
		o.Extra[k] = v
	}
	return nil
}

func (r *stubOrderRepo) FindByRestaurant(_ context.Context, restaurantID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.RestaurantID == restaurantID {
			clone := *o
			out = append(out, &clone)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return out, nil
}

func (r *stubOrderRepo) DeleteAll(_ context.Context, restaurantID string) error {
	for id, o := range r.orders {
		if o.RestaurantID == restaurantID {
			delete(r.orders, id)
		}
	}
	return nil
}

type stubIdentityStore struct {
	recs map[string]*domain.Identity

	createErr error
	updateErr error
	deleteErr error
}

func newStubIdentityStore() *stubIdentityStore {
	return &stubIdentityStore{recs: make(map[string]*domain.Identity)}
}

func (s *stubIdentityStore) Create(_ context.Context, rec *domain.Identity) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, exists := s.recs[rec.ID]; exists {
		return domain.ErrIdentityExists
	}
	clone := *rec
	s.recs[rec.ID] = &clone
	return nil
}

func (s *stubIdentityStore) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	clone := *rec
	return &clone, nil
}

func (s *stubIdentityStore) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	for _, rec := range s.recs {
		if rec.Email == email {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, domain.ErrIdentityNotFound
}

func (s *stubIdentityStore) UpdatePasswordHash(_ context.Context, id, hash string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	rec, ok := s.recs[id]
	if !ok {
		return domain.ErrIdentityNotFound
	}
	rec.PasswordHash = hash
	return nil
}

func (s *stubIdentityStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.recs[id]; !ok {
		return domain.ErrIdentityNotFound
	}
	delete(s.recs, id)
	return nil
}

type stubJournal struct {
	entries map[string]time.Time
}

func newStubJournal() *stubJournal {
	return &stubJournal{entries: make(map[string]time.Time)}
}

func (j *stubJournal) Begin(_ context.Context, op, accountID string) error {
	j.entries[op+":"+accountID] = time.Now()
	return nil
}

func (j *stubJournal) Clear(_ context.Context, op, accountID string) error {
	delete(j.entries, op+":"+accountID)
	return nil
}

func (j *stubJournal) Pending(_ context.Context, op string, cutoff time.Time) ([]string, error) {
	var ids []string
	for key, begun := range j.entries {
		if strings.HasPrefix(key, op+":") && begun.Before(cutoff) {
			ids = append(ids, strings.TrimPrefix(key, op+":"))
		}
	}
	return ids, nil
}

func (j *stubJournal) has(op, accountID string) bool {
	_, ok := j.entries[op+":"+accountID]
	return ok
}

// backdate rewrites an entry's begin time, for reconciler grace tests.
func (j *stubJournal) backdate(op, accountID string, d time.Duration) {
	key := op + ":" + accountID
	if begun, ok := j.entries[key]; ok {
		j.entries[key] = begun.Add(-d)
	}
}

// repoHook wraps a restaurant repository to fault-inject individual calls.
type repoHook struct {
	ports.RestaurantRepository
	onUpdateHash func() error
}

func (h repoHook) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	if err := h.onUpdateHash(); err != nil {
		return err
	}
	return h.RestaurantRepository.UpdatePasswordHash(ctx, id, hash)
}

// timeAfterAll returns a cutoff later than any journal entry written so far.
func timeAfterAll() time.Time {
	return time.Now().Add(time.Hour)
}

var (
	_ ports.RestaurantRepository = (*stubRestaurantRepo)(nil)
	_ ports.MenuRepository       = (*stubMenuRepo)(nil)
	_ ports.OrderRepository      = (*stubOrderRepo)(nil)
	_ ports.IdentityStore        = (*stubIdentityStore)(nil)
	_ ports.DualWriteJournal     = (*stubJournal)(nil)
)
