package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// newTestContext builds an echo context the way the router would, including
// the validator. Handlers return their errors instead of writing them, so
// tests assert on the returned error directly.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

// ---------------------------------------------------------------------------
// Service fakes. Each records the last call and returns configured values.
// ---------------------------------------------------------------------------

type fakeAccountService struct {
	lastCreate ports.CreateAccountInput
	lastID     string
	lastFields map[string]any

	createID string
	profile  map[string]any
	err      error
}

func (f *fakeAccountService) Create(_ context.Context, input ports.CreateAccountInput) (string, error) {
	f.lastCreate = input
	return f.createID, f.err
}

func (f *fakeAccountService) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeAccountService) UpdatePassword(_ context.Context, id, _ string) error {
	f.lastID = id
	return f.err
}

func (f *fakeAccountService) EditProfile(_ context.Context, id string, fields map[string]any) error {
	f.lastID, f.lastFields = id, fields
	return f.err
}

func (f *fakeAccountService) GetByID(_ context.Context, id string) (map[string]any, error) {
	f.lastID = id
	return f.profile, f.err
}

func (f *fakeAccountService) GetAll(context.Context) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []map[string]any{f.profile}, nil
}

func (f *fakeAccountService) GetByName(_ context.Context, name string) ([]map[string]any, error) {
	f.lastID = name
	if f.err != nil {
		return nil, f.err
	}
	return []map[string]any{f.profile}, nil
}

type fakeMenuService struct {
	lastRestaurant string
	lastCategory   string
	lastItemID     string
	lastAdd        ports.AddItemInput
	lastFields     map[string]any

	itemID string
	menu   *ports.Menu
	items  []map[string]any
	err    error
}

func (f *fakeMenuService) CreateCategory(_ context.Context, restaurantID, category string) error {
	f.lastRestaurant, f.lastCategory = restaurantID, category
	return f.err
}

func (f *fakeMenuService) AddItem(_ context.Context, input ports.AddItemInput) (string, error) {
	f.lastAdd = input
	return f.itemID, f.err
}

func (f *fakeMenuService) EditItem(_ context.Context, id, restaurantID, category string, fields map[string]any) error {
	f.lastItemID, f.lastRestaurant, f.lastCategory, f.lastFields = id, restaurantID, category, fields
	return f.err
}

func (f *fakeMenuService) DeleteItem(_ context.Context, id, restaurantID, category string) error {
	f.lastItemID, f.lastRestaurant, f.lastCategory = id, restaurantID, category
	return f.err
}

func (f *fakeMenuService) GetMenu(_ context.Context, restaurantID string) (*ports.Menu, error) {
	f.lastRestaurant = restaurantID
	return f.menu, f.err
}

func (f *fakeMenuService) GetItemByName(_ context.Context, restaurantID, category, name string) ([]map[string]any, error) {
	f.lastRestaurant, f.lastCategory = restaurantID, category
	return f.items, f.err
}

type fakeOrderService struct {
	lastCreate ports.CreateOrderInput
	lastID     string
	lastFields map[string]any

	orderID string
	orders  []map[string]any
	names   []string
	err     error
}

func (f *fakeOrderService) Create(_ context.Context, input ports.CreateOrderInput) (string, error) {
	f.lastCreate = input
	return f.orderID, f.err
}

func (f *fakeOrderService) Edit(_ context.Context, id string, fields map[string]any) error {
	f.lastID, f.lastFields = id, fields
	return f.err
}

func (f *fakeOrderService) ListByRestaurant(_ context.Context, restaurantID string) ([]map[string]any, error) {
	f.lastID = restaurantID
	return f.orders, f.err
}

func (f *fakeOrderService) ListByDay(_ context.Context, restaurantID string) ([]map[string]any, error) {
	f.lastID = restaurantID
	return f.orders, f.err
}

func (f *fakeOrderService) ListItems(_ context.Context, restaurantID string) ([]string, error) {
	f.lastID = restaurantID
	return f.names, f.err
}

type fakeAuthService struct {
	lastEmail string
	token     string
	accountID string
	err       error
}

func (f *fakeAuthService) Login(_ context.Context, email, _ string) (string, string, error) {
	f.lastEmail = email
	return f.token, f.accountID, f.err
}

var (
	_ ports.AccountService = (*fakeAccountService)(nil)
	_ ports.MenuService    = (*fakeMenuService)(nil)
	_ ports.OrderService   = (*fakeOrderService)(nil)
	_ ports.AuthService    = (*fakeAuthService)(nil)
)
