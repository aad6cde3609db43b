package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// MenuService covers category registration and item CRUD plus the assembled
// menu projection.
type MenuService struct {
	menus  ports.MenuRepository
	logger zerolog.Logger
}

func NewMenuService(menus ports.MenuRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{menus: menus, logger: logger}
}

// CreateCategory registers the category on the menu root so it enumerates in
// GetMenu even with zero items.
func (s *MenuService) CreateCategory(ctx context.Context, restaurantID, category string) error {
	if err := s.menus.RegisterCategory(ctx, restaurantID, category); err != nil {
		return fmt.Errorf("register category: %w", err)
	}
	s.logger.Info().Str("restaurant_id", restaurantID).Str("category", category).Msg("category created")
	return nil
}

// AddItem inserts the item and registers its category on the menu root, so an
// item added to a previously unseen category makes that category enumerable.
func (s *MenuService) AddItem(ctx context.Context, input ports.AddItemInput) (string, error) {
	if err := s.menus.RegisterCategory(ctx, input.RestaurantID, input.Category); err != nil {
		return "", fmt.Errorf("register category: %w", err)
	}
	id, err := s.menus.InsertItem(ctx, &domain.MenuItem{
		RestaurantID: input.RestaurantID,
		Category:     input.Category,
		Name:         input.Name,
		Extra:        input.Extra,
	})
	if err != nil {
		return "", fmt.Errorf("insert item: %w", err)
	}
	return id, nil
}

func (s *MenuService) EditItem(ctx context.Context, id, restaurantID, category string, fields map[string]any) error {
	delete(fields, "id")
	if err := s.menus.UpdateItem(ctx, id, restaurantID, category, fields); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id, restaurantID, category string) error {
	if err := s.menus.DeleteItem(ctx, id, restaurantID, category); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// GetMenu assembles the category → items mapping. Categories are fetched
// sequentially; their order in the map carries no meaning.
func (s *MenuService) GetMenu(ctx context.Context, restaurantID string) (*ports.Menu, error) {
	categories, err := s.menus.Categories(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	menu := &ports.Menu{Categories: make(map[string][]map[string]any, len(categories))}
	for _, category := range categories {
		items, err := s.menus.ItemsByCategory(ctx, restaurantID, category)
		if err != nil {
			return nil, fmt.Errorf("list items of %q: %w", category, err)
		}
		views := make([]map[string]any, len(items))
		for i, item := range items {
			views[i] = item.View()
		}
		menu.Categories[category] = views
	}
	return menu, nil
}

func (s *MenuService) GetItemByName(ctx context.Context, restaurantID, category, name string) ([]map[string]any, error) {
	items, err := s.menus.ItemsByName(ctx, restaurantID, category, name)
	if err != nil {
		return nil, err
	}
	views := make([]map[string]any, len(items))
	for i, item := range items {
		views[i] = item.View()
	}
	return views, nil
}

var _ ports.MenuService = (*MenuService)(nil)
