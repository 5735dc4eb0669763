package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"pos-service/internal/entity"
)

const menuCacheKey = "menu:items"

// MenuService manages catalog entries. Each entry reuses the
// container/food-item shape with no owning order; see the schema notes.
type MenuService struct {
	menu MenuStore
	rdb  *redis.Client
}

// NewMenuService creates a new instance of MenuService. rdb may be nil, in
// which case the menu cache is skipped.
func NewMenuService(menu MenuStore, rdb *redis.Client) *MenuService {
	return &MenuService{menu: menu, rdb: rdb}
}

// ListMenuItems serves the catalog through a read-through cache.
func (s *MenuService) ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, menuCacheKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msg("Error reading menu cache")
		}
		if cached != "" {
			var items []*entity.MenuItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.menu.ListMenuItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing menu items")
		return nil, err
	}

	if s.rdb != nil {
		payload, err := json.Marshal(items)
		if err == nil {
			if err := s.rdb.Set(ctx, menuCacheKey, payload, 1*time.Minute).Err(); err != nil {
				logger.Error().Err(err).Msg("Error writing menu cache")
			}
		}
	}

	return items, nil
}

// AddMenuItem validates the price and creates the catalog entry atomically.
func (s *MenuService) AddMenuItem(ctx context.Context, req *entity.AddMenuItemRequest) (*entity.MenuItem, error) {
	if req.FoodName == "" {
		return nil, ErrMissingFields
	}

	price, err := entity.ParsePrice(req.Price.String())
	if err != nil {
		return nil, ErrInvalidPrice
	}

	item, err := s.menu.CreateMenuItem(ctx, req.FoodName, float64(price), req.PackagingType)
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating menu item %s", req.FoodName)
		return nil, err
	}

	s.invalidateCache(ctx)
	return item, nil
}

// RemoveMenuItem deletes the item and its container atomically.
func (s *MenuService) RemoveMenuItem(ctx context.Context, itemID int) error {
	err := s.menu.DeleteMenuItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMenuItemNotFound
		}
		logger.Error().Err(err).Msgf("Error deleting menu item %d", itemID)
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *MenuService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, menuCacheKey).Err(); err != nil {
		logger.Error().Err(err).Msg("Error invalidating menu cache")
	}
}
