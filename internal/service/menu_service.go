package service

import (
	"context"

	"coffeehouse/internal/catalog"
	"coffeehouse/internal/model"
)

// menuService implements MenuService over the static catalog.
type menuService struct {
	catalog *catalog.Catalog
	info    model.StoreInfo
}

// NewMenuService creates a new menu service.
func NewMenuService(c *catalog.Catalog, info model.StoreInfo) MenuService {
	return &menuService{catalog: c, info: info}
}

func (s *menuService) Menu(ctx context.Context) []model.MenuItem {
	return s.catalog.Items()
}

func (s *menuService) StoreInfo(ctx context.Context) model.StoreInfo {
	return s.info
}
