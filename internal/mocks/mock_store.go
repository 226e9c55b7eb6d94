package mocks

import (
	"context"

	"github.com/bennettmovies/booking-engine/internal/domain"
)

type MockCatalogStore struct {
	domain.CatalogStore
	LoadFunc func(ctx context.Context) (domain.CatalogDocument, error)
	SaveFunc func(ctx context.Context, doc domain.CatalogDocument) error
}

func (m *MockCatalogStore) Load(ctx context.Context) (domain.CatalogDocument, error) {
	if m.LoadFunc == nil {
		return domain.CatalogDocument{}, nil
	}

	return m.LoadFunc(ctx)
}

func (m *MockCatalogStore) Save(ctx context.Context, doc domain.CatalogDocument) error {
	if m.SaveFunc == nil {
		return nil
	}

	return m.SaveFunc(ctx, doc)
}
