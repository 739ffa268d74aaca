package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexashop/storefront/internal/domains/catalog/adapters/memory"
	"github.com/nexashop/storefront/internal/domains/catalog/domain"
	"github.com/nexashop/storefront/internal/domains/catalog/ports"
)

func newTestService() *Service {
	return NewService(memory.NewRepository(), memory.NewCategoryRepository())
}

func TestCreate_AssignsIDAndPersists(t *testing.T) {
	svc := newTestService()

	saved, err := svc.Create(context.Background(), &domain.Product{Name: "Walnut Desk", PriceCents: 24900, Stock: 4})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())

	loaded, err := svc.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "Walnut Desk", loaded.Name)
}

func TestCreate_RejectsInvalidProduct(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &domain.Product{Name: "  ", PriceCents: 100})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = svc.Create(context.Background(), &domain.Product{Name: "Lamp", PriceCents: -1})
	require.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestUpdate_KeepsIdentity(t *testing.T) {
	svc := newTestService()

	saved, err := svc.Create(context.Background(), &domain.Product{Name: "Lamp", PriceCents: 100, Stock: 1})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), saved.ID, &domain.Product{Name: "Brass Lamp", PriceCents: 150, Stock: 2})
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)
	require.Equal(t, saved.CreatedAt, updated.CreatedAt)
	require.Equal(t, int64(150), updated.PriceCents)
}

func TestUpdate_UnknownProduct(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "missing", &domain.Product{Name: "Lamp", PriceCents: 100})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAppendImages(t *testing.T) {
	svc := newTestService()

	saved, err := svc.Create(context.Background(), &domain.Product{Name: "Lamp", PriceCents: 100, Stock: 1})
	require.NoError(t, err)

	withImages, err := svc.AppendImages(context.Background(), saved.ID, []string{"https://cdn.example.com/a.png", ""})
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn.example.com/a.png"}, withImages.Images)
}

func TestListFeatured_FiltersFlagged(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &domain.Product{Name: "Plain", PriceCents: 100, Stock: 1})
	require.NoError(t, err)
	featured, err := svc.Create(context.Background(), &domain.Product{Name: "Spotlight", PriceCents: 200, Stock: 1, Featured: true})
	require.NoError(t, err)

	list, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, featured.ID, list[0].ID)
}
