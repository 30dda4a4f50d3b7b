package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestProductRepository_CRUD(t *testing.T) {
	repo := memory.NewProductRepository()

	p := &entity.Product{Name: "Kopi Susu", Unit: "Cup", SellingPrice: d("18000"), Stock: d("10"), CreatedAt: time.Now()}
	require.NoError(t, repo.Create(p))
	require.NotEmpty(t, p.ID, "ID harus dibuat otomatis")

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kopi Susu", got.Name)

	// Salinan: memutasi hasil Get tidak boleh mengubah state repo.
	got.Name = "diubah di luar"
	again, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kopi Susu", again.Name)

	got.Name = "Kopi Susu Gula Aren"
	require.NoError(t, repo.Update(got))
	updated, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kopi Susu Gula Aren", updated.Name)

	require.NoError(t, repo.Delete(p.ID))
	_, err = repo.GetByID(p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(p.ID), domain.ErrNotFound)
}

func TestCompositionRepository_PasanganUnik(t *testing.T) {
	repo := memory.NewCompositionRepository()

	require.NoError(t, repo.Create(&entity.Composition{ProductID: "p1", MaterialID: "m1", Quantity: d("0.5")}))

	// Pasangan produk-bahan yang sama ditolak.
	err := repo.Create(&entity.Composition{ProductID: "p1", MaterialID: "m1", Quantity: d("0.7")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Bahan berbeda untuk produk yang sama boleh.
	other := &entity.Composition{ProductID: "p1", MaterialID: "m2", Quantity: d("0.2")}
	require.NoError(t, repo.Create(other))

	// Update yang menabrak pasangan lain juga ditolak.
	other.MaterialID = "m1"
	assert.ErrorIs(t, repo.Update(other), domain.ErrDuplicate)

	lines, err := repo.ListByProduct("p1")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestIncomeRepository_ListByRange(t *testing.T) {
	repo := memory.NewIncomeRepository()
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&entity.Income{Date: day(i), Source: "Penjualan", Amount: d("1000")}))
	}

	got, err := repo.ListByRange(day(1), day(3))
	require.NoError(t, err)
	require.Len(t, got, 3, "batas rentang inklusif di kedua sisi")
	assert.True(t, got[0].Date.After(got[2].Date), "urutan terbaru dulu")
}

func TestUserRepository_EmailTidakPekaHuruf(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(&entity.User{Email: "Owner@Umkm.id", Name: "Pemilik"}))

	got, err := repo.FindByEmail("owner@umkm.id")
	require.NoError(t, err)
	assert.Equal(t, "Pemilik", got.Name)

	assert.ErrorIs(t, repo.Create(&entity.User{Email: "OWNER@umkm.id"}), domain.ErrDuplicate)
}

func TestStores_SeedKatalogContoh(t *testing.T) {
	stores := memory.NewStores()
	require.NoError(t, stores.Seed())

	products, err := stores.Products.List()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Kopi Premium", products[0].Name)

	comps, err := stores.Compositions.ListByProduct("prd-kopi")
	require.NoError(t, err)
	assert.Len(t, comps, 2)

	overheads, err := stores.Overheads.List()
	require.NoError(t, err)
	assert.Len(t, overheads, 3)
}
