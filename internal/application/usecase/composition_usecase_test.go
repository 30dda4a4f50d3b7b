package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/application/usecase"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/infrastructure/memory"
)

func seededCompositionUseCase(t *testing.T) *usecase.CompositionUseCase {
	t.Helper()
	stores := memory.NewStores()
	require.NoError(t, stores.Seed())
	return usecase.NewCompositionUseCase(stores.Compositions, stores.Products, stores.Materials)
}

func strptr(s string) *string { return &s }

func TestCompositionUseCase_Create_PasanganDobel(t *testing.T) {
	uc := seededCompositionUseCase(t)

	// prd-kopi sudah memakai mat-kopi di katalog contoh.
	_, err := uc.Create(dto.CreateCompositionRequest{
		ProductID:  "prd-kopi",
		MaterialID: "mat-kopi",
		Quantity:   "0.05",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompositionUseCase_Update_PindahBahanJagaKeunikan(t *testing.T) {
	uc := seededCompositionUseCase(t)

	// cmp-2 adalah prd-kopi + mat-gula; pindah ke mat-kopi menabrak cmp-1.
	_, err := uc.Update("cmp-2", dto.UpdateCompositionRequest{MaterialID: strptr("mat-kopi")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Mengirim ulang bahan yang sama bukan tabrakan.
	resp, err := uc.Update("cmp-2", dto.UpdateCompositionRequest{MaterialID: strptr("mat-gula")})
	require.NoError(t, err)
	assert.Equal(t, "Gula", resp.MaterialName)

	// Pindah ke bahan yang belum dipakai produk ini sah.
	resp, err = uc.Update("cmp-2", dto.UpdateCompositionRequest{MaterialID: strptr("mat-tepung")})
	require.NoError(t, err)
	assert.Equal(t, "Tepung", resp.MaterialName)
}
