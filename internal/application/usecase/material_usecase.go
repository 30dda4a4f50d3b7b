package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
	"github.com/umkone/umkone-api/pkg/numeric"
)

// MaterialUseCase kasus penggunaan CRUD bahan baku.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase membangun kasus penggunaan.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create membuat bahan baku baru.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	now := time.Now()
	material := &entity.RawMaterial{
		Name:         in.Name,
		Unit:         in.Unit,
		PricePerUnit: numeric.ParseNonNegativeOr(in.PricePerUnit, decimal.Zero),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID mengambil satu bahan baku.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Update memperbarui field yang dikirim saja. Perubahan harga langsung
// terasa di simulasi HPP berikutnya.
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.PricePerUnit != nil {
		material.PricePerUnit = numeric.ParseNonNegativeOr(*in.PricePerUnit, material.PricePerUnit)
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List mengembalikan seluruh bahan baku.
func (uc *MaterialUseCase) List() (*dto.MaterialListResponse, error) {
	materials, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Items: items, Total: len(items)}, nil
}

// Delete menghapus bahan baku.
func (uc *MaterialUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMaterialResponse(m *entity.RawMaterial) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		PricePerUnit: m.PricePerUnit,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
