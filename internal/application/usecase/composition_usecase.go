package usecase

import (
	"errors"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
	"github.com/umkone/umkone-api/pkg/numeric"
)

// CompositionUseCase mengelola resep produk: bahan apa saja dan takarannya
// untuk satu unit produk.
type CompositionUseCase struct {
	repo      repository.CompositionRepository
	products  repository.ProductRepository
	materials repository.MaterialRepository
}

// NewCompositionUseCase membangun kasus penggunaan.
func NewCompositionUseCase(
	repo repository.CompositionRepository,
	products repository.ProductRepository,
	materials repository.MaterialRepository,
) *CompositionUseCase {
	return &CompositionUseCase{repo: repo, products: products, materials: materials}
}

// Create menambah satu bahan ke resep. Produk dan bahan harus ada, pasangan
// yang sama tidak boleh dobel. Takaran dikoersi, input kacau jadi 1.
func (uc *CompositionUseCase) Create(in dto.CreateCompositionRequest) (*dto.CompositionResponse, error) {
	if _, err := uc.products.GetByID(in.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if _, err := uc.materials.GetByID(in.MaterialID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrMaterialNotFound
		}
		return nil, err
	}
	if _, err := uc.repo.GetByProductAndMaterial(in.ProductID, in.MaterialID); err == nil {
		return nil, domain.ErrDuplicate
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	line := &entity.Composition{
		ProductID:  in.ProductID,
		MaterialID: in.MaterialID,
		Quantity:   numeric.ParseQuantityOr(in.Quantity, one),
	}
	if err := uc.repo.Create(line); err != nil {
		return nil, err
	}
	return uc.toCompositionResponse(line), nil
}

// GetByID mengambil satu baris resep.
func (uc *CompositionUseCase) GetByID(id string) (*dto.CompositionResponse, error) {
	line, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toCompositionResponse(line), nil
}

// Update memperbarui baris resep. Ganti bahan juga harus menjaga keunikan
// pasangan produk-bahan.
func (uc *CompositionUseCase) Update(id string, in dto.UpdateCompositionRequest) (*dto.CompositionResponse, error) {
	line, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.MaterialID != nil {
		if _, err := uc.materials.GetByID(*in.MaterialID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrMaterialNotFound
			}
			return nil, err
		}
		other, err := uc.repo.GetByProductAndMaterial(line.ProductID, *in.MaterialID)
		if err == nil && other.ID != line.ID {
			return nil, domain.ErrDuplicate
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		line.MaterialID = *in.MaterialID
	}
	if in.Quantity != nil {
		line.Quantity = numeric.ParseQuantityOr(*in.Quantity, line.Quantity)
	}
	if err := uc.repo.Update(line); err != nil {
		return nil, err
	}
	return uc.toCompositionResponse(line), nil
}

// List mengembalikan resep, bisa difilter per produk.
func (uc *CompositionUseCase) List(productID string) (*dto.CompositionListResponse, error) {
	var (
		lines []*entity.Composition
		err   error
	)
	if productID != "" {
		lines, err = uc.repo.ListByProduct(productID)
	} else {
		lines, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompositionResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, *uc.toCompositionResponse(l))
	}
	return &dto.CompositionListResponse{Items: items, Total: len(items)}, nil
}

// Delete menghapus satu baris resep.
func (uc *CompositionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// toCompositionResponse melengkapi baris dengan nama produk dan bahan.
// Referensi yang sudah terhapus dibiarkan kosong, bukan error.
func (uc *CompositionUseCase) toCompositionResponse(l *entity.Composition) *dto.CompositionResponse {
	resp := &dto.CompositionResponse{
		ID:         l.ID,
		ProductID:  l.ProductID,
		MaterialID: l.MaterialID,
		Quantity:   l.Quantity,
	}
	if p, err := uc.products.GetByID(l.ProductID); err == nil {
		resp.ProductName = p.Name
	}
	if m, err := uc.materials.GetByID(l.MaterialID); err == nil {
		resp.MaterialName = m.Name
	}
	return resp
}
