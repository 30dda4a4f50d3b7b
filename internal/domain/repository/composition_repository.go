package repository

import "github.com/umkone/umkone-api/internal/domain/entity"

// CompositionRepository port penyimpanan untuk baris komposisi produk.
// Keunikan pasangan (ProductID, MaterialID) dijaga di sini, bukan di engine.
type CompositionRepository interface {
	Create(line *entity.Composition) error
	GetByID(id string) (*entity.Composition, error)
	GetByProductAndMaterial(productID, materialID string) (*entity.Composition, error)
	Update(line *entity.Composition) error
	List() ([]*entity.Composition, error)
	ListByProduct(productID string) ([]*entity.Composition, error)
	Delete(id string) error
}
