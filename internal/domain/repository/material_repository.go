package repository

import "github.com/umkone/umkone-api/internal/domain/entity"

// MaterialRepository port penyimpanan untuk RawMaterial.
type MaterialRepository interface {
	Create(material *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	Update(material *entity.RawMaterial) error
	List() ([]*entity.RawMaterial, error)
	Delete(id string) error
}
