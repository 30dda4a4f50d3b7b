package repository

import "github.com/umkone/umkone-api/internal/domain/entity"

// ProductRepository port penyimpanan untuk Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
