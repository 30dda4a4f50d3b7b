package repository

import "github.com/umkone/umkone-api/internal/domain/entity"

// LaborRateRepository port penyimpanan tarif tenaga kerja.
type LaborRateRepository interface {
	Create(rate *entity.LaborRate) error
	GetByID(id string) (*entity.LaborRate, error)
	Update(rate *entity.LaborRate) error
	List() ([]*entity.LaborRate, error)
	Delete(id string) error
}

// OverheadRepository port penyimpanan biaya overhead.
type OverheadRepository interface {
	Create(cost *entity.OverheadCost) error
	GetByID(id string) (*entity.OverheadCost, error)
	Update(cost *entity.OverheadCost) error
	List() ([]*entity.OverheadCost, error)
	Delete(id string) error
}
