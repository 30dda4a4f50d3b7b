package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/costing"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
	"github.com/umkone/umkone-api/pkg/numeric"
)

// ProductionCostUseCase mengelola tarif tenaga kerja dan biaya overhead,
// dua masukan non-bahan untuk perhitungan HPP.
type ProductionCostUseCase struct {
	laborRates repository.LaborRateRepository
	overheads  repository.OverheadRepository
}

// NewProductionCostUseCase membangun kasus penggunaan.
func NewProductionCostUseCase(
	laborRates repository.LaborRateRepository,
	overheads repository.OverheadRepository,
) *ProductionCostUseCase {
	return &ProductionCostUseCase{laborRates: laborRates, overheads: overheads}
}

// CreateLaborRate membuat tarif tenaga kerja baru.
func (uc *ProductionCostUseCase) CreateLaborRate(in dto.CreateLaborRateRequest) (*dto.LaborRateResponse, error) {
	rate := &entity.LaborRate{
		JobType:    in.JobType,
		HourlyWage: numeric.ParseNonNegativeOr(in.HourlyWage, decimal.Zero),
	}
	if err := uc.laborRates.Create(rate); err != nil {
		return nil, err
	}
	return toLaborRateResponse(rate), nil
}

// GetLaborRate mengambil satu tarif.
func (uc *ProductionCostUseCase) GetLaborRate(id string) (*dto.LaborRateResponse, error) {
	rate, err := uc.laborRates.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toLaborRateResponse(rate), nil
}

// UpdateLaborRate memperbarui field yang dikirim saja.
func (uc *ProductionCostUseCase) UpdateLaborRate(id string, in dto.UpdateLaborRateRequest) (*dto.LaborRateResponse, error) {
	rate, err := uc.laborRates.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.JobType != nil {
		rate.JobType = *in.JobType
	}
	if in.HourlyWage != nil {
		rate.HourlyWage = numeric.ParseNonNegativeOr(*in.HourlyWage, rate.HourlyWage)
	}
	if err := uc.laborRates.Update(rate); err != nil {
		return nil, err
	}
	return toLaborRateResponse(rate), nil
}

// ListLaborRates mengembalikan seluruh tarif.
func (uc *ProductionCostUseCase) ListLaborRates() (*dto.LaborRateListResponse, error) {
	rates, err := uc.laborRates.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LaborRateResponse, 0, len(rates))
	for _, r := range rates {
		items = append(items, *toLaborRateResponse(r))
	}
	return &dto.LaborRateListResponse{Items: items, Total: len(items)}, nil
}

// DeleteLaborRate menghapus tarif. Simulasi HPP yang masih menunjuk ID ini
// akan memakai upah nol.
func (uc *ProductionCostUseCase) DeleteLaborRate(id string) error {
	return uc.laborRates.Delete(id)
}

// CreateOverhead membuat biaya overhead baru. Periode wajib salah satu dari
// daily, weekly, monthly.
func (uc *ProductionCostUseCase) CreateOverhead(in dto.CreateOverheadRequest) (*dto.OverheadResponse, error) {
	period := entity.Period(in.Period)
	if !period.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	cost := &entity.OverheadCost{
		Name:   in.Name,
		Amount: numeric.ParseNonNegativeOr(in.Amount, decimal.Zero),
		Period: period,
	}
	if err := uc.overheads.Create(cost); err != nil {
		return nil, err
	}
	return toOverheadResponse(cost), nil
}

// GetOverhead mengambil satu biaya overhead.
func (uc *ProductionCostUseCase) GetOverhead(id string) (*dto.OverheadResponse, error) {
	cost, err := uc.overheads.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toOverheadResponse(cost), nil
}

// UpdateOverhead memperbarui field yang dikirim saja.
func (uc *ProductionCostUseCase) UpdateOverhead(id string, in dto.UpdateOverheadRequest) (*dto.OverheadResponse, error) {
	cost, err := uc.overheads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		cost.Name = *in.Name
	}
	if in.Amount != nil {
		cost.Amount = numeric.ParseNonNegativeOr(*in.Amount, cost.Amount)
	}
	if in.Period != nil {
		period := entity.Period(*in.Period)
		if !period.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		cost.Period = period
	}
	if err := uc.overheads.Update(cost); err != nil {
		return nil, err
	}
	return toOverheadResponse(cost), nil
}

// ListOverheads mengembalikan seluruh biaya overhead plus total bulanan
// ternormalisasi (harian x30, mingguan x4).
func (uc *ProductionCostUseCase) ListOverheads() (*dto.OverheadListResponse, error) {
	costs, err := uc.overheads.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OverheadResponse, 0, len(costs))
	list := make([]entity.OverheadCost, 0, len(costs))
	for _, c := range costs {
		items = append(items, *toOverheadResponse(c))
		list = append(list, *c)
	}
	return &dto.OverheadListResponse{
		Items:        items,
		Total:        len(items),
		MonthlyTotal: costing.MonthlyOverheadTotal(list),
	}, nil
}

// DeleteOverhead menghapus biaya overhead.
func (uc *ProductionCostUseCase) DeleteOverhead(id string) error {
	return uc.overheads.Delete(id)
}

func toLaborRateResponse(r *entity.LaborRate) *dto.LaborRateResponse {
	return &dto.LaborRateResponse{ID: r.ID, JobType: r.JobType, HourlyWage: r.HourlyWage}
}

func toOverheadResponse(c *entity.OverheadCost) *dto.OverheadResponse {
	return &dto.OverheadResponse{ID: c.ID, Name: c.Name, Amount: c.Amount, Period: string(c.Period)}
}
