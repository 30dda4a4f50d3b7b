package dto

import "github.com/shopspring/decimal"

// CreateLaborRateRequest masukan untuk membuat tarif tenaga kerja.
type CreateLaborRateRequest struct {
	JobType    string `json:"job_type" validate:"required,min=1,max=100"`
	HourlyWage string `json:"hourly_wage"`
}

// UpdateLaborRateRequest masukan untuk memperbarui tarif tenaga kerja.
type UpdateLaborRateRequest struct {
	JobType    *string `json:"job_type" validate:"omitempty,min=1,max=100"`
	HourlyWage *string `json:"hourly_wage"`
}

// LaborRateResponse keluaran satu tarif tenaga kerja.
type LaborRateResponse struct {
	ID         string          `json:"id"`
	JobType    string          `json:"job_type"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
}

// LaborRateListResponse daftar tarif tenaga kerja.
type LaborRateListResponse struct {
	Items []LaborRateResponse `json:"items"`
	Total int                 `json:"total"`
}

// CreateOverheadRequest masukan untuk membuat biaya overhead.
type CreateOverheadRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Amount string `json:"amount"`
	Period string `json:"period" validate:"required,oneof=daily weekly monthly"`
}

// UpdateOverheadRequest masukan untuk memperbarui biaya overhead.
type UpdateOverheadRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Amount *string `json:"amount"`
	Period *string `json:"period" validate:"omitempty,oneof=daily weekly monthly"`
}

// OverheadResponse keluaran satu biaya overhead.
type OverheadResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Period string          `json:"period"`
}

// OverheadListResponse daftar biaya overhead, plus total bulanan ternormalisasi.
type OverheadListResponse struct {
	Items        []OverheadResponse `json:"items"`
	Total        int                `json:"total"`
	MonthlyTotal decimal.Decimal    `json:"monthly_total"`
}
