package entity

import "github.com/shopspring/decimal"

// Period periode biaya overhead.
type Period string

// Nilai Period yang valid.
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// IsValid melaporkan apakah p salah satu periode yang dikenal.
func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// LaborRate tarif tenaga kerja per jam untuk satu jenis pekerjaan.
type LaborRate struct {
	ID         string
	JobType    string // mis. "Barista", "Tukang Roti"
	HourlyWage decimal.Decimal
}

// OverheadCost biaya tetap periodik usaha (listrik, sewa, air).
// Amount berlaku untuk Period-nya; normalisasi ke basis bulanan dilakukan
// engine biaya, bukan entitas ini.
type OverheadCost struct {
	ID     string
	Name   string
	Amount decimal.Decimal
	Period Period
}
