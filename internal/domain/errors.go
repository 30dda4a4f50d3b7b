package domain

import "errors"

// Error dasar domain (tanpa dependensi eksternal).
var (
	ErrNotFound         = errors.New("data tidak ditemukan")
	ErrDuplicate        = errors.New("data sudah ada")
	ErrInvalidInput     = errors.New("input tidak valid")
	ErrUnauthorized     = errors.New("tidak terotorisasi")
	ErrProductNotFound  = errors.New("produk tidak ditemukan")
	ErrMaterialNotFound = errors.New("bahan baku tidak ditemukan")
)
