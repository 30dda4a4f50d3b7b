package entity

import "time"

// User pemilik usaha yang memakai aplikasi.
// PasswordHash diisi bcrypt saat registrasi; login TIDAK memverifikasinya
// (autentikasi masih mock, lihat application/auth).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
