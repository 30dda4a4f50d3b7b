package repository

import "github.com/umkone/umkone-api/internal/domain/entity"

// UserRepository port penyimpanan pengguna (auth mock, tetap lewat port
// supaya backend sungguhan bisa dipasang nanti).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
