package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
	"github.com/umkone/umkone-api/internal/domain/repository"
	"github.com/umkone/umkone-api/pkg/jwt"
)

// JWTConfig konfigurasi pembuatan token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autentikasi tiruan untuk aplikasi satu pemilik: login selalu
// berhasil tanpa verifikasi password. Register tetap menyimpan hash bcrypt
// supaya jalur verifikasi sungguhan tinggal diaktifkan.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase membangun kasus penggunaan auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register mendaftarkan pemilik usaha baru. Email yang sudah terdaftar
// ditolak dengan ErrDuplicate.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login menerima kredensial apa pun. Email yang dikenal memakai profil
// tersimpan, email asing mendapat akun sementara "Pemilik Usaha".
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user = &entity.User{
			ID:        "guest",
			Email:     in.Email,
			Name:      "Pemilik Usaha",
			CreatedAt: time.Now(),
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
