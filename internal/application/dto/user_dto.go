package dto

// RegisterRequest masukan pendaftaran pemilik usaha.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest masukan login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// UserResponse profil pengguna.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse token akses beserta profil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
