// Package validate membungkus go-playground/validator untuk validasi struct DTO.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Struct memvalidasi tag `validate` pada s.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Fields mengubah error validasi menjadi peta field -> aturan yang dilanggar,
// untuk dikirim balik ke klien.
func Fields(err error) map[string]string {
	out := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
