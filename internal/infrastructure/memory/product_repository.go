// Package memory berisi implementasi repository dalam memori. Seluruh state
// aplikasi hidup di sini; tidak ada persistensi. Aman dipakai bersamaan
// (RWMutex) dan selalu mengembalikan salinan supaya pemanggil tidak bisa
// memutasi state internal.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
)

// ProductRepository penyimpanan produk dalam memori.
type ProductRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Product
}

// NewProductRepository membuat repository kosong.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{items: make(map[string]entity.Product)}
}

// Create menyimpan produk baru; ID dibuat bila kosong.
func (r *ProductRepository) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, exists := r.items[p.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[p.ID] = *p
	return nil
}

// GetByID mengembalikan salinan produk, atau ErrNotFound.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Update mengganti produk yang sudah ada.
func (r *ProductRepository) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[p.ID] = *p
	return nil
}

// List mengembalikan seluruh produk, urut waktu pembuatan lalu nama.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Delete menghapus produk by ID.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
