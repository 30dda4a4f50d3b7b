package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
)

// MaterialRepository penyimpanan bahan baku dalam memori.
type MaterialRepository struct {
	mu    sync.RWMutex
	items map[string]entity.RawMaterial
}

// NewMaterialRepository membuat repository kosong.
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{items: make(map[string]entity.RawMaterial)}
}

func (r *MaterialRepository) Create(m *entity.RawMaterial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if _, exists := r.items[m.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[m.ID] = *m
	return nil
}

func (r *MaterialRepository) GetByID(id string) (*entity.RawMaterial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (r *MaterialRepository) Update(m *entity.RawMaterial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[m.ID] = *m
	return nil
}

func (r *MaterialRepository) List() ([]*entity.RawMaterial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.RawMaterial, 0, len(r.items))
	for _, m := range r.items {
		cp := m
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

func (r *MaterialRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
