package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
)

// CompositionRepository penyimpanan baris komposisi dalam memori.
// Pasangan (ProductID, MaterialID) dijaga unik di sini.
type CompositionRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Composition
}

// NewCompositionRepository membuat repository kosong.
func NewCompositionRepository() *CompositionRepository {
	return &CompositionRepository{items: make(map[string]entity.Composition)}
}

func (r *CompositionRepository) Create(line *entity.Composition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	for _, c := range r.items {
		if c.ProductID == line.ProductID && c.MaterialID == line.MaterialID {
			return domain.ErrDuplicate
		}
	}
	r.items[line.ID] = *line
	return nil
}

func (r *CompositionRepository) GetByID(id string) (*entity.Composition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// GetByProductAndMaterial mencari baris untuk pasangan produk-bahan.
func (r *CompositionRepository) GetByProductAndMaterial(productID, materialID string) (*entity.Composition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ProductID == productID && c.MaterialID == materialID {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CompositionRepository) Update(line *entity.Composition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[line.ID]; !ok {
		return domain.ErrNotFound
	}
	// Perubahan pasangan tidak boleh menabrak baris lain.
	for _, c := range r.items {
		if c.ID != line.ID && c.ProductID == line.ProductID && c.MaterialID == line.MaterialID {
			return domain.ErrDuplicate
		}
	}
	r.items[line.ID] = *line
	return nil
}

func (r *CompositionRepository) List() ([]*entity.Composition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.Composition) bool { return true }), nil
}

// ListByProduct mengembalikan baris komposisi milik satu produk.
func (r *CompositionRepository) ListByProduct(productID string) ([]*entity.Composition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(c entity.Composition) bool { return c.ProductID == productID }), nil
}

func (r *CompositionRepository) collect(keep func(entity.Composition) bool) []*entity.Composition {
	out := make([]*entity.Composition, 0, len(r.items))
	for _, c := range r.items {
		if keep(c) {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].MaterialID < out[j].MaterialID
	})
	return out
}

func (r *CompositionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
