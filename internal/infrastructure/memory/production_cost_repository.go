package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/umkone/umkone-api/internal/domain"
	"github.com/umkone/umkone-api/internal/domain/entity"
)

// LaborRateRepository penyimpanan tarif tenaga kerja dalam memori.
type LaborRateRepository struct {
	mu    sync.RWMutex
	items map[string]entity.LaborRate
}

// NewLaborRateRepository membuat repository kosong.
func NewLaborRateRepository() *LaborRateRepository {
	return &LaborRateRepository{items: make(map[string]entity.LaborRate)}
}

func (r *LaborRateRepository) Create(rate *entity.LaborRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rate.ID == "" {
		rate.ID = uuid.New().String()
	}
	if _, exists := r.items[rate.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[rate.ID] = *rate
	return nil
}

func (r *LaborRateRepository) GetByID(id string) (*entity.LaborRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (r *LaborRateRepository) Update(rate *entity.LaborRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[rate.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[rate.ID] = *rate
	return nil
}

func (r *LaborRateRepository) List() ([]*entity.LaborRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.LaborRate, 0, len(r.items))
	for _, l := range r.items {
		cp := l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobType < out[j].JobType })
	return out, nil
}

func (r *LaborRateRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// OverheadRepository penyimpanan biaya overhead dalam memori.
type OverheadRepository struct {
	mu    sync.RWMutex
	items map[string]entity.OverheadCost
}

// NewOverheadRepository membuat repository kosong.
func NewOverheadRepository() *OverheadRepository {
	return &OverheadRepository{items: make(map[string]entity.OverheadCost)}
}

func (r *OverheadRepository) Create(cost *entity.OverheadCost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}
	if _, exists := r.items[cost.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[cost.ID] = *cost
	return nil
}

func (r *OverheadRepository) GetByID(id string) (*entity.OverheadCost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *OverheadRepository) Update(cost *entity.OverheadCost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[cost.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[cost.ID] = *cost
	return nil
}

func (r *OverheadRepository) List() ([]*entity.OverheadCost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.OverheadCost, 0, len(r.items))
	for _, o := range r.items {
		cp := o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *OverheadRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
