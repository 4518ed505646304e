package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/cb17225/huffman-compression/internal/model"
)

var ErrNotFound = errors.New("not found")

// 인터페이스
type WeightRepo interface {
	Save(ctx context.Context, p *model.Profile) error
	FindByName(ctx context.Context, name string) (*model.Profile, error)
	List(ctx context.Context) ([]*model.Profile, error)
}

type weightRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Profile
}

func NewWeightRepoInMemory() WeightRepo {
	return &weightRepoInMemory{store: make(map[string]*model.Profile)}
}

func (r *weightRepoInMemory) Save(_ context.Context, p *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.store[p.Name] = &cp
	return nil
}

func (r *weightRepoInMemory) FindByName(_ context.Context, name string) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.store[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *weightRepoInMemory) List(_ context.Context) ([]*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Profile, 0, len(r.store))
	for _, p := range r.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
