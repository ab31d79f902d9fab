package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

// PartyRepository stores parties in a mutex-protected map.
type PartyRepository struct {
	mu      sync.RWMutex
	parties map[domain.PartyID]*domain.Party
}

// NewPartyRepository creates an empty repository.
func NewPartyRepository() *PartyRepository {
	return &PartyRepository{parties: make(map[domain.PartyID]*domain.Party)}
}

func (r *PartyRepository) Create(_ context.Context, party *domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parties[party.ID()] = party
	return nil
}

func (r *PartyRepository) Update(_ context.Context, party *domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parties[party.ID()]; ok {
		r.parties[party.ID()] = party
	}
	return nil
}

func (r *PartyRepository) FindByID(_ context.Context, id domain.PartyID) (*domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.parties[id], nil
}

func (r *PartyRepository) FindPaginated(_ context.Context, page, pageSize int) ([]*domain.Party, pagination.Meta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Party, 0, len(r.parties))
	for _, party := range r.parties {
		all = append(all, party)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt().After(all[j].CreatedAt())
	})

	params := pagination.PageParams{Page: page, PageSize: pageSize}
	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], pagination.NewMeta(page, pageSize, len(all)), nil
}

func (r *PartyRepository) Delete(_ context.Context, id domain.PartyID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parties, id)
	return nil
}

var _ ports.PartyRepository = (*PartyRepository)(nil)
