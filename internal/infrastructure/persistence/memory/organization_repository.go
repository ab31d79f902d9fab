// Package memory provides in-memory repository adapters used in tests and as
// a reference implementation of the port contracts.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

// OrganizationRepository stores organizations in a mutex-protected map.
type OrganizationRepository struct {
	mu   sync.RWMutex
	orgs map[domain.OrganizationID]*domain.Organization
}

// NewOrganizationRepository creates an empty repository.
func NewOrganizationRepository() *OrganizationRepository {
	return &OrganizationRepository{orgs: make(map[domain.OrganizationID]*domain.Organization)}
}

func (r *OrganizationRepository) Create(_ context.Context, org *domain.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orgs[org.ID()] = org
	return nil
}

func (r *OrganizationRepository) Update(_ context.Context, org *domain.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Zero rows affected is not an error, matching the port contract.
	if _, ok := r.orgs[org.ID()]; ok {
		r.orgs[org.ID()] = org
	}
	return nil
}

func (r *OrganizationRepository) FindByID(_ context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orgs[id], nil
}

func (r *OrganizationRepository) FindPaginated(_ context.Context, page, pageSize int) ([]*domain.Organization, pagination.Meta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Organization, 0, len(r.orgs))
	for _, org := range r.orgs {
		all = append(all, org)
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

func (r *OrganizationRepository) Delete(_ context.Context, id domain.OrganizationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orgs, id)
	return nil
}

var _ ports.OrganizationRepository = (*OrganizationRepository)(nil)
