package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

const organizationColumns = `id, name, email, phone, website, industry, address, city, state,
	postal_code, country_code, timezone, currency, is_active, created_at, updated_at`

// OrganizationRepository persists organizations in PostgreSQL.
type OrganizationRepository struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository creates the repository.
func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{pool: pool}
}

type organizationRow struct {
	ID          uuid.UUID
	Name        string
	Email       *string
	Phone       *string
	Website     *string
	Industry    *string
	Address     *string
	City        *string
	State       *string
	PostalCode  *string
	CountryCode *string
	Timezone    *string
	Currency    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toDomain reconstitutes the aggregate, re-running value-object validation so
// stored data that violates a domain invariant surfaces as an error instead
// of leaking into the domain.
func (row organizationRow) toDomain() (*domain.Organization, error) {
	name, err := domain.NewOrganizationName(row.Name)
	if err != nil {
		return nil, err
	}
	var email *domain.Email
	if row.Email != nil {
		e, err := domain.NewEmail(*row.Email)
		if err != nil {
			return nil, err
		}
		email = &e
	}
	var phone *domain.Phone
	if row.Phone != nil {
		p, err := domain.NewPhone(*row.Phone)
		if err != nil {
			return nil, err
		}
		phone = &p
	}
	var website *domain.URL
	if row.Website != nil {
		w, err := domain.NewURL(*row.Website)
		if err != nil {
			return nil, err
		}
		website = &w
	}
	return domain.ReconstituteOrganization(domain.OrganizationParams{
		ID:      domain.NewOrganizationID(row.ID),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Website: website,
		Details: domain.OrganizationDetails{
			Industry:    row.Industry,
			Address:     row.Address,
			City:        row.City,
			State:       row.State,
			PostalCode:  row.PostalCode,
			CountryCode: row.CountryCode,
			Timezone:    row.Timezone,
			Currency:    row.Currency,
		},
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}), nil
}

func (row *organizationRow) scanFields() []any {
	return []any{
		&row.ID, &row.Name, &row.Email, &row.Phone, &row.Website,
		&row.Industry, &row.Address, &row.City, &row.State,
		&row.PostalCode, &row.CountryCode, &row.Timezone, &row.Currency,
		&row.IsActive, &row.CreatedAt, &row.UpdatedAt,
	}
}

func organizationBindValues(org *domain.Organization) []any {
	var email, phone, website *string
	if e := org.Email(); e != nil {
		v := e.Value()
		email = &v
	}
	if p := org.Phone(); p != nil {
		v := p.Value()
		phone = &v
	}
	if w := org.Website(); w != nil {
		v := w.Value()
		website = &v
	}
	d := org.Details()
	return []any{
		org.ID().UUID, org.Name().Value(), email, phone, website,
		d.Industry, d.Address, d.City, d.State,
		d.PostalCode, d.CountryCode, d.Timezone, d.Currency,
		org.IsActive(), org.CreatedAt(), org.UpdatedAt(),
	}
}

// Create inserts a new row. Constraint violations propagate as database
// errors.
func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO organization (`+organizationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		organizationBindValues(org)...)
	return domerrors.Database(err)
}

// Update replaces the full row by id. Updating a missing id succeeds without
// error.
func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	_, err := r.pool.Exec(ctx, `UPDATE organization SET
		name = $2, email = $3, phone = $4, website = $5, industry = $6, address = $7,
		city = $8, state = $9, postal_code = $10, country_code = $11, timezone = $12,
		currency = $13, is_active = $14, created_at = $15, updated_at = $16
		WHERE id = $1`,
		organizationBindValues(org)...)
	return domerrors.Database(err)
}

// FindByID returns (nil, nil) when the id does not exist.
func (r *OrganizationRepository) FindByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	var row organizationRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organization WHERE id = $1`, id.UUID,
	).Scan(row.scanFields()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domerrors.Database(err)
	}
	return row.toDomain()
}

// FindPaginated runs a count query then a page query ordered by created_at
// descending. Both use the same pool but not a shared snapshot, so the total
// can be stale relative to the page under concurrent writes.
func (r *OrganizationRepository) FindPaginated(ctx context.Context, page, pageSize int) ([]*domain.Organization, pagination.Meta, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM organization`).Scan(&total); err != nil {
		return nil, pagination.Meta{}, domerrors.Database(err)
	}

	offset := pagination.PageParams{Page: page, PageSize: pageSize}.Offset()
	rows, err := r.pool.Query(ctx,
		`SELECT `+organizationColumns+` FROM organization
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, pageSize, offset)
	if err != nil {
		return nil, pagination.Meta{}, domerrors.Database(err)
	}
	defer rows.Close()

	orgs := make([]*domain.Organization, 0, pageSize)
	for rows.Next() {
		var row organizationRow
		if err := rows.Scan(row.scanFields()...); err != nil {
			return nil, pagination.Meta{}, domerrors.Database(err)
		}
		org, err := row.toDomain()
		if err != nil {
			return nil, pagination.Meta{}, err
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination.Meta{}, domerrors.Database(err)
	}
	return orgs, pagination.NewMeta(page, pageSize, total), nil
}

// Delete removes the row by id; deleting a missing id succeeds.
func (r *OrganizationRepository) Delete(ctx context.Context, id domain.OrganizationID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM organization WHERE id = $1`, id.UUID)
	return domerrors.Database(err)
}

var _ ports.OrganizationRepository = (*OrganizationRepository)(nil)
