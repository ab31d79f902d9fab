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

const partyColumns = `id, party_type, display_name, legal_name, tin,
	registration_number, is_active, created_at, updated_at`

// PartyRepository persists parties in PostgreSQL.
type PartyRepository struct {
	pool *pgxpool.Pool
}

// NewPartyRepository creates the repository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{pool: pool}
}

type partyRow struct {
	ID                 uuid.UUID
	PartyType          string
	DisplayName        string
	LegalName          *string
	Tin                *string
	RegistrationNumber *string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (row partyRow) toDomain() (*domain.Party, error) {
	partyType, err := domain.ParsePartyType(row.PartyType)
	if err != nil {
		return nil, err
	}
	displayName, err := domain.NewDisplayName(row.DisplayName)
	if err != nil {
		return nil, err
	}
	var legalName *domain.LegalName
	if row.LegalName != nil {
		n, err := domain.NewLegalName(*row.LegalName)
		if err != nil {
			return nil, err
		}
		legalName = &n
	}
	var tin *domain.Tin
	if row.Tin != nil {
		t, err := domain.NewTin(*row.Tin)
		if err != nil {
			return nil, err
		}
		tin = &t
	}
	var registrationNumber *domain.RegistrationNumber
	if row.RegistrationNumber != nil {
		n, err := domain.NewRegistrationNumber(*row.RegistrationNumber)
		if err != nil {
			return nil, err
		}
		registrationNumber = &n
	}
	return domain.ReconstituteParty(domain.PartyParams{
		ID:                 domain.NewPartyID(row.ID),
		Type:               partyType,
		DisplayName:        displayName,
		LegalName:          legalName,
		Tin:                tin,
		RegistrationNumber: registrationNumber,
		IsActive:           row.IsActive,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}), nil
}

func (row *partyRow) scanFields() []any {
	return []any{
		&row.ID, &row.PartyType, &row.DisplayName, &row.LegalName,
		&row.Tin, &row.RegistrationNumber, &row.IsActive,
		&row.CreatedAt, &row.UpdatedAt,
	}
}

func partyBindValues(party *domain.Party) []any {
	var legalName, tin, registrationNumber *string
	if n := party.LegalName(); n != nil {
		v := n.Value()
		legalName = &v
	}
	if t := party.Tin(); t != nil {
		v := t.Value()
		tin = &v
	}
	if n := party.RegistrationNumber(); n != nil {
		v := n.Value()
		registrationNumber = &v
	}
	return []any{
		party.ID().UUID, party.Type().String(), party.DisplayName().Value(),
		legalName, tin, registrationNumber, party.IsActive(),
		party.CreatedAt(), party.UpdatedAt(),
	}
}

// Create inserts a new row.
func (r *PartyRepository) Create(ctx context.Context, party *domain.Party) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO party (`+partyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		partyBindValues(party)...)
	return domerrors.Database(err)
}

// Update replaces the full row by id; a missing id succeeds without error.
func (r *PartyRepository) Update(ctx context.Context, party *domain.Party) error {
	_, err := r.pool.Exec(ctx, `UPDATE party SET
		party_type = $2, display_name = $3, legal_name = $4, tin = $5,
		registration_number = $6, is_active = $7, created_at = $8, updated_at = $9
		WHERE id = $1`,
		partyBindValues(party)...)
	return domerrors.Database(err)
}

// FindByID returns (nil, nil) when the id does not exist.
func (r *PartyRepository) FindByID(ctx context.Context, id domain.PartyID) (*domain.Party, error) {
	var row partyRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+partyColumns+` FROM party WHERE id = $1`, id.UUID,
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
// descending, without a shared snapshot.
func (r *PartyRepository) FindPaginated(ctx context.Context, page, pageSize int) ([]*domain.Party, pagination.Meta, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM party`).Scan(&total); err != nil {
		return nil, pagination.Meta{}, domerrors.Database(err)
	}

	offset := pagination.PageParams{Page: page, PageSize: pageSize}.Offset()
	rows, err := r.pool.Query(ctx,
		`SELECT `+partyColumns+` FROM party
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, pageSize, offset)
	if err != nil {
		return nil, pagination.Meta{}, domerrors.Database(err)
	}
	defer rows.Close()

	parties := make([]*domain.Party, 0, pageSize)
	for rows.Next() {
		var row partyRow
		if err := rows.Scan(row.scanFields()...); err != nil {
			return nil, pagination.Meta{}, domerrors.Database(err)
		}
		party, err := row.toDomain()
		if err != nil {
			return nil, pagination.Meta{}, err
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		return nil, pagination.Meta{}, domerrors.Database(err)
	}
	return parties, pagination.NewMeta(page, pageSize, total), nil
}

// Delete removes the row by id; deleting a missing id succeeds.
func (r *PartyRepository) Delete(ctx context.Context, id domain.PartyID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM party WHERE id = $1`, id.UUID)
	return domerrors.Database(err)
}

var _ ports.PartyRepository = (*PartyRepository)(nil)
