package repository

import (
	"context"
	"errors"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const offeringColumns = `
	id, user_email, company_name, COALESCE(company_description, ''), segment,
	COALESCE(countries_served, '{}'), COALESCE(regions_served, '{}'),
	COALESCE(pricing_rules, ''), COALESCE(lead_time, ''), COALESCE(notes, ''),
	is_active, created_at, updated_at`

// VendorOfferingPostgresRepository reads and writes the vendor_services table.
//
// Table requirements:
//   - PK: id (text)
//   - UNIQUE (user_email, segment)
//   - countries_served, regions_served: text[]
type VendorOfferingPostgresRepository struct {
	db PgxAPI
}

var _ interfaces.IVendorOfferingRepository = (*VendorOfferingPostgresRepository)(nil)

func NewVendorOfferingPostgresRepository(db PgxAPI) *VendorOfferingPostgresRepository {
	return &VendorOfferingPostgresRepository{db: db}
}

// ListActiveBySegmentAndCountry returns active offerings of a segment that
// serve the country. Region filtering happens in the directory use case.
func (r *VendorOfferingPostgresRepository) ListActiveBySegmentAndCountry(ctx context.Context, segment, country string) ([]entities.VendorOffering, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offeringColumns+`
		FROM vendor_services
		WHERE segment = $1 AND is_active = TRUE AND $2 = ANY(countries_served)
		ORDER BY created_at, id`, segment, country)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOffering)
}

func (r *VendorOfferingPostgresRepository) ListByUserEmail(ctx context.Context, userEmail string) ([]entities.VendorOffering, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offeringColumns+`
		FROM vendor_services
		WHERE user_email = $1
		ORDER BY created_at DESC, id`, userEmail)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOffering)
}

func (r *VendorOfferingPostgresRepository) GetByIDForOwner(ctx context.Context, id, userEmail string) (entities.VendorOffering, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+offeringColumns+`
		FROM vendor_services
		WHERE id = $1 AND user_email = $2`, id, userEmail)

	o, err := scanOffering(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.VendorOffering{}, nil
	}
	return o, err
}

func (r *VendorOfferingPostgresRepository) Create(ctx context.Context, o entities.VendorOffering) (entities.InsertResult, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO vendor_services (
			id, user_email, company_name, company_description, segment,
			countries_served, regions_served, pricing_rules, lead_time, notes,
			is_active, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		o.ID, o.UserEmail, o.CompanyName, o.CompanyDescription, o.Segment,
		o.CountriesServed, o.RegionsServed, o.PricingRules, o.LeadTime, o.Notes,
		o.IsActive, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.InsertAlreadyExists, nil
		}
		return "", err
	}
	return entities.InsertCreated, nil
}

// Update rewrites the mutable columns. Segment and owner never change.
func (r *VendorOfferingPostgresRepository) Update(ctx context.Context, o entities.VendorOffering) (entities.VendorOffering, error) {
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = time.Now().UTC()
	}
	row := r.db.QueryRow(ctx, `
		UPDATE vendor_services SET
			company_name = $3, company_description = $4, countries_served = $5,
			regions_served = $6, pricing_rules = $7, lead_time = $8, notes = $9,
			is_active = $10, updated_at = $11
		WHERE id = $1 AND user_email = $2
		RETURNING `+offeringColumns,
		o.ID, o.UserEmail, o.CompanyName, o.CompanyDescription, o.CountriesServed,
		o.RegionsServed, o.PricingRules, o.LeadTime, o.Notes, o.IsActive, o.UpdatedAt,
	)

	out, err := scanOffering(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.VendorOffering{}, nil
	}
	return out, err
}

func (r *VendorOfferingPostgresRepository) Delete(ctx context.Context, id, userEmail string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM vendor_services WHERE id = $1 AND user_email = $2`, id, userEmail)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanOffering(row pgx.Row) (entities.VendorOffering, error) {
	var o entities.VendorOffering
	err := row.Scan(
		&o.ID, &o.UserEmail, &o.CompanyName, &o.CompanyDescription, &o.Segment,
		&o.CountriesServed, &o.RegionsServed, &o.PricingRules, &o.LeadTime, &o.Notes,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return entities.VendorOffering{}, err
	}
	return o, nil
}
