package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/domain/errs"
	"tradequote/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrOfferingNotFound      = fmt.Errorf("%w: vendor service not found", errs.ErrNotFound)
	ErrOfferingAlreadyExists = fmt.Errorf("%w: you already have a service offering for this segment", errs.ErrConflict)
	ErrInvalidVendorEmail    = errs.Invalid("user_email", "vendor email is required")
	ErrInvalidCountry        = errs.Invalid("country", "country is required")
)

// DefaultCountriesServed applies when a new offering names no country.
var DefaultCountriesServed = []string{"CA"}

// IVendorDirectory matches vendors to a quote request and lets vendors manage
// their offerings.
type IVendorDirectory interface {
	Match(ctx context.Context, segment, country, region string) ([]entities.VendorOffering, error)
	ListOfferings(ctx context.Context, vendorEmail string) ([]entities.VendorOffering, error)
	CreateOffering(ctx context.Context, vendorEmail string, in CreateOfferingInput) (entities.VendorOffering, error)
	UpdateOffering(ctx context.Context, vendorEmail, id string, patch entities.OfferingPatch) (entities.VendorOffering, error)
	DeleteOffering(ctx context.Context, vendorEmail, id string) error
}

// CreateOfferingInput is the vendor-supplied part of a new offering.
type CreateOfferingInput struct {
	CompanyName        string   `json:"company_name" validate:"required,max=200"`
	CompanyDescription string   `json:"company_description" validate:"max=2000"`
	Segment            string   `json:"segment" validate:"required"`
	CountriesServed    []string `json:"countries_served" validate:"omitempty,dive,len=2,uppercase"`
	RegionsServed      []string `json:"regions_served" validate:"omitempty,dive,required"`
	PricingRules       string   `json:"pricing_rules"`
	LeadTime           string   `json:"lead_time"`
	Notes              string   `json:"notes"`
	IsActive           *bool    `json:"is_active"`
}

type VendorDirectoryUseCase struct {
	repo    interfaces.IVendorOfferingRepository
	catalog ICatalogUseCase
	v       *validator.Validate
	log     logrus.FieldLogger
	now     func() time.Time
}

var _ IVendorDirectory = (*VendorDirectoryUseCase)(nil)

func NewVendorDirectoryUseCase(repo interfaces.IVendorOfferingRepository, catalog ICatalogUseCase, log logrus.FieldLogger) *VendorDirectoryUseCase {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &VendorDirectoryUseCase{
		repo:    repo,
		catalog: catalog,
		v:       v,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Match returns the active offerings of a segment that serve the location.
// Order is not significant.
func (u *VendorDirectoryUseCase) Match(ctx context.Context, segment, country, region string) ([]entities.VendorOffering, error) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return nil, ErrInvalidSegment
	}
	if country == "" {
		return nil, ErrInvalidCountry
	}

	candidates, err := u.repo.ListActiveBySegmentAndCountry(ctx, segment, country)
	if err != nil {
		return nil, err
	}

	matched := make([]entities.VendorOffering, 0, len(candidates))
	for _, o := range candidates {
		if !o.IsActive || o.Segment != segment || !o.Serves(country, region) {
			continue
		}
		matched = append(matched, o)
	}
	u.log.WithFields(logrus.Fields{
		"segment":    segment,
		"country":    country,
		"region":     region,
		"candidates": len(candidates),
		"matched":    len(matched),
	}).Debug("[vendor][usecase] match")
	return matched, nil
}

func (u *VendorDirectoryUseCase) ListOfferings(ctx context.Context, vendorEmail string) ([]entities.VendorOffering, error) {
	email := normalizeEmail(vendorEmail)
	if email == "" {
		return nil, ErrInvalidVendorEmail
	}
	return u.repo.ListByUserEmail(ctx, email)
}

func (u *VendorDirectoryUseCase) CreateOffering(ctx context.Context, vendorEmail string, in CreateOfferingInput) (entities.VendorOffering, error) {
	email := normalizeEmail(vendorEmail)
	if email == "" {
		return entities.VendorOffering{}, ErrInvalidVendorEmail
	}
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Segment = strings.TrimSpace(in.Segment)
	if err := u.validate(in); err != nil {
		return entities.VendorOffering{}, err
	}

	if _, err := u.catalog.GetSegment(ctx, in.Segment); err != nil {
		if errors.Is(err, ErrSegmentNotFound) {
			return entities.VendorOffering{}, errs.Invalid("segment", "invalid segment: "+in.Segment)
		}
		return entities.VendorOffering{}, err
	}

	countries := in.CountriesServed
	if len(countries) == 0 {
		countries = append([]string(nil), DefaultCountriesServed...)
	}
	regions := in.RegionsServed
	if regions == nil {
		regions = []string{}
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := u.now()
	o := entities.VendorOffering{
		ID:                 uuid.NewString(),
		UserEmail:          email,
		CompanyName:        in.CompanyName,
		CompanyDescription: in.CompanyDescription,
		Segment:            in.Segment,
		CountriesServed:    countries,
		RegionsServed:      regions,
		PricingRules:       in.PricingRules,
		LeadTime:           in.LeadTime,
		Notes:              in.Notes,
		IsActive:           active,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	res, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.VendorOffering{}, err
	}
	if res == entities.InsertAlreadyExists {
		return entities.VendorOffering{}, ErrOfferingAlreadyExists
	}
	u.log.WithFields(logrus.Fields{"vendor_email": email, "segment": o.Segment, "vendor_service_id": o.ID}).
		Info("[vendor][usecase] offering created")
	return o, nil
}

func (u *VendorDirectoryUseCase) UpdateOffering(ctx context.Context, vendorEmail, id string, patch entities.OfferingPatch) (entities.VendorOffering, error) {
	email := normalizeEmail(vendorEmail)
	if email == "" {
		return entities.VendorOffering{}, ErrInvalidVendorEmail
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VendorOffering{}, ErrOfferingNotFound
	}
	if patch.CompanyName != nil && strings.TrimSpace(*patch.CompanyName) == "" {
		return entities.VendorOffering{}, errs.Invalid("company_name", "company name cannot be empty")
	}
	if patch.CountriesServed != nil && len(patch.CountriesServed) == 0 {
		return entities.VendorOffering{}, errs.Invalid("countries_served", "at least one country is required")
	}

	existing, err := u.repo.GetByIDForOwner(ctx, id, email)
	if err != nil {
		return entities.VendorOffering{}, err
	}
	if existing.ID == "" {
		return entities.VendorOffering{}, ErrOfferingNotFound
	}

	next := patch.Apply(existing)
	next.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.VendorOffering{}, err
	}
	if updated.ID == "" {
		return entities.VendorOffering{}, ErrOfferingNotFound
	}
	return updated, nil
}

func (u *VendorDirectoryUseCase) DeleteOffering(ctx context.Context, vendorEmail, id string) error {
	email := normalizeEmail(vendorEmail)
	if email == "" {
		return ErrInvalidVendorEmail
	}
	deleted, err := u.repo.Delete(ctx, strings.TrimSpace(id), email)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOfferingNotFound
	}
	return nil
}

func (u *VendorDirectoryUseCase) validate(in CreateOfferingInput) error {
	err := u.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.SplitN(fe.Namespace(), ".", 2)
		name := fe.Field()
		if len(field) == 2 {
			name = field[1]
		}
		return errs.Invalid(name, "failed on '"+fe.Tag()+"'")
	}
	return errs.Invalid("", err.Error())
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
