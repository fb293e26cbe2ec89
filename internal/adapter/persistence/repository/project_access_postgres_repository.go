package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tradequote/internal/domain/entities"
	"tradequote/internal/domain/errs"
	"tradequote/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

var (
	ErrProjectNotFound = fmt.Errorf("%w: project not found", errs.ErrNotFound)
	ErrProjectAccess   = fmt.Errorf("%w: no access to project", errs.ErrForbidden)
	ErrUserNotFound    = fmt.Errorf("%w: user not found", errs.ErrNotFound)
)

// ProjectAccessPostgresRepository resolves project permissions from the
// projects, project_shares and user_info tables owned by the projects service.
//
// The owner is projects.user_id. Anyone else needs a project_shares row keyed
// by their email; its permission becomes the role.
type ProjectAccessPostgresRepository struct {
	db PgxAPI
}

var (
	_ interfaces.IProjectAccessResolver = (*ProjectAccessPostgresRepository)(nil)
	_ interfaces.ICustomerDirectory     = (*ProjectAccessPostgresRepository)(nil)
)

func NewProjectAccessPostgresRepository(db PgxAPI) *ProjectAccessPostgresRepository {
	return &ProjectAccessPostgresRepository{db: db}
}

func (r *ProjectAccessPostgresRepository) ResolveAccess(ctx context.Context, userID, projectID string) (entities.ProjectAccess, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, COALESCE(name, ''),
			COALESCE(address_street, ''), COALESCE(address_city, ''), COALESCE(address_region, ''),
			COALESCE(address_country, ''), COALESCE(address_postal, '')
		FROM projects
		WHERE id = $1`, projectID)

	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ProjectAccess{}, ErrProjectNotFound
	}
	if err != nil {
		return entities.ProjectAccess{}, errs.Persistence("load project", err)
	}

	if p.OwnerUserID == userID {
		return entities.ProjectAccess{Role: entities.ProjectRoleOwner, Project: p}, nil
	}

	var permission string
	err = r.db.QueryRow(ctx, `
		SELECT s.permission
		FROM project_shares s
		JOIN user_info u ON lower(u.email) = lower(s.shared_with_email)
		WHERE s.project_id = $1 AND u.user_id = $2
		LIMIT 1`, projectID, userID).Scan(&permission)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ProjectAccess{}, ErrProjectAccess
	}
	if err != nil {
		return entities.ProjectAccess{}, errs.Persistence("load project share", err)
	}

	return entities.ProjectAccess{Role: shareRole(permission), Project: p}, nil
}

func (r *ProjectAccessPostgresRepository) GetProjectOwner(ctx context.Context, projectID string) (string, error) {
	var owner string
	err := r.db.QueryRow(ctx, `SELECT user_id FROM projects WHERE id = $1`, projectID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrProjectNotFound
	}
	if err != nil {
		return "", errs.Persistence("load project owner", err)
	}
	return owner, nil
}

// GetCustomer prefers the person's full name and falls back to the company.
func (r *ProjectAccessPostgresRepository) GetCustomer(ctx context.Context, userID string) (entities.Customer, error) {
	var email, fullName, company string
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(email, ''), COALESCE(full_name, ''), COALESCE(company_name, '')
		FROM user_info
		WHERE user_id = $1`, userID).Scan(&email, &fullName, &company)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Customer{}, ErrUserNotFound
	}
	if err != nil {
		return entities.Customer{}, errs.Persistence("load user", err)
	}

	name := strings.TrimSpace(fullName)
	if name == "" {
		name = strings.TrimSpace(company)
	}
	return entities.Customer{UserID: userID, Email: email, Name: name}, nil
}

func scanProject(row pgx.Row) (entities.Project, error) {
	var p entities.Project
	err := row.Scan(
		&p.ID, &p.OwnerUserID, &p.Name,
		&p.Address.Street, &p.Address.City, &p.Address.Region, &p.Address.Country, &p.Address.Postal,
	)
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

// shareRole maps stored permissions; anything that is not edit is read-only.
func shareRole(permission string) entities.ProjectRole {
	if strings.EqualFold(strings.TrimSpace(permission), string(entities.ProjectRoleEdit)) {
		return entities.ProjectRoleEdit
	}
	return entities.ProjectRoleView
}
