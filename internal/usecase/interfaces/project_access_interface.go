package interfaces

import (
	"context"

	"tradequote/internal/domain/entities"
)

//go:generate mockgen -source=project_access_interface.go -destination=mocks/mock_project_access_interface.go -package=mock_interfaces

// IProjectAccessResolver checks project permissions. ResolveAccess fails with
// errs.ErrNotFound or errs.ErrForbidden.
type IProjectAccessResolver interface {
	ResolveAccess(ctx context.Context, userID, projectID string) (entities.ProjectAccess, error)
	GetProjectOwner(ctx context.Context, projectID string) (string, error)
}

// ICustomerDirectory resolves the identity snapshot stored on impressions.
type ICustomerDirectory interface {
	GetCustomer(ctx context.Context, userID string) (entities.Customer, error)
}
