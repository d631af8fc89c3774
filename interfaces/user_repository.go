package interfaces

import (
	"context"

	"github.com/customeros/socialstack/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, input models.UserCreateInput) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	FindByName(ctx context.Context, name string) ([]*models.User, error)
	Search(ctx context.Context, filter *models.UserSearchFilter) ([]*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}
