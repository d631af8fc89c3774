package interfaces

import (
	"context"

	"github.com/customeros/socialstack/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, input models.PostCreateInput) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
}
