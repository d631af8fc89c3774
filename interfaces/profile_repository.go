package interfaces

import (
	"context"

	"github.com/customeros/socialstack/internal/models"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Profile, error)
}
