package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/customeros/socialstack/interfaces"
	"github.com/customeros/socialstack/internal/models"
	"github.com/customeros/socialstack/internal/tracing"
)

type profileRepository struct {
	store *Store
}

func NewProfileRepository(store *Store) interfaces.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.GetByUserID")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, userID)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.profileIndexByUser(userID)
	if i == -1 {
		return nil, nil
	}
	return r.store.profiles[i].Clone(), nil
}

func (r *profileRepository) Update(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Profile, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "profileRepository.Update")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, userID)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.profileIndexByUser(userID)
	if i == -1 {
		span.LogKV("result", "not found")
		return nil, nil
	}

	s.profiles[i] = patch.Apply(s.profiles[i])
	return s.profiles[i].Clone(), nil
}
