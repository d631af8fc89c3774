package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/customeros/socialstack/interfaces"
	apperrors "github.com/customeros/socialstack/internal/errors"
	"github.com/customeros/socialstack/internal/models"
	"github.com/customeros/socialstack/internal/tracing"
)

type postRepository struct {
	store *Store
}

func NewPostRepository(store *Store) interfaces.PostRepository {
	return &postRepository{store: store}
}

// Create appends a post authored by input.AuthorID. Unlike the other
// lookups, an unknown author is an error and nothing is appended.
func (r *postRepository) Create(ctx context.Context, input models.PostCreateInput) (*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.Create")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.findUser(input.AuthorID)
	if author == nil {
		tracing.TraceErr(span, apperrors.ErrAuthorNotFound)
		return nil, apperrors.ErrAuthorNotFound
	}

	now := s.now()
	post := &models.Post{
		ID:        s.nextPostID(),
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  author.ID,
		Author:    *author.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
		Likes:     0,
		Comments:  []models.Comment{},
	}
	post = post.Clone() // detach from the caller-owned title
	s.posts = append(s.posts, post)

	tracing.TagEntity(span, post.ID)
	return post.Clone(), nil
}

// GetByID refreshes the stored author snapshot from the live user record
// before returning the post.
func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.GetByID")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, id)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i == -1 {
		return nil, nil
	}
	s.posts[i] = s.withLiveAuthor(s.posts[i])
	return s.posts[i].Clone(), nil
}

// List returns up to limit posts starting at offset, in insertion order.
// Returned posts carry the live author; storage is left untouched.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.List")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	span.LogKV("limit", limit, "offset", offset)

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*models.Post{}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(s.posts) {
		return result, nil
	}
	end := offset + limit
	if end > len(s.posts) || end < offset {
		end = len(s.posts)
	}
	for _, p := range s.posts[offset:end] {
		result = append(result, s.withLiveAuthor(p))
	}
	return result, nil
}

// ListByAuthor returns the posts as stored, author snapshots included.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.ListByAuthor")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, authorID)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*models.Post{}
	for _, p := range r.store.posts {
		if p.Author.ID == authorID {
			result = append(result, p.Clone())
		}
	}
	return result, nil
}

func (r *postRepository) Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.Update")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, id)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i == -1 {
		span.LogKV("result", "not found")
		return nil, nil
	}

	s.posts[i] = patch.Apply(s.posts[i], s.now())
	return s.posts[i].Clone(), nil
}

// Delete removes the post, keeping the order of the remaining ones.
func (r *postRepository) Delete(ctx context.Context, id string) (bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "postRepository.Delete")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, id)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(id)
	if i == -1 {
		return false, nil
	}
	copy(s.posts[i:], s.posts[i+1:])
	s.posts[len(s.posts)-1] = nil
	s.posts = s.posts[:len(s.posts)-1]
	return true, nil
}
