package repository

import (
	"context"
	"crypto/sha256"
	"encoding/base64"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/customeros/socialstack/interfaces"
	"github.com/customeros/socialstack/internal/models"
	"github.com/customeros/socialstack/internal/tracing"
	"github.com/customeros/socialstack/internal/utils"
)

type userRepository struct {
	store    *Store
	hashCost int
}

func NewUserRepository(store *Store, hashCost int) interfaces.UserRepository {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &userRepository{
		store:    store,
		hashCost: hashCost,
	}
}

// Create appends a new user together with its blank profile. There is no
// uniqueness check on username or email.
func (r *userRepository) Create(ctx context.Context, input models.UserCreateInput) (*models.User, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "userRepository.Create")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(input.Password), r.hashCost)
	if err != nil {
		err = errors.Wrap(err, "hash password")
		tracing.TraceErr(span, err)
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:           s.nextUserID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateJoined:   s.now(),
	}
	user = user.Clone() // detach from caller-owned name pointers
	profile := models.NewEmptyProfile(s.nextProfileID(), user.ID)

	s.users = append(s.users, user)
	s.profiles = append(s.profiles, profile)

	tracing.TagEntity(span, user.ID)
	return user.Clone(), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "userRepository.GetByID")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, id)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.findUser(id).Clone(), nil
}

// FindByName matches name against first or last name, ignoring case.
// Users without the compared name never match.
func (r *userRepository) FindByName(ctx context.Context, name string) ([]*models.User, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "userRepository.FindByName")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	span.LogKV("name", name)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*models.User{}
	for _, u := range r.store.users {
		if matchesOptional(u.FirstName, name) || matchesOptional(u.LastName, name) {
			result = append(result, u.Clone())
		}
	}
	return result, nil
}

// Search applies every non-blank filter field as a conjunctive,
// case-insensitive substring match. A nil filter matches every user.
func (r *userRepository) Search(ctx context.Context, filter *models.UserSearchFilter) ([]*models.User, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "userRepository.Search")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.LogObjectAsJson(span, "filter", filter)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*models.User{}
	for _, u := range r.store.users {
		if filter != nil {
			if !utils.IsBlank(filter.Username) && !utils.ContainsFold(u.Username, *filter.Username) {
				continue
			}
			if !utils.IsBlank(filter.FirstName) && !matchesOptional(u.FirstName, *filter.FirstName) {
				continue
			}
			if !utils.IsBlank(filter.LastName) && !matchesOptional(u.LastName, *filter.LastName) {
				continue
			}
		}
		result = append(result, u.Clone())
	}
	return result, nil
}

// Update shallow-merges the patch into the stored user. A missing user is
// reported as nil without an error.
func (r *userRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "userRepository.Update")
	defer span.Finish()
	tracing.SetDefaultMemoryRepositorySpanTags(ctx, span)
	tracing.TagEntity(span, id)

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i == -1 {
		span.LogKV("result", "not found")
		return nil, nil
	}

	s.users[i] = patch.Apply(s.users[i])
	return s.users[i].Clone(), nil
}

// passwordDigest pre-hashes the password so bcrypt never sees more than its
// 72 byte input limit. The digest is base64 encoded to keep NUL bytes out.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func matchesOptional(value *string, substr string) bool {
	return value != nil && utils.ContainsFold(*value, substr)
}
