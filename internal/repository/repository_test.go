package repository

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/customeros/socialstack/internal/errors"
	"github.com/customeros/socialstack/internal/models"
	"github.com/customeros/socialstack/internal/utils"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setupRepositories(t *testing.T) (*Repositories, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore()
	store.now = clock.Now
	return InitRepositories(store, bcrypt.MinCost), clock
}

func createUser(t *testing.T, repos *Repositories, username string, firstName, lastName *string) *models.User {
	t.Helper()
	user, err := repos.UserRepository.Create(context.Background(), models.UserCreateInput{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret",
		FirstName: firstName,
		LastName:  lastName,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func createPost(t *testing.T, repos *Repositories, authorID, content string) *models.Post {
	t.Helper()
	post, err := repos.PostRepository.Create(context.Background(), models.PostCreateInput{
		Title:    utils.Ptr("title " + content),
		Content:  content,
		AuthorID: authorID,
	})
	require.NoError(t, err)
	return post
}

func TestUserRepository_Create(t *testing.T) {
	repos, clock := setupRepositories(t)
	ctx := context.Background()

	user := createUser(t, repos, "al", utils.Ptr("A"), utils.Ptr("L"))

	assert.Equal(t, "0", user.ID)
	assert.Equal(t, "al", user.Username)
	assert.Equal(t, "al@example.com", user.Email)
	assert.Equal(t, clock.Now(), user.DateJoined)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, passwordDigest("secret")))
	assert.Error(t, bcrypt.CompareHashAndPassword(user.PasswordHash, passwordDigest("other")))

	profile, err := repos.ProfileRepository.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "0", profile.ID)
	assert.Equal(t, "", *profile.Bio)
	assert.Equal(t, "", *profile.Location)
	assert.Equal(t, "", *profile.Website)
	assert.Equal(t, "", *profile.ProfilePicture)
	assert.Equal(t, "", *profile.CoverPicture)
	assert.Zero(t, profile.Followers)
	assert.Zero(t, profile.Following)
	assert.Empty(t, profile.SocialLinks)
}

func TestUserRepository_Create_LongPassword(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	password := strings.Repeat("x", 100)

	user, err := repos.UserRepository.Create(ctx, models.UserCreateInput{
		Username: "al",
		Email:    "al@example.com",
		Password: password,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, passwordDigest(password)))
	// bcrypt alone would ignore everything after byte 72
	assert.Error(t, bcrypt.CompareHashAndPassword(user.PasswordHash, passwordDigest(strings.Repeat("x", 72))))

	profile, err := repos.ProfileRepository.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, profile)
}

func TestUserRepository_Create_AllowsDuplicatesWithDistinctIDs(t *testing.T) {
	repos, _ := setupRepositories(t)

	first := createUser(t, repos, "dup", nil, nil)
	second := createUser(t, repos, "dup", nil, nil)

	assert.Equal(t, "0", first.ID)
	assert.Equal(t, "1", second.ID)
	assert.Equal(t, Stats{Users: 2, Profiles: 2}, repos.Store.Stats())
}

func TestUserRepository_GetByID(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	created := createUser(t, repos, "al", nil, nil)

	found, err := repos.UserRepository.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	missing, err := repos.UserRepository.GetByID(ctx, "42")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_ReturnedRecordsAreCopies(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	created := createUser(t, repos, "al", utils.Ptr("Ann"), nil)

	*created.FirstName = "changed"
	created.Username = "changed"

	found, err := repos.UserRepository.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", *found.FirstName)
	assert.Equal(t, "al", found.Username)
}

func TestUserRepository_FindByName(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	createUser(t, repos, "ann", utils.Ptr("Annabel"), utils.Ptr("Smith"))
	createUser(t, repos, "bob", utils.Ptr("Bob"), utils.Ptr("Hannigan"))
	createUser(t, repos, "carl", utils.Ptr("Carl"), utils.Ptr("Jones"))

	users, err := repos.UserRepository.FindByName(ctx, "ANN")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ann", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	users, err = repos.UserRepository.FindByName(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, users)
}

// Users missing a first or last name are skipped for that name instead of
// failing the whole lookup.
func TestUserRepository_FindByName_AbsentNamesNeverMatch(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	createUser(t, repos, "nameless", nil, nil)
	createUser(t, repos, "lastonly", nil, utils.Ptr("Annand"))

	users, err := repos.UserRepository.FindByName(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "lastonly", users[0].Username)
}

func TestUserRepository_Search(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	createUser(t, repos, "ann.smith", utils.Ptr("Ann"), utils.Ptr("Smith"))
	createUser(t, repos, "ann.jones", utils.Ptr("Ann"), utils.Ptr("Jones"))
	createUser(t, repos, "bob.smith", utils.Ptr("Bob"), utils.Ptr("Smith"))
	createUser(t, repos, "anon", nil, nil)

	tests := []struct {
		name     string
		filter   *models.UserSearchFilter
		expected []string
	}{
		{"nil filter", nil, []string{"ann.smith", "ann.jones", "bob.smith", "anon"}},
		{"empty filter", &models.UserSearchFilter{}, []string{"ann.smith", "ann.jones", "bob.smith", "anon"}},
		{"username only", &models.UserSearchFilter{Username: utils.Ptr("ANN")}, []string{"ann.smith", "ann.jones"}},
		{"conjunctive", &models.UserSearchFilter{FirstName: utils.Ptr("ann"), LastName: utils.Ptr("smi")}, []string{"ann.smith"}},
		{"blank field ignored", &models.UserSearchFilter{Username: utils.Ptr(""), LastName: utils.Ptr("smith")}, []string{"ann.smith", "bob.smith"}},
		{"absent name never matches", &models.UserSearchFilter{Username: utils.Ptr("an"), FirstName: utils.Ptr("a")}, []string{"ann.smith", "ann.jones"}},
		{"no match", &models.UserSearchFilter{Username: utils.Ptr("zed")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repos.UserRepository.Search(ctx, tt.filter)
			require.NoError(t, err)
			usernames := []string{}
			for _, u := range users {
				usernames = append(usernames, u.Username)
			}
			assert.Equal(t, tt.expected, usernames)
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	repos, clock := setupRepositories(t)
	ctx := context.Background()
	created := createUser(t, repos, "al", utils.Ptr("A"), utils.Ptr("L"))
	clock.Advance(time.Hour)

	updated, err := repos.UserRepository.Update(ctx, created.ID, models.UserPatch{
		Email:    models.NullableOf("new@example.com"),
		LastName: models.Null[string](),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "al", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "A", *updated.FirstName)
	assert.Nil(t, updated.LastName)
	assert.Equal(t, created.DateJoined, updated.DateJoined)

	stored, err := repos.UserRepository.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUserRepository_Update_NullEmailKeepsValue(t *testing.T) {
	repos, _ := setupRepositories(t)
	created := createUser(t, repos, "al", nil, nil)

	updated, err := repos.UserRepository.Update(context.Background(), created.ID, models.UserPatch{
		Email: models.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "al@example.com", updated.Email)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repos, _ := setupRepositories(t)

	updated, err := repos.UserRepository.Update(context.Background(), "7", models.UserPatch{
		Email: models.NullableOf("x@example.com"),
	})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPostRepository_Create(t *testing.T) {
	repos, clock := setupRepositories(t)
	author := createUser(t, repos, "al", utils.Ptr("A"), utils.Ptr("L"))

	post := createPost(t, repos, author.ID, "hi")

	assert.Equal(t, "0", post.ID)
	assert.Equal(t, "hi", post.Content)
	assert.Equal(t, "title hi", *post.Title)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, *author, post.Author)
	assert.Equal(t, clock.Now(), post.CreatedAt)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Zero(t, post.Likes)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)
}

func TestPostRepository_Create_UnknownAuthor(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	createUser(t, repos, "al", nil, nil)

	post, err := repos.PostRepository.Create(ctx, models.PostCreateInput{Content: "hi", AuthorID: "nonexistent"})

	assert.ErrorIs(t, err, apperrors.ErrAuthorNotFound)
	assert.Nil(t, post)
	assert.Zero(t, repos.Store.Stats().Posts)

	// the failed attempt does not consume an id
	created := createPost(t, repos, "0", "first")
	assert.Equal(t, "0", created.ID)
}

func TestPostRepository_GetByID_RefreshesStoredAuthor(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	author := createUser(t, repos, "al", utils.Ptr("A"), nil)
	post := createPost(t, repos, author.ID, "hi")

	_, err := repos.UserRepository.Update(ctx, author.ID, models.UserPatch{FirstName: models.NullableOf("Alice")})
	require.NoError(t, err)

	// stale until the single-post lookup refreshes it
	byAuthor, err := repos.PostRepository.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "A", *byAuthor[0].Author.FirstName)

	found, err := repos.PostRepository.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", *found.Author.FirstName)

	byAuthor, err = repos.PostRepository.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", *byAuthor[0].Author.FirstName)

	missing, err := repos.PostRepository.GetByID(ctx, "99")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostRepository_List(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	author := createUser(t, repos, "al", nil, nil)
	for i := 0; i < 5; i++ {
		createPost(t, repos, author.ID, "post "+strconv.Itoa(i))
	}

	tests := []struct {
		name          string
		limit, offset int
		expected      []string
	}{
		{"window", 2, 1, []string{"1", "2"}},
		{"default window", 10, 0, []string{"0", "1", "2", "3", "4"}},
		{"truncated", 10, 3, []string{"3", "4"}},
		{"offset past end", 2, 5, []string{}},
		{"zero limit", 0, 0, []string{}},
		{"negative offset clamped", 2, -3, []string{"0", "1"}},
		{"negative limit", -1, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, err := repos.PostRepository.List(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			ids := []string{}
			for _, p := range posts {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestPostRepository_List_UsesLiveAuthorWithoutTouchingStorage(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	author := createUser(t, repos, "al", nil, nil)
	createPost(t, repos, author.ID, "hi")

	_, err := repos.UserRepository.Update(ctx, author.ID, models.UserPatch{Email: models.NullableOf("live@example.com")})
	require.NoError(t, err)

	posts, err := repos.PostRepository.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "live@example.com", posts[0].Author.Email)

	stored, err := repos.PostRepository.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "al@example.com", stored[0].Author.Email)
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	al := createUser(t, repos, "al", nil, nil)
	bo := createUser(t, repos, "bo", nil, nil)
	createPost(t, repos, al.ID, "a1")
	createPost(t, repos, bo.ID, "b1")
	createPost(t, repos, al.ID, "a2")

	posts, err := repos.PostRepository.ListByAuthor(ctx, al.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "a1", posts[0].Content)
	assert.Equal(t, "a2", posts[1].Content)

	posts, err = repos.PostRepository.ListByAuthor(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_Update(t *testing.T) {
	repos, clock := setupRepositories(t)
	ctx := context.Background()
	author := createUser(t, repos, "al", nil, nil)
	post := createPost(t, repos, author.ID, "hi")
	clock.Advance(time.Minute)

	updated, err := repos.PostRepository.Update(ctx, post.ID, models.PostPatch{
		Content: models.NullableOf("edited"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, "title hi", *updated.Title)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
	assert.Equal(t, post.Author, updated.Author)
	assert.Equal(t, post.Likes, updated.Likes)
	assert.Equal(t, post.Comments, updated.Comments)

	updated, err = repos.PostRepository.Update(ctx, post.ID, models.PostPatch{
		Title:   models.Null[string](),
		Content: models.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Title)
	assert.Equal(t, "edited", updated.Content)
}

func TestPostRepository_Update_NotFound(t *testing.T) {
	repos, _ := setupRepositories(t)

	updated, err := repos.PostRepository.Update(context.Background(), "3", models.PostPatch{Content: models.NullableOf("x")})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPostRepository_Delete(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	author := createUser(t, repos, "al", nil, nil)
	for i := 0; i < 3; i++ {
		createPost(t, repos, author.ID, strconv.Itoa(i))
	}

	deleted, err := repos.PostRepository.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 2, repos.Store.Stats().Posts)
	// the vacated tail slot does not keep the removed post reachable
	tail := repos.Store.posts[:3]
	assert.Nil(t, tail[2])

	found, err := repos.PostRepository.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err = repos.PostRepository.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, deleted)

	posts, err := repos.PostRepository.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "0", posts[0].ID)
	assert.Equal(t, "2", posts[1].ID)

	// ids are never reused
	next := createPost(t, repos, author.ID, "next")
	assert.Equal(t, "3", next.ID)
}

func TestProfileRepository_Update(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	user := createUser(t, repos, "al", nil, nil)

	updated, err := repos.ProfileRepository.Update(ctx, user.ID, models.ProfilePatch{
		Bio:         models.NullableOf("hello"),
		Website:     models.Null[string](),
		SocialLinks: models.NullableOf([]*models.SocialLink{{Platform: "x", URL: "https://x.com/al"}}),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "hello", *updated.Bio)
	assert.Nil(t, updated.Website)
	assert.Equal(t, "", *updated.Location)
	assert.Len(t, updated.SocialLinks, 1)

	// links are replaced, not appended
	updated, err = repos.ProfileRepository.Update(ctx, user.ID, models.ProfilePatch{
		SocialLinks: models.NullableOf([]*models.SocialLink{{Platform: "gh", URL: "https://github.com/al"}, nil, {Platform: "web", URL: "https://al.dev"}}),
	})
	require.NoError(t, err)
	assert.Equal(t, []*models.SocialLink{{Platform: "gh", URL: "https://github.com/al"}, nil, {Platform: "web", URL: "https://al.dev"}}, updated.SocialLinks)
	assert.Equal(t, "hello", *updated.Bio)

	// omitted links keep the stored sequence
	updated, err = repos.ProfileRepository.Update(ctx, user.ID, models.ProfilePatch{Location: models.NullableOf("Berlin")})
	require.NoError(t, err)
	assert.Len(t, updated.SocialLinks, 3)
	assert.Equal(t, "Berlin", *updated.Location)

	// an explicit null clears the links
	updated, err = repos.ProfileRepository.Update(ctx, user.ID, models.ProfilePatch{SocialLinks: models.Null[[]*models.SocialLink]()})
	require.NoError(t, err)
	assert.Nil(t, updated.SocialLinks)

	stored, err := repos.ProfileRepository.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SocialLinks)
}

func TestProfileRepository_NotFound(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()

	profile, err := repos.ProfileRepository.GetByUserID(ctx, "0")
	assert.NoError(t, err)
	assert.Nil(t, profile)

	profile, err = repos.ProfileRepository.Update(ctx, "0", models.ProfilePatch{Bio: models.NullableOf("x")})
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	repos, _ := setupRepositories(t)
	ctx := context.Background()
	author := createUser(t, repos, "al", nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repos.PostRepository.Create(ctx, models.PostCreateInput{Content: "c", AuthorID: author.ID})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	posts, err := repos.PostRepository.List(ctx, 100, 0)
	require.NoError(t, err)
	require.Len(t, posts, 50)
	seen := map[string]bool{}
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Equal(t, Stats{Users: 1, Profiles: 1, Posts: 50}, repos.Store.Stats())
}
