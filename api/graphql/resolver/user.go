package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/customeros/socialstack/internal/models"
)

type UserResolver struct {
	root *Resolver
	user *models.User
}

func (r *Resolver) newUserResolver(user *models.User) *UserResolver {
	if user == nil {
		return nil
	}
	return &UserResolver{root: r, user: user}
}

func (r *Resolver) newUserResolvers(users []*models.User) *[]*UserResolver {
	result := make([]*UserResolver, 0, len(users))
	for _, u := range users {
		result = append(result, r.newUserResolver(u))
	}
	return &result
}

func (u *UserResolver) ID() graphql.ID {
	return graphql.ID(u.user.ID)
}

func (u *UserResolver) Username() string {
	return u.user.Username
}

func (u *UserResolver) Email() string {
	return u.user.Email
}

func (u *UserResolver) FirstName() *string {
	return u.user.FirstName
}

func (u *UserResolver) LastName() *string {
	return u.user.LastName
}

func (u *UserResolver) DateJoined() *string {
	s := models.FormatTimestamp(u.user.DateJoined)
	return &s
}

// Profile is joined at read time by owning user id.
func (u *UserResolver) Profile(ctx context.Context) (*ProfileResolver, error) {
	profile, err := u.root.repositories.ProfileRepository.GetByUserID(ctx, u.user.ID)
	if err != nil {
		return nil, err
	}
	return u.root.newProfileResolver(profile), nil
}

// Posts is joined at read time; the posts keep their stored author snapshot.
func (u *UserResolver) Posts(ctx context.Context) (*[]*PostResolver, error) {
	posts, err := u.root.repositories.PostRepository.ListByAuthor(ctx, u.user.ID)
	if err != nil {
		return nil, err
	}
	return u.root.newPostResolvers(posts), nil
}
