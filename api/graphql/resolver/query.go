package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/customeros/socialstack/api/graphql/graphql_model"
	"github.com/customeros/socialstack/api/graphql/mappers"
	"github.com/customeros/socialstack/internal/utils"
)

func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	ctx, done := startResolver(ctx, "user")

	user, err := r.repositories.UserRepository.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, done(err)
	}
	return r.newUserResolver(user), done(nil)
}

func (r *Resolver) UsersByName(ctx context.Context, args struct{ Name string }) (*[]*UserResolver, error) {
	ctx, done := startResolver(ctx, "usersByName")

	users, err := r.repositories.UserRepository.FindByName(ctx, args.Name)
	if err != nil {
		return nil, done(err)
	}
	return r.newUserResolvers(users), done(nil)
}

func (r *Resolver) SearchUsers(ctx context.Context, args struct {
	Filter *graphql_model.UserSearchInput
}) (*[]*UserResolver, error) {
	ctx, done := startResolver(ctx, "searchUsers")

	users, err := r.repositories.UserRepository.Search(ctx, mappers.MapGraphUserSearchInput(args.Filter))
	if err != nil {
		return nil, done(err)
	}
	return r.newUserResolvers(users), done(nil)
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	ctx, done := startResolver(ctx, "post")

	post, err := r.repositories.PostRepository.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, done(err)
	}
	return r.newPostResolver(post), done(nil)
}

func (r *Resolver) Posts(ctx context.Context, args struct {
	Limit  *int32
	Offset *int32
}) (*[]*PostResolver, error) {
	ctx, done := startResolver(ctx, "posts")

	limit := int(utils.GetOrDefault(args.Limit, defaultPostsLimit))
	offset := int(utils.GetOrDefault(args.Offset, defaultPostsOffset))

	posts, err := r.repositories.PostRepository.List(ctx, limit, offset)
	if err != nil {
		return nil, done(err)
	}
	return r.newPostResolvers(posts), done(nil)
}

func (r *Resolver) UserPosts(ctx context.Context, args struct{ UserID graphql.ID }) (*[]*PostResolver, error) {
	ctx, done := startResolver(ctx, "userPosts")

	posts, err := r.repositories.PostRepository.ListByAuthor(ctx, string(args.UserID))
	if err != nil {
		return nil, done(err)
	}
	return r.newPostResolvers(posts), done(nil)
}

func (r *Resolver) Profile(ctx context.Context, args struct{ UserID graphql.ID }) (*ProfileResolver, error) {
	ctx, done := startResolver(ctx, "profile")

	profile, err := r.repositories.ProfileRepository.GetByUserID(ctx, string(args.UserID))
	if err != nil {
		return nil, done(err)
	}
	return r.newProfileResolver(profile), done(nil)
}
