package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/customeros/socialstack/api/graphql/graphql_model"
	"github.com/customeros/socialstack/api/graphql/mappers"
)

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Input graphql_model.UserCreateInput
}) (*UserResolver, error) {
	ctx, done := startResolver(ctx, "createUser")

	user, err := r.repositories.UserRepository.Create(ctx, mappers.MapGraphUserCreateInput(args.Input))
	if err != nil {
		return nil, done(err)
	}
	return r.newUserResolver(user), done(nil)
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID    graphql.ID
	Input graphql_model.UserUpdateInput
}) (*UserResolver, error) {
	ctx, done := startResolver(ctx, "updateUser")

	user, err := r.repositories.UserRepository.Update(ctx, string(args.ID), mappers.MapGraphUserUpdateInput(args.Input))
	if err != nil {
		return nil, done(err)
	}
	return r.newUserResolver(user), done(nil)
}

func (r *Resolver) AddPost(ctx context.Context, args struct {
	Input graphql_model.PostCreateInput
}) (*PostResolver, error) {
	ctx, done := startResolver(ctx, "addPost")

	post, err := r.repositories.PostRepository.Create(ctx, mappers.MapGraphPostCreateInput(args.Input))
	if err != nil {
		return nil, done(err)
	}
	return r.newPostResolver(post), done(nil)
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID    graphql.ID
	Input graphql_model.PostUpdateInput
}) (*PostResolver, error) {
	ctx, done := startResolver(ctx, "updatePost")

	post, err := r.repositories.PostRepository.Update(ctx, string(args.ID), mappers.MapGraphPostUpdateInput(args.Input))
	if err != nil {
		return nil, done(err)
	}
	return r.newPostResolver(post), done(nil)
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (*bool, error) {
	ctx, done := startResolver(ctx, "deletePost")

	deleted, err := r.repositories.PostRepository.Delete(ctx, string(args.ID))
	if err != nil {
		return nil, done(err)
	}
	return &deleted, done(nil)
}

func (r *Resolver) UpdateProfile(ctx context.Context, args struct {
	UserID graphql.ID
	Input  graphql_model.ProfileUpdateInput
}) (*ProfileResolver, error) {
	ctx, done := startResolver(ctx, "updateProfile")

	profile, err := r.repositories.ProfileRepository.Update(ctx, string(args.UserID), mappers.MapGraphProfileUpdateInput(args.Input))
	if err != nil {
		return nil, done(err)
	}
	return r.newProfileResolver(profile), done(nil)
}
