package repository

import (
	"github.com/customeros/socialstack/interfaces"
)

type Repositories struct {
	Store             *Store
	UserRepository    interfaces.UserRepository
	PostRepository    interfaces.PostRepository
	ProfileRepository interfaces.ProfileRepository
}

func InitRepositories(store *Store, passwordHashCost int) *Repositories {
	return &Repositories{
		Store:             store,
		UserRepository:    NewUserRepository(store, passwordHashCost),
		PostRepository:    NewPostRepository(store),
		ProfileRepository: NewProfileRepository(store),
	}
}
