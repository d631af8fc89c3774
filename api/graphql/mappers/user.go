package mappers

import (
	"github.com/customeros/socialstack/api/graphql/graphql_model"
	"github.com/customeros/socialstack/internal/models"
)

func MapGraphUserCreateInput(input graphql_model.UserCreateInput) models.UserCreateInput {
	return models.UserCreateInput{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
}

func MapGraphUserUpdateInput(input graphql_model.UserUpdateInput) models.UserPatch {
	return models.UserPatch{
		Email:     MapNullString(input.Email),
		FirstName: MapNullString(input.FirstName),
		LastName:  MapNullString(input.LastName),
	}
}

func MapGraphUserSearchInput(input *graphql_model.UserSearchInput) *models.UserSearchFilter {
	if input == nil {
		return nil
	}
	return &models.UserSearchFilter{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
}
