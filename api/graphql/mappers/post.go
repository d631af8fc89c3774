package mappers

import (
	"github.com/customeros/socialstack/api/graphql/graphql_model"
	"github.com/customeros/socialstack/internal/models"
)

func MapGraphPostCreateInput(input graphql_model.PostCreateInput) models.PostCreateInput {
	return models.PostCreateInput{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: string(input.AuthorID),
	}
}

func MapGraphPostUpdateInput(input graphql_model.PostUpdateInput) models.PostPatch {
	return models.PostPatch{
		Title:   MapNullString(input.Title),
		Content: MapNullString(input.Content),
	}
}
