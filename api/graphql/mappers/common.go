package mappers

import (
	"github.com/graph-gophers/graphql-go"

	"github.com/customeros/socialstack/internal/models"
)

func MapNullString(s graphql.NullString) models.Nullable[string] {
	return models.Nullable[string]{Value: s.Value, Set: s.Set}
}
