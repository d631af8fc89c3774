package mappers

import (
	"github.com/customeros/socialstack/api/graphql/graphql_model"
	"github.com/customeros/socialstack/internal/models"
)

// MapGraphProfileUpdateInput keeps null list entries. An omitted socialLinks
// leaves the stored links untouched, an explicit null clears them.
func MapGraphProfileUpdateInput(input graphql_model.ProfileUpdateInput) models.ProfilePatch {
	patch := models.ProfilePatch{
		Bio:            MapNullString(input.Bio),
		Location:       MapNullString(input.Location),
		Website:        MapNullString(input.Website),
		ProfilePicture: MapNullString(input.ProfilePicture),
		CoverPicture:   MapNullString(input.CoverPicture),
	}
	if !input.SocialLinks.Set {
		return patch
	}
	if input.SocialLinks.Value == nil {
		patch.SocialLinks = models.Null[[]*models.SocialLink]()
		return patch
	}
	links := make([]*models.SocialLink, 0, len(*input.SocialLinks.Value))
	for _, link := range *input.SocialLinks.Value {
		if link == nil {
			links = append(links, nil)
			continue
		}
		links = append(links, &models.SocialLink{
			Platform: link.Platform,
			URL:      link.URL,
		})
	}
	patch.SocialLinks = models.NullableOf(links)
	return patch
}
