package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/customeros/socialstack/internal/models"
)

type ProfileResolver struct {
	root    *Resolver
	profile *models.Profile
}

func (r *Resolver) newProfileResolver(profile *models.Profile) *ProfileResolver {
	if profile == nil {
		return nil
	}
	return &ProfileResolver{root: r, profile: profile}
}

func (p *ProfileResolver) ID() graphql.ID {
	return graphql.ID(p.profile.ID)
}

// User resolves the owning user from the live collection.
func (p *ProfileResolver) User(ctx context.Context) (*UserResolver, error) {
	user, err := p.root.repositories.UserRepository.GetByID(ctx, p.profile.UserID)
	if err != nil {
		return nil, err
	}
	return p.root.newUserResolver(user), nil
}

func (p *ProfileResolver) Bio() *string {
	return p.profile.Bio
}

func (p *ProfileResolver) Location() *string {
	return p.profile.Location
}

func (p *ProfileResolver) Website() *string {
	return p.profile.Website
}

func (p *ProfileResolver) ProfilePicture() *string {
	return p.profile.ProfilePicture
}

func (p *ProfileResolver) CoverPicture() *string {
	return p.profile.CoverPicture
}

func (p *ProfileResolver) Followers() *int32 {
	n := int32(p.profile.Followers)
	return &n
}

func (p *ProfileResolver) Following() *int32 {
	n := int32(p.profile.Following)
	return &n
}

func (p *ProfileResolver) SocialLinks() *[]*SocialLinkResolver {
	if p.profile.SocialLinks == nil {
		return nil
	}
	result := make([]*SocialLinkResolver, 0, len(p.profile.SocialLinks))
	for _, link := range p.profile.SocialLinks {
		if link == nil {
			result = append(result, nil)
			continue
		}
		result = append(result, &SocialLinkResolver{link: *link})
	}
	return &result
}

type SocialLinkResolver struct {
	link models.SocialLink
}

func (s *SocialLinkResolver) Platform() string {
	return s.link.Platform
}

func (s *SocialLinkResolver) URL() string {
	return s.link.URL
}
