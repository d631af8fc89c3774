package models

type SocialLink struct {
	Platform string
	URL      string
}

type Profile struct {
	ID             string
	UserID         string
	Bio            *string
	Location       *string
	Website        *string
	ProfilePicture *string
	CoverPicture   *string
	Followers      int
	Following      int
	SocialLinks    []*SocialLink
}

// NewEmptyProfile builds the blank profile that accompanies every new user.
func NewEmptyProfile(id, userID string) *Profile {
	blank := func() *string {
		s := ""
		return &s
	}
	return &Profile{
		ID:             id,
		UserID:         userID,
		Bio:            blank(),
		Location:       blank(),
		Website:        blank(),
		ProfilePicture: blank(),
		CoverPicture:   blank(),
		SocialLinks:    []*SocialLink{},
	}
}

func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Bio = cloneString(p.Bio)
	c.Location = cloneString(p.Location)
	c.Website = cloneString(p.Website)
	c.ProfilePicture = cloneString(p.ProfilePicture)
	c.CoverPicture = cloneString(p.CoverPicture)
	c.SocialLinks = cloneSocialLinks(p.SocialLinks)
	return &c
}

// cloneSocialLinks keeps nil entries and a nil sequence as they are.
func cloneSocialLinks(links []*SocialLink) []*SocialLink {
	if links == nil {
		return nil
	}
	c := make([]*SocialLink, len(links))
	for i, link := range links {
		if link != nil {
			l := *link
			c[i] = &l
		}
	}
	return c
}

// ProfilePatch is a shallow merge applied by updateProfile. A set SocialLinks
// replaces the stored sequence as a whole, an explicit null clears it.
type ProfilePatch struct {
	Bio            Nullable[string]
	Location       Nullable[string]
	Website        Nullable[string]
	ProfilePicture Nullable[string]
	CoverPicture   Nullable[string]
	SocialLinks    Nullable[[]*SocialLink]
}

func (p ProfilePatch) Apply(profile *Profile) *Profile {
	merged := profile.Clone()
	apply := func(dst **string, v Nullable[string]) {
		if v.Set {
			*dst = cloneString(v.Value)
		}
	}
	apply(&merged.Bio, p.Bio)
	apply(&merged.Location, p.Location)
	apply(&merged.Website, p.Website)
	apply(&merged.ProfilePicture, p.ProfilePicture)
	apply(&merged.CoverPicture, p.CoverPicture)
	if p.SocialLinks.Set {
		merged.SocialLinks = nil
		if p.SocialLinks.Value != nil {
			merged.SocialLinks = cloneSocialLinks(*p.SocialLinks.Value)
		}
	}
	return merged
}
