package graphql_model

import (
	"fmt"

	"github.com/graph-gophers/graphql-go"
)

type UserCreateInput struct {
	Username  string
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

type UserUpdateInput struct {
	Email     graphql.NullString
	FirstName graphql.NullString
	LastName  graphql.NullString
}

type UserSearchInput struct {
	Username  *string
	FirstName *string
	LastName  *string
}

type PostCreateInput struct {
	Title    *string
	Content  string
	AuthorID graphql.ID
}

type PostUpdateInput struct {
	Title   graphql.NullString
	Content graphql.NullString
}

type ProfileUpdateInput struct {
	Bio            graphql.NullString
	Location       graphql.NullString
	Website        graphql.NullString
	ProfilePicture graphql.NullString
	CoverPicture   graphql.NullString
	SocialLinks    NullSocialLinkInputs
}

type SocialLinkInput struct {
	Platform string
	URL      string
}

// NullSocialLinkInputs is a [SocialLinkInput] list that can be null. Set is
// true when the field was sent, Value is nil when it was sent as null.
// Null entries inside the list are kept.
type NullSocialLinkInputs struct {
	Value *[]*SocialLinkInput
	Set   bool
}

func (NullSocialLinkInputs) ImplementsGraphQLType(name string) bool {
	return name == "[SocialLinkInput]"
}

func (n *NullSocialLinkInputs) UnmarshalGraphQL(input interface{}) error {
	n.Set = true
	if input == nil {
		return nil
	}

	items, ok := input.([]interface{})
	if !ok {
		// a single value is coerced to a list of one
		items = []interface{}{input}
	}

	links := make([]*SocialLinkInput, 0, len(items))
	for _, item := range items {
		if item == nil {
			links = append(links, nil)
			continue
		}
		link, err := unmarshalSocialLinkInput(item)
		if err != nil {
			return err
		}
		links = append(links, link)
	}
	n.Value = &links
	return nil
}

func (n *NullSocialLinkInputs) Nullable() {}

func unmarshalSocialLinkInput(input interface{}) (*SocialLinkInput, error) {
	fields, ok := input.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("wrong type for SocialLinkInput: %T", input)
	}
	platform, ok := fields["platform"].(string)
	if !ok {
		return nil, fmt.Errorf("wrong type for SocialLinkInput.platform: %T", fields["platform"])
	}
	url, ok := fields["url"].(string)
	if !ok {
		return nil, fmt.Errorf("wrong type for SocialLinkInput.url: %T", fields["url"])
	}
	return &SocialLinkInput{Platform: platform, URL: url}, nil
}
