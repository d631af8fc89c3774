package resolver

import (
	"github.com/graph-gophers/graphql-go"

	"github.com/customeros/socialstack/internal/models"
)

type PostResolver struct {
	root *Resolver
	post *models.Post
}

func (r *Resolver) newPostResolver(post *models.Post) *PostResolver {
	if post == nil {
		return nil
	}
	return &PostResolver{root: r, post: post}
}

func (r *Resolver) newPostResolvers(posts []*models.Post) *[]*PostResolver {
	result := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		result = append(result, r.newPostResolver(p))
	}
	return &result
}

func (p *PostResolver) ID() graphql.ID {
	return graphql.ID(p.post.ID)
}

func (p *PostResolver) Title() *string {
	return p.post.Title
}

func (p *PostResolver) Content() string {
	return p.post.Content
}

func (p *PostResolver) Author() *UserResolver {
	author := p.post.Author
	return p.root.newUserResolver(&author)
}

func (p *PostResolver) CreatedAt() *string {
	s := models.FormatTimestamp(p.post.CreatedAt)
	return &s
}

func (p *PostResolver) UpdatedAt() *string {
	s := models.FormatTimestamp(p.post.UpdatedAt)
	return &s
}

func (p *PostResolver) Likes() *int32 {
	likes := int32(p.post.Likes)
	return &likes
}

func (p *PostResolver) Comments() *[]*CommentResolver {
	result := make([]*CommentResolver, 0, len(p.post.Comments))
	for i := range p.post.Comments {
		result = append(result, &CommentResolver{root: p.root, comment: &p.post.Comments[i]})
	}
	return &result
}

type CommentResolver struct {
	root    *Resolver
	comment *models.Comment
}

func (c *CommentResolver) ID() graphql.ID {
	return graphql.ID(c.comment.ID)
}

func (c *CommentResolver) Content() string {
	return c.comment.Content
}

func (c *CommentResolver) Author() *UserResolver {
	author := c.comment.Author
	return c.root.newUserResolver(&author)
}

func (c *CommentResolver) CreatedAt() *string {
	s := models.FormatTimestamp(c.comment.CreatedAt)
	return &s
}
