package models

import "time"

// Comment is part of the exposed shape only; nothing creates one.
type Comment struct {
	ID        string
	Content   string
	Author    User
	CreatedAt time.Time
}

type Post struct {
	ID        string
	Title     *string
	Content   string
	AuthorID  string
	Author    User // snapshot taken when the post was written
	CreatedAt time.Time
	UpdatedAt time.Time
	Likes     int
	Comments  []Comment
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	c.Title = cloneString(p.Title)
	c.Author = *p.Author.Clone()
	c.Comments = append([]Comment{}, p.Comments...)
	return &c
}

type PostCreateInput struct {
	Title    *string
	Content  string
	AuthorID string
}

// PostPatch is a shallow merge applied by updatePost. Content is
// non-nullable, so an explicit null for it is ignored.
type PostPatch struct {
	Title   Nullable[string]
	Content Nullable[string]
}

func (p PostPatch) Apply(post *Post, now time.Time) *Post {
	merged := post.Clone()
	if p.Title.Set {
		merged.Title = cloneString(p.Title.Value)
	}
	if p.Content.Set && p.Content.Value != nil {
		merged.Content = *p.Content.Value
	}
	merged.UpdatedAt = now
	return merged
}
