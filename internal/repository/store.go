package repository

import (
	"strconv"
	"sync"
	"time"

	"github.com/customeros/socialstack/internal/models"
)

// Store owns the three ordered collections and their id counters. All
// lookups are linear scans where the first match wins. A single RWMutex
// covers every read-modify-write sequence.
type Store struct {
	mu sync.RWMutex

	users    []*models.User
	profiles []*models.Profile
	posts    []*models.Post

	userIDCounter    int
	profileIDCounter int
	postIDCounter    int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:    []*models.User{},
		profiles: []*models.Profile{},
		posts:    []*models.Post{},
		now:      time.Now,
	}
}

// Stats is a point-in-time size of each collection.
type Stats struct {
	Users    int
	Profiles int
	Posts    int
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Users: len(s.users), Profiles: len(s.profiles), Posts: len(s.posts)}
}

// callers must hold s.mu

func (s *Store) nextUserID() string {
	id := strconv.Itoa(s.userIDCounter)
	s.userIDCounter++
	return id
}

func (s *Store) nextProfileID() string {
	id := strconv.Itoa(s.profileIDCounter)
	s.profileIDCounter++
	return id
}

func (s *Store) nextPostID() string {
	id := strconv.Itoa(s.postIDCounter)
	s.postIDCounter++
	return id
}

func (s *Store) userIndex(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findUser(id string) *models.User {
	if i := s.userIndex(id); i >= 0 {
		return s.users[i]
	}
	return nil
}

func (s *Store) postIndex(id string) int {
	for i, p := range s.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) profileIndexByUser(userID string) int {
	for i, p := range s.profiles {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}

// withLiveAuthor returns a copy of the post with its author snapshot
// replaced by the current user record, when that user still exists.
func (s *Store) withLiveAuthor(post *models.Post) *models.Post {
	c := post.Clone()
	if author := s.findUser(post.AuthorID); author != nil {
		c.Author = *author.Clone()
	}
	return c
}
