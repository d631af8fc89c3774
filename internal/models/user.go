package models

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
	FirstName    *string
	LastName     *string
	DateJoined   time.Time
}

// Clone returns a deep copy so callers never share memory with the store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	c.FirstName = cloneString(u.FirstName)
	c.LastName = cloneString(u.LastName)
	return &c
}

type UserCreateInput struct {
	Username  string
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// UserPatch is a shallow merge applied by updateUser. Email is non-nullable,
// so an explicit null for it leaves the stored value in place.
type UserPatch struct {
	Email     Nullable[string]
	FirstName Nullable[string]
	LastName  Nullable[string]
}

func (p UserPatch) Apply(u *User) *User {
	merged := u.Clone()
	if p.Email.Set && p.Email.Value != nil {
		merged.Email = *p.Email.Value
	}
	if p.FirstName.Set {
		merged.FirstName = cloneString(p.FirstName.Value)
	}
	if p.LastName.Set {
		merged.LastName = cloneString(p.LastName.Value)
	}
	return merged
}

// UserSearchFilter fields are optional; nil or empty means no constraint.
type UserSearchFilter struct {
	Username  *string
	FirstName *string
	LastName  *string
}
