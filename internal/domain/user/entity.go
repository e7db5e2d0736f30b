package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type User struct {
	id    int64
	name  string
	email Email
}

func NewUser(name string, email Email) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{name: name, email: email}, nil
}

func ReconstructUser(id int64, name string, email Email) *User {
	return &User{id: id, name: name, email: email}
}

// Rename and ChangeEmail back the partial update; nil-ish (empty) input is
// filtered out before reaching the entity.
func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.name = name
	return nil
}

func (u *User) ChangeEmail(email Email) {
	u.email = email
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() Email { return u.email }
