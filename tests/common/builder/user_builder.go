//go:build unit || e2e

package builder

import (
	"lendhub/internal/domain/user"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
)

type UserBuilder struct {
	ID    int64
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    200,
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.Name, email)
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *UserBuilder) WithID(id int64) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}
