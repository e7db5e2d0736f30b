//go:build unit || e2e

package builder

import (
	"lendhub/internal/domain/item"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
)

type ItemBuilder struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          10,
		Name:        "cordless drill",
		Description: "18V drill with two batteries",
		Available:   true,
		OwnerID:     100,
	}
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.Name, b.Description, b.Available, b.OwnerID, b.RequestID)
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildSnapshot() *commands.ItemSnapshot {
	return &commands.ItemSnapshot{
		ID:        b.ID,
		Available: b.Available,
		OwnerID:   b.OwnerID,
	}
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithOwnerID(ownerID int64) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) AsUnavailable() *ItemBuilder {
	b.Available = false
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}
