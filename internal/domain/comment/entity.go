package comment

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyText   = errors.New("comment text cannot be empty")
	ErrTextTooLong = errors.New("comment text is too long (max 1000 characters)")
)

const MaxTextLength = 1000

// Comment is feedback on an item, allowed only after the author completed a
// rental of it. The eligibility check itself lives with the command that can
// see the booking store.
type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

func NewComment(text string, itemID, authorID int64, created time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}
	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}, nil
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
