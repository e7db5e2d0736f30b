package request

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDescription = errors.New("request description cannot be empty")

// Request is a wanted-item post on the request board; owners answer it by
// creating items that reference it.
type Request struct {
	id          int64
	description string
	requesterID int64
	created     time.Time
}

func NewRequest(description string, requesterID int64, created time.Time) (*Request, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Request{
		description: description,
		requesterID: requesterID,
		created:     created,
	}, nil
}

func (r *Request) ID() int64           { return r.id }
func (r *Request) Description() string { return r.description }
func (r *Request) RequesterID() int64  { return r.requesterID }
func (r *Request) Created() time.Time  { return r.created }
