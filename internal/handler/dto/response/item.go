package response

import (
	"time"

	"lendhub/internal/usecase/queries"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type EnrichedItemResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []*CommentResponse  `json:"comments"`
}

// BookingRefResponse is the short booking form shown to owners on their
// item views.
type BookingRefResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Available:   view.Available,
		RequestID:   view.RequestID,
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(views))
	for i, view := range views {
		out[i] = FromItemView(view)
	}
	return out
}

func FromEnrichedItemView(view *queries.EnrichedItemView) *EnrichedItemResponse {
	resp := &EnrichedItemResponse{
		ItemResponse: *FromItemView(&view.ItemView),
		Comments:     fromCommentViews(view.Comments),
	}
	if view.LastBooking != nil {
		resp.LastBooking = fromBookingRef(view.LastBooking)
	}
	if view.NextBooking != nil {
		resp.NextBooking = fromBookingRef(view.NextBooking)
	}
	return resp
}

func FromEnrichedItemViews(views []*queries.EnrichedItemView) []*EnrichedItemResponse {
	out := make([]*EnrichedItemResponse, len(views))
	for i, view := range views {
		out[i] = FromEnrichedItemView(view)
	}
	return out
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         view.ID,
		Text:       view.Text,
		AuthorName: view.AuthorName,
		Created:    view.Created,
	}
}

func fromCommentViews(views []*queries.CommentView) []*CommentResponse {
	out := make([]*CommentResponse, len(views))
	for i, view := range views {
		out[i] = FromCommentView(view)
	}
	return out
}

func fromBookingRef(ref *queries.BookingRef) *BookingRefResponse {
	return &BookingRefResponse{
		ID:       ref.ID,
		BookerID: ref.BookerID,
		Start:    ref.Start,
		End:      ref.End,
	}
}
