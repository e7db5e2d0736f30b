package response

import (
	"time"

	"lendhub/internal/usecase/queries"
)

type BookingResponse struct {
	ID     int64      `json:"id"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
	Status string     `json:"status"`
	Booker BookerRef  `json:"booker"`
	Item   BookedItem `json:"item"`
}

type BookerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookedItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     view.ID,
		Start:  view.Start,
		End:    view.End,
		Status: string(view.Status),
		Booker: BookerRef{ID: view.BookerID, Name: view.BookerName},
		Item:   BookedItem{ID: view.ItemID, Name: view.ItemName},
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, view := range views {
		out[i] = FromBookingView(view)
	}
	return out
}
