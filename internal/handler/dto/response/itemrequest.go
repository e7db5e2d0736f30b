package response

import (
	"time"

	"lendhub/internal/usecase/queries"
)

type RequestResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items"`
}

func FromRequestView(view *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:          view.ID,
		Description: view.Description,
		Created:     view.Created,
		Items:       FromItemViews(view.Items),
	}
}

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	out := make([]*RequestResponse, len(views))
	for i, view := range views {
		out[i] = FromRequestView(view)
	}
	return out
}
