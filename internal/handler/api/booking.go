package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	reqdto "lendhub/internal/handler/dto/request"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/handler/httperr"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	bookerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), bookerID, commands.CreateBookingInput{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrOwnItem):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not available")
		case errors.Is(err, commands.ErrItemUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking")
		case errors.Is(err, commands.ErrInvalidPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	actorID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "approved must be true or false")
		return
	}

	view, err := h.bookingCommands.SetApproval(c.Request.Context(), actorID, bookingID, approved)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, commands.ErrNotItemOwner):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Only the item owner can approve or reject")
		case errors.Is(err, commands.ErrAlreadyDecided):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is already decided")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), callerID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetBookerBookings(c *gin.Context) {
	h.listBookings(c, h.bookingQueries.ListByBooker)
}

func (h *BookingHandler) GetOwnerBookings(c *gin.Context) {
	h.listBookings(c, h.bookingQueries.ListByOwner)
}

func (h *BookingHandler) listBookings(c *gin.Context, list func(ctx context.Context, userID int64, state string, page queries.Page) ([]*queries.BookingView, error)) {
	userID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	state := c.DefaultQuery("state", "ALL")

	views, err := list(c.Request.Context(), userID, state, page)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, queries.ErrUnknownState):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+state)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
