package api

import (
	"errors"
	"net/http"

	reqdto "lendhub/internal/handler/dto/request"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/handler/httperr"
	"lendhub/internal/handler/middleware"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	var req reqdto.CreateItemRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.requestCommands.Create(c.Request.Context(), requesterID, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrInvalidRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

func (h *RequestHandler) GetOwnRequests(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	views, err := h.requestQueries.ListOwn(c.Request.Context(), requesterID)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

func (h *RequestHandler) GetAllRequests(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	views, err := h.requestQueries.ListOthers(c.Request.Context(), requesterID, page)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	requestID, err := parseIDParam(c, "requestId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format")
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), callerID, requestID)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

func (h *RequestHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, queries.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
