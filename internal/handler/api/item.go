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

type ItemHandler struct {
	itemCommands    commands.ItemCommands
	commentCommands commands.CommentCommands
	itemQueries     queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, commentCommands commands.CommentCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands:    itemCommands,
		commentCommands: commentCommands,
		itemQueries:     itemQueries,
	}
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	var req reqdto.CreateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.itemCommands.Create(c.Request.Context(), ownerID, commands.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found")
		case errors.Is(err, commands.ErrInvalidItem):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	actorID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format")
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.itemCommands.Update(c.Request.Context(), actorID, itemID, commands.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrItemNotOwned):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not owned by user")
		case errors.Is(err, commands.ErrInvalidItem):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format")
		return
	}

	if err := h.itemCommands.Delete(c.Request.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	viewerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format")
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), viewerID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnrichedItemView(view))
}

func (h *ItemHandler) GetOwnerItems(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	views, err := h.itemQueries.ListByOwner(c.Request.Context(), ownerID, page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnrichedItemViews(views))
}

func (h *ItemHandler) SearchItems(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	views, err := h.itemQueries.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

func (h *ItemHandler) CreateComment(c *gin.Context) {
	authorID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error")
		return
	}

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format")
		return
	}

	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.commentCommands.Create(c.Request.Context(), authorID, itemID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrCommentNotAllowed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "User did not rent the item, or the rental is not finished")
		case errors.Is(err, commands.ErrInvalidComment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid comment")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
