package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusListItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	OrderIndex int    `json:"order_index"`
}

func (h *handlerImpl) HandleGetStatuses(c *gin.Context) {
	statuses, err := h.references.GetStatuses(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch statuses")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	response := make([]statusListItem, len(statuses))
	for i, status := range statuses {
		response[i] = statusListItem{
			ID:         status.ID,
			Name:       status.Name,
			Color:      status.Color,
			OrderIndex: status.OrderIndex,
		}
	}

	c.JSON(http.StatusOK, response)
}

type guaranteeTypeItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (h *handlerImpl) HandleGetGuaranteeTypes(c *gin.Context) {
	guarantees, err := h.references.GetGuaranteeTypes(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch guarantee types")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	response := make([]guaranteeTypeItem, len(guarantees))
	for i, guarantee := range guarantees {
		response[i] = guaranteeTypeItem{
			ID:          guarantee.ID,
			Name:        guarantee.Name,
			Description: guarantee.Description,
		}
	}

	c.JSON(http.StatusOK, response)
}

type userItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (h *handlerImpl) HandleGetUsers(c *gin.Context) {
	users, err := h.references.GetUsers(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch users")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	response := make([]userItem, len(users))
	for i, user := range users {
		response[i] = userItem{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			ImageURL: user.ImageURL,
			Role:     user.Role,
		}
	}

	c.JSON(http.StatusOK, response)
}
