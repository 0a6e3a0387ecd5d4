package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, models.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, models.ErrForbidden):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, models.ErrInvalidTransition):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, models.ErrAuth):
		utils.RespondError(c, http.StatusUnauthorized, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
