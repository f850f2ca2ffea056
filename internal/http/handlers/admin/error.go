package admin

import (
	"errors"

	handlershared "github.com/eclypse-shop/internal/http/handlers/shared"
	"github.com/eclypse-shop/internal/http/response"
	"github.com/eclypse-shop/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(c, response.CodeNotFound, "order not found", nil)
	case errors.Is(err, service.ErrInvalidOrderStatus):
		respondError(c, response.CodeBadRequest, "order status is invalid", nil)
	case errors.Is(err, service.ErrPersistence):
		respondError(c, response.CodeInternal, "failed to save order", err)
	default:
		respondError(c, response.CodeInternal, "failed to process order", err)
	}
}
