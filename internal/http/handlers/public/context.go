package public

import (
	"strconv"
	"strings"

	handlershared "github.com/eclypse-shop/internal/http/handlers/shared"
	"github.com/eclypse-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// getUserID 从路径参数读取不透明用户标识
func getUserID(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID == "" {
		respondError(c, response.CodeBadRequest, "user id is required", nil)
		return "", false
	}
	return userID, true
}

// getItemID 从路径参数读取购物车行 id
func getItemID(c *gin.Context) (int, bool) {
	itemID, err := strconv.Atoi(strings.TrimSpace(c.Param("item_id")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "item id is invalid", nil)
		return 0, false
	}
	return itemID, true
}
