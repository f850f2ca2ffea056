package public

import (
	"errors"

	"github.com/eclypse-shop/internal/http/response"
	"github.com/eclypse-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeNotFound, msg: "cart not found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
	{target: service.ErrPersistence, code: response.CodeInternal, msg: "failed to save cart"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCheckout, code: response.CodeBadRequest, msg: "checkout payload is invalid"},
	{target: service.ErrPersistence, code: response.CodeInternal, msg: "failed to save order"},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
}
