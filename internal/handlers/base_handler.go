package handlers

import (
	"errors"

	"cofoundermatch_backend/internal/validator"
	"cofoundermatch_backend/pkg/apperrors"
	"cofoundermatch_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the shared pieces every handler needs: the request-
// scoped DB handle and request validation.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{validator: validator.New()}
}

// GetDB returns the request's DB handle set by DBMiddleware. Tests swap in a
// transaction through the request context.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	val, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		return nil
	}
	db, _ := val.(*gorm.DB)
	return db
}

// BindJSON binds the body and runs struct validation. On failure it writes
// the error response and returns false.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.HandleError(c, bindError(err))
		return false
	}
	return h.validateStruct(c, obj)
}

// BindQuery binds query parameters and runs struct validation.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.HandleError(c, bindError(err))
		return false
	}
	return h.validateStruct(c, obj)
}

func (h *BaseHandler) validateStruct(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			h.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			h.HandleError(c, err)
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

func bindError(err error) *apperrors.AppError {
	return apperrors.NewBadRequestError("Invalid request payload").WithDetails(err.Error())
}
