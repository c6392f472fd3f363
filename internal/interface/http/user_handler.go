package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/spookymotion/signup-api/internal/application"
	"github.com/spookymotion/signup-api/internal/domain/entity"
	"github.com/spookymotion/signup-api/pkg/response"
	"github.com/spookymotion/signup-api/pkg/validation"
)

// UserHandler exposes the sign-up and activation endpoints. All translation
// from domain errors to HTTP status codes lives here; the services below it
// only ever return the domain taxonomy.
type UserHandler struct {
	Registration *application.RegistrationService
	Activation   *application.ActivationService
	Logger       *logrus.Logger
}

func NewUserHandler(reg *application.RegistrationService, act *application.ActivationService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Registration: reg, Activation: act, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

type activateRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{ID: u.ID(), Email: u.Email().String(), IsActive: u.IsActive()}
}

// Register handles POST /api/v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, err := h.Registration.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusCreated, toUserResponse(u), "user registered", nil)
	c.JSON(resp.Status, resp)
}

// Activate handles POST /api/v1/users/activate
func (h *UserHandler) Activate(c *gin.Context) {
	var req activateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, err := h.Activation.Activate(c.Request.Context(), req.UserID, req.Code)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, toUserResponse(u), "user activated", nil)
	c.JSON(resp.Status, resp)
}

func (h *UserHandler) fail(c *gin.Context, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	resp := response.Error[any](c, status, err.Error(), nil)
	c.JSON(resp.Status, resp)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidEmail):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrUserAlreadyActive):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidActivationCode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrExpiredActivationCode):
		return http.StatusGone
	case errors.Is(err, entity.ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		// ErrMissingActivationCode lands here on purpose: it is an
		// invariant violation, not a caller mistake.
		return http.StatusInternalServerError
	}
}
