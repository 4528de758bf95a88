package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
)

// meHandler handles the authenticated /api/auth/me endpoints.
type meHandler struct {
	cfg         *config.Config
	authService portssvc.AuthSvcFacade
}

func newMeHandler(cfg *config.Config, authService portssvc.AuthSvcFacade) *meHandler {
	return &meHandler{
		cfg:         cfg,
		authService: authService,
	}
}

// registerMeRoutes sets up the authenticated account routes. The group is
// expected to already carry the session middleware.
func registerMeRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newMeHandler(cfg, authService)

	rg.GET("/me", h.getCurrentUser)
	rg.PATCH("/me/username", h.updateUsername)
	rg.PATCH("/me/name", h.updateName)
	rg.PATCH("/me/phone", h.updatePhone)
	rg.PATCH("/me/password", h.changePassword)
	rg.DELETE("/me", h.deleteAccount)
}

// getCurrentUser godoc
// @Summary Get the authenticated user
// @Tags me
// @Produce json
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *meHandler) getCurrentUser(c *gin.Context) {
	user, ok := middlewareUser(c)
	if !ok {
		return
	}
	sendSuccess(c, http.StatusOK, "User fetched successfully.", dto.ToUserResponse(user))
}

// updateUsername godoc
// @Summary Change the account username
// @Tags me
// @Accept json
// @Produce json
// @Param body body dto.UpdateUsernameRequest true "New username"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response "Username already taken"
// @Security BearerAuth
// @Router /api/auth/me/username [patch]
func (h *meHandler) updateUsername(c *gin.Context) {
	user, ok := middlewareUser(c)
	if !ok {
		return
	}

	var req dto.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Username must be between 3 and 30 characters.")
		return
	}

	updated, err := h.authService.UpdateUsername(c.Request.Context(), user.UserID, req.Username)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "Username updated successfully.", dto.ToUserResponse(updated))
}

// updateName godoc
// @Summary Change the display name
// @Tags me
// @Accept json
// @Produce json
// @Param body body dto.UpdateNameRequest true "New name"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /api/auth/me/name [patch]
func (h *meHandler) updateName(c *gin.Context) {
	user, ok := middlewareUser(c)
	if !ok {
		return
	}

	var req dto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Name must be between 1 and 100 characters.")
		return
	}

	updated, err := h.authService.UpdateName(c.Request.Context(), user.UserID, req.Name)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "Name updated successfully.", dto.ToUserResponse(updated))
}

// updatePhone godoc
// @Summary Change the phone number
// @Description An empty phone clears the stored number.
// @Tags me
// @Accept json
// @Produce json
// @Param body body dto.UpdatePhoneRequest true "New phone"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Invalid phone format"
// @Security BearerAuth
// @Router /api/auth/me/phone [patch]
func (h *meHandler) updatePhone(c *gin.Context) {
	user, ok := middlewareUser(c)
	if !ok {
		return
	}

	var req dto.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := h.authService.UpdatePhone(c.Request.Context(), user.UserID, req.Phone)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "Phone updated successfully.", dto.ToUserResponse(updated))
}

// changePassword godoc
// @Summary Change the account password
// @Tags me
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Weak or unchanged new password"
// @Failure 401 {object} dto.Response "Wrong current password"
// @Security BearerAuth
// @Router /api/auth/me/password [patch]
func (h *meHandler) changePassword(c *gin.Context) {
	user, ok := middlewareUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Current password and a new password of at least 8 characters are required.")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), user.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "Password changed successfully.", nil)
}

// deleteAccount godoc
// @Summary Delete the account
// @Description Removes the user and all of their tokens, then clears the session cookie.
// @Tags me
// @Accept json
// @Produce json
// @Param body body dto.DeleteAccountRequest true "Current password"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Wrong password"
// @Security BearerAuth
// @Router /api/auth/me [delete]
func (h *meHandler) deleteAccount(c *gin.Context) {
	user, ok := middlewareUser(c)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Current password is required.")
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), user.UserID, req.CurrentPassword); err != nil {
		sendServiceError(c, err)
		return
	}

	clearSessionCookie(c, h.cfg)
	sendSuccess(c, http.StatusOK, "Account deleted successfully.", nil)
}
