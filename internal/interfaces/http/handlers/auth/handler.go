package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/auth/usecases"
	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

type AuthHandler struct {
	loginUC       LoginExecutor
	ssoLoginUC    SSOLoginExecutor
	ssoCallbackUC SSOCallbackExecutor
	getProfileUC  GetProfileExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC LoginExecutor,
	ssoLoginUC SSOLoginExecutor,
	ssoCallbackUC SSOCallbackExecutor,
	getProfileUC GetProfileExecutor,
) *AuthHandler {
	return &AuthHandler{
		loginUC:       loginUC,
		ssoLoginUC:    ssoLoginUC,
		ssoCallbackUC: ssoCallbackUC,
		getProfileUC:  getProfileUC,
		logger:        logger.NewLogger(),
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.IsSecurityEvent(err) {
			h.logger.Warnw("failed login attempt", "email", req.Email, "ip", c.ClientIP())
		} else if errors.ShouldLogAuthError(err) {
			h.logger.Errorw("login failed", "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User:      result.User,
	})
}

// SSOLogin handles GET /api/v1/auth/sso/login
// @Summary Start a Google SSO login
// @Tags auth
// @Produce json
// @Success 200 {object} SSOLoginResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/auth/sso/login [get]
func (h *AuthHandler) SSOLogin(c *gin.Context) {
	result, err := h.ssoLoginUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", SSOLoginResponse{AuthURL: result.AuthURL})
}

// SSOCallback handles GET /api/v1/auth/sso/callback
// @Summary Complete a Google SSO login
// @Tags auth
// @Produce json
// @Param state query string true "Opaque state issued at login start"
// @Param code query string true "Authorization code from Google"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/sso/callback [get]
func (h *AuthHandler) SSOCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing state or code")
		return
	}

	result, err := h.ssoCallbackUC.Execute(c.Request.Context(), usecases.SSOCallbackCommand{
		State: state,
		Code:  code,
	})
	if err != nil {
		if errors.IsSecurityEvent(err) {
			h.logger.Warnw("suspicious sso callback", "ip", c.ClientIP())
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User:      result.User,
	})
}

// GetProfile handles GET /api/v1/auth/profile
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
