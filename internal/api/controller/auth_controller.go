package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/partykeep/partykeep/internal/api/response"
	"github.com/partykeep/partykeep/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the login/refresh body. Field names are fixed by the
// existing browser clients, access_token is mirrored into a response header
// of the same name for the same reason.
type TokenResponse struct {
	Auth         bool   `json:"auth"`
	Msg          string `json:"msg"`
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	Token string `json:"token"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username, email, and password are required.")
		return
	}

	err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrUserExists) {
		response.Error(c, http.StatusConflict, "User already exists!")
		return
	}
	if err != nil {
		slog.Error("register failed", "username", req.Username, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not register user. Please try again later.")
		return
	}

	slog.Info("user registered", "username", req.Username)
	response.Message(c, http.StatusCreated, "New user created!")
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	pair, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// Same message whether the username or the password was wrong.
		response.Error(c, http.StatusBadRequest, "Invalid username or password.")
		return
	}
	if err != nil {
		slog.Error("login failed", "username", req.Username, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not login. Please try again later.")
		return
	}

	slog.Info("user logged in", "username", req.Username)
	c.Header("access_token", pair.AccessToken)
	c.JSON(http.StatusOK, TokenResponse{
		Auth:         true,
		Msg:          "Logged in!",
		TokenType:    "bearer",
		AccessToken:  pair.AccessToken,
		ExpiresIn:    pair.ExpiresIn,
		RefreshToken: pair.RefreshToken,
	})
}

// Token exchanges a registered refresh token for a new access token. The
// refresh token rotates: the response carries a replacement and the one just
// used stops working.
func (ctrl *AuthController) Token(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		response.Denied(c, http.StatusUnauthorized, "Access Denied. No token provided.")
		return
	}

	pair, err := ctrl.authService.Refresh(c.Request.Context(), req.Token)
	if errors.Is(err, service.ErrTokenNotRegistered) {
		response.Error(c, http.StatusForbidden, "Invalid Refresh Token")
		return
	}
	if errors.Is(err, service.ErrInvalidToken) {
		response.Error(c, http.StatusForbidden, "Invalid Token")
		return
	}
	if err != nil {
		slog.Error("token refresh failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not refresh token. Please try again later.")
		return
	}

	c.Header("access_token", pair.AccessToken)
	c.JSON(http.StatusOK, TokenResponse{
		Auth:         true,
		Msg:          "Logged in!",
		TokenType:    "bearer",
		AccessToken:  pair.AccessToken,
		ExpiresIn:    pair.ExpiresIn,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout always reports success, even for a token that was never registered.
func (ctrl *AuthController) Logout(c *gin.Context) {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)

	if err := ctrl.authService.Logout(c.Request.Context(), req.Token); err != nil {
		slog.Warn("logout revoke failed", "error", err)
	}
	response.Message(c, http.StatusOK, "Logout successful")
}
