package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/partykeep/partykeep/internal/api/middleware"
	"github.com/partykeep/partykeep/internal/api/response"
	"github.com/partykeep/partykeep/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

type UpdateMeRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

func (ctrl *UserController) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := ctrl.userService.Me(c.Request.Context(), userID)
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusBadRequest, "No user found.")
		return
	}
	if err != nil {
		slog.Error("profile fetch failed", "userID", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not find the user.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (ctrl *UserController) UpdateMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and email are required.")
		return
	}

	err := ctrl.userService.UpdateMe(c.Request.Context(), userID, req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusBadRequest, "No user found.")
		return
	}
	if err != nil {
		slog.Error("profile update failed", "userID", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not update user settings.")
		return
	}

	response.Message(c, http.StatusOK, "Updated successfully!")
}
