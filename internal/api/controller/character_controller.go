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

type CharacterController struct {
	characterService *service.CharacterService
}

func NewCharacterController(characterService *service.CharacterService) *CharacterController {
	return &CharacterController{characterService: characterService}
}

type CreateCharacterRequest struct {
	CharacterName  string `json:"character_name" binding:"required"`
	CharacterRace  string `json:"character_race"`
	CharacterClass string `json:"character_class"`
	CharacterBuild string `json:"character_build"`
	CharacterLevel int    `json:"character_level"`
	CharacterSheet string `json:"character_sheet"`
	CharacterImage string `json:"character_image"`
}

// UpdateCharacterRequest is the allow-list of columns a PUT may touch.
// Anything else in the body is ignored rather than written to the table.
type UpdateCharacterRequest struct {
	CharacterName  *string `json:"character_name"`
	CharacterRace  *string `json:"character_race"`
	CharacterClass *string `json:"character_class"`
	CharacterBuild *string `json:"character_build"`
	CharacterLevel *int    `json:"character_level"`
	CharacterSheet *string `json:"character_sheet"`
	CharacterImage *string `json:"character_image"`
}

func (ctrl *CharacterController) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	characters, err := ctrl.characterService.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("character list failed", "userID", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not retrieve characters.")
		return
	}

	c.JSON(http.StatusOK, characters)
}

func (ctrl *CharacterController) Get(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id, ok := pathID(c, "characterId")
	if !ok {
		return
	}

	character, err := ctrl.characterService.Get(c.Request.Context(), userID, id)
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Character not found.")
		return
	}
	if err != nil {
		slog.Error("character fetch failed", "userID", userID, "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not retrieve character.")
		return
	}

	c.JSON(http.StatusOK, character)
}

func (ctrl *CharacterController) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Character name is required.")
		return
	}

	character, err := ctrl.characterService.Create(c.Request.Context(), userID, service.CharacterInput{
		CharacterName:  req.CharacterName,
		CharacterRace:  req.CharacterRace,
		CharacterClass: req.CharacterClass,
		CharacterBuild: req.CharacterBuild,
		CharacterLevel: req.CharacterLevel,
		CharacterSheet: req.CharacterSheet,
		CharacterImage: req.CharacterImage,
	})
	if err != nil {
		slog.Error("character create failed", "userID", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "Unable to add character: "+req.CharacterName)
		return
	}

	c.JSON(http.StatusCreated, character)
}

func (ctrl *CharacterController) Update(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id, ok := pathID(c, "characterId")
	if !ok {
		return
	}

	var req UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid character fields.")
		return
	}

	err := ctrl.characterService.Update(c.Request.Context(), userID, id, service.CharacterUpdate{
		CharacterName:  req.CharacterName,
		CharacterRace:  req.CharacterRace,
		CharacterClass: req.CharacterClass,
		CharacterBuild: req.CharacterBuild,
		CharacterLevel: req.CharacterLevel,
		CharacterSheet: req.CharacterSheet,
		CharacterImage: req.CharacterImage,
	})
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Character not found.")
		return
	}
	if err != nil {
		slog.Error("character update failed", "userID", userID, "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Unable to update character.")
		return
	}

	response.Message(c, http.StatusOK, "Updated successfully!")
}

func (ctrl *CharacterController) Delete(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id, ok := pathID(c, "characterId")
	if !ok {
		return
	}

	err := ctrl.characterService.Delete(c.Request.Context(), userID, id)
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Character not found.")
		return
	}
	if err != nil {
		slog.Error("character delete failed", "userID", userID, "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Unable to delete character.")
		return
	}

	response.Message(c, http.StatusOK, "Deleted successfully.")
}
