package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/partykeep/partykeep/internal/model"
	"github.com/partykeep/partykeep/internal/repository"
)

type CharacterInput struct {
	CharacterName  string
	CharacterRace  string
	CharacterClass string
	CharacterBuild string
	CharacterLevel int
	CharacterSheet string
	CharacterImage string
}

// CharacterUpdate is the explicit allow-list of mutable character columns.
// The old API wrote whatever keys arrived in the body straight into SQL;
// anything not named here is now immutable through the update endpoint.
type CharacterUpdate struct {
	CharacterName  *string
	CharacterRace  *string
	CharacterClass *string
	CharacterBuild *string
	CharacterLevel *int
	CharacterSheet *string
	CharacterImage *string
}

type CharacterService struct {
	characters repository.CharacterRepository
}

func NewCharacterService(characters repository.CharacterRepository) *CharacterService {
	return &CharacterService{characters: characters}
}

func (s *CharacterService) List(ctx context.Context, userID string) ([]model.Character, error) {
	characters, err := s.characters.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	if characters == nil {
		characters = []model.Character{}
	}
	return characters, nil
}

func (s *CharacterService) Get(ctx context.Context, userID string, id uint) (*model.Character, error) {
	character, err := s.characters.GetByOwner(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading character: %w", err)
	}
	return character, nil
}

func (s *CharacterService) Create(ctx context.Context, userID string, input CharacterInput) (*model.Character, error) {
	character := &model.Character{
		UserID:         userID,
		CharacterName:  input.CharacterName,
		CharacterRace:  input.CharacterRace,
		CharacterClass: input.CharacterClass,
		CharacterBuild: input.CharacterBuild,
		CharacterLevel: input.CharacterLevel,
		CharacterSheet: input.CharacterSheet,
		CharacterImage: input.CharacterImage,
	}
	if err := s.characters.Create(ctx, character); err != nil {
		return nil, fmt.Errorf("creating character: %w", err)
	}
	return character, nil
}

func (s *CharacterService) Update(ctx context.Context, userID string, id uint, update CharacterUpdate) error {
	fields := map[string]interface{}{}
	if update.CharacterName != nil {
		fields["character_name"] = *update.CharacterName
	}
	if update.CharacterRace != nil {
		fields["character_race"] = *update.CharacterRace
	}
	if update.CharacterClass != nil {
		fields["character_class"] = *update.CharacterClass
	}
	if update.CharacterBuild != nil {
		fields["character_build"] = *update.CharacterBuild
	}
	if update.CharacterLevel != nil {
		fields["character_level"] = *update.CharacterLevel
	}
	if update.CharacterSheet != nil {
		fields["character_sheet"] = *update.CharacterSheet
	}
	if update.CharacterImage != nil {
		fields["character_image"] = *update.CharacterImage
	}
	if len(fields) == 0 {
		return nil
	}

	err := s.characters.Update(ctx, userID, id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating character: %w", err)
	}
	return nil
}

func (s *CharacterService) Delete(ctx context.Context, userID string, id uint) error {
	err := s.characters.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	return nil
}
