package service

import (
	"context"
	"testing"

	"github.com/partykeep/partykeep/internal/model"
	"github.com/partykeep/partykeep/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCharacterRepo applies the same owner predicate as the SQL layer.
type fakeCharacterRepo struct {
	nextID     uint
	characters map[uint]*model.Character
	nilList    bool
}

func newFakeCharacterRepo() *fakeCharacterRepo {
	return &fakeCharacterRepo{nextID: 1, characters: make(map[uint]*model.Character)}
}

func (f *fakeCharacterRepo) ListByOwner(_ context.Context, userID string) ([]model.Character, error) {
	if f.nilList {
		return nil, nil
	}
	out := []model.Character{}
	for _, character := range f.characters {
		if character.UserID == userID {
			out = append(out, *character)
		}
	}
	return out, nil
}

func (f *fakeCharacterRepo) GetByOwner(_ context.Context, userID string, id uint) (*model.Character, error) {
	character, ok := f.characters[id]
	if !ok || character.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return character, nil
}

func (f *fakeCharacterRepo) Create(_ context.Context, character *model.Character) error {
	character.ID = f.nextID
	f.nextID++
	f.characters[character.ID] = character
	return nil
}

func (f *fakeCharacterRepo) Update(_ context.Context, userID string, id uint, fields map[string]interface{}) error {
	character, ok := f.characters[id]
	if !ok || character.UserID != userID {
		return repository.ErrNotFound
	}
	if v, ok := fields["character_name"]; ok {
		character.CharacterName = v.(string)
	}
	if v, ok := fields["character_level"]; ok {
		character.CharacterLevel = v.(int)
	}
	return nil
}

func (f *fakeCharacterRepo) Delete(_ context.Context, userID string, id uint) error {
	character, ok := f.characters[id]
	if !ok || character.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.characters, id)
	return nil
}

func TestCharacterCRUD_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewCharacterService(newFakeCharacterRepo())

	created, err := svc.Create(ctx, "user-a", CharacterInput{
		CharacterName:  "Belgarath",
		CharacterClass: "sorcerer",
		CharacterLevel: 20,
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-b", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	level := 21
	err = svc.Update(ctx, "user-b", created.ID, CharacterUpdate{CharacterLevel: &level})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "user-b", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Update(ctx, "user-a", created.ID, CharacterUpdate{CharacterLevel: &level}))
	got, err := svc.Get(ctx, "user-a", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 21, got.CharacterLevel)

	require.NoError(t, svc.Delete(ctx, "user-a", created.ID))
}

func TestCharacterList_NilFromRepoBecomesEmptySlice(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCharacterRepo()
	repo.nilList = true
	svc := NewCharacterService(repo)

	characters, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, characters)
	assert.Empty(t, characters)
}
