package model

import "time"

// Character is an owner-scoped tabletop character sheet entry.
type Character struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CharacterName  string    `gorm:"type:varchar(255);not null" json:"character_name"`
	CharacterRace  string    `gorm:"type:varchar(100)" json:"character_race"`
	CharacterClass string    `gorm:"type:varchar(100)" json:"character_class"`
	CharacterBuild string    `gorm:"type:varchar(255)" json:"character_build"`
	CharacterLevel int       `json:"character_level"`
	CharacterSheet string    `gorm:"type:text" json:"character_sheet"`
	CharacterImage string    `gorm:"type:text" json:"character_image"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Character) TableName() string {
	return "characters"
}
