package models

import "time"

type Flashcard struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"userId"`
	SetID     uint         `gorm:"not null;index" json:"setId"`
	Set       FlashcardSet `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE" json:"-"`
	Question  string       `gorm:"type:text;not null" json:"question"`
	Answer    string       `gorm:"type:text;not null" json:"answer"`
	GroupID   *uint        `gorm:"index" json:"groupId,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
