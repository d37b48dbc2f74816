package models

import "time"

const (
	GroupRoleAdmin  = "admin"
	GroupRoleMember = "member"
)

type StudyGroup struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   uint          `gorm:"not null;index" json:"createdBy"`
	Members     []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type GroupMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null;uniqueIndex:idx_group_member" json:"groupId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_group_member" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Role      string    `gorm:"size:10;not null;default:'member'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
