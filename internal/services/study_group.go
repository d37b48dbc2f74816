package services

import (
	"studyhub-backend/internal/models"

	"gorm.io/gorm"
)

type StudyGroupService struct {
	db *gorm.DB
}

func NewStudyGroupService(db *gorm.DB) *StudyGroupService {
	return &StudyGroupService{db: db}
}

func (s *StudyGroupService) CreateGroup(creatorID uint, name, description string) (*models.StudyGroup, error) {
	group := models.StudyGroup{
		Name:        name,
		Description: description,
		CreatedBy:   creatorID,
		Members: []models.GroupMember{
			{UserID: creatorID, Role: models.GroupRoleAdmin},
		},
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *StudyGroupService) GetGroupsForUser(userID uint) ([]models.StudyGroup, error) {
	var groups []models.StudyGroup
	err := s.db.
		Joins("JOIN group_members ON group_members.group_id = study_groups.id").
		Where("group_members.user_id = ?", userID).
		Order("study_groups.created_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *StudyGroupService) GetGroupMembers(groupID uint) ([]models.GroupMember, error) {
	var group models.StudyGroup
	if err := s.db.First(&group, groupID).Error; err != nil {
		return nil, ErrNotFound
	}

	var members []models.GroupMember
	err := s.db.Where("group_id = ?", groupID).
		Preload("User").
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *StudyGroupService) AddMember(groupID, userID uint, role string) (*models.GroupMember, error) {
	var group models.StudyGroup
	if err := s.db.First(&group, groupID).Error; err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}

	var existing models.GroupMember
	if err := s.db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&existing).Error; err == nil {
		return nil, ErrConflict
	}

	if role != models.GroupRoleAdmin && role != models.GroupRoleMember {
		role = models.GroupRoleMember
	}

	member := models.GroupMember{GroupID: groupID, UserID: userID, Role: role}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	member.User = user
	return &member, nil
}

func (s *StudyGroupService) RemoveMember(groupID, userID uint) error {
	var group models.StudyGroup
	if err := s.db.First(&group, groupID).Error; err != nil {
		return ErrNotFound
	}

	result := s.db.Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&models.GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MemberRole reports the user's role in the group, or ErrForbidden when the
// user is not a member.
func (s *StudyGroupService) MemberRole(groupID, userID uint) (string, error) {
	var member models.GroupMember
	if err := s.db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error; err != nil {
		return "", ErrForbidden
	}
	return member.Role, nil
}

func (s *StudyGroupService) IsMember(groupID, userID uint) bool {
	_, err := s.MemberRole(groupID, userID)
	return err == nil
}
