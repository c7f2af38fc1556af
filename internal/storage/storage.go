package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"anonchat/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Storage is the persistence boundary of the application.
type Storage interface {
	SaveUserIfNotExists(username, name string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	CreateChat(chat *models.Chat) error
	EndChat(chatID string, endedAt time.Time) error
	GetChatByID(chatID string) (*models.Chat, error)
	CreateMessage(msg *models.Message) error

	GetTopics() ([]models.Topic, error)
	CreateRequestTopic(rt *models.RequestTopic) error
	GetRequestTopics() ([]models.RequestTopic, error)
	GetRequestTopicByID(id uint) (*models.RequestTopic, error)
	UpdateRequestTopicStatus(id uint, status string) error

	CreateReport(r *models.Report) error
	GetReports() ([]models.Report, error)
	GetReportByID(id uint) (*models.Report, error)
	GetReportsBySeen(seen bool) ([]models.Report, error)
	MarkReport(id uint, seen bool) error
}

// Service implements Storage on PostgreSQL via GORM, with a Redis handle
// shared with the quota gate.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService constructor.
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveUserIfNotExists looks a user up by username, creating the record on
// first contact.
func (s *Service) SaveUserIfNotExists(username, name string) (*models.User, error) {
	var user models.User
	defaults := models.User{
		Username: username,
		Name:     name,
	}

	result := s.DB.Where("username = ?", username).FirstOrCreate(&user, defaults)
	if result.Error != nil {
		log.Printf("ERROR: Failed to save user %s on first contact: %v", username, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("INFO: New user %s saved to database (ID: %s).", username, user.ID)
	}
	return &user, nil
}

// GetUserByUsername returns a user record or ErrNotFound.
func (s *Service) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateChat persists the record backing a new chat session.
func (s *Service) CreateChat(chat *models.Chat) error {
	if err := s.DB.Create(chat).Error; err != nil {
		log.Printf("ERROR: Failed to create chat %s: %v", chat.ChatID, err)
		return err
	}
	return nil
}

// EndChat stamps a chat's end time.
func (s *Service) EndChat(chatID string, endedAt time.Time) error {
	return s.DB.Model(&models.Chat{}).
		Where("chat_id = ?", chatID).
		Update("end_datetime", endedAt).Error
}

// GetChatByID returns a chat record or ErrNotFound.
func (s *Service) GetChatByID(chatID string) (*models.Chat, error) {
	var chat models.Chat
	err := s.DB.Where("chat_id = ?", chatID).First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get chat %s: %v", chatID, err)
		return nil, err
	}
	return &chat, nil
}

// CreateMessage persists one chat message. The message ID is filled in by
// GORM on success.
func (s *Service) CreateMessage(msg *models.Message) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message for chat %s: %v", msg.ChatID, err)
		return err
	}
	return nil
}
