package storage

import (
	"errors"
	"log"

	"anonchat/backend/internal/models"

	"gorm.io/gorm"
)

// GetTopics lists all chat topics.
func (s *Service) GetTopics() ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.DB.Order("name asc").Find(&topics).Error; err != nil {
		log.Printf("ERROR: Failed to get topics: %v", err)
		return nil, err
	}
	return topics, nil
}

// CreateRequestTopic saves a user-suggested topic for moderation.
func (s *Service) CreateRequestTopic(rt *models.RequestTopic) error {
	if rt.Status == "" {
		rt.Status = models.RequestTopicPending
	}
	return s.DB.Create(rt).Error
}

// GetRequestTopics lists all suggested topics.
func (s *Service) GetRequestTopics() ([]models.RequestTopic, error) {
	var requests []models.RequestTopic
	if err := s.DB.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestTopicByID returns one suggested topic or ErrNotFound.
func (s *Service) GetRequestTopicByID(id uint) (*models.RequestTopic, error) {
	var rt models.RequestTopic
	err := s.DB.First(&rt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// UpdateRequestTopicStatus moves a suggested topic through moderation.
// An approved request also becomes a real topic.
func (s *Service) UpdateRequestTopicStatus(id uint, status string) error {
	rt, err := s.GetRequestTopicByID(id)
	if err != nil {
		return err
	}

	if err := s.DB.Model(rt).Update("status", status).Error; err != nil {
		return err
	}

	if status == models.RequestTopicApproved {
		topic := models.Topic{Name: rt.Name}
		if err := s.DB.Where("name = ?", rt.Name).FirstOrCreate(&topic).Error; err != nil {
			log.Printf("ERROR: Failed to create topic from request %d: %v", id, err)
			return err
		}
	}
	return nil
}

// CreateReport saves a report row.
func (s *Service) CreateReport(r *models.Report) error {
	if err := s.DB.Create(r).Error; err != nil {
		log.Printf("ERROR: Failed to save report for chat %s: %v", r.ChatID, err)
		return err
	}
	return nil
}

// GetReports lists every report.
func (s *Service) GetReports() ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReportByID returns one report or ErrNotFound.
func (s *Service) GetReportByID(id uint) (*models.Report, error) {
	var report models.Report
	err := s.DB.First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetReportsBySeen lists reports filtered by their seen flag.
func (s *Service) GetReportsBySeen(seen bool) ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("seen = ?", seen).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// MarkReport flips a report's seen flag.
func (s *Service) MarkReport(id uint, seen bool) error {
	return s.DB.Model(&models.Report{}).
		Where("id = ?", id).
		Update("seen", seen).Error
}
