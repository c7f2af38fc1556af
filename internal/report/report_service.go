// Package report handles user reports filed against a chat partner.
package report

import (
	"errors"

	"anonchat/backend/internal/models"
	"anonchat/backend/internal/storage"
)

// ErrIssuerNotInChat is returned when the reporting user was not a
// participant of the referenced chat.
var ErrIssuerNotInChat = errors.New("issuer is not a participant of this chat")

// Service handles the business logic for reports.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new report service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreateReport files a report against the issuer's chat partner. The
// reported user is derived from the chat record, never trusted from the
// request: whichever participant is not the issuer.
func (s *Service) CreateReport(chatID, issuerID, reason string) (*models.Report, error) {
	chat, err := s.Storage.GetChatByID(chatID)
	if err != nil {
		return nil, err
	}

	var issuedID string
	switch issuerID {
	case chat.UserID1:
		issuedID = chat.UserID2
	case chat.UserID2:
		issuedID = chat.UserID1
	default:
		return nil, ErrIssuerNotInChat
	}

	report := &models.Report{
		ChatID:   chatID,
		IssuerID: issuerID,
		IssuedID: issuedID,
		Reason:   reason,
		Seen:     false,
	}
	if err := s.Storage.CreateReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetReports lists all reports.
func (s *Service) GetReports() ([]models.Report, error) {
	return s.Storage.GetReports()
}

// GetReportByID returns a single report.
func (s *Service) GetReportByID(id uint) (*models.Report, error) {
	return s.Storage.GetReportByID(id)
}

// MarkReport flags a report as reviewed (or not).
func (s *Service) MarkReport(id uint, seen bool) error {
	return s.Storage.MarkReport(id, seen)
}

// GetReportsBySeen lists reports by review state.
func (s *Service) GetReportsBySeen(seen bool) ([]models.Report, error) {
	return s.Storage.GetReportsBySeen(seen)
}
