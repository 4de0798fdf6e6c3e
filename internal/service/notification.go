package service

import (
	"context"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
	timeout  time.Duration
}

func NewNotificationService(noteRepo repository.NotificationRepository, timeout time.Duration) NotificationService {
	return &notificationService{noteRepo: noteRepo, timeout: timeout}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, userID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}
