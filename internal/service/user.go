package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	timeout     time.Duration
}

func NewProfileService(profileRepo repository.ProfileRepository, timeout time.Duration) ProfileService {
	return &profileService{profileRepo: profileRepo, timeout: timeout}
}

// SyncProfile upserts the application profile for an authenticated user.
// The identity UID and email come from the verified token, never from the
// request body.
func (s *profileService) SyncProfile(ctx context.Context, identityUID, email string, input ProfileInput) (*domain.Profile, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domain.NewValidationError("full_name", "full name is required")
	}
	switch input.Role {
	case domain.ProfileRoleRenter, domain.ProfileRoleOwner:
	default:
		return nil, domain.NewValidationError("role", "role must be renter or owner")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	existing, err := s.profileRepo.GetByIdentityUID(ctx, identityUID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.FullName = input.FullName
		existing.Phone = input.Phone
		existing.Role = input.Role
		existing.CompanyName = input.CompanyName
		if err := s.profileRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	profile := &domain.Profile{
		IdentityUID: identityUID,
		Email:       email,
		FullName:    input.FullName,
		Phone:       input.Phone,
		Role:        input.Role,
		CompanyName: input.CompanyName,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	logger.Info("Profile created", "profile_id", profile.ID, "role", profile.Role)
	return profile, nil
}

func (s *profileService) GetByIdentity(ctx context.Context, identityUID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.profileRepo.GetByIdentityUID(ctx, identityUID)
}
