package companions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	guestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/guest"
	"github.com/m04kA/tourism-booking-service/internal/service/companions/models"
)

// AddCompanion добавляет зависимый профиль, которым управляет владелец
// Если адрес не указан, синтезируется адрес на основе адреса владельца
func (s *Service) AddCompanion(ctx context.Context, req *models.AddCompanionRequest) (*models.CompanionResponse, error) {
	s.logger.Info("AddCompanion: owner=%d", req.OwnerID)

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	_, group, err := validateRequestFields(nil, req.GroupName)
	if err != nil {
		return nil, err
	}

	owner, err := s.guestRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("AddCompanion: owner id=%d not found", req.OwnerID)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("AddCompanion: failed to get owner id=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: AddCompanion - get owner: %w", ErrInternal, err)
	}

	// Компаньон не может владеть компаньонами: дерево владения глубины 1
	if err := owner.CanOwnCompanions(); err != nil {
		s.logger.Warn("AddCompanion: guest id=%d is itself a companion", owner.ID)
		return nil, ErrNestedCompanion
	}

	if email == "" {
		email = domain.CompanionEmail(owner.Email, s.newSuffix())
	}

	lang := req.PreferredLanguage
	if lang == "" {
		lang = owner.Language()
	}

	ownerID := owner.ID
	created, err := s.guestRepo.CreateCompanion(ctx, &domain.Guest{
		FirstName:         firstName,
		LastName:          strings.TrimSpace(req.LastName),
		Email:             email,
		Phone:             strings.TrimSpace(req.Phone),
		PreferredLanguage: lang,
		MadeBy:            &ownerID,
		GroupName:         group,
	})
	if err != nil {
		s.logger.Error("AddCompanion: failed to create companion for owner id=%d: %v", owner.ID, err)
		return nil, fmt.Errorf("%w: AddCompanion - create companion: %w", ErrInternal, err)
	}

	s.logger.Info("AddCompanion: created companion id=%d for owner id=%d", created.ID, owner.ID)
	resp := models.FromDomainCompanion(created)
	return &resp, nil
}

// ListCompanions компаньоны гостя: зависимые профили и зеркала принятых заявок
func (s *Service) ListCompanions(ctx context.Context, ownerID int64) ([]models.CompanionResponse, error) {
	guests, err := s.guestRepo.ListCompanions(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListCompanions: failed to list companions of guest=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListCompanions - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainCompanionList(guests), nil
}

// UpdateCompanionGroup меняет группу компаньона; nil или пустая строка снимает группу
func (s *Service) UpdateCompanionGroup(ctx context.Context, ownerID, companionID int64, groupName *string) (*models.CompanionResponse, error) {
	s.logger.Info("UpdateCompanionGroup: owner=%d, companion=%d", ownerID, companionID)

	_, group, err := validateRequestFields(nil, groupName)
	if err != nil {
		return nil, err
	}

	companion, err := s.getOwnedCompanion(ctx, "UpdateCompanionGroup", ownerID, companionID)
	if err != nil {
		return nil, err
	}

	if err := s.guestRepo.UpdateGroup(ctx, companion.ID, group); err != nil {
		s.logger.Error("UpdateCompanionGroup: failed to update companion id=%d: %v", companion.ID, err)
		return nil, fmt.Errorf("%w: UpdateCompanionGroup - repository error: %w", ErrInternal, err)
	}

	companion.GroupName = group
	resp := models.FromDomainCompanion(companion)
	return &resp, nil
}

// DeleteCompanion удаляет компаньона владельца; ребра дружбы не затрагиваются
func (s *Service) DeleteCompanion(ctx context.Context, ownerID, companionID int64) error {
	s.logger.Info("DeleteCompanion: owner=%d, companion=%d", ownerID, companionID)

	companion, err := s.getOwnedCompanion(ctx, "DeleteCompanion", ownerID, companionID)
	if err != nil {
		return err
	}

	if err := s.guestRepo.Delete(ctx, companion.ID); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			return ErrCompanionNotFound
		}
		s.logger.Error("DeleteCompanion: failed to delete companion id=%d: %v", companion.ID, err)
		return fmt.Errorf("%w: DeleteCompanion - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("DeleteCompanion: companion id=%d deleted", companion.ID)
	return nil
}

func (s *Service) getOwnedCompanion(ctx context.Context, op string, ownerID, companionID int64) (*domain.Guest, error) {
	companion, err := s.guestRepo.GetByID(ctx, companionID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("%s: companion id=%d not found", op, companionID)
			return nil, ErrCompanionNotFound
		}
		s.logger.Error("%s: failed to get companion id=%d: %v", op, companionID, err)
		return nil, fmt.Errorf("%w: %s - get companion: %w", ErrInternal, op, err)
	}

	if !companion.IsCompanion() {
		return nil, ErrCompanionNotFound
	}
	if !companion.IsOwnedBy(ownerID) {
		s.logger.Warn("%s: guest=%d does not own companion id=%d", op, ownerID, companionID)
		return nil, ErrPermissionDenied
	}

	return companion, nil
}
