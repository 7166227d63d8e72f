package companions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	guestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/guest"
	requestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/companionrequest"
	"github.com/m04kA/tourism-booking-service/internal/service/companions/models"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
)

// Service сервис заявок в компаньоны и компаньонов гостя
// Принятая заявка материализуется зеркальными компаньонами у обеих сторон и ребрами дружбы
type Service struct {
	guestRepo   GuestRepository
	requestRepo RequestRepository
	friendships FriendshipService
	notifier    Notifier
	txManager   TransactionManager
	newSuffix   func() string
	logger      Logger
}

// NewService создает новый экземпляр сервиса компаньонов
func NewService(
	guestRepo GuestRepository,
	requestRepo RequestRepository,
	friendships FriendshipService,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		guestRepo:   guestRepo,
		requestRepo: requestRepo,
		friendships: friendships,
		notifier:    notifier,
		txManager:   txManager,
		newSuffix:   randomSuffix,
		logger:      logger,
	}
}

// randomSuffix короткий уникальный суффикс для синтезированных адресов
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SendRequest отправляет заявку в компаньоны
// Повторная заявка после отклонения переиспользует ту же строку (пара sender/recipient уникальна)
func (s *Service) SendRequest(ctx context.Context, req *models.SendRequestRequest) (*models.RequestResponse, error) {
	s.logger.Info("SendRequest: sender=%d, recipient=%d", req.SenderID, req.RecipientID)

	// 1. Валидация
	if req.SenderID == req.RecipientID {
		s.logger.Warn("SendRequest: guest=%d tried to send a request to itself", req.SenderID)
		return nil, ErrSelfRequest
	}
	message, group, err := validateRequestFields(req.Message, req.GroupName)
	if err != nil {
		s.logger.Warn("SendRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Обе стороны должны быть реальными учетными записями
	sender, err := s.getAccount(ctx, "SendRequest", req.SenderID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.getAccount(ctx, "SendRequest", req.RecipientID)
	if err != nil {
		return nil, err
	}

	// 3. Уже связанные гости не отправляют заявки
	connected, err := s.friendships.Exists(ctx, sender.ID, recipient.ID)
	if err != nil {
		s.logger.Error("SendRequest: failed to check friendship %d->%d: %v", sender.ID, recipient.ID, err)
		return nil, fmt.Errorf("%w: SendRequest - check friendship: %w", ErrInternal, err)
	}
	if connected {
		s.logger.Warn("SendRequest: guests %d and %d are already connected", sender.ID, recipient.ID)
		return nil, ErrAlreadyConnected
	}

	var result *domain.CompanionRequest

	// 4. Создаем заявку или переоткрываем существующую
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.requestRepo.ListBetween(txCtx, sender.ID, recipient.ID)
		if err != nil {
			return fmt.Errorf("%w: SendRequest - list requests: %w", ErrInternal, err)
		}

		var own *domain.CompanionRequest
		for _, r := range existing {
			if r.Status == domain.RequestPending {
				s.logger.Warn("SendRequest: pending request id=%d already exists between %d and %d", r.ID, sender.ID, recipient.ID)
				return ErrDuplicatePending
			}
			if r.SenderID == sender.ID && r.RecipientID == recipient.ID {
				own = r
			}
		}

		if own != nil {
			if err := own.Resend(message, group); err != nil {
				return ErrDuplicatePending
			}
			if err := s.requestRepo.Update(txCtx, own); err != nil {
				return fmt.Errorf("%w: SendRequest - reopen request: %w", ErrInternal, err)
			}
			s.logger.Info("SendRequest: reopened request id=%d", own.ID)
			result = own
			return nil
		}

		created, err := s.requestRepo.Create(txCtx, &domain.CompanionRequest{
			SenderID:    sender.ID,
			RecipientID: recipient.ID,
			Status:      domain.RequestPending,
			Message:     message,
			GroupName:   group,
		})
		if err != nil {
			return fmt.Errorf("%w: SendRequest - create request: %w", ErrInternal, err)
		}
		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("SendRequest: %v", err)
		}
		return nil, err
	}

	s.logger.Info("SendRequest: request id=%d from %d to %d is pending", result.ID, sender.ID, recipient.ID)

	// 5. Уведомляем получателя
	s.notifier.CompanionRequestReceived(ctx, notifications.RecipientFromGuest(recipient), sender.FullName())

	resp := models.FromDomainRequest(result)
	return &resp, nil
}

// Accept принимает заявку: получатель и отправитель получают компаньонов друг друга
func (s *Service) Accept(ctx context.Context, requestID, actorID int64) (*models.AcceptResponse, error) {
	s.logger.Info("Accept: request=%d, actor=%d", requestID, actorID)

	var resp models.AcceptResponse

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Заявка с блокировкой; принять может только получатель
		request, err := s.lockRequestForRecipient(txCtx, "Accept", requestID, actorID)
		if err != nil {
			return err
		}

		if err := request.Accept(); err != nil {
			s.logger.Warn("Accept: request id=%d is %s", request.ID, request.Status)
			return ErrInvalidTransition
		}
		if err := s.requestRepo.Update(txCtx, request); err != nil {
			return fmt.Errorf("%w: Accept - update request: %w", ErrInternal, err)
		}

		// 2. Загружаем обе учетные записи
		sender, err := s.getAccount(txCtx, "Accept", request.SenderID)
		if err != nil {
			return err
		}
		recipient, err := s.getAccount(txCtx, "Accept", request.RecipientID)
		if err != nil {
			return err
		}

		group := request.Group()

		// 3. Зеркальные компаньоны с обеих сторон
		senderSide, err := s.ensureMirror(txCtx, sender, recipient, group)
		if err != nil {
			return err
		}
		recipientSide, err := s.ensureMirror(txCtx, recipient, sender, group)
		if err != nil {
			return err
		}

		// 4. Ребра дружбы в той же транзакции
		if _, err := s.friendships.Make(txCtx, sender.ID, recipient.ID, group); err != nil {
			return fmt.Errorf("%w: Accept - make friendship: %w", ErrInternal, err)
		}

		resp = models.AcceptResponse{
			Request:            models.FromDomainRequest(request),
			SenderCompanion:    models.FromDomainCompanion(senderSide),
			RecipientCompanion: models.FromDomainCompanion(recipientSide),
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Accept: %v", err)
		}
		return nil, err
	}

	s.logger.Info("Accept: request id=%d accepted, mirrors id=%d and id=%d", requestID,
		resp.SenderCompanion.ID, resp.RecipientCompanion.ID)
	return &resp, nil
}

// Decline отклоняет заявку; граф не меняется
func (s *Service) Decline(ctx context.Context, requestID, actorID int64) (*models.RequestResponse, error) {
	s.logger.Info("Decline: request=%d, actor=%d", requestID, actorID)

	var result *domain.CompanionRequest

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		request, err := s.lockRequestForRecipient(txCtx, "Decline", requestID, actorID)
		if err != nil {
			return err
		}

		if err := request.Decline(); err != nil {
			s.logger.Warn("Decline: request id=%d is %s", request.ID, request.Status)
			return ErrInvalidTransition
		}
		if err := s.requestRepo.Update(txCtx, request); err != nil {
			return fmt.Errorf("%w: Decline - update request: %w", ErrInternal, err)
		}

		result = request
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Decline: %v", err)
		}
		return nil, err
	}

	s.logger.Info("Decline: request id=%d declined", requestID)
	resp := models.FromDomainRequest(result)
	return &resp, nil
}

// ListRequests ожидающие заявки гостя: входящие и исходящие
func (s *Service) ListRequests(ctx context.Context, guestID int64) (*models.RequestListResponse, error) {
	pending := domain.RequestPending

	received, err := s.requestRepo.ListReceived(ctx, guestID, &pending)
	if err != nil {
		s.logger.Error("ListRequests: failed to list received requests of guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: ListRequests - received: %w", ErrInternal, err)
	}

	sent, err := s.requestRepo.ListSent(ctx, guestID, &pending)
	if err != nil {
		s.logger.Error("ListRequests: failed to list sent requests of guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: ListRequests - sent: %w", ErrInternal, err)
	}

	return &models.RequestListResponse{
		Received: models.FromDomainRequestList(received),
		Sent:     models.FromDomainRequestList(sent),
	}, nil
}

// PendingCount количество входящих ожидающих заявок
func (s *Service) PendingCount(ctx context.Context, guestID int64) (int, error) {
	count, err := s.requestRepo.CountPending(ctx, guestID)
	if err != nil {
		s.logger.Error("PendingCount: failed to count requests of guest=%d: %v", guestID, err)
		return 0, fmt.Errorf("%w: PendingCount - repository error: %w", ErrInternal, err)
	}
	return count, nil
}

// Вспомогательные методы

func (s *Service) lockRequestForRecipient(ctx context.Context, op string, requestID, actorID int64) (*domain.CompanionRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("%s: request id=%d not found", op, requestID)
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("%w: %s - get request: %w", ErrInternal, op, err)
	}

	if request.RecipientID != actorID {
		s.logger.Warn("%s: guest=%d is not the recipient of request id=%d", op, actorID, requestID)
		return nil, ErrPermissionDenied
	}

	return request, nil
}

// getAccount загружает гостя и проверяет, что это учетная запись, а не компаньон
func (s *Service) getAccount(ctx context.Context, op string, id int64) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("%s: guest id=%d not found", op, id)
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("%w: %s - get guest %d: %w", ErrInternal, op, id, err)
	}

	if guest.IsCompanion() {
		s.logger.Warn("%s: guest id=%d is a companion profile", op, id)
		return nil, fmt.Errorf("%w: guest %d is a companion profile", ErrInvalidInput, id)
	}

	return guest, nil
}

// ensureMirror возвращает компаньона owner, отражающего linked; создает его, если нет
// Найденный компаньон получает группу из последней принятой заявки
func (s *Service) ensureMirror(ctx context.Context, owner, linked *domain.Guest, group string) (*domain.Guest, error) {
	mirror, err := s.guestRepo.FindMirror(ctx, owner.ID, linked.ID)
	if err == nil {
		if mirror.GroupName == nil || *mirror.GroupName != group {
			if err := s.guestRepo.UpdateGroup(ctx, mirror.ID, &group); err != nil {
				return nil, fmt.Errorf("%w: ensureMirror - update group: %w", ErrInternal, err)
			}
			mirror.GroupName = &group
		}
		return mirror, nil
	}
	if !errors.Is(err, guestRepo.ErrGuestNotFound) {
		return nil, fmt.Errorf("%w: ensureMirror - find mirror: %w", ErrInternal, err)
	}

	ownerID, linkedID := owner.ID, linked.ID
	created, err := s.guestRepo.CreateCompanion(ctx, &domain.Guest{
		FirstName:         linked.FirstName,
		LastName:          linked.LastName,
		Email:             domain.CompanionEmail(linked.Email, s.newSuffix()),
		Phone:             linked.Phone,
		PreferredLanguage: linked.PreferredLanguage,
		MadeBy:            &ownerID,
		LinkedGuestID:     &linkedID,
		GroupName:         &group,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ensureMirror - create companion: %w", ErrInternal, err)
	}

	s.logger.Info("ensureMirror: guest=%d now has companion id=%d mirroring guest=%d in %q",
		owner.ID, created.ID, linked.ID, group)
	return created, nil
}

// validateRequestFields нормализует сообщение и группу заявки
func validateRequestFields(message, group *string) (*string, *string, error) {
	msg := trimmedOrNil(message)
	if msg != nil && utf8.RuneCountInString(*msg) > domain.MaxRequestMessageLength {
		return nil, nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxRequestMessageLength)
	}

	grp := trimmedOrNil(group)
	if grp != nil && utf8.RuneCountInString(*grp) > domain.MaxGroupNameLength {
		return nil, nil, fmt.Errorf("%w: group name exceeds %d characters", ErrInvalidInput, domain.MaxGroupNameLength)
	}

	return msg, grp, nil
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
