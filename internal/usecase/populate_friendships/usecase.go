package populate_friendships

import (
	"context"
	"fmt"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// UseCase перестраивает ребра дружбы из трех источников:
// записей компаньонов, групп друзей и принятых заявок
// Повторный запуск безопасен: ребра создаются по принципу get-or-create
type UseCase struct {
	guestRepo   GuestRepository
	requestRepo RequestRepository
	groupRepo   GroupRepository
	friendships FriendshipService
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	guestRepo GuestRepository,
	requestRepo RequestRepository,
	groupRepo GroupRepository,
	friendships FriendshipService,
	logger Logger,
) *UseCase {
	return &UseCase{
		guestRepo:   guestRepo,
		requestRepo: requestRepo,
		groupRepo:   groupRepo,
		friendships: friendships,
		logger:      logger,
	}
}

type edge struct {
	a, b  int64
	group string
}

// Execute выполняет перестроение
// Ошибка отдельной пары логируется и учитывается в Failed; обработка продолжается
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("PopulateFriendships: starting")

	resp := &Response{}

	// 1. Записи компаньонов: владелец <-> отражаемая учетная запись или сам профиль
	companions, err := uc.guestRepo.ListAllCompanions(ctx)
	if err != nil {
		uc.logger.Error("PopulateFriendships: failed to list companions: %v", err)
		return nil, fmt.Errorf("%w: companions: %w", ErrLoadSource, err)
	}
	edges := make([]edge, 0, len(companions))
	for _, c := range companions {
		if c.MadeBy == nil {
			continue
		}
		friend := c.ID
		if c.LinkedGuestID != nil {
			friend = *c.LinkedGuestID
		}
		group := domain.DirectCompanionsGroup
		if c.GroupName != nil && *c.GroupName != "" {
			group = *c.GroupName
		}
		edges = append(edges, edge{a: *c.MadeBy, b: friend, group: group})
	}
	resp.CompanionRecords = len(edges)

	// 2. Принятые заявки
	accepted, err := uc.requestRepo.ListAccepted(ctx)
	if err != nil {
		uc.logger.Error("PopulateFriendships: failed to list accepted requests: %v", err)
		return nil, fmt.Errorf("%w: requests: %w", ErrLoadSource, err)
	}
	for _, r := range accepted {
		group := domain.ConnectedGuestsGroup
		if r.GroupName != nil && *r.GroupName != "" {
			group = *r.GroupName
		}
		edges = append(edges, edge{a: r.SenderID, b: r.RecipientID, group: group})
	}
	resp.AcceptedRequests = len(accepted)

	// 3. Группы: владелец с каждым участником и все участники попарно
	groups, err := uc.groupRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("PopulateFriendships: failed to list friend groups: %v", err)
		return nil, fmt.Errorf("%w: groups: %w", ErrLoadSource, err)
	}
	for _, g := range groups {
		pairs := g.Pairs()
		for _, p := range pairs {
			edges = append(edges, edge{a: p.A, b: p.B, group: g.Name})
		}
		resp.GroupPairs += len(pairs)
	}

	// 4. Создаем ребра
	for _, e := range edges {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("PopulateFriendships: interrupted after %d pairs: %v", resp.Processed, err)
			return resp, err
		}

		resp.Processed++
		created, err := uc.friendships.Make(ctx, e.a, e.b, e.group)
		if err != nil {
			resp.Failed++
			uc.logger.Warn("PopulateFriendships: failed to connect %d and %d: %v", e.a, e.b, err)
			continue
		}
		resp.Created += created
	}

	uc.logger.Info("PopulateFriendships: processed=%d (approximate), created edges=%d, failed=%d",
		resp.Processed, resp.Created, resp.Failed)
	return resp, nil
}
