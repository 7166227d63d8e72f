package friendships

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/friendships/models"
)

// Service сервис симметричного графа дружбы
// Каждая пара хранится двумя направленными ребрами
type Service struct {
	repo      FriendshipRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса дружбы
func NewService(repo FriendshipRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{repo: repo, txManager: txManager, logger: logger}
}

// Make идемпотентно создает оба направления дружбы
// Существующие ребра не перезаписываются: группа остается той, с которой ребро было создано
// Возвращает количество реально вставленных ребер (0, 1 или 2)
func (s *Service) Make(ctx context.Context, a, b int64, groupName string) (int, error) {
	if a <= 0 || b <= 0 {
		return 0, fmt.Errorf("%w: guest ids must be positive", ErrInvalidInput)
	}
	if a == b {
		return 0, ErrSelfFriendship
	}

	group := normalizeGroup(groupName)
	if utf8.RuneCountInString(group) > domain.MaxGroupNameLength {
		return 0, fmt.Errorf("%w: group name exceeds %d characters", ErrInvalidInput, domain.MaxGroupNameLength)
	}

	created := 0
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, edge := range [][2]int64{{a, b}, {b, a}} {
			inserted, err := s.repo.CreateIfAbsent(txCtx, edge[0], edge[1], group)
			if err != nil {
				return fmt.Errorf("%w: Make - create edge %d->%d: %w", ErrInternal, edge[0], edge[1], err)
			}
			if inserted {
				created++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Make: failed to connect guests %d and %d: %v", a, b, err)
		return 0, err
	}

	if created > 0 {
		s.logger.Info("Make: connected guests %d and %d in group %q (%d new edges)", a, b, group, created)
	}
	return created, nil
}

// End удаляет оба направления дружбы
func (s *Service) End(ctx context.Context, a, b int64) (int64, error) {
	if a == b {
		return 0, ErrSelfFriendship
	}

	removed, err := s.repo.DeletePair(ctx, a, b)
	if err != nil {
		s.logger.Error("End: failed to disconnect guests %d and %d: %v", a, b, err)
		return 0, fmt.Errorf("%w: End - delete pair: %w", ErrInternal, err)
	}

	s.logger.Info("End: disconnected guests %d and %d (%d edges removed)", a, b, removed)
	return removed, nil
}

// Exists проверяет наличие ребра user -> friend
func (s *Service) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	ok, err := s.repo.Exists(ctx, userID, friendID)
	if err != nil {
		s.logger.Error("Exists: failed to check edge %d->%d: %v", userID, friendID, err)
		return false, fmt.Errorf("%w: Exists - repository error: %w", ErrInternal, err)
	}
	return ok, nil
}

// ListFriends возвращает друзей гостя, сгруппированных по метке
func (s *Service) ListFriends(ctx context.Context, userID int64) (*models.FriendListResponse, error) {
	edges, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListFriends: failed to list friends of guest %d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListFriends - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainFriendships(edges), nil
}

func normalizeGroup(groupName string) string {
	group := strings.TrimSpace(groupName)
	if group == "" {
		return domain.DefaultFriendshipGroup
	}
	return group
}
