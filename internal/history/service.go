package history

import "context"

// Service is the read side: it reconstructs per-user and per-group message
// histories from the ledger. Results are stable across calls with no
// intervening writes, since the ordering key (timestamp, id) is immutable.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) MessagesFor(ctx context.Context, userID int64) ([]Entry, error) {
	return s.repo.MessagesFor(ctx, userID)
}

func (s *Service) MessagesIn(ctx context.Context, groupID int64) ([]Entry, error) {
	return s.repo.MessagesIn(ctx, groupID)
}
