package message

import (
	"context"
	"strings"

	"courier/infrastructure"
)

// Service is the message ledger's write side. Blank content is rejected here,
// before any store work; everything else, including the membership snapshot,
// lives in one repository transaction.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SendDirect appends a single message addressed to one user.
func (s *Service) SendDirect(ctx context.Context, senderID, receiverID int64, content string) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, infrastructure.ErrEmptyContent
	}
	return s.repo.CreateDirect(ctx, senderID, receiverID, content)
}

// SendToGroup fans one logical send out into one message per member of the
// group at this instant. Later membership changes never alter what was
// delivered. Sending to an empty group succeeds and delivers nothing.
func (s *Service) SendToGroup(ctx context.Context, senderID, groupID int64, content string) ([]int64, error) {
	if strings.TrimSpace(content) == "" {
		return nil, infrastructure.ErrEmptyContent
	}
	return s.repo.FanOut(ctx, senderID, groupID, content)
}
