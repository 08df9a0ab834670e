package group

import "context"

// Service is the group registry: it owns group creation and the membership
// roster other components resolve against.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name string, adminID int64) (int64, error) {
	return s.repo.CreateGroup(ctx, name, adminID)
}

func (s *Service) AddMember(ctx context.Context, groupID, userID int64) error {
	return s.repo.AddMember(ctx, groupID, userID)
}

// RemoveMember is idempotent: removing a user who is not a member succeeds.
func (s *Service) RemoveMember(ctx context.Context, groupID, userID int64) error {
	return s.repo.RemoveMember(ctx, groupID, userID)
}

func (s *Service) Members(ctx context.Context, groupID int64) ([]Member, error) {
	return s.repo.Members(ctx, groupID)
}

func (s *Service) Groups(ctx context.Context) ([]Group, error) {
	return s.repo.Groups(ctx)
}
