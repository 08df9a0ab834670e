package group

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"courier/infrastructure"
)

// fakeRepository is an in-memory stand-in honoring the Repository contract:
// unique names, unique membership pairs, insertion-ordered listings.
type fakeRepository struct {
	users   map[int64]string
	groups  []Group
	members map[int64][]Member
	nextID  int64
}

func newFakeRepository(users map[int64]string) *fakeRepository {
	return &fakeRepository{
		users:   users,
		members: map[int64][]Member{},
	}
}

func (f *fakeRepository) CreateGroup(_ context.Context, name string, adminID int64) (int64, error) {
	if _, ok := f.users[adminID]; !ok {
		return 0, infrastructure.ErrUnknownUser
	}
	for _, g := range f.groups {
		if g.Name == name {
			return 0, infrastructure.ErrDuplicateGroupName
		}
	}
	f.nextID++
	f.groups = append(f.groups, Group{ID: f.nextID, Name: name, AdminID: adminID, CreatedAt: time.Now()})
	return f.nextID, nil
}

func (f *fakeRepository) AddMember(_ context.Context, groupID, userID int64) error {
	if !f.groupExists(groupID) {
		return infrastructure.ErrUnknownGroup
	}
	username, ok := f.users[userID]
	if !ok {
		return infrastructure.ErrUnknownUser
	}
	for _, m := range f.members[groupID] {
		if m.UserID == userID {
			return infrastructure.ErrAlreadyMember
		}
	}
	f.members[groupID] = append(f.members[groupID], Member{UserID: userID, Username: username})
	return nil
}

func (f *fakeRepository) RemoveMember(_ context.Context, groupID, userID int64) error {
	current := f.members[groupID]
	for i, m := range current {
		if m.UserID == userID {
			f.members[groupID] = append(current[:i:i], current[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepository) Members(_ context.Context, groupID int64) ([]Member, error) {
	if !f.groupExists(groupID) {
		return nil, infrastructure.ErrUnknownGroup
	}
	return append([]Member{}, f.members[groupID]...), nil
}

func (f *fakeRepository) Groups(_ context.Context) ([]Group, error) {
	return append([]Group{}, f.groups...), nil
}

func (f *fakeRepository) groupExists(groupID int64) bool {
	for _, g := range f.groups {
		if g.ID == groupID {
			return true
		}
	}
	return false
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	users := map[int64]string{1: "alice", 2: "bob"}

	t.Run("creates a group without auto-joining the admin", func(t *testing.T) {
		req := require.New(t)
		svc := NewService(newFakeRepository(users))

		id, err := svc.Create(ctx, "team", 1)
		req.NoError(err)

		members, err := svc.Members(ctx, id)
		req.NoError(err)
		req.Empty(members)
	})

	t.Run("rejects an unknown admin", func(t *testing.T) {
		req := require.New(t)
		svc := NewService(newFakeRepository(users))

		_, err := svc.Create(ctx, "team", 99)
		req.ErrorIs(err, infrastructure.ErrUnknownUser)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		req := require.New(t)
		svc := NewService(newFakeRepository(users))

		_, err := svc.Create(ctx, "team", 1)
		req.NoError(err)

		_, err = svc.Create(ctx, "team", 2)
		req.ErrorIs(err, infrastructure.ErrDuplicateGroupName)
	})

	t.Run("lists groups in creation order", func(t *testing.T) {
		req := require.New(t)
		svc := NewService(newFakeRepository(users))

		for _, name := range []string{"first", "second", "third"} {
			_, err := svc.Create(ctx, name, 1)
			req.NoError(err)
		}

		groups, err := svc.Groups(ctx)
		req.NoError(err)
		req.Len(groups, 3)
		req.Equal("first", groups[0].Name)
		req.Equal("second", groups[1].Name)
		req.Equal("third", groups[2].Name)
	})
}

func TestService_Membership(t *testing.T) {
	ctx := context.Background()
	users := map[int64]string{1: "alice", 2: "bob", 3: "carol"}

	setup := func(t *testing.T) (*Service, int64) {
		svc := NewService(newFakeRepository(users))
		id, err := svc.Create(ctx, "team", 1)
		require.NoError(t, err)
		return svc, id
	}

	t.Run("adding the same member twice fails and keeps one entry", func(t *testing.T) {
		req := require.New(t)
		svc, id := setup(t)

		req.NoError(svc.AddMember(ctx, id, 2))
		req.ErrorIs(svc.AddMember(ctx, id, 2), infrastructure.ErrAlreadyMember)

		members, err := svc.Members(ctx, id)
		req.NoError(err)
		req.Len(members, 1)
		req.Equal(int64(2), members[0].UserID)
	})

	t.Run("adding to an unknown group or an unknown user fails", func(t *testing.T) {
		req := require.New(t)
		svc, id := setup(t)

		req.ErrorIs(svc.AddMember(ctx, 99, 2), infrastructure.ErrUnknownGroup)
		req.ErrorIs(svc.AddMember(ctx, id, 99), infrastructure.ErrUnknownUser)
	})

	t.Run("removing a non-member is a no-op that leaves others intact", func(t *testing.T) {
		req := require.New(t)
		svc, id := setup(t)

		req.NoError(svc.AddMember(ctx, id, 1))
		req.NoError(svc.AddMember(ctx, id, 2))

		req.NoError(svc.RemoveMember(ctx, id, 3))

		members, err := svc.Members(ctx, id)
		req.NoError(err)
		req.Len(members, 2)
	})

	t.Run("members keep membership insertion order", func(t *testing.T) {
		req := require.New(t)
		svc, id := setup(t)

		req.NoError(svc.AddMember(ctx, id, 3))
		req.NoError(svc.AddMember(ctx, id, 1))
		req.NoError(svc.AddMember(ctx, id, 2))

		members, err := svc.Members(ctx, id)
		req.NoError(err)
		req.Equal([]int64{3, 1, 2}, []int64{members[0].UserID, members[1].UserID, members[2].UserID})
	})

	t.Run("listing members of an unknown group fails", func(t *testing.T) {
		req := require.New(t)
		svc, _ := setup(t)

		_, err := svc.Members(ctx, 99)
		req.ErrorIs(err, infrastructure.ErrUnknownGroup)
	})
}
