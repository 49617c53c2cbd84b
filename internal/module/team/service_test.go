package team

import (
	"context"
	"testing"

	"github.com/intiprima/backoffice/internal/domain"
)

type mockTeamRepo struct {
	members map[uint]*domain.TeamMember
	nextID  uint
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{members: map[uint]*domain.TeamMember{}, nextID: 1}
}

func (m *mockTeamRepo) Create(ctx context.Context, member *domain.TeamMember) error {
	member.ID = m.nextID
	m.nextID++
	m.members[member.ID] = member
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id uint) (*domain.TeamMember, error) {
	if member, ok := m.members[id]; ok {
		cp := *member
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockTeamRepo) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.TeamMember], error) {
	items := make([]domain.TeamMember, 0, len(m.members))
	for _, member := range m.members {
		items = append(items, *member)
	}
	return &domain.PageResult[domain.TeamMember]{Items: items}, nil
}

func (m *mockTeamRepo) Update(ctx context.Context, member *domain.TeamMember) error {
	if _, ok := m.members[member.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *member
	m.members[member.ID] = &cp
	return nil
}

func (m *mockTeamRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.members[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.members, id)
	return nil
}

func TestService_CreateAndUpdate(t *testing.T) {
	svc := NewService(newMockTeamRepo())
	ctx := context.Background()

	member, err := svc.Create(ctx, CreateTeamMemberRequest{
		Name:         "  Jane Doe  ",
		Position:     "Sales Engineer",
		DisplayOrder: 3,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if member.Name != "Jane Doe" {
		t.Errorf("Name = %q, want trimmed", member.Name)
	}
	if member.DisplayOrder != 3 {
		t.Errorf("DisplayOrder = %d, want 3", member.DisplayOrder)
	}

	updated, err := svc.Update(ctx, member.ID, UpdateTeamMemberRequest{
		Name:         "Jane Doe",
		Position:     "Head of Sales",
		DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Position != "Head of Sales" || updated.DisplayOrder != 1 {
		t.Errorf("got %+v, want updated position and order", updated)
	}
}

func TestService_UpdateAndDelete_NotFound(t *testing.T) {
	svc := NewService(newMockTeamRepo())
	ctx := context.Background()

	if _, err := svc.Update(ctx, 99, UpdateTeamMemberRequest{Name: "X", Position: "Y"}); !domain.IsNotFound(err) {
		t.Errorf("Update error = %v, want not-found", err)
	}
	if err := svc.Delete(ctx, 99); !domain.IsNotFound(err) {
		t.Errorf("Delete error = %v, want not-found", err)
	}
}

func TestListConfig_OrdersByDisplayOrder(t *testing.T) {
	cfg := ListConfig()
	if cfg.DefaultSortField != "display_order" {
		t.Errorf("DefaultSortField = %q, want display_order", cfg.DefaultSortField)
	}
	if cfg.DefaultSortOrder != "asc" {
		t.Errorf("DefaultSortOrder = %q, want asc", cfg.DefaultSortOrder)
	}
}
