package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/fitplanhub/fitplanhub/internal/domain/follow"
	"github.com/fitplanhub/fitplanhub/internal/domain/plan"
	"github.com/fitplanhub/fitplanhub/internal/domain/subscription"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	EmailIndex  map[string]*user.User
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:      make(map[int64]*user.User),
		EmailIndex: make(map[string]*user.User),
		NextID:     1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, ok := m.EmailIndex[u.Email]; ok {
		return errors.Conflict("Email already registered")
	}
	u.ID = m.NextID
	m.NextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.EmailIndex[email]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

// MockPlanRepository is a mock implementation of plan.Repository
type MockPlanRepository struct {
	Plans       map[int64]*plan.Plan
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{
		Plans:  make(map[int64]*plan.Plan),
		NextID: 1,
	}
}

func (m *MockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	p.ID = m.NextID
	m.NextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.Plans[p.ID] = p
	return nil
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id int64) (*plan.Plan, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	p, ok := m.Plans[id]
	if !ok {
		return nil, errors.NotFound("Plan")
	}
	return p, nil
}

func (m *MockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	if _, ok := m.Plans[p.ID]; !ok {
		return errors.NotFound("Plan")
	}
	p.UpdatedAt = time.Now()
	m.Plans[p.ID] = p
	return nil
}

func (m *MockPlanRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.Plans[id]; !ok {
		return errors.NotFound("Plan")
	}
	delete(m.Plans, id)
	return nil
}

func (m *MockPlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	return m.sorted(func(p *plan.Plan) bool { return true }), nil
}

func (m *MockPlanRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]*plan.Plan, error) {
	return m.sorted(func(p *plan.Plan) bool { return p.TrainerID == trainerID }), nil
}

func (m *MockPlanRepository) ListByTrainers(ctx context.Context, trainerIDs []int64) ([]*plan.Plan, error) {
	wanted := make(map[int64]bool, len(trainerIDs))
	for _, id := range trainerIDs {
		wanted[id] = true
	}
	return m.sorted(func(p *plan.Plan) bool { return wanted[p.TrainerID] }), nil
}

func (m *MockPlanRepository) sorted(keep func(*plan.Plan) bool) []*plan.Plan {
	var result []*plan.Plan
	for _, p := range m.Plans {
		if keep(p) {
			result = append(result, p)
		}
	}
	// Newest first, matching the store ordering
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

type followKey struct {
	followerID int64
	trainerID  int64
}

// MockFollowRepository is a mock implementation of follow.Repository
type MockFollowRepository struct {
	Follows     map[followKey]*follow.Follow
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockFollowRepository() *MockFollowRepository {
	return &MockFollowRepository{
		Follows: make(map[followKey]*follow.Follow),
		NextID:  1,
	}
}

func (m *MockFollowRepository) Create(ctx context.Context, f *follow.Follow) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	key := followKey{f.FollowerID, f.TrainerID}
	if _, ok := m.Follows[key]; ok {
		return errors.Conflict("Already following this trainer")
	}
	f.ID = m.NextID
	m.NextID++
	f.FollowedAt = time.Now()
	m.Follows[key] = f
	return nil
}

func (m *MockFollowRepository) Get(ctx context.Context, followerID, trainerID int64) (*follow.Follow, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	f, ok := m.Follows[followKey{followerID, trainerID}]
	if !ok {
		return nil, errors.NotFound("Follow")
	}
	return f, nil
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, trainerID int64) error {
	key := followKey{followerID, trainerID}
	if _, ok := m.Follows[key]; !ok {
		return errors.NotFound("Follow")
	}
	delete(m.Follows, key)
	return nil
}

func (m *MockFollowRepository) ListByFollower(ctx context.Context, followerID int64) ([]*follow.Follow, error) {
	var result []*follow.Follow
	for _, f := range m.Follows {
		if f.FollowerID == followerID {
			result = append(result, f)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

type subKey struct {
	userID int64
	planID int64
}

// MockSubscriptionRepository is a mock implementation of subscription.Repository
type MockSubscriptionRepository struct {
	Subs        map[subKey]*subscription.Subscription
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		Subs:   make(map[subKey]*subscription.Subscription),
		NextID: 1,
	}
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	key := subKey{s.UserID, s.PlanID}
	if _, ok := m.Subs[key]; ok {
		return errors.Conflict("Already subscribed to this plan")
	}
	s.ID = m.NextID
	m.NextID++
	s.PurchasedAt = time.Now()
	if s.Status == "" {
		s.Status = subscription.StatusActive
	}
	m.Subs[key] = s
	return nil
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, userID, planID int64) (*subscription.Subscription, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	s, ok := m.Subs[subKey{userID, planID}]
	if !ok {
		return nil, errors.NotFound("Subscription")
	}
	return s, nil
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, userID, planID int64) error {
	key := subKey{userID, planID}
	if _, ok := m.Subs[key]; !ok {
		return errors.NotFound("Subscription")
	}
	delete(m.Subs, key)
	return nil
}

func (m *MockSubscriptionRepository) DeleteByPlan(ctx context.Context, planID int64) error {
	for key := range m.Subs {
		if key.planID == planID {
			delete(m.Subs, key)
		}
	}
	return nil
}

func (m *MockSubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]*subscription.Subscription, error) {
	var result []*subscription.Subscription
	for _, s := range m.Subs {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockSubscriptionRepository) ActivePlanIDs(ctx context.Context, userID int64) (map[int64]bool, error) {
	ids := make(map[int64]bool)
	for _, s := range m.Subs {
		if s.UserID == userID && s.Active() {
			ids[s.PlanID] = true
		}
	}
	return ids, nil
}

func (m *MockSubscriptionRepository) ExpireOlderThan(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
