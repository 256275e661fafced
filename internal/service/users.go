package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"agriquest/internal/model"
	"agriquest/internal/repository"

	"github.com/google/uuid"
)

func mapUserRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("failed to update user: %w", err)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

var demoNames = map[model.Role]string{
	model.RoleFarmer:  "राज पटेल",
	model.RoleAEO:     "Dr. प्रिया शर्मा",
	model.RoleNGO:     "Green Earth NGO",
	model.RoleAdmin:   "System Admin",
	model.RoleStudent: "अनिल कुमार",
}

var demoLevels = map[model.Role]string{
	model.RoleFarmer:  "Eco Warrior",
	model.RoleAEO:     "Extension Officer",
	model.RoleNGO:     "Community Partner",
	model.RoleAdmin:   "System Administrator",
	model.RoleStudent: "Learning Enthusiast",
}

// DemoLogin creates a throwaway account for the chosen role and makes
// it the session user. The farmer demo carries the showcase progression
// stats so the dashboard has something to display.
func (s *UserService) DemoLogin(role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	user := &model.User{
		ID:         fmt.Sprintf("demo-%s-%s", role, uuid.NewString()),
		Name:       demoNames[role],
		Email:      fmt.Sprintf("%s@demo.com", role),
		Role:       role,
		Location:   "Kerala, India",
		Level:      demoLevels[role],
		Badges:     []model.Badge{},
		JoinedDate: time.Now().Format("2006-01-02"),
	}
	if role == model.RoleFarmer {
		user.SustainabilityScore = 785
		user.CompletedQuests = 28
		user.ActiveQuests = 3
	}

	if err := s.repo.SetCurrentUser(user); err != nil {
		return nil, fmt.Errorf("failed to set session user: %w", err)
	}

	return user, nil
}

type RegisterInput struct {
	Name     string
	Email    string
	Role     model.Role
	Location string
}

// Register creates a fresh account and logs it in.
func (s *UserService) Register(input RegisterInput) (*model.User, error) {
	if input.Name == "" || input.Email == "" || input.Location == "" {
		return nil, fmt.Errorf("%w: name, email and location are required", ErrInvalidInput)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	user := &model.User{
		ID:         fmt.Sprintf("user-%s", uuid.NewString()),
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Location:   input.Location,
		Level:      "Beginner",
		Badges:     []model.Badge{},
		JoinedDate: time.Now().Format("2006-01-02"),
	}

	if err := s.repo.AddUser(user); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	if err := s.repo.SetCurrentUser(user); err != nil {
		return nil, fmt.Errorf("failed to set session user: %w", err)
	}

	return user, nil
}

func (s *UserService) CurrentUser() (*model.User, error) {
	user, err := s.repo.CurrentUser()
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Logout() error {
	return s.repo.Logout()
}

func (s *UserService) GetUserByID(id string) (*model.User, error) {
	users, err := s.repo.AllUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserService) AllUsers() ([]model.User, error) {
	users, err := s.repo.AllUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) UpdateProfile(id string, patch model.UserPatch) (*model.User, error) {
	user, err := s.repo.UpdateUser(id, patch)
	if err != nil {
		return nil, mapUserRepoError(err)
	}
	return user, nil
}

// SaveFarmProfile replaces the farm profile wholesale; partial merges
// across saves are not supported.
func (s *UserService) SaveFarmProfile(id string, profile model.FarmProfile) (*model.User, error) {
	if profile.FarmSize < 0 {
		return nil, fmt.Errorf("%w: farm size must not be negative", ErrInvalidInput)
	}
	user, err := s.repo.UpdateUser(id, model.UserPatch{FarmProfile: &profile})
	if err != nil {
		return nil, mapUserRepoError(err)
	}
	return user, nil
}

// Leaderboard ranks all users by sustainability score, highest first.
// Ties keep roster order.
func (s *UserService) Leaderboard() ([]model.LeaderboardEntry, error) {
	users, err := s.repo.AllUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].SustainabilityScore > users[j].SustainabilityScore
	})

	entries := make([]model.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = model.LeaderboardEntry{
			UserID:          u.ID,
			Name:            u.Name,
			Location:        u.Location,
			Score:           u.SustainabilityScore,
			Rank:            i + 1,
			Badge:           rankBadge(i + 1),
			CompletedQuests: u.CompletedQuests,
		}
	}
	return entries, nil
}

func rankBadge(rank int) string {
	switch rank {
	case 1:
		return "🏆"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	case 4:
		return "🌱"
	default:
		return "🌿"
	}
}
