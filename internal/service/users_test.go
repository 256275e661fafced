package service

import (
	"path/filepath"
	"testing"

	"agriquest/internal/model"
	"agriquest/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	repo, err := repository.New(repository.Config{
		Path: filepath.Join(t.TempDir(), "store.json"),
	})
	require.NoError(t, err)
	return repo
}

func TestUserService_Register(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewUserService(repo)

	tests := []struct {
		name        string
		input       RegisterInput
		expectError error
	}{
		{
			name: "valid farmer",
			input: RegisterInput{
				Name: "Anil", Email: "anil@example.com",
				Role: model.RoleFarmer, Location: "Kerala, India",
			},
		},
		{
			name: "missing name",
			input: RegisterInput{
				Email: "x@example.com", Role: model.RoleFarmer, Location: "Kerala",
			},
			expectError: ErrInvalidInput,
		},
		{
			name: "unknown role",
			input: RegisterInput{
				Name: "Anil", Email: "x@example.com",
				Role: model.Role("wizard"), Location: "Kerala",
			},
			expectError: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Register(tt.input)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, "Beginner", user.Level)
			assert.Zero(t, user.SustainabilityScore)

			// registration also logs the user in
			current, err := svc.CurrentUser()
			require.NoError(t, err)
			assert.Equal(t, user.ID, current.ID)
		})
	}
}

func TestUserService_DemoLogin(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewUserService(repo)

	farmer, err := svc.DemoLogin(model.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, "राज पटेल", farmer.Name)
	assert.Equal(t, "Eco Warrior", farmer.Level)
	assert.Equal(t, 785, farmer.SustainabilityScore)
	assert.Equal(t, 28, farmer.CompletedQuests)

	aeo, err := svc.DemoLogin(model.RoleAEO)
	require.NoError(t, err)
	assert.Equal(t, "Dr. प्रिया शर्मा", aeo.Name)
	assert.Zero(t, aeo.SustainabilityScore)

	_, err = svc.DemoLogin(model.Role("wizard"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_Logout(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewUserService(repo)

	_, err := svc.DemoLogin(model.RoleFarmer)
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	_, err = svc.CurrentUser()
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_SaveFarmProfile(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewUserService(repo)

	user, err := svc.Register(RegisterInput{
		Name: "Anil", Email: "anil@example.com",
		Role: model.RoleFarmer, Location: "Kerala, India",
	})
	require.NoError(t, err)

	profile := model.FarmProfile{
		FarmSize:       2.5,
		CropType:       []string{"rice", "banana"},
		Fertilizers:    []string{"compost"},
		IrrigationType: "drip",
		Budget:         50000,
		Location: model.FarmLocation{
			State:    "Kerala",
			District: "Thrissur",
		},
		SoilType:          "laterite",
		FarmingExperience: 6,
	}
	updated, err := svc.SaveFarmProfile(user.ID, profile)
	require.NoError(t, err)
	require.NotNil(t, updated.FarmProfile)
	assert.Equal(t, profile, *updated.FarmProfile)

	negative := profile
	negative.FarmSize = -1
	_, err = svc.SaveFarmProfile(user.ID, negative)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SaveFarmProfile("no-such-id", profile)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Leaderboard(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.EnsureDefaultData())
	svc := NewUserService(repo)

	score := 1200
	_, err := svc.UpdateProfile("user-2", model.UserPatch{SustainabilityScore: &score})
	require.NoError(t, err)

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "user-2", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "🏆", entries[0].Badge)

	assert.Equal(t, "user-1", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "🥈", entries[1].Badge)
	assert.Equal(t, 28, entries[1].CompletedQuests)
}
