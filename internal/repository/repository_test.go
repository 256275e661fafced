package repository

import (
	"path/filepath"
	"testing"

	"agriquest/internal/model"

	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(Config{Path: filepath.Join(t.TempDir(), "store.json")})
	require.NoError(t, err)
	return repo
}

func testFarmer(id, name string) *model.User {
	return &model.User{
		ID:       id,
		Name:     name,
		Email:    name + "@example.com",
		Role:     model.RoleFarmer,
		Location: "Kerala, India",
		Level:    "Beginner",
		Badges:   []model.Badge{},
	}
}

func testQuest(id string, status model.QuestStatus) *model.Quest {
	return &model.Quest{
		ID:           id,
		Title:        model.LocalizedText{EN: "Quest " + id},
		Description:  model.LocalizedText{EN: "Description " + id},
		Points:       100,
		Difficulty:   model.DifficultyEasy,
		Category:     "Soil Health",
		Requirements: []string{},
		Status:       status,
		CreatedBy:    "admin",
	}
}

func testSubmission(id, questID, userID string) *model.Submission {
	return &model.Submission{
		ID:          id,
		QuestID:     questID,
		UserID:      userID,
		Photos:      []string{"photo://1"},
		Location:    model.Coordinates{Lat: 10.85, Lng: 76.27},
		Description: "applied compost",
		Status:      model.SubmissionStatusPending,
	}
}
