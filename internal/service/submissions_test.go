package service

import (
	"testing"

	"agriquest/internal/model"
	"agriquest/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmissionService(t *testing.T) (*SubmissionService, *repository.Repository) {
	t.Helper()
	repo := newTestRepo(t)
	require.NoError(t, repo.EnsureDefaultData())
	return NewSubmissionService(repo, repo, repo), repo
}

func submitInput(questID string) SubmitInput {
	return SubmitInput{
		QuestID:     questID,
		Photos:      []string{"photo://compost-1.jpg"},
		Location:    model.Coordinates{Lat: 10.85, Lng: 76.27},
		Description: "spread two sacks of compost on the plot",
	}
}

func TestSubmissionService_Submit(t *testing.T) {
	svc, repo := newSubmissionService(t)

	sub, err := svc.Submit("user-1", submitInput("quest-1"))
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusPending, sub.Status)
	assert.Equal(t, "quest-1", sub.QuestID)
	assert.NotEmpty(t, sub.SubmittedAt)

	// the farmer's active-quest counter moved with the submission
	users, err := repo.AllUsers()
	require.NoError(t, err)
	assert.Equal(t, 4, users[0].ActiveQuests)
}

func TestSubmissionService_SubmitValidation(t *testing.T) {
	svc, _ := newSubmissionService(t)

	tests := []struct {
		name    string
		mutate  func(*SubmitInput)
		wantErr error
	}{
		{
			name:    "missing description",
			mutate:  func(in *SubmitInput) { in.Description = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no photos",
			mutate:  func(in *SubmitInput) { in.Photos = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown quest",
			mutate:  func(in *SubmitInput) { in.QuestID = "no-such-quest" },
			wantErr: ErrQuestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := submitInput("quest-1")
			tt.mutate(&input)

			_, err := svc.Submit("user-1", input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmissionService_SubmitInactiveQuest(t *testing.T) {
	svc, repo := newSubmissionService(t)

	completed := model.QuestStatusCompleted
	_, err := repo.UpdateQuest("quest-1", model.QuestPatch{Status: &completed})
	require.NoError(t, err)

	_, err = svc.Submit("user-1", submitInput("quest-1"))
	assert.ErrorIs(t, err, ErrQuestNotActive)
}

func TestSubmissionService_SubmitDuplicate(t *testing.T) {
	svc, _ := newSubmissionService(t)

	_, err := svc.Submit("user-1", submitInput("quest-1"))
	require.NoError(t, err)

	_, err = svc.Submit("user-1", submitInput("quest-1"))
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	// another farmer may still submit
	_, err = svc.Submit("user-2", submitInput("quest-1"))
	require.NoError(t, err)
}

func TestSubmissionService_ReviewApprove(t *testing.T) {
	svc, repo := newSubmissionService(t)

	sub, err := svc.Submit("user-1", submitInput("quest-1"))
	require.NoError(t, err)

	reviewed, err := svc.Review(sub.ID, "user-2", ReviewInput{
		Approve:  true,
		Comments: "well documented",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusApproved, reviewed.Status)
	assert.Equal(t, "user-2", reviewed.ReviewedBy)
	assert.Equal(t, "well documented", reviewed.ReviewComments)
	// zero points in the review falls back to the quest reward
	assert.Equal(t, 150, reviewed.PointsAwarded)

	users, err := repo.AllUsers()
	require.NoError(t, err)
	farmer := users[0]
	assert.Equal(t, 29, farmer.CompletedQuests)
	assert.Equal(t, 3, farmer.ActiveQuests)
	assert.Equal(t, 785+150, farmer.SustainabilityScore)
}

func TestSubmissionService_ReviewReject(t *testing.T) {
	svc, repo := newSubmissionService(t)

	sub, err := svc.Submit("user-1", submitInput("quest-1"))
	require.NoError(t, err)

	reviewed, err := svc.Review(sub.ID, "user-2", ReviewInput{
		Approve:  false,
		Comments: "photos do not show the plot",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusRejected, reviewed.Status)
	assert.Zero(t, reviewed.PointsAwarded)

	users, err := repo.AllUsers()
	require.NoError(t, err)
	farmer := users[0]
	assert.Equal(t, 28, farmer.CompletedQuests)
	assert.Equal(t, 3, farmer.ActiveQuests)
	assert.Equal(t, 785, farmer.SustainabilityScore)
}

func TestSubmissionService_ReviewTwice(t *testing.T) {
	svc, _ := newSubmissionService(t)

	sub, err := svc.Submit("user-1", submitInput("quest-1"))
	require.NoError(t, err)

	_, err = svc.Review(sub.ID, "user-2", ReviewInput{Approve: true})
	require.NoError(t, err)

	_, err = svc.Review(sub.ID, "user-2", ReviewInput{Approve: false})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestSubmissionService_ReviewMissing(t *testing.T) {
	svc, _ := newSubmissionService(t)

	_, err := svc.Review("no-such-id", "user-2", ReviewInput{Approve: true})
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestSubmissionService_Listings(t *testing.T) {
	svc, _ := newSubmissionService(t)

	first, err := svc.Submit("user-1", submitInput("quest-1"))
	require.NoError(t, err)
	_, err = svc.Submit("user-2", submitInput("quest-2"))
	require.NoError(t, err)

	own, err := svc.ForUser("user-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, first.ID, own[0].ID)

	all, err := svc.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.Review(first.ID, "user-2", ReviewInput{Approve: true})
	require.NoError(t, err)

	pending, err := svc.PendingReview()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
