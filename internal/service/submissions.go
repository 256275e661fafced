package service

import (
	"errors"
	"fmt"
	"time"

	"agriquest/internal/model"
	"agriquest/internal/repository"

	"github.com/google/uuid"
)

type SubmissionService struct {
	repo      SubmissionRepository
	userRepo  UserRepository
	questRepo QuestRepository
}

func NewSubmissionService(repo SubmissionRepository, userRepo UserRepository, questRepo QuestRepository) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		userRepo:  userRepo,
		questRepo: questRepo,
	}
}

type SubmitInput struct {
	QuestID     string
	Photos      []string
	Location    model.Coordinates
	Description string
}

// Submit attaches evidence to an active quest on behalf of userID. The
// user's activeQuests counter is bumped: the counters on User are owned
// by this service and derived from submission events, never set by the
// caller.
func (s *SubmissionService) Submit(userID string, input SubmitInput) (*model.Submission, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("%w: a description of the work is required", ErrInvalidInput)
	}
	if len(input.Photos) == 0 {
		return nil, fmt.Errorf("%w: at least one photo is required", ErrInvalidInput)
	}

	quest, err := s.findQuest(input.QuestID)
	if err != nil {
		return nil, err
	}
	if quest.Status != model.QuestStatusActive {
		return nil, ErrQuestNotActive
	}

	sub := &model.Submission{
		ID:          fmt.Sprintf("submission-%s", uuid.NewString()),
		QuestID:     input.QuestID,
		UserID:      userID,
		Photos:      input.Photos,
		Location:    input.Location,
		Description: input.Description,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		Status:      model.SubmissionStatusPending,
	}

	if err := s.repo.AddSubmission(sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubmission) {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("failed to add submission: %w", err)
	}

	if err := s.adjustCounters(userID, func(u *model.User) (int, int, int) {
		return u.ActiveQuests + 1, u.CompletedQuests, u.SustainabilityScore
	}); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *SubmissionService) ForUser(userID string) ([]model.Submission, error) {
	subs, err := s.repo.AllSubmissions()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	own := make([]model.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.UserID == userID {
			own = append(own, sub)
		}
	}
	return own, nil
}

func (s *SubmissionService) All() ([]model.Submission, error) {
	subs, err := s.repo.AllSubmissions()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

func (s *SubmissionService) PendingReview() ([]model.Submission, error) {
	subs, err := s.repo.AllSubmissions()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	pending := make([]model.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.Status == model.SubmissionStatusPending {
			pending = append(pending, sub)
		}
	}
	return pending, nil
}

type ReviewInput struct {
	Approve  bool
	Comments string
	// Points overrides the quest's reward when positive; zero means
	// "award the quest points".
	Points int
}

// Review settles a pending submission. On approval the farmer's
// counters and sustainability score move with it; on rejection only the
// active-quest counter is released so the quest can be retried.
func (s *SubmissionService) Review(id string, reviewerID string, input ReviewInput) (*model.Submission, error) {
	sub, err := s.findSubmission(id)
	if err != nil {
		return nil, err
	}

	status := model.SubmissionStatusRejected
	awarded := 0
	if input.Approve {
		status = model.SubmissionStatusApproved
		awarded = input.Points
		if awarded <= 0 {
			quest, err := s.findQuest(sub.QuestID)
			if err != nil {
				return nil, err
			}
			awarded = quest.Points
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	patch := model.SubmissionPatch{
		Status:         &status,
		ReviewedBy:     &reviewerID,
		ReviewedAt:     &now,
		ReviewComments: &input.Comments,
	}
	if input.Approve {
		patch.PointsAwarded = &awarded
	}

	updated, err := s.repo.UpdateSubmission(id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return nil, ErrAlreadyReviewed
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	adjust := func(u *model.User) (int, int, int) {
		active := u.ActiveQuests - 1
		if active < 0 {
			active = 0
		}
		if input.Approve {
			return active, u.CompletedQuests + 1, u.SustainabilityScore + awarded
		}
		return active, u.CompletedQuests, u.SustainabilityScore
	}
	if err := s.adjustCounters(sub.UserID, adjust); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *SubmissionService) findSubmission(id string) (*model.Submission, error) {
	subs, err := s.repo.AllSubmissions()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	for i := range subs {
		if subs[i].ID == id {
			return &subs[i], nil
		}
	}
	return nil, ErrSubmissionNotFound
}

func (s *SubmissionService) findQuest(id string) (*model.Quest, error) {
	quests, err := s.questRepo.AllQuests()
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	for i := range quests {
		if quests[i].ID == id {
			return &quests[i], nil
		}
	}
	return nil, ErrQuestNotFound
}

func (s *SubmissionService) adjustCounters(userID string, f func(*model.User) (active, completed, score int)) error {
	users, err := s.userRepo.AllUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		active, completed, score := f(&users[i])
		patch := model.UserPatch{
			ActiveQuests:        &active,
			CompletedQuests:     &completed,
			SustainabilityScore: &score,
		}
		if _, err := s.userRepo.UpdateUser(userID, patch); err != nil {
			return fmt.Errorf("failed to update user counters: %w", err)
		}
		return nil
	}
	// Demo sessions are not in the roster; their counters live only on
	// the session record and are not tracked here.
	return nil
}
