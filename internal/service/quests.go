package service

import (
	"errors"
	"fmt"
	"time"

	"agriquest/internal/model"
	"agriquest/internal/repository"

	"github.com/google/uuid"
)

type QuestService struct {
	repo QuestRepository
}

func NewQuestService(repo QuestRepository) *QuestService {
	return &QuestService{repo: repo}
}

// Quests lists quests, optionally filtered by status. An empty status
// returns everything.
func (s *QuestService) Quests(status model.QuestStatus) ([]model.Quest, error) {
	quests, err := s.repo.AllQuests()
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	if status == "" {
		return quests, nil
	}

	filtered := make([]model.Quest, 0, len(quests))
	for _, q := range quests {
		if q.Status == status {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

func (s *QuestService) GetQuestByID(id string) (*model.Quest, error) {
	quests, err := s.repo.AllQuests()
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

type CreateQuestInput struct {
	Title        model.LocalizedText
	Description  model.LocalizedText
	Points       int
	Difficulty   model.QuestDifficulty
	Category     string
	Requirements []string
	Deadline     string
}

// Create adds a quest on behalf of creator. Admin and AEO quests go
// live immediately; NGO proposals start at pending_approval and wait
// for moderation.
func (s *QuestService) Create(creator *model.User, input CreateQuestInput) (*model.Quest, error) {
	if !creator.Role.CanManageQuests() {
		return nil, ErrPermissionDenied
	}
	if input.Title.EN == "" {
		return nil, fmt.Errorf("%w: english title is required", ErrInvalidInput)
	}
	if input.Points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", ErrInvalidInput)
	}
	if !input.Difficulty.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, input.Difficulty)
	}

	status := model.QuestStatusActive
	if creator.Role == model.RoleNGO {
		status = model.QuestStatusPendingApproval
	}

	quest := &model.Quest{
		ID:           fmt.Sprintf("quest-%s", uuid.NewString()),
		Title:        input.Title,
		Description:  input.Description,
		Points:       input.Points,
		Difficulty:   input.Difficulty,
		Category:     input.Category,
		Requirements: input.Requirements,
		Deadline:     input.Deadline,
		Status:       status,
		CreatedBy:    creator.ID,
		CreatedAt:    time.Now().Format("2006-01-02"),
	}
	if quest.Requirements == nil {
		quest.Requirements = []string{}
	}

	if err := s.repo.AddQuest(quest); err != nil {
		return nil, fmt.Errorf("failed to add quest: %w", err)
	}
	return quest, nil
}

func (s *QuestService) Update(id string, patch model.QuestPatch) (*model.Quest, error) {
	quest, err := s.repo.UpdateQuest(id, patch)
	if err != nil {
		return nil, mapQuestRepoError(err)
	}
	return quest, nil
}

func (s *QuestService) Delete(id string) error {
	if err := s.repo.DeleteQuest(id); err != nil {
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	return nil
}

// Moderate resolves a pending_approval quest. Approval walks the quest
// through approved to active so it goes live in one call; rejection is
// terminal.
func (s *QuestService) Moderate(id string, approve bool) (*model.Quest, error) {
	if !approve {
		status := model.QuestStatusRejected
		quest, err := s.repo.UpdateQuest(id, model.QuestPatch{Status: &status})
		if err != nil {
			return nil, mapQuestRepoError(err)
		}
		return quest, nil
	}

	approved := model.QuestStatusApproved
	if _, err := s.repo.UpdateQuest(id, model.QuestPatch{Status: &approved}); err != nil {
		return nil, mapQuestRepoError(err)
	}

	active := model.QuestStatusActive
	quest, err := s.repo.UpdateQuest(id, model.QuestPatch{Status: &active})
	if err != nil {
		return nil, mapQuestRepoError(err)
	}
	return quest, nil
}

func mapQuestRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrQuestNotFound
	case errors.Is(err, repository.ErrInvalidTransition):
		return err
	default:
		return fmt.Errorf("failed to update quest: %w", err)
	}
}
