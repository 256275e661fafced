package service

import (
	"errors"

	"agriquest/internal/model"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrQuestNotFound      = errors.New("quest not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrQuestNotActive     = errors.New("quest is not active")
	ErrAlreadyReviewed    = errors.New("submission already reviewed")
	ErrAlreadySubmitted   = errors.New("quest already has an active submission")
	ErrPermissionDenied   = errors.New("role is not allowed to perform this action")
	ErrInvalidInput       = errors.New("invalid input")
)

type Service struct {
	*UserService
	*QuestService
	*SubmissionService
	*SettingsService
}

func NewService(us *UserService, qs *QuestService, ss *SubmissionService, set *SettingsService) *Service {
	return &Service{
		UserService:       us,
		QuestService:      qs,
		SubmissionService: ss,
		SettingsService:   set,
	}
}

type UserServiceI interface {
	DemoLogin(role model.Role) (*model.User, error)
	Register(input RegisterInput) (*model.User, error)
	CurrentUser() (*model.User, error)
	Logout() error
	GetUserByID(id string) (*model.User, error)
	AllUsers() ([]model.User, error)
	UpdateProfile(id string, patch model.UserPatch) (*model.User, error)
	SaveFarmProfile(id string, profile model.FarmProfile) (*model.User, error)
	Leaderboard() ([]model.LeaderboardEntry, error)
}

type QuestServiceI interface {
	Quests(status model.QuestStatus) ([]model.Quest, error)
	GetQuestByID(id string) (*model.Quest, error)
	Create(creator *model.User, input CreateQuestInput) (*model.Quest, error)
	Update(id string, patch model.QuestPatch) (*model.Quest, error)
	Delete(id string) error
	Moderate(id string, approve bool) (*model.Quest, error)
}

type SubmissionServiceI interface {
	Submit(userID string, input SubmitInput) (*model.Submission, error)
	ForUser(userID string) ([]model.Submission, error)
	All() ([]model.Submission, error)
	PendingReview() ([]model.Submission, error)
	Review(id string, reviewerID string, input ReviewInput) (*model.Submission, error)
}

type SettingsServiceI interface {
	Language() model.Language
	SetLanguage(lang model.Language) error
}

type UserRepository interface {
	CurrentUser() (*model.User, error)
	SetCurrentUser(user *model.User) error
	AllUsers() ([]model.User, error)
	AddUser(user *model.User) error
	UpdateUser(id string, patch model.UserPatch) (*model.User, error)
	Logout() error
}

type QuestRepository interface {
	AllQuests() ([]model.Quest, error)
	AddQuest(quest *model.Quest) error
	UpdateQuest(id string, patch model.QuestPatch) (*model.Quest, error)
	DeleteQuest(id string) error
}

type SubmissionRepository interface {
	AllSubmissions() ([]model.Submission, error)
	AddSubmission(sub *model.Submission) error
	UpdateSubmission(id string, patch model.SubmissionPatch) (*model.Submission, error)
}

type LanguageRepository interface {
	Language() model.Language
	SetLanguage(lang model.Language) error
}
