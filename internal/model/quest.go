package model

// QuestStatus models the quest lifecycle. NGO-proposed quests enter at
// pending_approval and need moderation before going live; admin and AEO
// quests start active.
type QuestStatus string

const (
	QuestStatusActive          QuestStatus = "active"
	QuestStatusCompleted       QuestStatus = "completed"
	QuestStatusPendingApproval QuestStatus = "pending_approval"
	QuestStatusApproved        QuestStatus = "approved"
	QuestStatusRejected        QuestStatus = "rejected"
)

func (s QuestStatus) Valid() bool {
	switch s {
	case QuestStatusActive, QuestStatusCompleted, QuestStatusPendingApproval,
		QuestStatusApproved, QuestStatusRejected:
		return true
	}
	return false
}

var questTransitions = map[QuestStatus][]QuestStatus{
	QuestStatusPendingApproval: {QuestStatusApproved, QuestStatusRejected},
	QuestStatusApproved:        {QuestStatusActive},
	QuestStatusActive:          {QuestStatusCompleted},
}

// CanTransitionTo reports whether the status may move to next.
// A same-status write is always permitted. Completed and rejected are
// terminal.
func (s QuestStatus) CanTransitionTo(next QuestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range questTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type QuestDifficulty string

const (
	DifficultyEasy   QuestDifficulty = "Easy"
	DifficultyMedium QuestDifficulty = "Medium"
	DifficultyHard   QuestDifficulty = "Hard"
)

func (d QuestDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Quest struct {
	ID           string          `json:"id"`
	Title        LocalizedText   `json:"title"`
	Description  LocalizedText   `json:"description"`
	Points       int             `json:"points"`
	Difficulty   QuestDifficulty `json:"difficulty"`
	Category     string          `json:"category"`
	Requirements []string        `json:"requirements"`
	Deadline     string          `json:"deadline"`
	Status       QuestStatus     `json:"status"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    string          `json:"createdAt"`
}

// QuestPatch is a partial update: only non-nil fields are applied.
type QuestPatch struct {
	Title        *LocalizedText
	Description  *LocalizedText
	Points       *int
	Difficulty   *QuestDifficulty
	Category     *string
	Requirements *[]string
	Deadline     *string
	Status       *QuestStatus
}

func (p QuestPatch) Apply(q *Quest) {
	if p.Title != nil {
		q.Title = *p.Title
	}
	if p.Description != nil {
		q.Description = *p.Description
	}
	if p.Points != nil {
		q.Points = *p.Points
	}
	if p.Difficulty != nil {
		q.Difficulty = *p.Difficulty
	}
	if p.Category != nil {
		q.Category = *p.Category
	}
	if p.Requirements != nil {
		q.Requirements = *p.Requirements
	}
	if p.Deadline != nil {
		q.Deadline = *p.Deadline
	}
	if p.Status != nil {
		q.Status = *p.Status
	}
}
