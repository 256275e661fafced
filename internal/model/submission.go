package model

// SubmissionStatus is the review state of submitted evidence.
// pending may move to approved or rejected; both are terminal.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	if s == next {
		return true
	}
	return s == SubmissionStatusPending &&
		(next == SubmissionStatusApproved || next == SubmissionStatusRejected)
}

// Submission is the evidence a farmer attaches to a quest to request
// credit: photos, a GPS point and a free-text description.
type Submission struct {
	ID          string           `json:"id"`
	QuestID     string           `json:"questId"`
	UserID      string           `json:"userId"`
	Photos      []string         `json:"photos"`
	Location    Coordinates      `json:"location"`
	Description string           `json:"description"`
	SubmittedAt string           `json:"submittedAt"`
	Status      SubmissionStatus `json:"status"`

	ReviewedBy     string `json:"reviewedBy,omitempty"`
	ReviewedAt     string `json:"reviewedAt,omitempty"`
	ReviewComments string `json:"reviewComments,omitempty"`
	PointsAwarded  int    `json:"pointsAwarded,omitempty"`
}

// SubmissionPatch is a partial update: only non-nil fields are applied.
type SubmissionPatch struct {
	Photos         *[]string
	Location       *Coordinates
	Description    *string
	Status         *SubmissionStatus
	ReviewedBy     *string
	ReviewedAt     *string
	ReviewComments *string
	PointsAwarded  *int
}

func (p SubmissionPatch) Apply(s *Submission) {
	if p.Photos != nil {
		s.Photos = *p.Photos
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.ReviewedBy != nil {
		s.ReviewedBy = *p.ReviewedBy
	}
	if p.ReviewedAt != nil {
		s.ReviewedAt = *p.ReviewedAt
	}
	if p.ReviewComments != nil {
		s.ReviewComments = *p.ReviewComments
	}
	if p.PointsAwarded != nil {
		s.PointsAwarded = *p.PointsAwarded
	}
}
