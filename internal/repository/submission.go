package repository

import (
	"agriquest/internal/model"

	"github.com/pkg/errors"
)

// AllSubmissions returns every submission in insertion order.
func (r *Repository) AllSubmissions() ([]model.Submission, error) {
	r.Lock()
	defer r.Unlock()
	return r.allSubmissionsLocked()
}

func (r *Repository) allSubmissionsLocked() ([]model.Submission, error) {
	subs := []model.Submission{}
	if _, err := r.store.Get(keySubmissions, &subs); err != nil {
		return []model.Submission{}, err
	}
	return subs, nil
}

// AddSubmission appends. At most one non-rejected submission may exist
// per (user, quest) pair; a second one is refused with
// ErrDuplicateSubmission. A rejected attempt does not block a retry.
func (r *Repository) AddSubmission(sub *model.Submission) error {
	r.Lock()
	defer r.Unlock()

	subs, err := r.allSubmissionsLocked()
	if err != nil {
		return err
	}

	for _, existing := range subs {
		if existing.UserID == sub.UserID &&
			existing.QuestID == sub.QuestID &&
			existing.Status != model.SubmissionStatusRejected {
			return errors.Wrapf(ErrDuplicateSubmission,
				"user %s, quest %s", sub.UserID, sub.QuestID)
		}
	}

	subs = append(subs, *sub)
	return r.store.Set(keySubmissions, subs)
}

// UpdateSubmission shallow-merges patch onto the submission matching
// id. A status change must follow pending -> approved/rejected; both
// outcomes are terminal.
func (r *Repository) UpdateSubmission(id string, patch model.SubmissionPatch) (*model.Submission, error) {
	r.Lock()
	defer r.Unlock()

	subs, err := r.allSubmissionsLocked()
	if err != nil {
		return nil, err
	}

	for i := range subs {
		if subs[i].ID != id {
			continue
		}

		if patch.Status != nil && !subs[i].Status.CanTransitionTo(*patch.Status) {
			return nil, errors.Wrapf(ErrInvalidTransition,
				"submission %s: %s -> %s", id, subs[i].Status, *patch.Status)
		}

		patch.Apply(&subs[i])
		if err := r.store.Set(keySubmissions, subs); err != nil {
			return nil, err
		}

		updated := subs[i]
		return &updated, nil
	}

	return nil, ErrNotFound
}
