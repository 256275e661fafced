package repository

import (
	"agriquest/internal/model"

	"github.com/pkg/errors"
)

// AllQuests returns every quest in insertion order.
func (r *Repository) AllQuests() ([]model.Quest, error) {
	r.Lock()
	defer r.Unlock()
	return r.allQuestsLocked()
}

func (r *Repository) allQuestsLocked() ([]model.Quest, error) {
	quests := []model.Quest{}
	if _, err := r.store.Get(keyQuests, &quests); err != nil {
		return []model.Quest{}, err
	}
	return quests, nil
}

func (r *Repository) AddQuest(quest *model.Quest) error {
	r.Lock()
	defer r.Unlock()

	quests, err := r.allQuestsLocked()
	if err != nil {
		return err
	}

	quests = append(quests, *quest)
	return r.store.Set(keyQuests, quests)
}

// UpdateQuest shallow-merges patch onto the quest matching id. A status
// change is validated against the quest lifecycle; an illegal move
// returns ErrInvalidTransition and leaves the collection untouched.
func (r *Repository) UpdateQuest(id string, patch model.QuestPatch) (*model.Quest, error) {
	r.Lock()
	defer r.Unlock()

	quests, err := r.allQuestsLocked()
	if err != nil {
		return nil, err
	}

	for i := range quests {
		if quests[i].ID != id {
			continue
		}

		if patch.Status != nil && !quests[i].Status.CanTransitionTo(*patch.Status) {
			return nil, errors.Wrapf(ErrInvalidTransition,
				"quest %s: %s -> %s", id, quests[i].Status, *patch.Status)
		}

		patch.Apply(&quests[i])
		if err := r.store.Set(keyQuests, quests); err != nil {
			return nil, err
		}

		updated := quests[i]
		return &updated, nil
	}

	return nil, ErrNotFound
}

// DeleteQuest removes the quest matching id, preserving the relative
// order of the remainder. Deleting an unknown id is a no-op.
func (r *Repository) DeleteQuest(id string) error {
	r.Lock()
	defer r.Unlock()

	quests, err := r.allQuestsLocked()
	if err != nil {
		return err
	}

	kept := quests[:0]
	for _, q := range quests {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(quests) {
		return nil
	}

	return r.store.Set(keyQuests, kept)
}
