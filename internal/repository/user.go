package repository

import (
	"agriquest/internal/model"
)

// CurrentUser returns the session user, or ErrNotFound when nobody is
// logged in. A corrupted session record also reads as ErrNotFound but
// the decode error is wrapped so the caller can tell the two apart.
func (r *Repository) CurrentUser() (*model.User, error) {
	var user model.User
	ok, err := r.store.Get(keyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// SetCurrentUser persists user as the session record and, when the id
// already exists in the roster, overwrites that roster entry in place.
// Callers rely on this coupling: setting the session user keeps the
// roster consistent without a second call. A user absent from the
// roster still becomes the session user; the roster is left unchanged.
func (r *Repository) SetCurrentUser(user *model.User) error {
	r.Lock()
	defer r.Unlock()

	users, err := r.allUsersLocked()
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			if err := r.store.Set(keyUsers, users); err != nil {
				return err
			}
			break
		}
	}

	return r.store.Set(keyCurrentUser, user)
}

// AllUsers returns the roster in insertion order. Absent and corrupted
// both yield an empty slice; the error reports the latter.
func (r *Repository) AllUsers() ([]model.User, error) {
	r.Lock()
	defer r.Unlock()
	return r.allUsersLocked()
}

func (r *Repository) allUsersLocked() ([]model.User, error) {
	users := []model.User{}
	if _, err := r.store.Get(keyUsers, &users); err != nil {
		return []model.User{}, err
	}
	return users, nil
}

// AddUser appends to the roster. No uniqueness check is made on id or
// email; generating a fresh id is the caller's job.
func (r *Repository) AddUser(user *model.User) error {
	r.Lock()
	defer r.Unlock()

	users, err := r.allUsersLocked()
	if err != nil {
		return err
	}

	users = append(users, *user)
	return r.store.Set(keyUsers, users)
}

// UpdateUser shallow-merges patch onto the first roster entry matching
// id and returns the merged record. When the updated user is also the
// session user, the session record is refreshed to match.
func (r *Repository) UpdateUser(id string, patch model.UserPatch) (*model.User, error) {
	r.Lock()
	defer r.Unlock()

	users, err := r.allUsersLocked()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}

		patch.Apply(&users[i])
		if err := r.store.Set(keyUsers, users); err != nil {
			return nil, err
		}

		var current model.User
		ok, err := r.store.Get(keyCurrentUser, &current)
		if err == nil && ok && current.ID == id {
			if err := r.store.Set(keyCurrentUser, users[i]); err != nil {
				return nil, err
			}
		}

		updated := users[i]
		return &updated, nil
	}

	return nil, ErrNotFound
}

// Logout clears the session record only; the roster entry stays.
func (r *Repository) Logout() error {
	r.Lock()
	defer r.Unlock()
	return r.store.Remove(keyCurrentUser)
}
