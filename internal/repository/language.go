package repository

import (
	"agriquest/internal/model"

	"github.com/pkg/errors"
)

// Language returns the stored UI language preference. Absent, corrupted
// or out-of-set values all read as the English default.
func (r *Repository) Language() model.Language {
	var lang model.Language
	ok, err := r.store.Get(keyLanguage, &lang)
	if err != nil || !ok || !lang.Valid() {
		return model.DefaultLanguage
	}
	return lang
}

// SetLanguage overwrites the preference. The scalar is process-wide,
// not per user.
func (r *Repository) SetLanguage(lang model.Language) error {
	if !lang.Valid() {
		return errors.Wrapf(ErrInvalidLanguage, "%q", lang)
	}

	r.Lock()
	defer r.Unlock()
	return r.store.Set(keyLanguage, lang)
}
