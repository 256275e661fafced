package service

import (
	"agriquest/internal/model"
)

// SettingsService exposes the process-wide UI language preference.
type SettingsService struct {
	repo LanguageRepository
}

func NewSettingsService(repo LanguageRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Language() model.Language {
	return s.repo.Language()
}

func (s *SettingsService) SetLanguage(lang model.Language) error {
	return s.repo.SetLanguage(lang)
}
