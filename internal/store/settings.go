package store

import "github.com/teamhub-dev/teamhub/internal/models"

// SettingsPatch carries only the fields the caller wants to change.
type SettingsPatch struct {
	NotificationsEnabled *bool `json:"notifications_enabled"`
}

func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) UpdateSettings(patch SettingsPatch) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.snapshotLocked()

	if patch.NotificationsEnabled != nil {
		s.settings.NotificationsEnabled = *patch.NotificationsEnabled
	}

	if err := s.commitLocked(prev); err != nil {
		return models.Settings{}, err
	}
	return s.settings, nil
}
