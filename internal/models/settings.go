package models

type Settings struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

func DefaultSettings() Settings {
	return Settings{NotificationsEnabled: true}
}
