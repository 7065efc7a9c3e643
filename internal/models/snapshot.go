package models

// Snapshot is the durable representation of the entire store. The field
// names are a compatibility contract with previously persisted data and
// must not change. Unknown fields are ignored on load; missing fields are
// defaulted by Normalize.
type Snapshot struct {
	Users         []User         `json:"users"`
	CurrentUserID string         `json:"currentUserId"`
	Projects      []Project      `json:"projects"`
	Tasks         []Task         `json:"tasks"`
	Messages      []Message      `json:"messages"`
	Notifications []Notification `json:"notifications"`
	Settings      *Settings      `json:"settings"`
}

// EmptySnapshot is the structurally valid zero state: all collections
// present and empty, default settings, no session.
func EmptySnapshot() Snapshot {
	settings := DefaultSettings()
	return Snapshot{
		Users:         []User{},
		Projects:      []Project{},
		Tasks:         []Task{},
		Messages:      []Message{},
		Notifications: []Notification{},
		Settings:      &settings,
	}
}

// Normalize fills in fields a partial or older blob may be missing.
func (s *Snapshot) Normalize() {
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Messages == nil {
		s.Messages = []Message{}
	}
	if s.Notifications == nil {
		s.Notifications = []Notification{}
	}
	if s.Settings == nil {
		settings := DefaultSettings()
		s.Settings = &settings
	}
}
