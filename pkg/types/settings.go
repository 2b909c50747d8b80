package types

import "sync"

// Settings is the process-wide UI settings store shared by all page
// components. Theme is the single persisted key.
type Settings struct {
	mu    sync.RWMutex
	Theme string `json:"theme"`
}

var CurrentSettings = &Settings{
	Theme: "light",
}

func (s *Settings) GetTheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Theme
}

func (s *Settings) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if theme != "dark" {
		theme = "light"
	}
	s.Theme = theme
}

func (s *Settings) ToggleTheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Theme == "dark" {
		s.Theme = "light"
	} else {
		s.Theme = "dark"
	}
	return s.Theme
}

func (s *Settings) Lock()    { s.mu.Lock() }
func (s *Settings) Unlock()  { s.mu.Unlock() }
func (s *Settings) RLock()   { s.mu.RLock() }
func (s *Settings) RUnlock() { s.mu.RUnlock() }
