package entity

// Session binds a game state to the host session that owns it.
type Session struct {
	ID    string    `json:"id"`
	State GameState `json:"state"`
}

func NewSession(id string, state GameState) *Session {
	return &Session{
		ID:    id,
		State: state,
	}
}
