package client

// ChatMessage is one turn of the chat transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	// RoleUser marks a message written by the user.
	RoleUser = "user"
	// RoleAssistant marks a reply from the assistant.
	RoleAssistant = "assistant"
)

// Session is the authenticated state of one user: the bearer token, the
// account email, and the running chat transcript in order.
type Session struct {
	Token string
	Email string
	Chat  []ChatMessage
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Logout clears the token, email, and transcript.
func (s *Session) Logout() {
	s.Token = ""
	s.Email = ""
	s.Chat = nil
}
