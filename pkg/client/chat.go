package client

import (
	"context"
	"net/http"
)

// Chat sends a prompt to the assistant endpoint and records both the prompt
// and the reply on the session transcript, in order.
func (c *Client) Chat(ctx context.Context, s *Session, prompt string) (string, error) {
	req := map[string]string{"query": prompt}

	var resp struct {
		Response string `json:"response"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/chat", s.Token, req, &resp); err != nil {
		return "", err
	}

	s.Chat = append(s.Chat,
		ChatMessage{Role: RoleUser, Content: prompt},
		ChatMessage{Role: RoleAssistant, Content: resp.Response},
	)

	return resp.Response, nil
}
