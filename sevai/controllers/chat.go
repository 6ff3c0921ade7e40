// sevai/controllers/chat.go
package controllers

import (
	"context"

	"sevai/sevai/services/triage"
	"sevai/sevai/utils/types"
)

type ChatController struct {
	svc *triage.Service
}

func NewChatController(svc *triage.Service) *ChatController {
	return &ChatController{svc: svc}
}

// Message runs one triage exchange and returns the structured reply.
func (c *ChatController) Message(ctx context.Context, req types.ChatRequest) (*types.Reply, error) {
	return c.svc.ProcessMessage(ctx, req)
}
