package assistantHandler

import (
	"TinyTotsGolang/internal/api/assistant"
	"TinyTotsGolang/internal/entity"
	"TinyTotsGolang/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

type streamFrame struct {
	Text          string `json:"text"`
	ActiveChildID string `json:"active_child_id,omitempty"`
}

// Stream is the live capture feed: the client pushes interim transcripts
// as they arrive from speech recognition and receives a session per
// processed command. Duplicate transcripts are dropped silently because
// recognition engines re-emit their final result.
func (h *AssistantHandler) Stream(conn *websocket.Conn) {
	userData, ok := conn.Locals("user").(entity.UserLoginData)
	if !ok {
		conn.WriteJSON(map[string]string{"error": "Unauthorized"})
		conn.Close()
		return
	}

	h.log.WithFields(log.Fields{
		"user_id": userData.ID,
	}).Info("Assistant stream connected")

	defer func() {
		h.log.WithFields(log.Fields{
			"user_id": userData.ID,
		}).Info("Assistant stream disconnected")
		conn.Close()
	}()

	for {
		var frame streamFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.WithFields(log.Fields{
					"user_id": userData.ID,
					"error":   err.Error(),
				}).Warn("Assistant stream read error")
			}
			return
		}

		c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		session, err := h.assistantService.SubmitCommand(c, userData.ID, assistant.CommandRequest{
			Text:          frame.Text,
			ActiveChildID: frame.ActiveChildID,
		})
		cancel()

		if err != nil {
			if errors.Is(err, assistant.ErrDuplicateTranscript) || errors.Is(err, assistant.ErrEmptyTranscript) {
				continue
			}
			h.log.WithFields(log.Fields{
				"user_id": userData.ID,
				"error":   err.Error(),
			}).Error("Assistant stream command failed")
			continue
		}

		if err := conn.WriteJSON(session); err != nil {
			h.log.WithFields(log.Fields{
				"user_id": userData.ID,
				"error":   err.Error(),
			}).Warn("Assistant stream write error")
			return
		}
	}
}
