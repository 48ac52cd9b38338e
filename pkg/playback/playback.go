package playback

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is pushed to the playback bridge, which decides whether and how to
// speak it. No acknowledgment is expected.
type Event struct {
	Text         string `json:"text"`
	LanguageHint string `json:"language_hint"`
}

type IPlayback interface {
	Speak(text string, languageHint string) error
	IsConnected() bool
	Reconnect() error
	Close()
}

type playbackClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	writeTimeout time.Duration
}

func NewPlaybackClient() IPlayback {
	client := &playbackClient{
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Reconnect(); err != nil {
			log.Printf("Initial connection to playback bridge failed: %v. Will retry on demand.", err)
		} else {
			log.Printf("Successfully connected to playback bridge")
		}
	}()

	return client
}

func (c *playbackClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *playbackClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("PLAYBACK_BRIDGE_WS_URL")
	if url == "" {
		return fmt.Errorf("playback bridge URL not configured")
	}

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn
	return nil
}

// Speak pushes one event to the bridge. Callers treat this as
// fire-and-forget: a dead connection triggers one reconnect attempt, then
// the event is dropped.
func (c *playbackClient) Speak(text string, languageHint string) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		if err := c.Reconnect(); err != nil {
			return err
		}
		c.mu.Lock()
		conn = c.conn
		c.mu.Unlock()
	}

	payload, err := json.Marshal(Event{Text: text, LanguageHint: languageHint})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.conn = nil
		return fmt.Errorf("failed to push playback event: %w", err)
	}

	return nil
}

func (c *playbackClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
