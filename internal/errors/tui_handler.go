package errors

import (
	"sync"
	"time"
)

// MaxMessages is how many recent notifications a TUIHandler keeps.
const MaxMessages = 50

// TUIHandler records notifications for display as toasts. Only the last
// MaxMessages are kept.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	nextID   int
	onNotify func(msg Message)
	now      func() time.Time
}

// Message is one toast. ID increases with every notification so a delayed
// dismissal can tell whether the toast it was scheduled for is still showing.
type Message struct {
	ID        int
	Text      string
	Type      MessageType
	Timestamp time.Time
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeInfo:
		return "info"
	case MessageTypeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// NewTUIHandler creates a handler; onNotify, if set, is called for every message.
func NewTUIHandler(onNotify func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages: make([]Message, 0),
		onNotify: onNotify,
		now:      time.Now,
	}
}

func (h *TUIHandler) Error(msg string)   { h.addMessage(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.addMessage(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.addMessage(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.addMessage(msg, MessageTypeSuccess) }

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	h.mu.Lock()
	h.nextID++
	message := Message{
		ID:        h.nextID,
		Text:      msg,
		Type:      msgType,
		Timestamp: h.now(),
	}
	if len(h.messages) == MaxMessages {
		copy(h.messages, h.messages[1:])
		h.messages = h.messages[:MaxMessages-1]
	}
	h.messages = append(h.messages, message)
	cb := h.onNotify
	h.mu.Unlock()

	if cb != nil {
		cb(message)
	}
}

// GetLatest returns the most recent message.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// GetAll returns a copy of every recorded message, oldest first.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

// Count returns the number of recorded messages.
func (h *TUIHandler) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}

func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = make([]Message, 0)
}
