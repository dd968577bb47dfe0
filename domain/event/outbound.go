package event

import (
	"encoding/json"
	"time"
)

// Name identifies an outbound notification on the wire.
type Name string

const (
	NewMessage         Name = "new_message"
	UserJoinedPitch    Name = "user_joined_pitch"
	BusinessUpdated    Name = "business_updated"
	NewNotification    Name = "new_notification"
	UserTyping         Name = "user_typing"
	UserStoppedTyping  Name = "user_stopped_typing"
	UserStatusChanged  Name = "user_status_changed"
	IncomingCall       Name = "incoming_call"
	CallAnswered       Name = "call_answered"
	CallEnded          Name = "call_ended"
	PitchStreamStarted Name = "pitch_stream_started"
	PitchStreamUpdate  Name = "pitch_stream_update"
)

const (
	DefaultMessageType = "text"
	StatusOffline      = "offline"
)

// TimestampLayout matches what browsers produce with Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Notification is delivered as-is to every target connection.
type Notification struct {
	Name Name `json:"event"`
	Data any  `json:"data"`
}

func (n Notification) Encode() ([]byte, error) {
	return json.Marshal(n)
}

type MessagePayload struct {
	SenderID  string `json:"senderId"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type JoinedPitchPayload struct {
	SenderID  string `json:"senderId"`
	PitchID   string `json:"pitchId"`
	Timestamp string `json:"timestamp"`
}

type BusinessUpdatedPayload struct {
	Update    json.RawMessage `json:"update"`
	UpdatedBy string          `json:"updatedBy"`
	Timestamp string          `json:"timestamp"`
}

type NotificationPayload struct {
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp"`
}

type TypingPayload struct {
	SenderID  string `json:"senderId"`
	ChatID    string `json:"chatId"`
	Timestamp string `json:"timestamp"`
}

type StatusPayload struct {
	SenderID  string `json:"senderId"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type IncomingCallPayload struct {
	CallerID  string          `json:"callerId"`
	Offer     json.RawMessage `json:"offer"`
	CallType  string          `json:"callType,omitempty"`
	Timestamp string          `json:"timestamp"`
}

type CallAnsweredPayload struct {
	Answer      json.RawMessage `json:"answer"`
	ResponderID string          `json:"responderId"`
	Timestamp   string          `json:"timestamp"`
}

type CallEndedPayload struct {
	EndedBy   string `json:"endedBy"`
	Timestamp string `json:"timestamp"`
}

type StreamStartedPayload struct {
	StreamerID string `json:"streamerId"`
	PitchID    string `json:"pitchId"`
	Timestamp  string `json:"timestamp"`
}

type StreamUpdatePayload struct {
	StreamData json.RawMessage `json:"streamData"`
	Timestamp  string          `json:"timestamp"`
}

// StampRaw adds a timestamp to an opaque JSON payload coming from a
// server-side caller. Objects get a "timestamp" key unless they already
// carry one, anything else is wrapped as {"data": ..., "timestamp": ...}.
func StampRaw(raw json.RawMessage, timestamp string) (json.RawMessage, error) {
	var object map[string]json.RawMessage
	if len(raw) > 0 && json.Unmarshal(raw, &object) == nil && object != nil {
		if _, ok := object["timestamp"]; !ok {
			ts, err := json.Marshal(timestamp)
			if err != nil {
				return nil, err
			}
			object["timestamp"] = ts
		}
		return json.Marshal(object)
	}

	wrapped := struct {
		Data      json.RawMessage `json:"data,omitempty"`
		Timestamp string          `json:"timestamp"`
	}{Data: raw, Timestamp: timestamp}
	return json.Marshal(wrapped)
}
