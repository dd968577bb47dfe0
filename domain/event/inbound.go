package event

import (
	"bytes"
	"encoding/json"
	"fmt"

	"accelerator-hub/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Kind string

const (
	KindSendMessage      Kind = "send_message"
	KindJoinChat         Kind = "join_chat"
	KindLeaveChat        Kind = "leave_chat"
	KindJoinPitchRoom    Kind = "join_pitch_room"
	KindBusinessUpdate   Kind = "business_update"
	KindSendNotification Kind = "send_notification"
	KindTypingStart      Kind = "typing_start"
	KindTypingStop       Kind = "typing_stop"
	KindUpdateStatus     Kind = "update_status"
	KindCallUser         Kind = "call_user"
	KindAnswerCall       Kind = "answer_call"
	KindEndCall          Kind = "end_call"
	KindStartPitchStream Kind = "start_pitch_stream"
	KindPitchStreamData  Kind = "pitch_stream_data"
)

// Inbound is the closed set of events a connection may send.
// Every variant is a plain value validated at decoding time.
type Inbound interface {
	Kind() Kind
	inbound()
}

// SendMessage.Message must be present but may be empty.
type SendMessage struct {
	RecipientID string  `json:"recipientId" validate:"required,max=128"`
	Message     *string `json:"message" validate:"required"`
	Type        string  `json:"type" validate:"omitempty,max=32"`
}

type JoinChat struct {
	ChatID string `json:"chatId" validate:"required,max=128"`
}

type LeaveChat struct {
	ChatID string `json:"chatId" validate:"required,max=128"`
}

type JoinPitchRoom struct {
	PitchID string `json:"pitchId" validate:"required,max=128"`
}

type BusinessUpdate struct {
	BusinessID string          `json:"businessId" validate:"required,max=128"`
	Update     json.RawMessage `json:"update" validate:"required"`
}

type SendNotification struct {
	RecipientID string          `json:"recipientId" validate:"required,max=128"`
	Type        string          `json:"type" validate:"omitempty,max=64"`
	Title       string          `json:"title"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data,omitempty"`
}

type TypingStart struct {
	ChatID string `json:"chatId" validate:"required,max=128"`
}

type TypingStop struct {
	ChatID string `json:"chatId" validate:"required,max=128"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,max=64"`
}

type CallUser struct {
	RecipientID string          `json:"recipientId" validate:"required,max=128"`
	Offer       json.RawMessage `json:"offer" validate:"required"`
	CallType    string          `json:"callType" validate:"omitempty,max=32"`
}

type AnswerCall struct {
	CallerID string          `json:"callerId" validate:"required,max=128"`
	Answer   json.RawMessage `json:"answer" validate:"required"`
}

type EndCall struct {
	RecipientID string `json:"recipientId" validate:"required,max=128"`
}

type StartPitchStream struct {
	PitchID string `json:"pitchId" validate:"required,max=128"`
}

type PitchStreamData struct {
	PitchID    string          `json:"pitchId" validate:"required,max=128"`
	StreamData json.RawMessage `json:"streamData" validate:"required"`
}

func (SendMessage) Kind() Kind      { return KindSendMessage }
func (JoinChat) Kind() Kind         { return KindJoinChat }
func (LeaveChat) Kind() Kind        { return KindLeaveChat }
func (JoinPitchRoom) Kind() Kind    { return KindJoinPitchRoom }
func (BusinessUpdate) Kind() Kind   { return KindBusinessUpdate }
func (SendNotification) Kind() Kind { return KindSendNotification }
func (TypingStart) Kind() Kind      { return KindTypingStart }
func (TypingStop) Kind() Kind       { return KindTypingStop }
func (UpdateStatus) Kind() Kind     { return KindUpdateStatus }
func (CallUser) Kind() Kind         { return KindCallUser }
func (AnswerCall) Kind() Kind       { return KindAnswerCall }
func (EndCall) Kind() Kind          { return KindEndCall }
func (StartPitchStream) Kind() Kind { return KindStartPitchStream }
func (PitchStreamData) Kind() Kind  { return KindPitchStreamData }

func (SendMessage) inbound()      {}
func (JoinChat) inbound()         {}
func (LeaveChat) inbound()        {}
func (JoinPitchRoom) inbound()    {}
func (BusinessUpdate) inbound()   {}
func (SendNotification) inbound() {}
func (TypingStart) inbound()      {}
func (TypingStop) inbound()       {}
func (UpdateStatus) inbound()     {}
func (CallUser) inbound()         {}
func (AnswerCall) inbound()       {}
func (EndCall) inbound()          {}
func (StartPitchStream) inbound() {}
func (PitchStreamData) inbound()  {}

// Older web clients send the room id or the status as a bare JSON string.
type bare interface {
	setBare(string)
}

func (j *JoinChat) setBare(s string)      { j.ChatID = s }
func (l *LeaveChat) setBare(s string)     { l.ChatID = s }
func (j *JoinPitchRoom) setBare(s string) { j.PitchID = s }
func (u *UpdateStatus) setBare(s string)  { u.Status = s }

var decoders = map[Kind]func(json.RawMessage) (Inbound, error){
	KindSendMessage:      decodeAs[SendMessage],
	KindJoinChat:         decodeAs[JoinChat],
	KindLeaveChat:        decodeAs[LeaveChat],
	KindJoinPitchRoom:    decodeAs[JoinPitchRoom],
	KindBusinessUpdate:   decodeAs[BusinessUpdate],
	KindSendNotification: decodeAs[SendNotification],
	KindTypingStart:      decodeAs[TypingStart],
	KindTypingStop:       decodeAs[TypingStop],
	KindUpdateStatus:     decodeAs[UpdateStatus],
	KindCallUser:         decodeAs[CallUser],
	KindAnswerCall:       decodeAs[AnswerCall],
	KindEndCall:          decodeAs[EndCall],
	KindStartPitchStream: decodeAs[StartPitchStream],
	KindPitchStreamData:  decodeAs[PitchStreamData],
}

// Frame is the wire envelope of an inbound event.
type Frame struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Decode turns a raw frame into a typed event.
// Every failure wraps errors.ErrMalformedEvent.
func Decode(raw []byte) (Inbound, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err)
	}
	decode, ok := decoders[frame.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownKind, frame.Kind)
	}
	return decode(frame.Payload)
}

func decodeAs[T Inbound](payload json.RawMessage) (Inbound, error) {
	var v T
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: %s payload is missing", errors.ErrInvalidPayload, v.Kind())
	}

	if b, ok := any(&v).(bare); ok && isJSONString(payload) {
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
		}
		b.setBare(s)
	} else if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrInvalidPayload, v.Kind(), err)
	}

	if err := validate.Struct(v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrInvalidPayload, v.Kind(), err)
	}
	return v, nil
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
