package event

import (
	"encoding/json"
	"strings"
	"testing"

	"accelerator-hub/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestDecode_KnownKinds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Inbound
	}{
		{
			name: "send_message keeps the declared type",
			raw:  `{"kind":"send_message","payload":{"recipientId":"u2","message":"hello","type":"file"}}`,
			want: SendMessage{RecipientID: "u2", Message: lo.ToPtr("hello"), Type: "file"},
		},
		{
			name: "send_message with an empty message",
			raw:  `{"kind":"send_message","payload":{"recipientId":"u2","message":""}}`,
			want: SendMessage{RecipientID: "u2", Message: lo.ToPtr("")},
		},
		{
			name: "send_notification without a type",
			raw:  `{"kind":"send_notification","payload":{"recipientId":"u2","title":"Hello"}}`,
			want: SendNotification{RecipientID: "u2", Title: "Hello"},
		},
		{
			name: "join_chat with an object payload",
			raw:  `{"kind":"join_chat","payload":{"chatId":"c1"}}`,
			want: JoinChat{ChatID: "c1"},
		},
		{
			name: "join_chat with a bare string payload",
			raw:  `{"kind":"join_chat","payload":"c1"}`,
			want: JoinChat{ChatID: "c1"},
		},
		{
			name: "leave_chat with a bare string payload",
			raw:  `{"kind":"leave_chat","payload":"c1"}`,
			want: LeaveChat{ChatID: "c1"},
		},
		{
			name: "join_pitch_room with a bare string payload",
			raw:  `{"kind":"join_pitch_room","payload":"p1"}`,
			want: JoinPitchRoom{PitchID: "p1"},
		},
		{
			name: "update_status with a bare string payload",
			raw:  `{"kind":"update_status","payload":"away"}`,
			want: UpdateStatus{Status: "away"},
		},
		{
			name: "typing_stop",
			raw:  `{"kind":"typing_stop","payload":{"chatId":"c1"}}`,
			want: TypingStop{ChatID: "c1"},
		},
		{
			name: "end_call",
			raw:  `{"kind":"end_call","payload":{"recipientId":"u1"}}`,
			want: EndCall{RecipientID: "u1"},
		},
		{
			name: "start_pitch_stream",
			raw:  `{"kind":"start_pitch_stream","payload":{"pitchId":"p1"}}`,
			want: StartPitchStream{PitchID: "p1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := Decode([]byte(tt.raw))
			req.NoError(err)
			req.Equal(tt.want, got)
			req.Equal(tt.want.Kind(), got.Kind())
		})
	}
}

func TestDecode_OpaquePayloadsAreKeptVerbatim(t *testing.T) {
	req := require.New(t)

	got, err := Decode([]byte(`{"kind":"call_user","payload":{"recipientId":"u2","offer":{"sdp":"v=0","type":"offer"},"callType":"video"}}`))
	req.NoError(err)

	call, ok := got.(CallUser)
	req.True(ok)
	req.Equal("u2", call.RecipientID)
	req.Equal("video", call.CallType)
	req.JSONEq(`{"sdp":"v=0","type":"offer"}`, string(call.Offer))
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", `hello`, errors.ErrMalformedEvent},
		{"unknown kind", `{"kind":"drop_tables","payload":{}}`, errors.ErrUnknownKind},
		{"missing kind", `{"payload":{"chatId":"c1"}}`, errors.ErrUnknownKind},
		{"missing payload", `{"kind":"join_chat"}`, errors.ErrInvalidPayload},
		{"null payload", `{"kind":"typing_start","payload":null}`, errors.ErrInvalidPayload},
		{"missing recipient", `{"kind":"send_message","payload":{"message":"hi"}}`, errors.ErrInvalidPayload},
		{"missing message", `{"kind":"send_message","payload":{"recipientId":"u2"}}`, errors.ErrInvalidPayload},
		{"null message", `{"kind":"send_message","payload":{"recipientId":"u2","message":null}}`, errors.ErrInvalidPayload},
		{"notification type too long", `{"kind":"send_notification","payload":{"recipientId":"u2","type":"` + strings.Repeat("x", 65) + `"}}`, errors.ErrInvalidPayload},
		{"missing offer", `{"kind":"call_user","payload":{"recipientId":"u2"}}`, errors.ErrInvalidPayload},
		{"missing answer", `{"kind":"answer_call","payload":{"callerId":"u1"}}`, errors.ErrInvalidPayload},
		{"missing update", `{"kind":"business_update","payload":{"businessId":"b1"}}`, errors.ErrInvalidPayload},
		{"missing stream data", `{"kind":"pitch_stream_data","payload":{"pitchId":"p1"}}`, errors.ErrInvalidPayload},
		{"empty bare string", `{"kind":"join_chat","payload":""}`, errors.ErrInvalidPayload},
		{"bare string on object kind", `{"kind":"end_call","payload":"u1"}`, errors.ErrInvalidPayload},
		{"wrong field type", `{"kind":"typing_start","payload":{"chatId":42}}`, errors.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := Decode([]byte(tt.raw))
			req.Nil(got)
			req.ErrorIs(err, tt.want)
			req.ErrorIs(err, errors.ErrMalformedEvent)
		})
	}
}

func TestDecode_EveryKindHasADecoder(t *testing.T) {
	req := require.New(t)
	kinds := []Kind{
		KindSendMessage, KindJoinChat, KindLeaveChat, KindJoinPitchRoom,
		KindBusinessUpdate, KindSendNotification, KindTypingStart, KindTypingStop,
		KindUpdateStatus, KindCallUser, KindAnswerCall, KindEndCall,
		KindStartPitchStream, KindPitchStreamData,
	}
	req.Len(decoders, len(kinds))
	for _, k := range kinds {
		req.Contains(decoders, k)
	}

	raw, err := json.Marshal(Frame{Kind: KindSendNotification, Payload: json.RawMessage(`{"recipientId":"u2","type":"funding","title":"New offer"}`)})
	req.NoError(err)
	got, err := Decode(raw)
	req.NoError(err)
	req.Equal(KindSendNotification, got.Kind())
}
