package protocol

import (
	"encoding/json"
	"testing"
)

func TestReply_MarshalShapes(t *testing.T) {
	tests := []struct {
		name  string
		reply Reply
		want  string
	}{
		{
			name:  "okay reply",
			reply: NewOKReply(),
			want:  `{"okay":true}`,
		},
		{
			name:  "unknown preference failure",
			reply: NewFailureReply(FailureUnknownWhenToHide),
			want:  `{"knownFailure":"UNKNOWN_WHEN_TO_HIDE"}`,
		},
		{
			name:  "maxonly failure",
			reply: NewFailureReply(FailureMaxOnlyUnsupported),
			want:  `{"knownFailure":"MAX_ONLY_UNSUPPORTED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.reply)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "known preference",
			input: `{"whenToHideTitleBar": "always"}`,
			want:  "always",
		},
		{
			name:  "absent preference",
			input: `{}`,
			want:  "",
		},
		{
			name:  "extra fields ignored",
			input: `{"whenToHideTitleBar": "never", "origin": "popup"}`,
			want:  "never",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			if err := json.Unmarshal([]byte(tt.input), &req); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if req.WhenToHideTitleBar != tt.want {
				t.Errorf("WhenToHideTitleBar = %q, want %q", req.WhenToHideTitleBar, tt.want)
			}
		})
	}
}
