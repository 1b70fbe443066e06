package llm

import "testing"

type boundaryReply struct {
	Start      *string `json:"sermon_start"`
	End        *string `json:"sermon_end"`
	Confidence string  `json:"confidence"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "bare object",
			content: `{"sermon_start":"00:12:00","sermon_end":"00:48:30","confidence":"high"}`,
		},
		{
			name:    "fenced with language tag",
			content: "```json\n{\"sermon_start\":\"00:12:00\",\"sermon_end\":\"00:48:30\",\"confidence\":\"high\"}\n```",
		},
		{
			name:    "fenced without language tag",
			content: "```\n{\"sermon_start\":null,\"sermon_end\":null,\"confidence\":\"low\"}\n```",
		},
		{
			name:    "prose around object",
			content: "Here is the result:\n{\"sermon_start\":\"00:12:00\",\"sermon_end\":\"00:48:30\",\"confidence\":\"medium\"}\nHope that helps!",
		},
		{
			name:    "empty",
			content: "",
			wantErr: true,
		},
		{
			name:    "no json at all",
			content: "The sermon starts twelve minutes in.",
			wantErr: true,
		},
		{
			name:    "truncated object",
			content: `{"sermon_start":"00:12:00",`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reply boundaryReply
			err := DecodeJSON(tt.content, &reply)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeJSONValues(t *testing.T) {
	var reply boundaryReply
	err := DecodeJSON("```json\n{\"sermon_start\":\"00:12:00\",\"sermon_end\":null,\"confidence\":\"low\"}\n```", &reply)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if reply.Start == nil || *reply.Start != "00:12:00" {
		t.Errorf("Start = %v, want 00:12:00", reply.Start)
	}
	if reply.End != nil {
		t.Errorf("End = %v, want nil", *reply.End)
	}
	if reply.Confidence != "low" {
		t.Errorf("Confidence = %q, want low", reply.Confidence)
	}
}
