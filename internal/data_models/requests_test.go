package dto

import (
	"encoding/json"
	"testing"
)

func TestStringOrNumber_AcceptsBothShapes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{"number", `{"estimatedHours": 8}`, "8"},
		{"decimal number", `{"estimatedHours": 5.5}`, "5.5"},
		{"quoted string", `{"estimatedHours": "5.5"}`, "5.5"},
		{"padded string", `{"estimatedHours": " 8 "}`, "8"},
		{"null", `{"estimatedHours": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateTaskRequest
			if err := json.Unmarshal([]byte(tc.payload), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if e, g := tc.want, req.EstimatedHours.String(); e != g {
				t.Errorf("expected %q, got %q", e, g)
			}
		})
	}
}

func TestStringOrNumber_KeepsMalformedValuesForTheValidator(t *testing.T) {
	// A non-numeric string must survive binding so the submission
	// validator can reject it with its own stable message.
	var req CreateTaskRequest
	if err := json.Unmarshal([]byte(`{"estimatedHours": "lots"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if e, g := "lots", req.EstimatedHours.String(); e != g {
		t.Errorf("expected %q, got %q", e, g)
	}
}
