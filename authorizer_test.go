package main

import (
	"strings"
	"testing"
)

func TestAuthorize(t *testing.T) {
	a := NewAuthorizer("s3cret")

	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{"http api lowercase", map[string]string{"authorization": "Bearer s3cret"}, true},
		{"rest api canonical", map[string]string{"Authorization": "Bearer s3cret"}, true},
		{"upper case name", map[string]string{"AUTHORIZATION": "Bearer s3cret"}, true},
		{"wrong key", map[string]string{"authorization": "Bearer nope"}, false},
		{"raw key without scheme", map[string]string{"authorization": "s3cret"}, false},
		{"lowercase scheme", map[string]string{"authorization": "bearer s3cret"}, false},
		{"trailing space", map[string]string{"authorization": "Bearer s3cret "}, false},
		{"key prefix only", map[string]string{"authorization": "Bearer s3cre"}, false},
		{"empty value", map[string]string{"authorization": ""}, false},
		{"missing header", map[string]string{"x-api-key": "s3cret"}, false},
		{"nil headers", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Authorize(tt.headers)
			if got.IsAuthorized != tt.want {
				t.Fatalf("IsAuthorized = %v, want %v", got.IsAuthorized, tt.want)
			}
			if got.Context["exampleKey"] != "exampleValue" {
				t.Fatalf("unexpected context %v", got.Context)
			}
		})
	}
}

func TestAuthorizeExactLowercaseKeyWins(t *testing.T) {
	a := NewAuthorizer("s3cret")
	got := a.Authorize(map[string]string{
		"authorization": "Bearer s3cret",
		"Authorization": "Bearer nope",
	})
	if !got.IsAuthorized {
		t.Fatal("expected lowercase authorization header to be used")
	}
}

func TestAuthorizeHeaderAnyLength(t *testing.T) {
	a := NewAuthorizer("s3cret")
	tests := []struct {
		value string
		want  bool
	}{
		{"Bearer s3cret", true},
		{"Bearer s3creT", false},
		{"Bearer s3cre", false},
		{"Bearer s3cret0", false},
		{"Bearer s3cret" + strings.Repeat("x", 4096), false},
		{"B", false},
	}
	for _, tt := range tests {
		if got := a.AuthorizeHeader(tt.value).IsAuthorized; got != tt.want {
			t.Fatalf("AuthorizeHeader(%.20q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestEmptySecretNeverAuthorizes(t *testing.T) {
	a := NewAuthorizer("")
	for _, v := range []string{"", "Bearer ", "Bearer"} {
		if a.AuthorizeHeader(v).IsAuthorized {
			t.Fatalf("empty secret authorized %q", v)
		}
	}
}

func TestDecisionContextIsCopied(t *testing.T) {
	a := NewAuthorizer("s3cret")
	first := a.AuthorizeHeader("Bearer s3cret")
	first.Context["exampleKey"] = "changed"
	first.Context["extra"] = 1

	second := a.AuthorizeHeader("Bearer nope")
	if second.Context["exampleKey"] != "exampleValue" || len(second.Context) != 1 {
		t.Fatalf("static context was mutated: %v", second.Context)
	}
}
