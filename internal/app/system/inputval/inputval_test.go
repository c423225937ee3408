package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple valid", "user@example.com", true},
		{"with plus tag", "user+tag@example.com", true},
		{"with dots", "first.last@sub.example.com", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"missing at", "userexample.com", false},
		{"missing domain", "user@", false},
		{"missing local part", "@example.com", false},
		{"display name form rejected", "Name <user@example.com>", false},
		{"double at", "user@@example.com", false},
		{"spaces inside", "us er@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https", "https://hooks.example.com/subscribe", true},
		{"http", "http://localhost:9000/hook", true},
		{"empty", "", false},
		{"no scheme", "hooks.example.com/subscribe", false},
		{"ftp scheme", "ftp://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidHTTPURL(tt.url); got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	type input struct {
		Email  string `json:"email" validate:"required,email" label:"Email"`
		Source string `json:"source" validate:"max=100" label:"Source"`
	}

	t.Run("valid input has no errors", func(t *testing.T) {
		res := Validate(input{Email: "user@example.com", Source: "calculator"})
		if res.HasErrors() {
			t.Errorf("unexpected errors: %v", res.Errors)
		}
		if res.First() != "" {
			t.Errorf("First() = %q, want empty", res.First())
		}
	})

	t.Run("missing email reports required", func(t *testing.T) {
		res := Validate(input{})
		if !res.HasErrors() {
			t.Fatal("expected validation errors")
		}
		if res.First() != "Email is required." {
			t.Errorf("First() = %q, want %q", res.First(), "Email is required.")
		}
	})

	t.Run("httpurl rule checks the URL scheme", func(t *testing.T) {
		type relayInput struct {
			URL string `json:"url" validate:"httpurl" label:"Webhook URL"`
		}
		res := Validate(relayInput{URL: "ftp://example.com/hook"})
		if !res.HasErrors() {
			t.Fatal("expected validation errors")
		}
		want := "Webhook URL must be a valid URL starting with http:// or https://."
		if res.First() != want {
			t.Errorf("First() = %q, want %q", res.First(), want)
		}
		if res = Validate(relayInput{URL: "https://example.com/hook"}); res.HasErrors() {
			t.Errorf("unexpected errors: %v", res.Errors)
		}
	})

	t.Run("label falls back to field name", func(t *testing.T) {
		type unlabeled struct {
			Email string `json:"email" validate:"required"`
		}
		res := Validate(unlabeled{})
		if !res.HasErrors() {
			t.Fatal("expected validation errors")
		}
		if res.Errors[0].Label != "email" {
			t.Errorf("Label = %q, want %q", res.Errors[0].Label, "email")
		}
	})
}
