package forms

import (
	"strings"
	"testing"
)

func TestSignupFormValid(t *testing.T) {
	form := SignupForm{Username: "alice", Email: "alice@example.com", Password: "hunter2secret", Password2: "hunter2secret"}
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestSignupFormRejects(t *testing.T) {
	cases := []struct {
		name  string
		form  SignupForm
		field string
	}{
		{"missing username", SignupForm{Email: "a@b.com", Password: "hunter2secret", Password2: "hunter2secret"}, "username"},
		{"short username", SignupForm{Username: "ab", Email: "a@b.com", Password: "hunter2secret", Password2: "hunter2secret"}, "username"},
		{"bad email", SignupForm{Username: "alice", Email: "not-an-email", Password: "hunter2secret", Password2: "hunter2secret"}, "email"},
		{"short password", SignupForm{Username: "alice", Email: "a@b.com", Password: "short", Password2: "short"}, "password"},
		{"mismatch", SignupForm{Username: "alice", Email: "a@b.com", Password: "hunter2secret", Password2: "different1234"}, "password2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.form.Validate()
			if errs.Valid() {
				t.Fatalf("expected validation failure")
			}
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestPostFormLimits(t *testing.T) {
	form := PostForm{Title: strings.Repeat("x", 201), Content: "body"}
	errs := form.Validate()
	if _, ok := errs["title"]; !ok {
		t.Fatalf("expected title length error, got %v", errs)
	}

	form = PostForm{Title: strings.Repeat("x", 200), Content: "body"}
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("200-char title should pass, got %v", errs)
	}
}

func TestContactFormRequiresAll(t *testing.T) {
	errs := (&ContactForm{}).Validate()
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error on %q, got %v", field, errs)
		}
	}
}

func TestVolunteerRequestFormLimits(t *testing.T) {
	form := VolunteerRequestForm{
		Phone:          strings.Repeat("9", 21),
		AreaOfInterest: "tree planting",
		Availability:   "weekends",
	}
	errs := form.Validate()
	if _, ok := errs["phone"]; !ok {
		t.Fatalf("expected phone length error, got %v", errs)
	}

	form.Phone = "0501234567"
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestVolunteerApplicationFormEventID(t *testing.T) {
	form := VolunteerApplicationForm{EventID: "abc", Motivation: "I care"}
	if errs := form.Validate(); errs.Valid() {
		t.Fatalf("non-numeric event id should fail")
	}

	form.EventID = "0"
	if errs := form.Validate(); errs.Valid() {
		t.Fatalf("zero event id should fail")
	}

	form.EventID = "3"
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// Phone is optional but still bounded.
	form.Phone = strings.Repeat("9", 21)
	if errs := form.Validate(); errs.Valid() {
		t.Fatalf("overlong phone should fail")
	}
}

func TestEventFormDate(t *testing.T) {
	form := EventForm{Title: "Cleanup", Description: "d", Date: "2026-13-40", Location: "Park"}
	if errs := form.Validate(); errs.Valid() {
		t.Fatalf("impossible date should fail")
	}

	form.Date = "2026-09-12"
	if errs := form.Validate(); !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := form.ParsedDate().Format("2006-01-02"); got != "2026-09-12" {
		t.Fatalf("parsed date = %s", got)
	}
}

func TestErrorsKeepFirstMessage(t *testing.T) {
	errs := Errors{}
	errs.Add("title", "first")
	errs.Add("title", "second")
	if errs["title"] != "first" {
		t.Fatalf("expected first message kept, got %q", errs["title"])
	}
}
