package domain

import (
	"errors"
	"testing"
)

func TestRecipientValidate_AllTypes(t *testing.T) {
	cases := []struct {
		name     string
		rtype    RecipientType
		identity string
		wantOK   bool
	}{
		{"email valid", RecipientTypeEmail, "learner@example.com", true},
		{"email missing at", RecipientTypeEmail, "learner.example.com", false},
		{"email empty", RecipientTypeEmail, "", false},
		{"email display name form", RecipientTypeEmail, "Learner <l@example.com>", false},
		{"url valid", RecipientTypeURL, "https://example.com/me", true},
		{"url no scheme", RecipientTypeURL, "example.com/me", false},
		{"url ftp scheme", RecipientTypeURL, "ftp://example.com/me", false},
		{"id valid url", RecipientTypeID, "https://id.example.com/u/42", true},
		{"id plain string", RecipientTypeID, "user-42", false},
		{"telephone valid", RecipientTypeTelephone, "+15105551234", true},
		{"telephone no plus", RecipientTypeTelephone, "15105551234", true},
		{"telephone leading zero", RecipientTypeTelephone, "+0150555", false},
		{"telephone letters", RecipientTypeTelephone, "+1510call", false},
		{"telephone too long", RecipientTypeTelephone, "+1234567890123456", false},
		{"unknown type", RecipientType("carrier-pigeon"), "whatever", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Recipient{Identity: tc.identity, Type: tc.rtype}.Validate()
			if tc.wantOK && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatalf("expected rejection for %q/%q", tc.rtype, tc.identity)
			}
		})
	}
}

func TestRecipientValidate_ReturnsFieldErrors(t *testing.T) {
	err := Recipient{Identity: "not-an-email", Type: RecipientTypeEmail}.Validate()

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if _, ok := fe["recipient.identity"]; !ok {
		t.Fatalf("expected error keyed by recipient.identity, got %v", fe)
	}
}

func TestEvidenceValidate(t *testing.T) {
	cases := []struct {
		name     string
		evidence Evidence
		wantOK   bool
	}{
		{"both empty", Evidence{}, false},
		{"url only", Evidence{URL: "https://example.com/proof"}, true},
		{"narrative only", Evidence{Narrative: "Completed the final project."}, true},
		{"both set", Evidence{URL: "https://example.com/proof", Narrative: "See link."}, true},
		{"malformed url", Evidence{URL: "not a url"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.evidence.Validate()
			if tc.wantOK && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}

func TestStaffRoleValid(t *testing.T) {
	for _, r := range []StaffRole{StaffRoleStaff, StaffRoleEditor, StaffRoleOwner} {
		if !r.Valid() {
			t.Errorf("role %q should be valid", r)
		}
	}
	if StaffRole("superuser").Valid() {
		t.Error("unknown role must not be valid")
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	fe := FieldErrors{"issuer": "This field is required", "name": "too long"}
	got := fe.Error()
	want := "issuer: This field is required; name: too long"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
