package domain

import (
	"net/mail"
	"net/url"
	"regexp"
)

// telephoneRE matches E.164 phone numbers: optional +, up to 15 digits, no
// leading zero.
var telephoneRE = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidEmail reports whether s is a well-formed email address.
func ValidEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}

// ValidURL reports whether s is an absolute http(s) URL.
func ValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidTelephone reports whether s is an E.164 phone number.
func ValidTelephone(s string) bool {
	return telephoneRE.MatchString(s)
}

// Validate checks the recipient identity against the format its declared
// type implies. The "id" type carries a URL identifier, same as "url".
func (r Recipient) Validate() error {
	switch r.Type {
	case RecipientTypeEmail:
		if !ValidEmail(r.Identity) {
			return NewFieldError("recipient.identity", "must be a valid email address")
		}
	case RecipientTypeURL, RecipientTypeID:
		if !ValidURL(r.Identity) {
			return NewFieldError("recipient.identity", "must be a valid URL")
		}
	case RecipientTypeTelephone:
		if !ValidTelephone(r.Identity) {
			return NewFieldError("recipient.identity", "must be a valid E.164 telephone number")
		}
	default:
		return NewFieldError("recipient.type", "unknown recipient type")
	}
	return nil
}

// Validate enforces that an evidence item carries a URL or a narrative, and
// that a present URL is well-formed.
func (e Evidence) Validate() error {
	if e.URL == "" && e.Narrative == "" {
		return NewFieldError("evidence", "either url or narrative is required")
	}
	if e.URL != "" && !ValidURL(e.URL) {
		return NewFieldError("evidence.url", "must be a valid URL")
	}
	return nil
}
