package domain

import "time"

// RecipientType declares which identifier format a recipient identity uses.
type RecipientType string

const (
	RecipientTypeEmail     RecipientType = "email"
	RecipientTypeURL       RecipientType = "url"
	RecipientTypeID        RecipientType = "id"
	RecipientTypeTelephone RecipientType = "telephone"
)

// DefaultRecipientType applies when the caller omits the recipient type.
const DefaultRecipientType = RecipientTypeEmail

// Valid reports whether the recipient type is one of the known types.
func (t RecipientType) Valid() bool {
	switch t {
	case RecipientTypeEmail, RecipientTypeURL, RecipientTypeID, RecipientTypeTelephone:
		return true
	}
	return false
}

// Recipient identifies who an assertion was awarded to.
type Recipient struct {
	Identity string        `json:"identity" bson:"identity"`
	Type     RecipientType `json:"type" bson:"type"`
}

// Evidence is supporting material attached to an assertion. At least one of
// URL or Narrative must be non-empty.
type Evidence struct {
	URL       string `json:"url,omitempty" bson:"url,omitempty"`
	Narrative string `json:"narrative,omitempty" bson:"narrative,omitempty"`
}

// Assertion is an awarded badge. It is write-once: after creation the only
// state change allowed is revocation.
type Assertion struct {
	EntityID         string     `json:"entity_id" bson:"_id"`
	BadgeClassID     string     `json:"badgeclass_id" bson:"badgeclass_id"`
	IssuerID         string     `json:"issuer_id" bson:"issuer_id"`
	Recipient        Recipient  `json:"recipient" bson:"recipient"`
	Image            string     `json:"image,omitempty" bson:"image,omitempty"`
	IssuedOn         time.Time  `json:"issued_on" bson:"issued_on"`
	Narrative        string     `json:"narrative,omitempty" bson:"narrative,omitempty"`
	Evidence         []Evidence `json:"evidence,omitempty" bson:"evidence,omitempty"`
	Revoked          bool       `json:"revoked" bson:"revoked"`
	RevocationReason string     `json:"revocation_reason,omitempty" bson:"revocation_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	CreatedBy        string     `json:"created_by,omitempty" bson:"created_by,omitempty"`
}
