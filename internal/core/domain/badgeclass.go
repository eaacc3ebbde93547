package domain

import "time"

// Alignment links a badge class to an external objective or standard.
type Alignment struct {
	TargetName        string `json:"target_name" bson:"target_name"`
	TargetURL         string `json:"target_url" bson:"target_url"`
	TargetDescription string `json:"target_description,omitempty" bson:"target_description,omitempty"`
	TargetFramework   string `json:"target_framework,omitempty" bson:"target_framework,omitempty"`
	TargetCode        string `json:"target_code,omitempty" bson:"target_code,omitempty"`
}

// BadgeClass is the template describing a type of awardable badge. Its owning
// issuer is fixed at creation and never changes.
type BadgeClass struct {
	EntityID          string      `json:"entity_id" bson:"_id"`
	IssuerID          string      `json:"issuer_id" bson:"issuer_id"`
	Name              string      `json:"name" bson:"name"`
	Image             string      `json:"image" bson:"image"`
	Description       string      `json:"description" bson:"description"`
	CriteriaURL       string      `json:"criteria_url,omitempty" bson:"criteria_url,omitempty"`
	CriteriaNarrative string      `json:"criteria_narrative,omitempty" bson:"criteria_narrative,omitempty"`
	Tags              []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Alignments        []Alignment `json:"alignments,omitempty" bson:"alignments,omitempty"`
	CreatedAt         time.Time   `json:"created_at" bson:"created_at"`
	CreatedBy         string      `json:"created_by,omitempty" bson:"created_by,omitempty"`
}
