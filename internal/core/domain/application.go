package domain

import "time"

// ApplicationInfo is a registered Badge Connect client application. The
// manifest domain is the host its manifest is served from; legacy rows
// predate the field and get a placeholder value via the backfill command.
type ApplicationInfo struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	ManifestDomain string    `json:"manifest_domain,omitempty" bson:"manifest_domain,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
