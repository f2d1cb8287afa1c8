// File path: internal/sqlite/types.go
package sqlite

import "time"

// SavedFilter is one persisted compile outcome, including its rendered XML.
type SavedFilter struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Mastery        string    `db:"mastery" json:"mastery"`
	BaseClass      string    `db:"base_class" json:"base_class"`
	DamageTypes    string    `db:"damage_types" json:"damage_types"`
	Progress       string    `db:"progress" json:"progress"`
	Strictness     string    `db:"strictness" json:"strictness"`
	Specificity    float64   `db:"specificity" json:"specificity"`
	Confidence     string    `db:"confidence" json:"confidence"`
	RuleCount      int       `db:"rule_count" json:"rule_count"`
	AffixesDropped int       `db:"affixes_dropped" json:"affixes_dropped"`
	Warnings       string    `db:"warnings" json:"warnings,omitempty"`
	XML            string    `db:"xml" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// BuildUsage counts compiles per mastery and strictness pair.
type BuildUsage struct {
	Mastery    string    `db:"mastery" json:"mastery"`
	Strictness string    `db:"strictness" json:"strictness"`
	UsageCount int       `db:"usage_count" json:"usage_count"`
	LastUsedAt time.Time `db:"last_used_at" json:"last_used_at"`
}

// BuildPopularity is one row of the build_popularity view.
type BuildPopularity struct {
	Mastery    string    `db:"mastery" json:"mastery"`
	TotalUses  int       `db:"total_uses" json:"total_uses"`
	LastUsedAt time.Time `db:"last_used_at" json:"last_used_at"`
}
