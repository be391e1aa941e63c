package progress

import (
	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/pkg/errorx"
)

// Rule is one unlockable achievement. Title, Description, Icon, Category,
// and Rarity are display metadata and carry no weight in evaluation.
type Rule struct {
	Kind        entity.AchievementKind
	Threshold   int
	Title       string
	Description string
	Icon        string
	Category    string
	Rarity      string
}

type ruleKey struct {
	kind      entity.AchievementKind
	threshold int
}

// Catalog is the immutable process-wide rule table. It is validated once at
// startup and read-only afterwards, so no synchronization is needed.
type Catalog struct {
	rules []Rule
	byKey map[ruleKey]Rule
}

var knownKinds = map[entity.AchievementKind]struct{}{
	entity.KindApplicationCount:  {},
	entity.KindStreak:            {},
	entity.KindInterviewCount:    {},
	entity.KindOfferCount:        {},
	entity.KindDailyApplications: {},
	entity.KindConsistency:       {},
}

// NewCatalog validates rules and fails fast on an unknown kind, a
// non-positive threshold, or a duplicated (kind, threshold) pair. A rejected
// catalog must prevent the process from serving any evaluation.
func NewCatalog(rules []Rule) (*Catalog, error) {
	byKey := make(map[ruleKey]Rule, len(rules))
	for _, rule := range rules {
		if _, ok := knownKinds[rule.Kind]; !ok {
			return nil, errorx.New(errorx.InvalidCatalog,
				"Unknown achievement kind %q", rule.Kind)
		}

		if rule.Threshold <= 0 {
			return nil, errorx.New(errorx.InvalidCatalog,
				"Rule %q requires a positive threshold, got %d", rule.Title, rule.Threshold)
		}

		key := ruleKey{kind: rule.Kind, threshold: rule.Threshold}
		if _, ok := byKey[key]; ok {
			return nil, errorx.New(errorx.InvalidCatalog,
				"Duplicated rule (%s, %d)", rule.Kind, rule.Threshold)
		}

		byKey[key] = rule
	}

	return &Catalog{rules: rules, byKey: byKey}, nil
}

func (c *Catalog) Rules() []Rule {
	return c.rules
}

func (c *Catalog) Get(kind entity.AchievementKind, threshold int) (Rule, bool) {
	rule, ok := c.byKey[ruleKey{kind: kind, threshold: threshold}]
	return rule, ok
}

func (c *Catalog) Size() int {
	return len(c.rules)
}
