package scoring

// Modifier selects how a rule's base points combine with entry data.
type Modifier string

const (
	// ModifierFixed awards the base points once.
	ModifierFixed Modifier = "fixed"
	// ModifierCount awards base points per counted item, up to MaxCount items.
	ModifierCount Modifier = "count"
	// ModifierImpactFactor scales base points by the journal impact factor,
	// capped at MaxImpactFactor.
	ModifierImpactFactor Modifier = "impact_factor"
)

// MaxImpactFactor caps the reported journal impact factor in scoring.
const MaxImpactFactor = 15.0

// Rule is the point-calculation recipe for one activity-type identifier.
// MaxCount and MaxPoints are optional caps; zero means uncapped.
type Rule struct {
	Key        string   `json:"key"`
	BasePoints int      `json:"base_points"`
	Modifier   Modifier `json:"modifier"`
	MaxCount   int      `json:"max_count,omitempty"`
	MaxPoints  int      `json:"max_points,omitempty"`
}

// Source resolves scoring rules. Implementations may be a static table, the
// local SQLite store, or a remote Postgres activity-type table; callers pick
// one and the calculation logic never branches on the origin.
type Source interface {
	Rule(key string) (Rule, bool)
}

// FixedPoints returns the points for a fixed-modifier lookup, or 0 when the
// rule is unknown.
func FixedPoints(source Source, key string) int {
	rule, ok := source.Rule(key)
	if !ok {
		return 0
	}
	return applyMaxPoints(rule, rule.BasePoints)
}

// CountPoints returns base points multiplied by the capped count.
func CountPoints(source Source, key string, count int) int {
	rule, ok := source.Rule(key)
	if !ok {
		return 0
	}
	effective := count
	if rule.MaxCount > 0 && effective > rule.MaxCount {
		effective = rule.MaxCount
	}
	return applyMaxPoints(rule, rule.BasePoints*effective)
}

// ImpactFactorPoints scales base points by the capped impact factor.
func ImpactFactorPoints(source Source, key string, impactFactor float64) int {
	rule, ok := source.Rule(key)
	if !ok {
		return 0
	}
	if impactFactor > MaxImpactFactor {
		impactFactor = MaxImpactFactor
	}
	return applyMaxPoints(rule, int(float64(rule.BasePoints)*impactFactor))
}

func applyMaxPoints(rule Rule, points int) int {
	if rule.MaxPoints > 0 && points > rule.MaxPoints {
		return rule.MaxPoints
	}
	return points
}
