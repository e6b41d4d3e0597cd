package scoring

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// LoadPostgresSource reads active rules from the department web app's
// activity-type table and returns them as an in-memory source. The rule set
// is a snapshot: one calculation context sees one immutable table.
//
// Expected schema (Django reports_app):
//
//	reports_app_activitytype(data_variable, base_points, modifier_type,
//	                         max_count, max_points, is_active)
func LoadPostgresSource(ctx context.Context, dsn string) (*StaticSource, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	const query = `
SELECT data_variable, base_points, modifier_type, COALESCE(max_count, 0), COALESCE(max_points, 0)
FROM reports_app_activitytype
WHERE is_active;
`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query activity types: %w", err)
	}
	defer rows.Close()

	rules := make([]Rule, 0, 128)
	for rows.Next() {
		var (
			rule     Rule
			modifier string
		)
		if err := rows.Scan(&rule.Key, &rule.BasePoints, &modifier, &rule.MaxCount, &rule.MaxPoints); err != nil {
			return nil, fmt.Errorf("scan activity type: %w", err)
		}
		rule.Modifier = Modifier(modifier)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity types: %w", err)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("no active scoring rules in activity-type table")
	}

	return NewStaticSourceFromRules(rules), nil
}
