package verify

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/gen"
	"github.com/teranos/eventgen/logger"
	"github.com/teranos/eventgen/run"
)

// maxDetails caps the offenders listed per check
const maxDetails = 20

// sqlCheck is a query whose result rows are offenders, one text column each.
type sqlCheck struct {
	name  string
	table string
	query string
	args  []interface{}
}

// CheckStore runs every SQL invariant check against a loaded run.
// Each check is logged at debug level with the run ID carried by ctx.
func CheckStore(ctx context.Context, store *sql.DB, vocab run.ManifestVocabulary) ([]Violation, error) {
	log := logger.LoggerFromContext(ctx)
	var violations []Violation
	for _, check := range storeChecks(vocab) {
		found, err := runCheck(ctx, store, check)
		if err != nil {
			return nil, errors.Wrapf(err, "check %s on %s", check.name, check.table)
		}
		log.Debugw("check ran", logger.FieldCheck, check.name, logger.FieldTable, check.table, logger.FieldCount, len(found))
		violations = append(violations, found...)
	}
	return violations, nil
}

func storeChecks(vocab run.ManifestVocabulary) []sqlCheck {
	checks := []sqlCheck{
		{
			name:  "unique_email",
			table: gen.TablePersons,
			query: `SELECT email || ' appears ' || COUNT(*) || ' times' FROM persons
				GROUP BY email HAVING COUNT(*) > 1`,
		},
		subteamCheck(vocab.SubteamRoles),
		{
			name:  "room_xor_zoom",
			table: gen.TableSchedule,
			query: `SELECT day || ' ' || start_time || ' ' || title FROM schedule_events
				WHERE (room = '') = (zoom_url = '')`,
		},
		{
			name:  "one_event_per_slot",
			table: gen.TableSchedule,
			query: `SELECT email || ' ' || day || ' ' || start_time || ' assigned ' || COUNT(*) || ' events'
				FROM schedule_events GROUP BY email, day, start_time HAVING COUNT(*) > 1`,
		},
	}

	for _, name := range []string{
		gen.TableQRCodes, gen.TableRooms, gen.TableSchedule,
		gen.TableAnnouncements, gen.TableResources, gen.TableHelpRequests,
	} {
		checks = append(checks, sqlCheck{
			name:  "person_reference",
			table: name,
			query: fmt.Sprintf(`SELECT t.email FROM %s t LEFT JOIN persons p ON p.email = t.email
				WHERE p.email IS NULL`, name),
		})
	}

	for _, name := range []string{gen.TableQRCodes, gen.TableRooms} {
		checks = append(checks, sqlCheck{
			name:  "one_per_person",
			table: name,
			query: fmt.Sprintf(`SELECT p.email || ' has ' || COUNT(t.email) || ' rows' FROM persons p
				LEFT JOIN %s t ON t.email = p.email GROUP BY p.email HAVING COUNT(t.email) <> 1`, name),
		})
	}

	for _, name := range []string{gen.TableAnnouncements, gen.TableResources} {
		checks = append(checks, sqlCheck{
			name:  "admin_owner",
			table: name,
			query: fmt.Sprintf(`SELECT t.email || ' has role ' || p.role FROM %s t
				JOIN persons p ON p.email = t.email WHERE p.role <> ?`, name),
			args: []interface{}{vocab.AdminRole},
		})
	}

	for _, name := range []string{gen.TableAnnouncements, gen.TableResources, gen.TableHelpRequests} {
		checks = append(checks, sqlCheck{
			name:  "owner_snapshot",
			table: name,
			query: fmt.Sprintf(`SELECT t.email FROM %s t JOIN persons p ON p.email = t.email
				WHERE t.full_name <> p.full_name OR t.role <> p.role OR t.subteam <> p.subteam`, name),
		})
	}

	return checks
}

// subteamCheck finds persons whose subteam presence disagrees with their role.
func subteamCheck(subteamRoles []string) sqlCheck {
	check := sqlCheck{name: "subteam_role", table: gen.TablePersons}
	if len(subteamRoles) == 0 {
		check.query = `SELECT email || ' (' || role || ') has subteam ' || subteam FROM persons WHERE subteam <> ''`
		return check
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(subteamRoles)), ", ")
	check.query = fmt.Sprintf(`SELECT email || ' (' || role || ') subteam ' || quote(subteam) FROM persons
		WHERE (role IN (%[1]s) AND subteam = '') OR (role NOT IN (%[1]s) AND subteam <> '')`, placeholders)
	for i := 0; i < 2; i++ {
		for _, role := range subteamRoles {
			check.args = append(check.args, role)
		}
	}
	return check
}

func runCheck(ctx context.Context, store *sql.DB, check sqlCheck) ([]Violation, error) {
	rows, err := store.QueryContext(ctx, check.query+fmt.Sprintf(" LIMIT %d", maxDetails), check.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var violations []Violation
	for rows.Next() {
		var detail string
		if err := rows.Scan(&detail); err != nil {
			return nil, err
		}
		violations = append(violations, Violation{Check: check.name, Table: check.table, Detail: detail})
	}
	return violations, rows.Err()
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
