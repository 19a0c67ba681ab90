package postgres

import (
	"fmt"
	"strings"
)

// jobSortColumns whitelists the sort keys accepted by the job listing.
var jobSortColumns = map[string]string{
	"dateAdded":     "date_added",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"deadlineDate":  "deadline_date",
	"interviewDate": "interview_date",
	"title":         "title",
	"company":       "company",
	"status":        "status",
	"salaryMin":     "salary_min",
	"salaryMax":     "salary_max",
}

// applicationSortColumns whitelists the sortBy keys for application listings.
var applicationSortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"company":       "company",
	"roleTitle":     "role_title",
	"status":        "status",
	"deadlineDate":  "deadline_date",
	"interviewDate": "interview_date",
}

// internshipSortColumns whitelists the sort keys for posting listings.
var internshipSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"company":   "company",
	"stipend":   "stipend",
	"status":    "status",
}

// parseSort resolves a "-field" / "field" sort expression against a column
// whitelist. Unknown fields fall back to the default so user input never
// reaches the SQL text.
func parseSort(sort string, allowed map[string]string, fallback string) string {
	dir := "ASC"
	field := strings.TrimSpace(sort)
	if strings.HasPrefix(field, "-") {
		dir = "DESC"
		field = field[1:]
	}
	col, ok := allowed[field]
	if !ok {
		return fallback
	}
	return col + " " + dir
}

// orderClause builds ORDER BY from an explicit field + direction pair.
func orderClause(sortBy, sortDir string, allowed map[string]string, fallback string) string {
	col, ok := allowed[sortBy]
	if !ok {
		return fallback
	}
	dir := "ASC"
	if strings.EqualFold(sortDir, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

// buildListQuery assembles SELECT + WHERE + ORDER BY + LIMIT/OFFSET. The
// order-by text must come from a whitelist, never from request input.
func buildListQuery(baseQuery string, conditions []string, args *[]interface{}, orderBy string, page, limit int) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(orderBy)

	*args = append(*args, limit)
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(*args)))
	*args = append(*args, (page-1)*limit)
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(*args)))

	return queryBuilder.String()
}

// buildCountQuery assembles SELECT COUNT(*) + WHERE over the same conditions
// as the page query.
func buildCountQuery(table string, conditions []string) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT COUNT(*) FROM ")
	queryBuilder.WriteString(table)
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	return queryBuilder.String()
}

// likePattern wraps free-text input for ILIKE matching, escaping the SQL
// wildcard characters so they match literally.
func likePattern(q string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + escaped + "%"
}
