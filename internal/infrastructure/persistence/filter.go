package persistence

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/shared"
)

// identPattern guards column names interpolated into SQL. Filter keys
// and sort fields never come from this module's own code alone.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// applyFilterWhere adds equality clauses for the filter map, skipping
// keys that are not plain column identifiers.
func applyFilterWhere(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		if identPattern.MatchString(key) {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}
	}
	return query
}

// applyFilter adds the WHERE clauses plus ordering restricted to the
// sortable whitelist; anything else falls back to id.
func applyFilter(query *gorm.DB, filter shared.Filter, sortable []string) *gorm.DB {
	query = applyFilterWhere(query, filter)

	orderBy := "id"
	for _, col := range sortable {
		if col == filter.OrderBy {
			orderBy = filter.OrderBy
			break
		}
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	return query.Order(fmt.Sprintf("%s %s", orderBy, dir))
}
