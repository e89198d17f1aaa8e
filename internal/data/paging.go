package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/lib/pq"

	"schoolhub/internal/model"
)

// listQuery describes how one entity is paged, sorted and searched.
type listQuery struct {
	columns string
	from    string
	// sortable maps a lower-cased request field name to its column.
	sortable    map[string]string
	defaultSort string
	search      []string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func quoteColumn(column string) string {
	parts := strings.Split(column, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

// buildOrderBy turns "name desc, createdDate" into an ORDER BY list.
// Unknown fields are skipped. The default sort is used when nothing usable remains.
func buildOrderBy(orderBy string, sortable map[string]string, defaultSort string) string {
	var terms []string
	seen := make(map[string]bool)
	for _, raw := range strings.Split(orderBy, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		fields := strings.Fields(token)
		column, ok := sortable[strings.ToLower(fields[0])]
		if !ok || seen[column] {
			continue
		}
		seen[column] = true
		direction := "ASC"
		if strings.HasSuffix(strings.ToLower(token), " desc") {
			direction = "DESC"
		}
		terms = append(terms, quoteColumn(column)+" "+direction)
	}
	if len(terms) == 0 {
		return defaultSort
	}
	return strings.Join(terms, ", ")
}

func (q listQuery) searchCondition(argIdx int) string {
	var ors []string
	for _, column := range q.search {
		ors = append(ors, fmt.Sprintf("lower(%s) LIKE $%d", column, argIdx))
	}
	return "(" + strings.Join(ors, " OR ") + ")"
}

func selectPage[T any](
	ctx context.Context,
	db pgxscan.Querier,
	q listQuery,
	where []string,
	args []any,
	params model.PageParams,
) (*model.Page[T], error) {
	params = params.Normalize()

	if params.SearchTerm != "" && len(q.search) > 0 {
		args = append(args, "%"+likeEscaper.Replace(params.SearchTerm)+"%")
		where = append(where, q.searchCondition(len(args)))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "\nWHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT count(*)\n" + q.from + whereClause
	if err := pgxscan.Get(ctx, db, &total, countQuery, args...); err != nil {
		return nil, handleError(err)
	}

	query := fmt.Sprintf("SELECT %s\n%s%s\nORDER BY %s\nLIMIT $%d OFFSET $%d",
		q.columns, q.from, whereClause,
		buildOrderBy(params.OrderBy, q.sortable, q.defaultSort),
		len(args)+1, len(args)+2,
	)
	args = append(args, params.PageSize, params.Offset())

	var items []T
	if err := pgxscan.Select(ctx, db, &items, query, args...); err != nil {
		return nil, handleError(err)
	}
	return model.NewPage(items, total, params), nil
}
