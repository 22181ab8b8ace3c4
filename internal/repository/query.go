package repository

import (
	"fmt"
	"strings"

	"member-search-service/internal/search"
)

// columns сопоставляет поля фильтра колонкам запроса members m LEFT JOIN teams t.
var columns = map[search.Field]string{
	search.FieldMemberID: "m.member_id",
	search.FieldUsername: "m.username",
	search.FieldAge:      "m.age",
	search.FieldTeamID:   "m.team_id",
	search.FieldTeamName: "t.name",
}

var operators = map[search.Op]string{
	search.OpEq:  "=",
	search.OpGoe: ">=",
	search.OpLoe: "<=",
}

const (
	memberTeamColumns = `m.member_id, m.username, m.age, t.team_id, t.name`
	memberTeamFrom    = `members m
LEFT JOIN teams t ON t.team_id = m.team_id`
)

// queryArgs накапливает позиционные параметры $1, $2, ...
type queryArgs []any

func (a *queryArgs) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}

// whereSQL рендерит фильтр в WHERE; для пустого фильтра возвращает пустую строку.
func whereSQL(f search.Filter, args *queryArgs) (string, error) {
	if f.IsEmpty() {
		return "", nil
	}
	parts := make([]string, 0, len(f.Clauses))
	for _, c := range f.Clauses {
		col, ok := columns[c.Field]
		if !ok {
			return "", fmt.Errorf("unsupported filter field %q", c.Field)
		}
		op, ok := operators[c.Op]
		if !ok {
			return "", fmt.Errorf("unsupported filter operator %q", c.Op)
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", col, op, args.add(c.Value)))
	}
	return "WHERE " + strings.Join(parts, " AND "), nil
}

// orderSQL рендерит сортировку. Последним ключом всегда идёт m.member_id,
// чтобы страницы не пересекались при одинаковых значениях.
func orderSQL(s search.Sort) (string, error) {
	parts := make([]string, 0, len(s.Orders)+1)
	for _, o := range s.Orders {
		col, ok := columns[o.Field]
		if !ok {
			return "", fmt.Errorf("unsupported sort field %q", o.Field)
		}
		dir := "ASC"
		if o.Direction == search.Desc {
			dir = "DESC"
		}
		expr := col + " " + dir
		if o.NullsLast {
			expr += " NULLS LAST"
		}
		parts = append(parts, expr)
	}
	parts = append(parts, "m.member_id ASC")
	return "ORDER BY " + strings.Join(parts, ", "), nil
}

// buildSelect собирает выборку окна. withTotal добавляет COUNT(*) OVER() последней колонкой.
func buildSelect(f search.Filter, s search.Sort, w search.Window, withTotal bool) (string, []any, error) {
	var args queryArgs
	where, err := whereSQL(f, &args)
	if err != nil {
		return "", nil, err
	}
	order, err := orderSQL(s)
	if err != nil {
		return "", nil, err
	}

	cols := memberTeamColumns
	if withTotal {
		cols += ", COUNT(*) OVER() AS total"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s\nFROM %s\n", cols, memberTeamFrom)
	if where != "" {
		b.WriteString(where + "\n")
	}
	b.WriteString(order + "\n")
	fmt.Fprintf(&b, "OFFSET %s LIMIT %s", args.add(w.Offset), args.add(w.Limit))
	return b.String(), args, nil
}

// buildCount собирает count-запрос. Без joinTeam таблица команд не присоединяется,
// если только фильтр сам не ссылается на команду.
func buildCount(f search.Filter, joinTeam bool) (string, []any, error) {
	if !joinTeam && f.Uses(search.Field.TeamField) {
		joinTeam = true
	}

	var args queryArgs
	where, err := whereSQL(f, &args)
	if err != nil {
		return "", nil, err
	}

	from := "members m"
	if joinTeam {
		from = memberTeamFrom
	}

	q := fmt.Sprintf("SELECT COUNT(*)\nFROM %s", from)
	if where != "" {
		q += "\n" + where
	}
	return q, args, nil
}
