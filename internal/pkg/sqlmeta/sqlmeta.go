// Package sqlmeta builds the parameterized SQL statements shared by the
// entity repositories from a table name and column list, so each repository
// does not hand-maintain parallel SQL strings and column lists.
package sqlmeta

import (
	"fmt"
	"strings"
)

// Table describes a relational table and produces ready-to-use SQL fragments
// with PostgreSQL-style positional placeholders.
type Table struct {
	name    string
	columns []string
	orderBy string
}

// New creates a Table for name with the given columns. Column arguments may
// themselves be comma-separated lists. New panics when the resulting column
// list is empty, which is a caller bug caught at construction time.
func New(name string, columns ...string) *Table {
	if strings.TrimSpace(name) == "" {
		panic("sqlmeta: table name must not be empty")
	}
	var cols []string
	for _, c := range columns {
		cols = append(cols, splitColumns(c)...)
	}
	if len(cols) == 0 {
		panic(fmt.Sprintf("sqlmeta: table %q must declare at least one column", name))
	}
	return &Table{name: name, columns: cols}
}

// WithAudit appends the audit column pair shared by the audited tables.
func (t *Table) WithAudit() *Table {
	t.columns = append(t.columns, "created_at", "updated_at")
	return t
}

// WithOrderBy sets the default ordering clause used by SelectAll.
func (t *Table) WithOrderBy(clause string) *Table {
	t.orderBy = clause
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the comma-separated column list.
func (t *Table) Columns() string {
	return strings.Join(t.columns, ", ")
}

// OrderBy returns the default ordering clause, empty when none was set.
func (t *Table) OrderBy() string {
	return t.orderBy
}

// BaseSelect returns the select statement without ordering or predicates.
func (t *Table) BaseSelect() string {
	return "SELECT " + t.Columns() + " FROM " + t.name
}

// SelectAll returns the select statement with the default ordering applied.
func (t *Table) SelectAll() string {
	if t.orderBy == "" {
		return t.BaseSelect()
	}
	return t.BaseSelect() + " ORDER BY " + t.orderBy
}

// SelectWhere returns the select statement filtered by equality on the given
// key columns, numbered from $1.
func (t *Table) SelectWhere(keyColumns string) string {
	return t.BaseSelect() + " WHERE " + predicates(keyColumns, 1)
}

// InsertReturning returns an insert statement for the given columns that
// returns the full column list of the freshly inserted row.
func (t *Table) InsertReturning(insertColumns string) string {
	cols := splitColumns(insertColumns)
	requireColumns(cols)
	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}
	return "INSERT INTO " + t.name +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")" +
		" RETURNING " + t.Columns()
}

// UpdateReturning returns an update statement setting the given columns,
// keyed by equality on keyColumns, that returns the full post-update row.
// Placeholders run through the set list first, then the key list.
func (t *Table) UpdateReturning(setColumns, keyColumns string) string {
	sets := splitColumns(setColumns)
	requireColumns(sets)
	assignments := make([]string, len(sets))
	for i, col := range sets {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return "UPDATE " + t.name +
		" SET " + strings.Join(assignments, ", ") +
		" WHERE " + predicates(keyColumns, len(sets)+1) +
		" RETURNING " + t.Columns()
}

// DeleteWhere returns a delete statement keyed by equality on keyColumns.
func (t *Table) DeleteWhere(keyColumns string) string {
	return "DELETE FROM " + t.name + " WHERE " + predicates(keyColumns, 1)
}

func predicates(keyColumns string, start int) string {
	cols := splitColumns(keyColumns)
	requireColumns(cols)
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%s = $%d", col, start+i)
	}
	return strings.Join(parts, " AND ")
}

func splitColumns(csv string) []string {
	var cols []string
	for _, part := range strings.Split(strings.ReplaceAll(csv, "\n", " "), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			cols = append(cols, trimmed)
		}
	}
	return cols
}

func requireColumns(cols []string) {
	if len(cols) == 0 {
		panic("sqlmeta: column list must not be empty")
	}
}
