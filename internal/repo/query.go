package repo

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

// query incrementally builds a SQL statement together with its named
// arguments. Clauses are fixed fragments chosen by repo code; caller-supplied
// values only ever enter through args and appear in the text as @name
// placeholders.
type query struct {
	text strings.Builder
	args pgx.NamedArgs
}

// newQuery starts a query from a constant base statement.
func newQuery(base string) *query {
	q := &query{args: pgx.NamedArgs{}}
	q.text.WriteString(strings.TrimSpace(base))
	return q
}

// clause appends a parameterless fragment such as "ORDER BY ride_id".
func (q *query) clause(fragment string) *query {
	q.text.WriteByte(' ')
	q.text.WriteString(fragment)
	return q
}

// bind appends "<keyword> @<name>" and records value under name.
// e.g. bind("LIMIT", "limit", 10) → " LIMIT @limit" with args["limit"] = 10.
func (q *query) bind(keyword, name string, value any) *query {
	q.text.WriteByte(' ')
	q.text.WriteString(keyword)
	q.text.WriteString(" @")
	q.text.WriteString(name)
	q.args[name] = value
	return q
}

// build returns the statement text and its arguments as one unit.
func (q *query) build() (string, pgx.NamedArgs) {
	return q.text.String(), q.args
}
