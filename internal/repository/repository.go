// Package repository provides the persistence boundary. Each entity gets
// a narrow five-operation store contract plus entity-specific queries;
// services depend on these interfaces, never on pgx directly.
package repository

import sq "github.com/Masterminds/squirrel"

// psql builds queries with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
