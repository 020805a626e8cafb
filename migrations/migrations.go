// Package migrations — SQL-миграции схемы каталога (goose), встроенные в бинарь.
package migrations

import "embed"

// FS — файлы миграций *.sql.
//
//go:embed *.sql
var FS embed.FS
