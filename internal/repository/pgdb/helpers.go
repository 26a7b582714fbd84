package pgdb

import (
	"errors"
	"math"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// orderColumns — колонки, по которым разрешена сортировка. Всё остальное сортируется по имени.
var orderColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// orderClause собирает ORDER BY только из разрешённых значений.
func orderClause(sort, direction string) string {
	column, ok := orderColumns[sort]
	if !ok {
		column = "name"
	}

	dir := "ASC"
	if strings.EqualFold(direction, "desc") {
		dir = "DESC"
	}

	return "ORDER BY " + column + " " + dir + ", id ASC"
}

// likePattern экранирует спецсимволы ILIKE и оборачивает строку в %.
func likePattern(terms string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(terms) + "%"
}

func offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	if perPage > 0 && page > math.MaxInt/perPage {
		page = math.MaxInt / perPage
	}

	return (page - 1) * perPage
}
