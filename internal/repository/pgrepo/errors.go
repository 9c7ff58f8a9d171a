package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
)

// errNoRowsAffected используется когда Exec не затронул ни одной строки:
// семантически это то же отсутствие записи, что и pgx.ErrNoRows.
var errNoRowsAffected = pgx.ErrNoRows

// convertErr преобразует ошибку к стандартному виду для слоя репозитория:
//   - pgx.ErrNoRows -> domain.ErrRecordNotFound;
//   - нарушение уникального индекса (uniqueViolationCode) -> domain.ErrDuplicateKey;
//   - все остальное -> domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		if isUniqueViolationErr(pgErr) {
			errType = domain.ErrDuplicateKey
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}
