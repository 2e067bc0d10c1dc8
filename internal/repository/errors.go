package repository

import (
	"errors"
	"fmt"
	"strings"

	domainRepo "clinic-pharmacy-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// translate maps driver constraint errors onto the domain sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domainRepo.ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", domainRepo.ErrRelatedNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %w", domainRepo.ErrDuplicateKey, err)
		case "23503":
			return fmt.Errorf("%w: %w", domainRepo.ErrRelatedNotFound, err)
		}
		return err
	}

	// sqlite reports constraints only through the message text.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return fmt.Errorf("%w: %w", domainRepo.ErrDuplicateKey, err)
	case strings.Contains(msg, "foreign key constraint failed"):
		return fmt.Errorf("%w: %w", domainRepo.ErrRelatedNotFound, err)
	}

	return err
}
