package postgres

import (
	"testing"

	"authcore/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrors(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}
	notNull := &pgconn.PgError{Code: pgNotNullViolation}

	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantNull   bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, wantUnique: true},
		{name: "raw unique violation", err: unique, wantUnique: true},
		{name: "wrapped unique violation", err: errors.Wrap(unique, "insert"), wantUnique: true},
		{name: "not null violation", err: notNull, wantNull: true},
		{name: "unrelated", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUnique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.wantNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
