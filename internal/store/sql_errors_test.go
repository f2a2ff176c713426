package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"nil", nil, ClassOther},
		{"plain", errors.New("boom"), ClassOther},
		{"pg unique", pgError(pgerrcode.UniqueViolation), ClassUniqueViolation},
		{"pg unique wrapped", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), ClassUniqueViolation},
		{"pg foreign key", pgError(pgerrcode.ForeignKeyViolation), ClassForeignKeyViolation},
		{"pg deadlock", pgError(pgerrcode.DeadlockDetected), ClassRetryable},
		{"pg syntax", pgError(pgerrcode.SyntaxError), ClassOther},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ClassUniqueViolation},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, ClassUniqueViolation},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ClassForeignKeyViolation},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ClassRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}
