package repository

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rblc/parts-marketplace-backend/config"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("record already exists")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// constraintError maps postgres constraint violations onto the sentinel errors
// handlers understand. Other errors are returned unchanged.
func constraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrInvalidReference, pqErr.Constraint)
	}
	return err
}

// updateBuilder collects "column = $n" assignments for partial updates.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// query renders UPDATE table SET ... WHERE id = $n RETURNING columns.
func (b *updateBuilder) query(table, columns string, id interface{}) (string, []interface{}) {
	args := append(b.args, id)
	return fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		table, strings.Join(b.sets, ", "), len(args), columns), args
}

// NewRepository opens the shared connection pool. It is called once at startup
// and the caller owns Close.
func NewRepository(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.Host == "" || cfg.DBName == "" {
		return nil, errors.New("database host and name must be configured")
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		log.Println("❌ Error connecting to database:", err)
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("✅ Connected to database")

	return db, nil
}
