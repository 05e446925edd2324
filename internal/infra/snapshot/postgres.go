package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// snapshotName фиксированный ключ документа: сервис хранит ровно один снапшот
const snapshotName = "appointment_store"

// psql билдер запросов с PostgreSQL-плейсхолдерами ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// PostgresStore хранилище снапшотов в PostgreSQL: одна строка с JSON документом.
//
// Ожидаемая схема:
//
//	CREATE TABLE IF NOT EXISTS store_snapshots (
//	    name       TEXT PRIMARY KEY,
//	    document   JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore создает хранилище снапшотов поверх подключения к PostgreSQL
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save сериализует снапшот и выполняет upsert единственной строки документа
func (s *PostgresStore) Save(ctx context.Context, snap *domain.StoreSnapshot) error {
	document, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", ErrSaveSnapshot, err)
	}

	query, args, err := psql.Insert("store_snapshots").
		Columns("name", "document", "updated_at").
		Values(snapshotName, document, snap.LastUpdated).
		Suffix("ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build upsert query: %v", ErrSaveSnapshot, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: execute upsert: %v", ErrSaveSnapshot, err)
	}

	return nil
}

// Load читает документ снапшота из единственной строки
func (s *PostgresStore) Load(ctx context.Context) (*domain.StoreSnapshot, error) {
	query, args, err := psql.Select("document").
		From("store_snapshots").
		Where(squirrel.Eq{"name": snapshotName}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select query: %v", ErrLoadSnapshot, err)
	}

	var document []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan document: %v", ErrLoadSnapshot, err)
	}

	var snap domain.StoreSnapshot
	if err := json.Unmarshal(document, &snap); err != nil {
		return nil, fmt.Errorf("%w: unmarshal document: %v", ErrLoadSnapshot, err)
	}

	return &snap, nil
}
