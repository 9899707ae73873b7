package repositoryimpl

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/cerr"
)

// SQLiteRepository stores task records in an embedded SQLite database.
// Artifacts themselves still live in Storage.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dbPath.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection serializes read-merge-write transactions.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) migrate() error {
	_, err := r.db.Exec(`
	CREATE TABLE IF NOT EXISTS tasks (
		seq_no       TEXT PRIMARY KEY,
		status       TEXT NOT NULL,
		platform     TEXT NOT NULL,
		instructions TEXT NOT NULL,
		artifacts    TEXT NOT NULL DEFAULT '{}',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		t                    task.Task
		artifacts            string
		createdAt, updatedAt string
	)
	if err := row.Scan(&t.ID, &t.Status, &t.Platform, &t.Instructions, &artifacts, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(artifacts), &t.Artifacts); err != nil {
		return nil, fmt.Errorf("decode artifacts: %w", err)
	}
	if t.Artifacts == nil {
		t.Artifacts = map[string]string{}
	}
	var err error
	if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &t, nil
}

const selectColumns = `SELECT seq_no, status, platform, instructions, artifacts, created_at, updated_at FROM tasks`

func (r *SQLiteRepository) Create(ctx context.Context, t *task.Task) error {
	artifacts, err := encodeArtifacts(t.Artifacts)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (seq_no, status, platform, instructions, artifacts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT(seq_no) DO NOTHING`,
		t.ID, t.Status, t.Platform, t.Instructions, artifacts,
		t.CreatedAt.UTC().Format(time.RFC3339Nano), t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to insert task: %w", err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.AlreadyExistsError(t.ID)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectColumns+` WHERE seq_no = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.NotFoundError(id)
		}
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to read task %s: %w", id, err))
	}
	return t, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, p task.Patch) (*task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback() //nolint:errcheck

	t, err := scanTask(tx.QueryRowContext(ctx, selectColumns+` WHERE seq_no = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.NotFoundError(id)
		}
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to read task %s: %w", id, err))
	}
	t.Apply(p)

	artifacts, err := encodeArtifacts(t.Artifacts)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE tasks SET status = ?, artifacts = ?, updated_at = ? WHERE seq_no = ?`,
		t.Status, artifacts, t.UpdatedAt.UTC().Format(time.RFC3339Nano), id,
	); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to update task %s: %w", id, err))
	}
	if err := tx.Commit(); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("commit: %w", err))
	}
	return t, nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit, offset int) ([]*task.Task, int, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY seq_no`)
	if err != nil {
		return nil, 0, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to list tasks: %w", err))
	}
	defer rows.Close()

	var all []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, cerr.NewError(cerr.Internal, "server error", err)
		}
		all = append(all, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, cerr.NewError(cerr.Internal, "server error", err)
	}
	return paginate(all, limit, offset)
}

func encodeArtifacts(m map[string]string) (string, error) {
	if m == nil {
		m = map[string]string{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to encode artifacts: %w", err))
	}
	return string(data), nil
}
