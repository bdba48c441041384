package postgres

import (
	"context"
	"fmt"
	"log"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/model"
)

type txKey string

const keySqlxTx = txKey("sqlx_tx")

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk returns the transaction bound to the context when one is open,
// otherwise the connection pool.
func (r *Repository) Chk(ctx context.Context) executor {
	if tx, ok := ctx.Value(keySqlxTx).(*sqlx.Tx); ok {
		return tx
	}

	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keySqlxTx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// AddEntries merges the given message entries into the conversation record.
// Re-writing an existing message id overwrites that entry only. The
// record's last_message_id and updated_at move forward so summary listing
// never depends on row iteration order.
func (r *Repository) AddEntries(ctx context.Context, chatID string, entries map[int64]model.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	query, args, err := sq.Insert("conversations").
		Columns("id").
		Values(chatID).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to ensure conversation record: %v", err)
	}

	ids := make([]int64, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	insert := sq.Insert("conversation_entries").
		Columns("chat_id", "message_id", "role", "content").
		Suffix("ON CONFLICT (chat_id, message_id) DO UPDATE SET role = EXCLUDED.role, content = EXCLUDED.content").
		PlaceholderFormat(sq.Dollar)

	for _, id := range ids {
		insert = insert.Values(chatID, id, entries[id].Role, entries[id].Content)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save entries: %v", err)
	}

	query, args, err = sq.Update("conversations").
		Set("last_message_id", sq.Expr("GREATEST(last_message_id, ?)", ids[len(ids)-1])).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": chatID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update conversation record: %v", err)
	}

	return nil
}

// GetMessages returns the full record sorted by numeric message id
// ascending, ids discarded.
func (r *Repository) GetMessages(ctx context.Context, chatID string) ([]model.Entry, error) {
	query, args, err := sq.Select("role", "content").
		From("conversation_entries").
		Where(sq.Eq{"chat_id": chatID}).
		OrderBy("message_id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var entries []model.Entry
	if err := r.Chk(ctx).SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return entries, nil
}

// Rename sets the record's title, creating the record when it does not
// exist yet.
func (r *Repository) Rename(ctx context.Context, chatID, newTitle string) error {
	query, args, err := sq.Insert("conversations").
		Columns("id", "title").
		Values(chatID, newTitle).
		Suffix("ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to rename conversation: %v", err)
	}

	return nil
}

// ListSummaries enumerates all conversation records with their last entry
// as the preview, most recently active first.
func (r *Repository) ListSummaries(ctx context.Context) (*model.ChatSummaryList, error) {
	query, args, err := sq.Select(
		"c.id",
		"COALESCE(NULLIF(c.title, ''), 'Chat ' || c.id) AS title",
		"COALESCE(e.content, '') AS last_message",
		"c.updated_at",
	).
		From("conversations c").
		LeftJoin("conversation_entries e ON e.chat_id = c.id AND e.message_id = c.last_message_id").
		OrderBy("c.updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var summaries model.ChatSummaryList
	if err := r.Chk(ctx).SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list summaries: %v", err)
	}

	return &summaries, nil
}
