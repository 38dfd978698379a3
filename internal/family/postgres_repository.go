package family

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lechworld/internal/common"
	"github.com/dmitrijs2005/lechworld/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(s rowScanner) (*Member, error) {
	var (
		m                    Member
		frame, border, emoji sql.NullString
	)
	if err := s.Scan(&m.ID, &m.Name, &frame, &border, &emoji, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.FrameColor = frame.String
	m.FrameBorderColor = border.String
	m.ProfileEmoji = emoji.String
	return &m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *Member) (*Member, error) {
	query :=
		`INSERT INTO family_members (id, name, frame_color, frame_border_color, profile_emoji)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		m.ID, m.Name, nullable(m.FrameColor), nullable(m.FrameBorderColor), nullable(m.ProfileEmoji)).
		Scan(&m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Member, error) {
	query :=
		`SELECT id, name, frame_color, frame_border_color, profile_emoji, created_at
		 FROM family_members
		 ORDER BY created_at, name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return members, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Member, error) {
	query :=
		`SELECT id, name, frame_color, frame_border_color, profile_emoji, created_at
		 FROM family_members
		 WHERE id = $1
		 `

	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) UpdateStyle(ctx context.Context, id, frameColor, frameBorderColor string) error {
	query :=
		`UPDATE family_members SET frame_color = $2, frame_border_color = $3
		 WHERE id = $1
		 `

	return r.execOne(ctx, query, id, nullable(frameColor), nullable(frameBorderColor))
}

func (r *PostgresRepository) UpdateEmoji(ctx context.Context, id, emoji string) error {
	query :=
		`UPDATE family_members SET profile_emoji = $2
		 WHERE id = $1
		 `

	return r.execOne(ctx, query, id, nullable(emoji))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM family_members WHERE id = $1`

	return r.execOne(ctx, query, id)
}

// execOne runs a statement that must touch exactly one member row.
func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
