package family

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lechworld/internal/common"
	"github.com/dmitrijs2005/lechworld/internal/dbx"
	"github.com/dmitrijs2005/lechworld/internal/logging"
	"github.com/dmitrijs2005/lechworld/internal/memberstyle"
)

// MaxEmojiLen is the profile_emoji column width in characters.
const MaxEmojiLen = 10

type Service struct {
	db     *sql.DB
	repo   Repository
	logger logging.Logger
}

func NewService(db *sql.DB, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{db: db, repo: NewPostgresRepository(db), logger: logger}
}

// Add creates a member with no style overrides. emoji may be empty.
func (s *Service) Add(ctx context.Context, name, emoji string) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	emoji = strings.TrimSpace(emoji)
	if err := validateEmoji(emoji); err != nil {
		return nil, err
	}

	m, err := s.repo.Create(ctx, &Member{ID: uuid.NewString(), Name: name, ProfileEmoji: emoji})
	if err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}
	s.logger.Info(ctx, "member added", "id", m.ID)
	return m, nil
}

// List returns every member with its presentation resolved.
func (s *Service) List(ctx context.Context) ([]Styled, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]Styled, len(members))
	for i, m := range members {
		out[i] = Styled{Member: m, Presentation: memberstyle.Resolve(m.Record())}
	}
	return out, nil
}

// SetStyle sets both frame colours, or clears both when both are empty.
// A single colour is rejected: the resolver only honours complete pairs.
func (s *Service) SetStyle(ctx context.Context, id, frameColor, frameBorderColor string) error {
	frameColor = strings.TrimSpace(frameColor)
	frameBorderColor = strings.TrimSpace(frameBorderColor)

	if frameColor != "" || frameBorderColor != "" {
		if !memberstyle.IsHexColor(frameColor) || !memberstyle.IsHexColor(frameBorderColor) {
			return fmt.Errorf("%w: frame colours must both be #RRGGBB", common.ErrorValidation)
		}
	}

	if err := s.repo.UpdateStyle(ctx, id, frameColor, frameBorderColor); err != nil {
		return fmt.Errorf("set style: %w", err)
	}
	return nil
}

// SetEmoji sets the profile emoji; empty restores the default.
func (s *Service) SetEmoji(ctx context.Context, id, emoji string) error {
	emoji = strings.TrimSpace(emoji)
	if err := validateEmoji(emoji); err != nil {
		return err
	}
	if err := s.repo.UpdateEmoji(ctx, id, emoji); err != nil {
		return fmt.Errorf("set emoji: %w", err)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

// Import inserts the members of a web app export in one transaction and
// returns how many were stored. Records without a name are skipped; colour
// pairs that are incomplete or malformed are dropped so the member falls back
// to the palette.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	records, err := DecodeRecords(r)
	if err != nil {
		return 0, err
	}

	var members []*Member
	for i, rec := range records {
		m, ok := memberFromRecord(rec)
		if !ok {
			s.logger.Warn(ctx, "skipping member without name", "index", i)
			continue
		}
		members = append(members, m)
	}
	if len(members) == 0 {
		return 0, nil
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewPostgresRepository(tx)
		for _, m := range members {
			if _, err := repo.Create(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import members: %w", err)
	}

	s.logger.Info(ctx, "members imported", "count", len(members))
	return len(members), nil
}

func memberFromRecord(rec memberstyle.Record) (*Member, bool) {
	name := strings.TrimSpace(rec.Name())
	if name == "" {
		return nil, false
	}

	m := &Member{ID: uuid.NewString(), Name: name}

	bg := memberstyle.FieldFrameColor.Lookup(rec)
	border := memberstyle.FieldFrameBorderColor.Lookup(rec)
	if memberstyle.IsHexColor(bg) && memberstyle.IsHexColor(border) {
		m.FrameColor, m.FrameBorderColor = bg, border
	}

	if e := memberstyle.FieldProfileEmoji.Lookup(rec); validateEmoji(e) == nil {
		m.ProfileEmoji = e
	}
	return m, true
}

func validateEmoji(e string) error {
	if utf8.RuneCountInString(e) > MaxEmojiLen {
		return fmt.Errorf("%w: emoji longer than %d characters", common.ErrorValidation, MaxEmojiLen)
	}
	return nil
}
