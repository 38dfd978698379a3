package family

import "context"

// Repository persists family members.
//
// Get, UpdateStyle, UpdateEmoji and Delete return common.ErrorNotFound when
// no member has the given id.
type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	List(ctx context.Context) ([]Member, error)
	Get(ctx context.Context, id string) (*Member, error)
	UpdateStyle(ctx context.Context, id, frameColor, frameBorderColor string) error
	UpdateEmoji(ctx context.Context, id, emoji string) error
	Delete(ctx context.Context, id string) error
}
