package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lechworld/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lechworld/internal/client/services"
	"github.com/dmitrijs2005/lechworld/internal/client/storage"
	"github.com/dmitrijs2005/lechworld/internal/common"
	"github.com/dmitrijs2005/lechworld/internal/family"
	"github.com/dmitrijs2005/lechworld/internal/logging"
	"github.com/dmitrijs2005/lechworld/internal/memberstyle"
	"github.com/dmitrijs2005/lechworld/internal/obfuscate"
	"github.com/dmitrijs2005/lechworld/internal/theme"
)

// fakeMembers keeps members in memory and resolves them like family.Service.
type fakeMembers struct {
	members  []family.Member
	imported string
	err      error
}

func (f *fakeMembers) Add(_ context.Context, name, emoji string) (*family.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	m := family.Member{ID: "id-" + strings.ToLower(name), Name: name, ProfileEmoji: emoji, CreatedAt: time.Now()}
	f.members = append(f.members, m)
	return &m, nil
}

func (f *fakeMembers) List(context.Context) ([]family.Styled, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]family.Styled, len(f.members))
	for i, m := range f.members {
		out[i] = family.Styled{Member: m, Presentation: memberstyle.Resolve(m.Record())}
	}
	return out, nil
}

func (f *fakeMembers) find(id string) (*family.Member, error) {
	for i := range f.members {
		if f.members[i].ID == id {
			return &f.members[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeMembers) SetStyle(_ context.Context, id, bg, border string) error {
	m, err := f.find(id)
	if err != nil {
		return err
	}
	m.FrameColor, m.FrameBorderColor = bg, border
	return nil
}

func (f *fakeMembers) SetEmoji(_ context.Context, id, emoji string) error {
	m, err := f.find(id)
	if err != nil {
		return err
	}
	m.ProfileEmoji = emoji
	return nil
}

func (f *fakeMembers) Remove(_ context.Context, id string) error {
	for i := range f.members {
		if f.members[i].ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeMembers) Import(_ context.Context, r io.Reader) (int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.imported = string(b)
	return 2, nil
}

type testApp struct {
	*App
	out  *bytes.Buffer
	repo *metadata.SQLiteRepository
}

func newTestApp(t *testing.T, members MemberService, input string) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.RunMigrations(ctx, db))

	repo := metadata.NewSQLiteRepository(db)
	creds := services.NewCredentialService(repo, obfuscate.Default, "saved-credentials", nil)
	th, err := theme.NewState(ctx, services.NewPreferenceStore(repo), nil)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app := newApp(logging.Nop(), members, creds, th, strings.NewReader(input), out)
	return &testApp{App: app, out: out, repo: repo}
}

func TestNewApp_Mode(t *testing.T) {
	assert.Equal(t, ModeOffline, newTestApp(t, nil, "").Mode)

	a := newTestApp(t, &fakeMembers{}, "")
	assert.Equal(t, ModeOnline, a.Mode)
	assert.True(t, a.isOnline())
	assert.Equal(t, "(online light)", a.getStatus())
}

func TestApp_AddAndListMembers(t *testing.T) {
	fm := &fakeMembers{}
	a := newTestApp(t, fm, "Ana\n🦊\n")
	ctx := context.Background()

	require.NoError(t, a.Members(ctx))
	assert.Contains(t, a.out.String(), "No family members yet")

	require.NoError(t, a.AddMember(ctx))
	require.Len(t, fm.members, 1)
	assert.Equal(t, "🦊", fm.members[0].ProfileEmoji)

	a.out.Reset()
	require.NoError(t, a.Members(ctx))
	s := a.out.String()
	assert.Contains(t, s, "Ana")
	assert.Contains(t, s, "🦊")
	assert.Contains(t, s, "╭")
}

func TestApp_StyleEmojiDelete(t *testing.T) {
	fm := &fakeMembers{members: []family.Member{{ID: "id-ana", Name: "Ana"}}}
	input := strings.Join([]string{
		"ana", "#112233", "#445566", // style by name, case-insensitive
		"id-ana", "🐻", // emoji by id
		"Ana", // delete
		"Ghost",
	}, "\n") + "\n"
	a := newTestApp(t, fm, input)
	ctx := context.Background()

	require.NoError(t, a.Style(ctx))
	assert.Equal(t, "#112233", fm.members[0].FrameColor)
	assert.Equal(t, "#445566", fm.members[0].FrameBorderColor)

	require.NoError(t, a.Emoji(ctx))
	assert.Equal(t, "🐻", fm.members[0].ProfileEmoji)

	require.NoError(t, a.DeleteMember(ctx))
	assert.Empty(t, fm.members)

	err := a.DeleteMember(ctx)
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, a.out.String(), "Error:")
}

func TestApp_SelectMember_AmbiguousName(t *testing.T) {
	fm := &fakeMembers{members: []family.Member{{ID: "1", Name: "Ana"}, {ID: "2", Name: "ana"}}}
	a := newTestApp(t, fm, "Ana\n2\n")

	_, err := a.selectMember(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use the id")

	m, err := a.selectMember(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", m.Member.ID)
}

func TestApp_Import(t *testing.T) {
	path := t.TempDir() + "/members.json"
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Ana"}]`), 0o600))

	fm := &fakeMembers{}
	a := newTestApp(t, fm, path+"\n")
	ctx := context.Background()

	require.NoError(t, a.Import(ctx, path))
	assert.Equal(t, `[{"name":"Ana"}]`, fm.imported)
	assert.Contains(t, a.out.String(), "Imported 2 members")

	// prompted path
	fm.imported = ""
	require.NoError(t, a.Import(ctx, ""))
	assert.NotEmpty(t, fm.imported)

	require.Error(t, a.Import(ctx, path+".missing"))
}

func TestApp_MemberServiceError(t *testing.T) {
	a := newTestApp(t, &fakeMembers{err: errors.New("db down")}, "")

	err := a.Members(context.Background())
	require.Error(t, err)
	assert.Contains(t, a.out.String(), "Error: db down")
}

func TestApp_RememberRecallForget(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	var handed []byte
	readPassword = func(int) ([]byte, error) {
		handed = []byte("s3cret")
		return handed, nil
	}

	a := newTestApp(t, nil, "ana@lech.world\n")
	ctx := context.Background()

	require.NoError(t, a.Recall(ctx))
	assert.Contains(t, a.out.String(), "No login remembered")

	require.NoError(t, a.Remember(ctx))
	assert.Equal(t, make([]byte, 6), handed, "password buffer is wiped")

	raw, err := a.repo.Get(ctx, "saved-credentials")
	require.NoError(t, err)
	assert.Equal(t, "F0cWG0gFARMBAQ9JRwIcBDRBDgYRA0VfQFgIR09KXRYcARsLXxdHWVAWR04ZAA0PTw==", string(raw))

	a.out.Reset()
	require.NoError(t, a.Recall(ctx))
	assert.Contains(t, a.out.String(), "Username: ana@lech.world")
	assert.Contains(t, a.out.String(), "Password: ******")
	assert.NotContains(t, a.out.String(), "s3cret")

	require.NoError(t, a.Forget(ctx))
	a.out.Reset()
	require.NoError(t, a.Recall(ctx))
	assert.Contains(t, a.out.String(), "No login remembered")
}

func TestApp_Theme(t *testing.T) {
	a := newTestApp(t, nil, "")
	ctx := context.Background()

	require.NoError(t, a.Theme(ctx, ""))
	assert.Contains(t, a.out.String(), "Theme: light (available: light, dark, minimal-dark, toggle)")

	require.NoError(t, a.Theme(ctx, "toggle"))
	assert.Equal(t, theme.Dark, a.theme.Current())

	require.NoError(t, a.Theme(ctx, "dark-minimal"))
	assert.Equal(t, theme.MinimalDark, a.theme.Current())

	raw, err := a.repo.Get(ctx, services.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "minimal-dark", string(raw))

	err = a.Theme(ctx, "solarized")
	require.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, theme.MinimalDark, a.theme.Current())
}

func TestApp_Close(t *testing.T) {
	a := newTestApp(t, nil, "")
	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}
