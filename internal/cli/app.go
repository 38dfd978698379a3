package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/lechworld/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lechworld/internal/client/services"
	"github.com/dmitrijs2005/lechworld/internal/client/storage"
	"github.com/dmitrijs2005/lechworld/internal/config"
	"github.com/dmitrijs2005/lechworld/internal/family"
	"github.com/dmitrijs2005/lechworld/internal/logging"
	"github.com/dmitrijs2005/lechworld/internal/obfuscate"
	"github.com/dmitrijs2005/lechworld/internal/theme"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// dbConnectTimeout bounds the initial attempt to reach the family database.
const dbConnectTimeout = 5 * time.Second

// MemberService is the part of family.Service the shell uses.
type MemberService interface {
	Add(ctx context.Context, name, emoji string) (*family.Member, error)
	List(ctx context.Context) ([]family.Styled, error)
	SetStyle(ctx context.Context, id, frameColor, frameBorderColor string) error
	SetEmoji(ctx context.Context, id, emoji string) error
	Remove(ctx context.Context, id string) error
	Import(ctx context.Context, r io.Reader) (int, error)
}

type App struct {
	logger      logging.Logger
	members     MemberService
	credentials services.CredentialService
	theme       *theme.State
	Mode        Mode

	reader   *bufio.Reader
	out      io.Writer
	renderer *lipgloss.Renderer

	closers []io.Closer
}

// newApp wires an App from ready-made services. members may be nil, which
// puts the shell in offline mode.
func newApp(logger logging.Logger, members MemberService, creds services.CredentialService, th *theme.State, in io.Reader, out io.Writer) *App {
	mode := ModeOnline
	if members == nil {
		mode = ModeOffline
	}
	return &App{
		logger:      logger,
		members:     members,
		credentials: creds,
		theme:       th,
		Mode:        mode,
		reader:      bufio.NewReader(in),
		out:         out,
		renderer:    lipgloss.NewRenderer(out),
	}
}

// NewApp opens local storage and the family database described by c. A
// local storage failure is fatal; an unreachable family database only turns
// the shell offline.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	localDB, err := storage.Open(ctx, c.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local database: %w", err)
	}

	repo := metadata.NewSQLiteRepository(localDB)
	codec := obfuscate.New(obfuscate.DefaultKey, obfuscate.WithLogger(logger))
	creds := services.NewCredentialService(repo, codec, c.CredentialsKey, logger)

	th, err := theme.NewState(ctx, services.NewPreferenceStore(repo), logger)
	if err != nil {
		_ = localDB.Close()
		return nil, err
	}

	var members MemberService
	familyDB, err := openFamily(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Warn(ctx, "family database unavailable, starting offline", "error", err)
	} else {
		members = family.NewService(familyDB, logger)
	}

	app := newApp(logger, members, creds, th, os.Stdin, os.Stdout)
	app.closers = append(app.closers, localDB)
	if familyDB != nil {
		app.closers = append(app.closers, familyDB)
	}
	return app, nil
}

func openFamily(ctx context.Context, dsn string) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()
	return family.Open(ctx, dsn)
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.printf("Welcome to lechworld (type 'help' for commands)\n")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isOnline() bool {
	return a.Mode == ModeOnline
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s %s)", a.Mode, a.theme.Current())
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail reports err to the user and returns it.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Debug(ctx, op+" failed", "error", err)
	a.printf("Error: %s\n", err)
	return err
}
