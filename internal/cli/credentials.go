package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/lechworld/internal/common"
)

func (a *App) Remember(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return a.fail(ctx, "read username", err)
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(ctx, "read password", err)
	}
	defer common.WipeByteArray(password)

	if err := a.credentials.Remember(ctx, username, password); err != nil {
		return a.fail(ctx, "remember login", err)
	}
	a.printf("Login remembered on this machine\n")
	return nil
}

func (a *App) Recall(ctx context.Context) error {
	cr, err := a.credentials.Recall(ctx)
	if errors.Is(err, common.ErrNoCredentials) {
		a.printf("No login remembered\n")
		return nil
	}
	if err != nil {
		return a.fail(ctx, "recall login", err)
	}

	a.printf("Username: %s\nPassword: %s\n", cr.Username, strings.Repeat("*", len([]rune(cr.Password))))
	return nil
}

func (a *App) Forget(ctx context.Context) error {
	if err := a.credentials.Forget(ctx); err != nil {
		return a.fail(ctx, "forget login", err)
	}
	a.printf("Remembered login removed\n")
	return nil
}
