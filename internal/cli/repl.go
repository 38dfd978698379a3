package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a stub.
type execIface interface {
	isOnline() bool
	Members(ctx context.Context) error
	AddMember(ctx context.Context) error
	Style(ctx context.Context) error
	Emoji(ctx context.Context) error
	DeleteMember(ctx context.Context) error
	Import(ctx context.Context, path string) error
	Remember(ctx context.Context) error
	Recall(ctx context.Context) error
	Forget(ctx context.Context) error
	Theme(ctx context.Context, arg string) error
}

// runREPL reads one command per line from in and dispatches it to a until
// EOF, "exit" or "quit".
//
//	help                       show available commands
//	members | l                list members as cards
//	addmember                  add a member
//	style                      set or clear a member's frame colours
//	emoji                      set or clear a member's profile emoji
//	delmember                  remove a member
//	import [file]              import members exported by the web app
//	remember | recall | forget manage the remembered login
//	theme [name|toggle]        show or change the colour theme
//	exit | quit                leave
//
// Member commands are refused in offline mode. Handler errors are reported by
// the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("lw %s > ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isOnline() {
				printlnFn("Available commands: members (l), addmember, style, emoji, delmember, import, remember, recall, forget, theme, exit")
			} else {
				printlnFn("Available commands (offline): remember, recall, forget, theme, exit")
			}

		case "members", "l", "addmember", "style", "emoji", "delmember", "import":
			if !a.isOnline() {
				printlnFn("Family members are unavailable offline")
				continue
			}
			switch cmd {
			case "members", "l":
				_ = a.Members(ctx)
			case "addmember":
				_ = a.AddMember(ctx)
			case "style":
				_ = a.Style(ctx)
			case "emoji":
				_ = a.Emoji(ctx)
			case "delmember":
				_ = a.DeleteMember(ctx)
			case "import":
				_ = a.Import(ctx, strings.Join(args, " "))
			}

		case "remember":
			_ = a.Remember(ctx)

		case "recall":
			_ = a.Recall(ctx)

		case "forget":
			_ = a.Forget(ctx)

		case "theme":
			_ = a.Theme(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
