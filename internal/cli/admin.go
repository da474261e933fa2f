package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/uppdragsradarn/radar-cli/internal/client"
	"github.com/uppdragsradarn/radar-cli/internal/config"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/services"
)

// AdminApp is the moderation client. All assignment commands require a
// successful role-gated login first.
type AdminApp struct {
	config  *config.Config
	log     logging.Logger
	api     client.Client
	session services.SessionService
	admin   services.AdminDirectoryService

	reader *bufio.Reader
	out    io.Writer
}

// NewAdminApp wires an admin app. The session service carries the ADMIN
// role gate, so an authenticated non-admin never reaches the moderation
// commands.
func NewAdminApp(cfg *config.Config, log logging.Logger) (*AdminApp, error) {
	csrf := client.NewCSRFCache()
	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.OAuthBaseURL, cfg.RequestTimeout, csrf, log)
	if err != nil {
		return nil, err
	}

	session := services.NewSessionService(api, log, services.WithRequiredRole(services.RoleAdmin))
	admin := services.NewAdminDirectoryService(api, log, cfg.PageSize)

	return &AdminApp{
		config:  cfg,
		log:     log,
		api:     api,
		session: session,
		admin:   admin,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run resumes an existing admin session if one is present, then enters the
// REPL.
func (a *AdminApp) Run(ctx context.Context) {
	defer a.api.Close()

	if ok, _ := a.session.CheckSession(ctx); ok {
		fmt.Fprintf(a.out, "Resumed session as %s\n", a.session.User().DisplayName())
	}

	a.repl(ctx)
}

func (a *AdminApp) prompt() string {
	if user := a.session.User(); user != nil {
		return fmt.Sprintf("radar-admin (%s)> ", user.Email)
	}
	return "radar-admin> "
}

func (a *AdminApp) repl(ctx context.Context) {
	fmt.Fprintln(a.out, "radar admin console (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.login(ctx)
		case "pending":
			a.requireAdmin(func() { a.pending(ctx, args) })
		case "approve":
			a.requireAdmin(func() { a.approve(ctx, args) })
		case "update":
			a.requireAdmin(func() { a.update(ctx, args) })
		case "list":
			a.requireAdmin(func() { a.list(ctx, args) })
		case "logout":
			_ = a.session.Logout(ctx)
			fmt.Fprintln(a.out, "Logged out")
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *AdminApp) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  login                        admin credential login
  pending [page]               assignments awaiting review
  approve <id>                 approve a pending assignment
  update <id> key=value ...    edit fields (e.g. active=false hoursPerWeek=40)
  list [page]                  all assignments
  logout
  exit`)
}

func (a *AdminApp) requireAdmin(fn func()) {
	if !a.session.IsAdmin() {
		fmt.Fprintln(a.out, "Log in as an admin first")
		return
	}
	fn()
}

func (a *AdminApp) login(ctx context.Context) {
	username, err := promptLine(a.reader, "Username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	defer wipe(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.session.User().DisplayName())
}

func (a *AdminApp) pending(ctx context.Context, args []string) {
	page := parsePageArg(args)
	if err := a.admin.FetchPendingReview(ctx, page); err != nil {
		fmt.Fprintln(a.out, "Fetch failed:", err)
		return
	}
	printAssignments(a.out, a.admin.Pending())
	printCursor(a.out, a.admin.PendingCursor())
}

func (a *AdminApp) approve(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: approve <id>")
		return
	}
	if err := a.admin.Approve(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, "Approve failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Approved %s (%d still pending)\n", args[0], len(a.admin.Pending()))
}

func (a *AdminApp) update(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: update <id> key=value ...")
		return
	}
	updates, err := parseFieldArgs(args[1:])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	updated, err := a.admin.Update(ctx, args[0], updates)
	if err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Updated %s: %s\n", updated.ID, updated.Title)
}

func (a *AdminApp) list(ctx context.Context, args []string) {
	page := parsePageArg(args)
	if err := a.admin.FetchAll(ctx, page); err != nil {
		fmt.Fprintln(a.out, "Fetch failed:", err)
		return
	}
	printAssignments(a.out, a.admin.All())
	printCursor(a.out, a.admin.AllCursor())
}

func parsePageArg(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseFieldArgs turns key=value tokens into an update map. Booleans and
// numbers are converted so the JSON body carries proper types; surrounding
// quotes on values are stripped.
func parseFieldArgs(args []string) (map[string]any, error) {
	updates := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		raw = strings.Trim(raw, `"`)

		switch {
		case raw == "true" || raw == "false":
			updates[key] = raw == "true"
		default:
			if n, err := strconv.Atoi(raw); err == nil {
				updates[key] = n
			} else {
				updates[key] = raw
			}
		}
	}
	return updates, nil
}
