package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/uppdragsradarn/radar-cli/internal/models"
)

func (a *App) prompt() string {
	s := string(a.currentMode())
	if user := a.session.User(); user != nil {
		s = user.DisplayName() + " " + s
	}
	return fmt.Sprintf("radar (%s)> ", s)
}

// repl runs the interactive loop until exit or EOF.
func (a *App) repl(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to radar (type 'help' for commands)")

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
		case "search":
			a.search(ctx, strings.Join(args, " "))
		case "more":
			a.more(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <id>")
				continue
			}
			a.show(ctx, args[0])
		case "recent":
			a.recent(ctx, args)
		case "mine":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: mine <interested|applied|rejected|accepted>")
				continue
			}
			a.mine(ctx, args[0])
		case "mark":
			a.mark(ctx, args)
		case "login":
			a.login()
		case "callback":
			a.callback(ctx)
		case "whoami":
			a.whoami()
		case "profile":
			a.profile(ctx, args)
		case "logout":
			a.logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  search <keyword>   search assignments
  more               load the next result page
  show <id>          assignment details
  recent [n]         newest assignments
  login              print the browser login URL
  callback           finish login after the browser redirect
  mine <status>      your flagged assignments (interested/applied/rejected/accepted)
  mark <id> <status> [notes]   flag an assignment
  whoami             current user
  profile [name <first> <last> | notify <on|off>]
  logout
  exit`)
}

func (a *App) search(ctx context.Context, keyword string) {
	if err := a.directory.Search(ctx, keyword, 0, a.config.PageSize); err != nil {
		fmt.Fprintln(a.out, "Search failed:", err)
		return
	}
	a.setLastKeyword(keyword)
	printAssignments(a.out, a.directory.Assignments())
	printCursor(a.out, a.directory.Cursor())
}

func (a *App) more(ctx context.Context) {
	cursor := a.directory.Cursor()
	if !cursor.HasMore() {
		fmt.Fprintln(a.out, "No more pages")
		return
	}
	if err := a.directory.Search(ctx, a.currentKeyword(), cursor.CurrentPage+1, a.config.PageSize); err != nil {
		fmt.Fprintln(a.out, "Search failed:", err)
		return
	}
	printAssignments(a.out, a.directory.Assignments())
	printCursor(a.out, a.directory.Cursor())
}

func (a *App) show(ctx context.Context, id string) {
	assignment := a.directory.ByID(ctx, id)
	if assignment == nil {
		fmt.Fprintln(a.out, "Could not load assignment:", a.directory.Err())
		return
	}
	printAssignment(a.out, assignment)
}

func (a *App) recent(ctx context.Context, args []string) {
	limit := 5
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			limit = n
		}
	}
	printAssignments(a.out, a.directory.Recent(ctx, limit))
}

func (a *App) mine(ctx context.Context, rawStatus string) {
	status, err := models.ParseInterestStatus(rawStatus)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Log in first")
		return
	}
	printAssignments(a.out, a.interest.ByStatus(ctx, status))
}

func (a *App) mark(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: mark <id> <status> [notes]")
		return
	}
	status, err := models.ParseInterestStatus(args[1])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	notes := strings.Join(args[2:], " ")

	if err := a.interest.Mark(ctx, args[0], status, notes); err != nil {
		fmt.Fprintln(a.out, "Could not update status:", err)
		return
	}
	fmt.Fprintf(a.out, "Marked %s as %s\n", args[0], status)
}

// login hands the user off to the browser; the session materialises
// server-side and is picked up by the callback command.
func (a *App) login() {
	fmt.Fprintln(a.out, "Open this URL in your browser to log in:")
	fmt.Fprintln(a.out, "  "+a.session.LoginURL())
	fmt.Fprintln(a.out, "then run 'callback' to finish.")
}

func (a *App) callback(ctx context.Context) {
	if a.session.HandleAuthCallback(ctx) {
		fmt.Fprintf(a.out, "Logged in as %s\n", a.session.User().DisplayName())
	} else {
		fmt.Fprintln(a.out, "Not logged in")
	}
}

func (a *App) whoami() {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.DisplayName(), user.Email)
	if user.SubscriptionTier != "" {
		fmt.Fprintf(a.out, "Tier: %s\n", user.SubscriptionTier)
	}
}

func (a *App) profile(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.whoami()
		return
	}

	var update models.ProfileUpdate
	switch args[0] {
	case "name":
		if len(args) < 3 {
			fmt.Fprintln(a.out, "Usage: profile name <first> <last>")
			return
		}
		update.FirstName = &args[1]
		update.LastName = &args[2]
	case "notify":
		if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
			fmt.Fprintln(a.out, "Usage: profile notify <on|off>")
			return
		}
		enabled := args[1] == "on"
		update.NotificationEmailEnabled = &enabled
	default:
		fmt.Fprintln(a.out, "Usage: profile [name <first> <last> | notify <on|off>]")
		return
	}

	if err := a.session.UpdateProfile(ctx, update); err != nil {
		fmt.Fprintln(a.out, "Profile update failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Profile updated")
}

func (a *App) logout(ctx context.Context) {
	_ = a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}
