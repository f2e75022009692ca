package cli

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rangira/bloodlink/internal/console/domain"
	"github.com/rangira/bloodlink/internal/console/guard"
	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

// command is one REPL verb. Public commands run without a session; guarded
// commands run only after the rule grants access.
type command struct {
	desc   string
	public bool
	rule   guard.Rule
	run    func(ctx context.Context, args []string) error
}

var (
	anyAuthed = guard.Rule{}
	adminOnly = guard.Rule{Roles: []domain.Role{domain.RoleAdmin}}
	donorOnly = guard.Rule{Roles: []domain.Role{domain.RoleDonor}}
)

// commands builds the verb table. The rules mirror the dashboard's route
// protection: donor views are admin-visible through the override, admin
// views are not reachable by anyone else.
func (a *App) commands() map[string]command {
	return map[string]command{
		"login": {
			desc:   "sign in (username, password, then emailed code)",
			public: true,
			run:    func(ctx context.Context, _ []string) error { return a.Login(ctx) },
		},
		"register": {
			desc:   "create an account",
			public: true,
			run:    func(ctx context.Context, _ []string) error { return a.Register(ctx) },
		},
		"reset": {
			desc:   "reset a forgotten password",
			public: true,
			run:    func(ctx context.Context, _ []string) error { return a.ResetPassword(ctx) },
		},
		"profile": {
			desc: "show the current identity",
			rule: anyAuthed,
			run:  func(ctx context.Context, _ []string) error { return a.Profile(ctx) },
		},
		"appointments": {
			desc: "list your appointments [page]",
			rule: anyAuthed,
			run:  a.MyAppointments,
		},
		"book": {
			desc: "book a donation appointment",
			rule: anyAuthed,
			run:  func(ctx context.Context, _ []string) error { return a.BookAppointment(ctx) },
		},
		"schedule": {
			desc: "list all appointments [page] (admin)",
			rule: adminOnly,
			run:  a.AllAppointments,
		},
		"donate": {
			desc: "record a donation (donor)",
			rule: donorOnly,
			run:  func(ctx context.Context, _ []string) error { return a.Donate(ctx) },
		},
		"mydonations": {
			desc: "list your donations (donor)",
			rule: donorOnly,
			run:  func(ctx context.Context, _ []string) error { return a.MyDonations(ctx) },
		},
		"donations": {
			desc: "list donations [available|<blood type>] (admin)",
			rule: adminOnly,
			run:  a.Donations,
		},
		"request": {
			desc: "file a blood request",
			rule: anyAuthed,
			run:  func(ctx context.Context, _ []string) error { return a.CreateRequest(ctx) },
		},
		"myrequests": {
			desc: "list your blood requests",
			rule: anyAuthed,
			run:  func(ctx context.Context, _ []string) error { return a.MyRequests(ctx) },
		},
		"requests": {
			desc: "list blood requests [pending|urgent|<type>|fulfill <id>] (admin)",
			rule: adminOnly,
			run:  a.Requests,
		},
		"donors": {
			desc: "manage donors [add|remove <id>] (admin)",
			rule: adminOnly,
			run:  a.Donors,
		},
		"users": {
			desc: "list or search accounts [<query>|remove <id>] (admin)",
			rule: adminOnly,
			run:  a.Users,
		},
		"dashboard": {
			desc: "show summary counters (admin)",
			rule: adminOnly,
			run: func(ctx context.Context, _ []string) error {
				return a.Dashboard(ctx)
			},
		},
		"logout": {
			desc: "sign out",
			rule: anyAuthed,
			run: func(context.Context, []string) error {
				a.Logout()
				return nil
			},
		},
	}
}

// Run starts the REPL and blocks until EOF, 'exit', or context
// cancellation. All reads go through the single buffered reader the prompt
// helpers share, so interactive input is never split across two buffers.
func (a *App) Run(ctx context.Context) {
	a.println("BloodLink console. Type 'help' for commands.")

	cmds := a.commands()

	for {
		if ctx.Err() != nil {
			a.println()
			return
		}

		a.printf("bloodlink%s> ", a.promptStatus())

		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			a.printHelp(cmds)
			continue
		case "exit", "quit":
			a.println("Bye.")
			return
		}

		cmd, found := cmds[name]
		if !found {
			a.println("Unknown command:", name)
			continue
		}

		if !cmd.public {
			if d := guard.Evaluate(a.manager.Current(), a.manager.Loading(), cmd.rule); d != guard.Grant {
				a.explain(d)
				continue
			}
		}

		if err := cmd.run(ctx, args); err != nil {
			// A rejected bearer means the stored session is no longer
			// valid; fail closed rather than leaving a zombie login.
			if !cmd.public && errors.Is(err, bloodsdk.ErrUnauthorized) {
				a.println("Your session has expired. Please log in again.")
				a.manager.Logout()
				continue
			}
			a.printf("Error: %v\n", err)
			a.logger.Warn("command failed", "command", name, "err", err)
		}
	}
}

// promptStatus renders " user(ROLE) " when logged in, keeping the prompt
// compact otherwise.
func (a *App) promptStatus() string {
	sess := a.manager.Current()
	if sess == nil {
		return " "
	}
	return " " + sess.Username + "(" + string(sess.Role) + ") "
}

// printHelp lists only the commands the current identity could actually
// run, so unauthenticated users see the three entry points rather than the
// whole surface.
func (a *App) printHelp(cmds map[string]command) {
	sess := a.manager.Current()
	loading := a.manager.Loading()

	names := make([]string, 0, len(cmds))
	for name, cmd := range cmds {
		if cmd.public || guard.Evaluate(sess, loading, cmd.rule) == guard.Grant {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		a.printf("  %-14s %s\n", name, cmds[name].desc)
	}
	a.printf("  %-14s %s\n", "exit", "leave the console")
}
