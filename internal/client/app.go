package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-dev-connector/internal/adapter"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/models"
)

// Usage lists the supported commands.
const Usage = `usage: client <command> [flags]

commands:
  register -name N -email E -password P
  login    -email E -password P       prints the session token
  me                                  show the logged-in account
  profile  [-status S -company C -website W -location L -bio B -githubusername G -skills "a,b"]
                                      without flags shows the own profile
  post     -text T
  posts                               list the feed, newest first
  delete   <post id>
  like     <post id>
  version`

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "me":
		return a.print(a.adapter.Me(ctx))
	case "profile":
		return a.profile(ctx, rest)
	case "post":
		return a.post(ctx, rest)
	case "posts":
		return a.print(a.adapter.ListPosts(ctx))
	case "delete":
		return a.deletePost(ctx, rest)
	case "like":
		return a.like(ctx, rest)
	case "version":
		return a.print(a.adapter.Version(ctx))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.adapter.Register(ctx, req); err != nil {
		return err
	}
	return a.print(models.Message{Msg: "User registered successfully"}, nil)
}

func (a *App) login(ctx context.Context, args []string) error {
	var creds models.Credentials
	fs := newFlagSet("login")
	fs.StringVar(&creds.Email, "email", "", "email")
	fs.StringVar(&creds.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, creds)
	return a.print(models.TokenResponse{Token: token}, err)
}

// profile shows the own profile when no field flag is given and submits
// the given fields otherwise.
func (a *App) profile(ctx context.Context, args []string) error {
	var update models.ProfileUpdate
	fs := newFlagSet("profile")
	fields := map[string]**string{
		"status":         &update.Status,
		"company":        &update.Company,
		"website":        &update.Website,
		"location":       &update.Location,
		"bio":            &update.Bio,
		"githubusername": &update.GitHubUsername,
	}
	for name, target := range fields {
		fs.Func(name, "profile "+name, func(v string) error {
			*target = &v
			return nil
		})
	}
	fs.Func("skills", "comma-separated skills", func(v string) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var skills models.Skills
		if err = json.Unmarshal(raw, &skills); err != nil {
			return err
		}
		update.Skills = &skills
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}

	if update.IsEmpty() {
		return a.print(a.adapter.MyProfile(ctx))
	}
	return a.print(a.adapter.UpsertProfile(ctx, update))
}

func (a *App) post(ctx context.Context, args []string) error {
	var req models.PostRequest
	fs := newFlagSet("post")
	fs.StringVar(&req.Text, "text", "", "post text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Text == "" {
		req.Text = strings.Join(fs.Args(), " ")
	}

	return a.print(a.adapter.CreatePost(ctx, req))
}

func (a *App) deletePost(ctx context.Context, args []string) error {
	postID, err := singleArg("delete", args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeletePost(ctx, postID); err != nil {
		return err
	}
	return a.print(models.Message{Msg: "Post removed"}, nil)
}

func (a *App) like(ctx context.Context, args []string) error {
	postID, err := singleArg("like", args)
	if err != nil {
		return err
	}

	return a.print(a.adapter.LikePost(ctx, postID))
}

// print writes v as indented JSON unless err is set.
func (a *App) print(v any, err error) error {
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func singleArg(command string, args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: %s needs exactly one post id", ErrMissingArgument, command)
	}
	return args[0], nil
}
