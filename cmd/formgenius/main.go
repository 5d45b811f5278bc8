package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	formgenius "github.com/formgenius/go-formgenius"
	"github.com/formgenius/go-formgenius/errors"
	"github.com/formgenius/go-formgenius/form"
	"github.com/formgenius/go-formgenius/logger"
	"github.com/formgenius/go-formgenius/session"
)

func main() {
	cmd := flag.String("cmd", "list", "Command: login|register|logout|whoami|list|create|edit|fill|responses|delete|share")
	id := flag.String("id", "", "Form ID (for edit/fill/responses/delete/share)")
	serverFlag := flag.String("server", "", "Override server base URL (e.g. https://api.example.com/api)")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if env := os.Getenv("FORMGENIUS_SERVER"); env != "" {
		cfg.ServerURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		cfg.ServerURL = strings.TrimRight(*serverFlag, "/")
	}

	logger.Init(cfg.LogLevel, cfg.LogFile)
	defer logger.Log.Sync()

	api := formgenius.New(cfg.ServerURL, session.NewFileStore(cfg.DataDir))
	a := &app{
		api:   api,
		forms: form.NewClient(api),
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
	}

	ctx := context.Background()
	var runErr error
	switch *cmd {
	case "login":
		runErr = a.loginScreen(ctx)
	case "register":
		runErr = a.registerScreen(ctx)
	case "logout":
		runErr = a.logoutScreen()
	case "whoami":
		runErr = a.whoami()
	case "list":
		runErr = a.listScreen(ctx)
	case "create":
		runErr = a.editScreen(ctx, "")
	case "edit":
		runErr = withID(*id, func(id form.FormID) error { return a.editScreen(ctx, id) })
	case "fill":
		runErr = withID(*id, func(id form.FormID) error { return a.fillScreen(ctx, id) })
	case "responses":
		runErr = withID(*id, func(id form.FormID) error { return a.responsesScreen(ctx, id) })
	case "delete":
		runErr = withID(*id, func(id form.FormID) error { return a.deleteScreen(ctx, id) })
	case "share":
		runErr = withID(*id, func(id form.FormID) error { return a.shareScreen(ctx, id) })
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
	if runErr != nil {
		fmt.Println("Error:", errors.UserMessage(runErr))
		os.Exit(1)
	}
}

func withID(id string, run func(form.FormID) error) error {
	if id == "" {
		return fmt.Errorf("--id required")
	}
	return run(id)
}

func (a *app) whoami() error {
	sess, err := a.api.Session()
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", sess.User.Name, sess.User.Email)
	return nil
}
