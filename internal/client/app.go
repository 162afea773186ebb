package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/service"
	"github.com/MKhiriev/go-book-share/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	out       io.Writer

	// copyToClipboard is replaced in tests
	copyToClipboard func(text string) error

	commands map[string]command
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		services:        services,
		buildInfo:       buildInfo,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}

	a.commands = map[string]command{
		"register": {usage: "register -u <username> -e <email> -p <password>", run: a.register},
		"login":    {usage: "login -e <email> -p <password>", run: a.login},
		"logout":   {usage: "logout", run: a.logout},
		"whoami":   {usage: "whoami [-copy]", run: a.whoami},
		"books":    {usage: "books list|mine|add|delete [flags]", run: a.books},
		"version":  {usage: "version", run: a.version},
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(a.out, "usage: book-share-client %s\n", cmd.usage)
		}
		return err
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, titleStyle.Render("book-share-client <command> [flags]"))
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

// newFlagSet returns a flag set that reports parse errors instead of exiting.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}
