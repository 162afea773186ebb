package client

import (
	"context"
	"fmt"
)

// version prints the client build and the server version. An unreachable
// server is reported but does not fail the command.
func (a *App) version(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("version"), args); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Client version: %s\n", a.buildInfo)

	serverVersion, err := a.services.Adapter.GetServerVersion(ctx)
	if err != nil {
		a.logger.Err(err).Msg("server version request failed")
		fmt.Fprintln(a.out, faintStyle.Render("Server version: unavailable"))
		return nil
	}

	fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
	return nil
}
