package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-share/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := a.newFlagSet("register")
	fs.StringVar(&req.Username, "u", "", "username, at least 3 characters")
	fs.StringVar(&req.Email, "e", "", "email")
	fs.StringVar(&req.Password, "p", "", "password, at least 6 characters")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	session, err := a.services.AuthService.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s\n", titleStyle.Render(session.User.Username))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := a.newFlagSet("login")
	fs.StringVar(&req.Email, "e", "", "email")
	fs.StringVar(&req.Password, "p", "", "password")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	session, err := a.services.AuthService.Login(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", titleStyle.Render(session.User.Username))
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("logout"), args); err != nil {
		return err
	}

	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) whoami(ctx context.Context, args []string) error {
	fs := a.newFlagSet("whoami")
	copyToken := fs.Bool("copy", false, "copy the bearer token to the clipboard")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	session, err := a.services.AuthService.CurrentSession(ctx)
	if err != nil {
		return err
	}

	renderSession(a.out, session)

	if *copyToken {
		if err = a.copyToClipboard(session.Token); err != nil {
			return fmt.Errorf("copying token: %w", err)
		}
		fmt.Fprintln(a.out, faintStyle.Render("token copied to clipboard"))
	}
	return nil
}
