// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-book-share/models"
)

func (a *App) books(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing books subcommand", ErrUsage)
	}

	switch args[0] {
	case "list":
		return a.listBooks(ctx, args[1:])
	case "mine":
		return a.myBooks(ctx, args[1:])
	case "add":
		return a.addBook(ctx, args[1:])
	case "delete":
		return a.deleteBook(ctx, args[1:])
	default:
		return fmt.Errorf("%w: books %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) listBooks(ctx context.Context, args []string) error {
	var req models.ListBooksRequest
	fs := a.newFlagSet("books list")
	fs.IntVar(&req.Page, "page", 0, "page number, starting at 1")
	fs.IntVar(&req.Limit, "limit", 0, "books per page")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	page, err := a.services.BookService.List(ctx, req)
	if err != nil {
		return err
	}

	renderBookPage(a.out, page)
	return nil
}

func (a *App) myBooks(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("books mine"), args); err != nil {
		return err
	}

	books, err := a.services.BookService.Mine(ctx)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		fmt.Fprintln(a.out, "You have not shared any books yet")
		return nil
	}
	for _, book := range books {
		renderBook(a.out, book)
	}
	return nil
}

func (a *App) addBook(ctx context.Context, args []string) error {
	var (
		req    models.CreateBookRequest
		rating string
	)
	fs := a.newFlagSet("books add")
	fs.StringVar(&req.Title, "t", "", "title")
	fs.StringVar(&req.Caption, "c", "", "caption")
	fs.StringVar(&req.Image, "i", "", "cover image: http(s) URL or local file")
	fs.StringVar(&rating, "r", "", "rating from 0 to 5")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	if rating != "" {
		v, err := strconv.ParseFloat(rating, 64)
		if err != nil {
			return fmt.Errorf("%w: rating %q is not a number", ErrUsage, rating)
		}
		req.Rating = models.Ptr(v)
	}

	image, err := imageFromFlag(req.Image)
	if err != nil {
		return err
	}
	req.Image = image

	book, err := a.services.BookService.Add(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Book shared:")
	renderBook(a.out, book)
	return nil
}

func (a *App) deleteBook(ctx context.Context, args []string) error {
	fs := a.newFlagSet("books delete")
	bookID := fs.Int64("id", 0, "id of the book to delete")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if *bookID <= 0 {
		return fmt.Errorf("%w: -id must be a positive number", ErrUsage)
	}

	msg, err := a.services.BookService.Delete(ctx, *bookID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// imageFromFlag turns a local file into a base64 data URI. URLs and values
// that are not readable files are sent as given.
func imageFromFlag(value string) (string, error) {
	if value == "" || strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") ||
		strings.HasPrefix(value, "data:") {
		return value, nil
	}

	info, err := os.Stat(value)
	if err != nil || !info.Mode().IsRegular() {
		return value, nil
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", value, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(value))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if i := strings.Index(mimeType, ";"); i != -1 {
		mimeType = mimeType[:i]
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
