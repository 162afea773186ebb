package client

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-book-share/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	bookStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

const timeLayout = "2006-01-02 15:04"

func renderBook(w io.Writer, book models.Book) {
	header := fmt.Sprintf("#%d %s", book.BookID, titleStyle.Render(book.Title))
	rating := fmt.Sprintf("rating %.1f/5", book.Rating)

	lines := []string{book.Caption, faintStyle.Render(rating)}
	if book.Owner.Username != "" {
		lines = append(lines, faintStyle.Render("by "+book.Owner.Username))
	}
	if !book.CreatedAt.IsZero() {
		lines = append(lines, faintStyle.Render(book.CreatedAt.Local().Format(timeLayout)))
	}
	lines = append(lines, faintStyle.Render("image: "+book.Image))

	fmt.Fprintln(w, header)
	fmt.Fprintln(w, bookStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func renderBookPage(w io.Writer, page models.BookPage) {
	if len(page.Books) == 0 {
		fmt.Fprintln(w, "No books yet")
		return
	}

	for _, book := range page.Books {
		renderBook(w, book)
	}
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("page %d of %d, %d books in total",
		page.CurrentPage, page.TotalPages, page.TotalBooks)))
}

func renderSession(w io.Writer, session models.Session) {
	fmt.Fprintf(w, "%s <%s>\n", titleStyle.Render(session.User.Username), session.User.Email)
	fmt.Fprintf(w, "user id: %d\n", session.User.UserID)
	if !session.LoggedAt.IsZero() {
		fmt.Fprintf(w, "logged in: %s\n", session.LoggedAt.Local().Format(timeLayout))
	}
}
