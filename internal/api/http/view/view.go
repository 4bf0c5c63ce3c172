// Package view renders the HTML pages of the watchlist.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/dtroode/watchlist-server/internal/model"
)

// Page template names.
const (
	PageIndex          = "index.html"
	PageAdd            = "add.html"
	PageSelect         = "select.html"
	PageEdit           = "edit.html"
	PageSignIn         = "login.html"
	PageSignUp         = "register.html"
	PageForgotPassword = "forgot_password.html"
	PageError          = "error.html"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Page holds the fields shared by every page.
type Page struct {
	Title    string
	Username string
	Message  string
}

type IndexPage struct {
	Page
	Movies []model.Movie
}

type SelectPage struct {
	Page
	Query      string
	Candidates []model.Candidate
}

type EditPage struct {
	Page
	Movie model.Movie
}

type SignUpPage struct {
	Page
	Exists bool
	Form   SignUpForm
}

// SignUpForm echoes submitted values back into the form.
type SignUpForm struct {
	Username string
	Email    string
}

type SignInPage struct {
	Page
	BadPassword bool
	Login       string
}

type ErrorPage struct {
	Page
	Status int
}

// Renderer executes embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"rating": formatRating,
	}).ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes page name with the given status. Nothing is written when
// the template fails, so the caller can still respond with an error.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the embedded stylesheet directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
