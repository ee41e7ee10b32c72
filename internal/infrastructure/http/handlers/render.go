package handlers

import (
	"html/template"
	"net/http"
	"net/url"
)

// The handlers render only minimal inline pages; anything beyond form
// plumbing belongs to a real front end.
var pages = template.Must(template.New("pages").Parse(`
{{define "home"}}<!doctype html>
<title>Book Notes</title>
<h1>Book Notes</h1>
<p><a href="/catalog">My books</a> | <a href="/search">Add a book</a> | <a href="/login">Log in</a></p>
{{end}}

{{define "login"}}<!doctype html>
<title>Log in</title>
<h1>Log in</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <input name="email" type="email" placeholder="email" required>
  <input name="password" type="password" placeholder="password" required>
  <button type="submit">Log in</button>
</form>
<p><a href="/auth/google">Log in with Google</a> | <a href="/auth/facebook">Log in with Facebook</a></p>
{{end}}

{{define "catalog"}}<!doctype html>
<title>My books</title>
<h1>{{.Name}}'s books</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<p>
  Sort by
  <a href="/catalog?sortBy=title">title</a> |
  <a href="/catalog?sortBy=recency&sortOrder=desc">recency</a> |
  <a href="/catalog?sortBy=rating&sortOrder=desc">rating</a>
</p>
<ul>
{{range .Rows}}
  <li>
    <img src="{{.ImgSrc}}" alt="">
    <strong>{{.Title}}</strong> by {{.AuthorName}}
    {{if .Rating}}&mdash; rated {{.Rating}}/10{{end}}
    {{if .DateRead}}(finished {{.DateRead.Format "2006-01-02"}}){{end}}
    {{if .Note}}<p>{{.Note}}</p>{{end}}
  </li>
{{end}}
</ul>
<p><a href="/search">Add a book</a> | <a href="/logout">Log out</a></p>
{{end}}

{{define "search"}}<!doctype html>
<title>Search books</title>
<h1>Search books</h1>
<form method="post" action="/search-books">
  <input name="query" placeholder="title or author" required>
  <button type="submit">Search</button>
</form>
{{if .Results}}
<ul>
{{range .Results}}
  <li>
    <img src="{{.ImgSrc}}" alt="">
    {{.Title}} by {{.AuthorName}}
    <form method="post" action="/choose-book">
      <input type="hidden" name="title" value="{{.Title}}">
      <input type="hidden" name="author" value="{{.AuthorName}}">
      <input type="hidden" name="imgSrc" value="{{.ImgSrc}}">
      <button type="submit">Choose</button>
    </form>
  </li>
{{end}}
</ul>
{{end}}
{{end}}

{{define "entry"}}<!doctype html>
<title>Review</title>
<h1>{{.Title}} by {{.Author}}</h1>
<img src="{{.ImgSrc}}" alt="">
<form method="post" action="/entries">
  <input type="hidden" name="title" value="{{.Title}}">
  <input type="hidden" name="author" value="{{.Author}}">
  <input type="hidden" name="imgSrc" value="{{.ImgSrc}}">
  <input name="rating" type="number" min="0" max="10" placeholder="rating">
  <textarea name="notes" placeholder="your notes"></textarea>
  <input name="date" type="date">
  <button type="submit">Save</button>
</form>
{{end}}
`))

func renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pages.ExecuteTemplate(w, name, data)
}

// redirectWithError redirects to path with a human-readable error carried
// in the query string.
func redirectWithError(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(message), http.StatusFound)
}
