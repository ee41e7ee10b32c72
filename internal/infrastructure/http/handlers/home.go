package handlers

import "net/http"

// Home renders the landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "home", nil)
}
