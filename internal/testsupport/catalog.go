package testsupport

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// CatalogDisc describes one disc served by the fake catalog.
type CatalogDisc struct {
	ID       int
	Title    string
	Region   string
	Language string
	Serial   string
	Comments string
	// Tracks holds the SHA1 of every track. The detail page reports its length.
	Tracks []string
}

// Catalog is an httptest server imitating the disc catalog and its forum
// login. It serves quicksearch listings, detail pages, and the login form.
type Catalog struct {
	*httptest.Server

	Username string
	Password string

	mu       sync.Mutex
	discs    map[int]CatalogDisc
	searches []string
	fetches  []int
	logins   int
}

// NewCatalogServer starts a fake catalog serving discs. The server is closed
// when the test finishes.
func NewCatalogServer(t testing.TB, discs ...CatalogDisc) *Catalog {
	t.Helper()

	c := &Catalog{
		Username: "dumper",
		Password: "secret",
		discs:    make(map[int]CatalogDisc, len(discs)),
	}
	for _, d := range discs {
		c.discs[d.ID] = d
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login/", c.handleLogin)
	mux.HandleFunc("/discs/quicksearch/", c.handleSearch)
	mux.HandleFunc("/disc/", c.handleDisc)
	c.Server = httptest.NewServer(mux)
	t.Cleanup(c.Close)
	return c
}

// Searches returns the quicksearch queries received so far.
func (c *Catalog) Searches() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.searches...)
}

// Fetches returns the detail page IDs requested so far.
func (c *Catalog) Fetches() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.fetches...)
}

// Logins returns the number of login form submissions.
func (c *Catalog) Logins() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logins
}

func (c *Catalog) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		fmt.Fprint(w, `<html><body><form method="post" action="/login/?action=in">
<input type="hidden" name="form_sent" value="1" />
<input type="hidden" name="csrf_token" value="token-123" />
</form></body></html>`)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.mu.Lock()
	c.logins++
	c.mu.Unlock()
	if r.PostForm.Get("csrf_token") != "token-123" {
		http.Error(w, "bad token", http.StatusForbidden)
		return
	}
	if r.PostForm.Get("req_username") != c.Username || r.PostForm.Get("req_password") != c.Password {
		fmt.Fprint(w, `<html><body><p>Incorrect username and/or password.</p></body></html>`)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "session", Value: "ok", Path: "/"})
	fmt.Fprint(w, `<html><body><p>Logged in</p></body></html>`)
}

func (c *Catalog) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.Trim(strings.TrimPrefix(r.URL.Path, "/discs/quicksearch/"), "/")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	c.mu.Lock()
	c.searches = append(c.searches, query)
	var ids []int
	for id, d := range c.discs {
		for _, sha1 := range d.Tracks {
			if strings.EqualFold(sha1, query) {
				ids = append(ids, id)
				break
			}
		}
	}
	c.mu.Unlock()
	sort.Ints(ids)

	var b strings.Builder
	b.WriteString("<html><body><table>")
	if page <= 1 {
		for _, id := range ids {
			fmt.Fprintf(&b, `<tr><td><a href="/disc/%d/">disc %d</a></td></tr>`, id, id)
		}
	}
	b.WriteString("</table></body></html>")
	fmt.Fprint(w, b.String())
}

func (c *Catalog) handleDisc(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.Trim(strings.TrimPrefix(r.URL.Path, "/disc/"), "/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	c.mu.Lock()
	c.fetches = append(c.fetches, id)
	d, ok := c.discs[id]
	c.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, DetailPage(d))
}

// DetailPage renders the detail page markup for d.
func DetailPage(d CatalogDisc) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n<table>\n", html.EscapeString(d.Title))
	b.WriteString("<tr><th>Category</th><td>Games</td></tr>\n")
	if d.Region != "" {
		fmt.Fprintf(&b, `<tr><th>Region</th><td><a href="/discs/region/%s/"><img src="/images/flags/x.png" /></a></td></tr>`+"\n", d.Region)
	}
	if d.Language != "" {
		fmt.Fprintf(&b, `<tr><th>Languages</th><td><img src="/images/languages/%s.png" alt="" /></td></tr>`+"\n", d.Language)
	}
	if d.Serial != "" {
		fmt.Fprintf(&b, "<tr><th>Serial</th><td>%s</td></tr>\n", html.EscapeString(d.Serial))
	}
	fmt.Fprintf(&b, "<tr><th>Number of tracks</th><td>%d</td></tr>\n", len(d.Tracks))
	b.WriteString("</table>\n")
	if d.Comments != "" {
		fmt.Fprintf(&b, "<table><tr><th>Comments</th></tr><tr><td>%s</td></tr></table>\n",
			strings.ReplaceAll(html.EscapeString(d.Comments), "\n", "<br />\n"))
	}
	fmt.Fprintf(&b, `<a href="/disc/%d/sfv/">sfv</a>`+"\n</body></html>", d.ID)
	return b.String()
}
