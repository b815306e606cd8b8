/* handlers_test.go
 * Routing, auth and session tests driven through the full chi router with an
 * in-memory store.
 */

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"leaguehub/model"
)

const testAdminKey = "letmein"

func newTestServer(t *testing.T, fs *fakeStore) *Server {
	t.Helper()
	s, err := NewServer(Config{
		Addr:          ":0",
		AdminKey:      testAdminKey,
		SessionSecret: "test-session-secret",
		Store:         fs,
		Log:           zap.NewNop(),
		Clock:         clock.NewMock(),
	})
	require.NoError(t, err)
	return s
}

func getPage(h http.Handler, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func postForm(h http.Handler, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// adminCookies logs in with the shared key and returns the session cookie.
func adminCookies(t *testing.T, h http.Handler) []*http.Cookie {
	t.Helper()
	w := postForm(h, "/admin-login", url.Values{"password": {testAdminKey}}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, location, w.Header().Get("Location"))
}

func TestAdminRoutesRequireSession(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	posts := []string{
		"/admin/add-group",
		"/admin/delete-player",
		"/admin/update-team",
		"/admin/add-story",
		"/admin/live",
	}
	for _, target := range posts {
		w := postForm(h, target, url.Values{"name": {"sneaky"}}, nil)
		assertRedirect(t, w, "/admin-login")
	}

	w := getPage(h, "/admin", nil)
	assertRedirect(t, w, "/admin-login")

	assert.Zero(t, fs.writes, "gated route mutated the store without a session")
	assert.Empty(t, fs.groups)
}

func TestAdminLoginWrongKey(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/admin-login", url.Values{"password": {"guess"}}, nil)
	assertRedirect(t, w, "/admin-login?error="+url.QueryEscape("WRONG KEY!"))

	// Whatever cookie came back must not open the gate.
	w = getPage(h, "/admin", w.Result().Cookies())
	assertRedirect(t, w, "/admin-login")
}

func TestAdminLoginGrantsSession(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	cookies := adminCookies(t, h)
	w := getPage(h, "/admin", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminLoginRateLimited(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	// The burst allows five rapid attempts from one address.
	for i := 0; i < 5; i++ {
		w := postForm(h, "/admin-login", url.Values{"password": {"guess"}}, nil)
		assertRedirect(t, w, "/admin-login?error="+url.QueryEscape("WRONG KEY!"))
	}
	w := postForm(h, "/admin-login", url.Values{"password": {"guess"}}, nil)
	assertRedirect(t, w, "/admin-login?error="+url.QueryEscape("Too many attempts, slow down"))
}

func TestRegisterHashesPasswordAndLogsIn(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/register", url.Values{
		"name":     {"Striker"},
		"password": {"hunter2"},
		"country":  {"AU"},
	}, nil)
	assertRedirect(t, w, "/profile")
	require.NotEmpty(t, w.Result().Cookies())

	require.Len(t, fs.players, 1)
	p := fs.players[0]
	assert.Equal(t, "Striker", p.Name)
	assert.False(t, p.Verified)
	assert.Equal(t, model.DefaultPosition, p.Position)
	assert.True(t, strings.HasPrefix(p.Password, "$2"), "password stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.Password), []byte("hunter2")))
}

func TestRegisterRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	fs := newFakeStore()
	fs.players = []model.Player{{ID: primitive.NewObjectID(), Name: "alice", Password: "x"}}
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/register", url.Values{
		"name":     {"ALICE"},
		"password": {"hunter2"},
	}, nil)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Username already taken!"))
	assert.Len(t, fs.players, 1)
}

func TestRegisterValidation(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/register", url.Values{
		"name":     {"x"},
		"password": {"hunter2"},
	}, nil)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Name and password are required"))
	assert.Empty(t, fs.players)
}

func TestRegisterStoreFailureShowsGenericMessage(t *testing.T) {
	fs := newFakeStore()
	fs.createPlayerErr = errors.New("connection reset")
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/register", url.Values{
		"name":     {"Striker"},
		"password": {"hunter2"},
	}, nil)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Something went wrong"))
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	fs := newFakeStore()
	fs.players = []model.Player{{ID: primitive.NewObjectID(), Name: "Striker", Password: string(hash)}}
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/login", url.Values{"username": {"striker"}, "password": {"hunter2"}}, nil)
	assertRedirect(t, w, "/profile")

	w = postForm(h, "/login", url.Values{"username": {"Striker"}, "password": {"wrong"}}, nil)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Invalid username or password"))
}

func TestLoginRehashesLegacyPlaintext(t *testing.T) {
	fs := newFakeStore()
	fs.players = []model.Player{{ID: primitive.NewObjectID(), Name: "OldTimer", Password: "hunter2"}}
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/login", url.Values{"username": {"OldTimer"}, "password": {"hunter2"}}, nil)
	assertRedirect(t, w, "/profile")

	stored := fs.players[0].Password
	assert.True(t, strings.HasPrefix(stored, "$2"), "legacy plaintext was not re-hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("hunter2")))
}

func TestLoginUnknownUser(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/login", url.Values{"username": {"ghost"}, "password": {"hunter2"}}, nil)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Invalid username or password"))
}

func TestProfileRequiresLogin(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/profile/update", url.Values{"name": {"New"}}, nil)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Please login first"))

	w = getPage(h, "/profile", nil)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Please login first"))
}

func TestProfileDelete(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := postForm(h, "/register", url.Values{"name": {"Striker"}, "password": {"hunter2"}}, nil)
	assertRedirect(t, w, "/profile")
	cookies := w.Result().Cookies()

	w = postForm(h, "/profile/delete", nil, cookies)
	assertRedirect(t, w, "/market?error="+url.QueryEscape("Account deleted successfully"))
	assert.Empty(t, fs.players)
}

func TestMatchDetailMissingRedirects(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := getPage(h, "/match/"+primitive.NewObjectID().Hex(), nil)
	assertRedirect(t, w, "/matches")
}

func TestTeamDetailMissingRedirects(t *testing.T) {
	fs := newFakeStore()
	h := newTestServer(t, fs).routes()

	w := getPage(h, "/team/"+primitive.NewObjectID().Hex()+"/0", nil)
	assertRedirect(t, w, "/metrics?error="+url.QueryEscape("Team not found"))
}

func TestTeamDetailRenders(t *testing.T) {
	fs := newFakeStore()
	group := model.Group{ID: primitive.NewObjectID(), Name: "Group A", Teams: []model.Team{model.NewTeam("Reds", "")}}
	fs.groups = []model.Group{group}
	h := newTestServer(t, fs).routes()

	w := getPage(h, "/team/"+group.ID.Hex()+"/0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reds")
}

func TestPublicPagesRender(t *testing.T) {
	fs := newFakeStore()
	fs.players = []model.Player{{ID: primitive.NewObjectID(), Name: "Striker", Verified: true}}
	h := newTestServer(t, fs).routes()

	for _, target := range []string{"/", "/market", "/matches", "/metrics", "/league-records", "/info", "/admin-login"} {
		w := getPage(h, target, nil)
		assert.Equalf(t, http.StatusOK, w.Code, "GET %s", target)
	}
}
