package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bookstore_back_end/internal/handlers"
	"bookstore_back_end/internal/routes"
	"bookstore_back_end/internal/store"
)

// client rejoue le comportement d'un navigateur : il conserve le cookie de
// session (donc le panier) et, une fois connecté, le token.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
	token   string
}

func newClient(t *testing.T) (*client, *store.Store) {
	gin.SetMode(gin.TestMode)

	st := store.New()
	_, err := st.Users.Register("demo@bookstore.com", "demo123", "Demo User", "123 Demo Street")
	require.NoError(t, err)

	h := handlers.New(st, []byte("test_session_secret"))
	r := gin.New()
	routes.RegisterRoutes(r, h)

	return &client{t: t, router: r}, st
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	if cks := w.Result().Cookies(); len(cks) > 0 {
		cl.cookies = cks
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, path, nil)
}

func (cl *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, path, form)
}

// body décode la réponse JSON en map.
func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// login connecte le client et mémorise le token pour les requêtes suivantes.
func (cl *client) login(email, password string) {
	w := cl.postForm("/api/auth/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(cl.t, http.StatusOK, w.Code)
	cl.token = body(cl.t, w)["token"].(string)
}

// addGatsby met 2 exemplaires de The Great Gatsby dans le panier.
func (cl *client) addGatsby() {
	w := cl.postForm("/api/cart/add", url.Values{
		"title":    {"The Great Gatsby"},
		"quantity": {"2"},
	})
	require.Equal(cl.t, http.StatusOK, w.Code)
}

// cartTotalItems lit le nombre d'articles du panier via l'API.
func (cl *client) cartTotalItems() int {
	w := cl.get("/api/cart")
	require.Equal(cl.t, http.StatusOK, w.Code)
	return int(body(cl.t, w)["total_items"].(float64))
}
