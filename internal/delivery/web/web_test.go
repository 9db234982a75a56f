package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratesmart/config"
	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/domain/entity"
	"ratesmart/internal/errors"
	"ratesmart/internal/infra/session"
)

var errUnexpected = errors.New("unexpected api call")

// fakeAPI answers with the configured funcs and fails anything else.
type fakeAPI struct {
	signup         func(dto.SignupRequest) (*dto.AuthResponse, error)
	login          func(email, password string) (*dto.AuthResponse, error)
	adminLogin     func(email, password string) (*dto.Tokens, error)
	me             func(token string) (*dto.Business, error)
	listBusinesses func() ([]dto.Business, error)
	getBusiness    func(uuid.UUID) (*dto.Business, error)
	updateBusiness func(token string, id uuid.UUID, req dto.UpdateBusinessRequest) (*dto.Business, error)
	listProducts   func(uuid.UUID) ([]dto.Product, error)
	createProduct  func(token string, req dto.CreateProductRequest) (*dto.Product, error)
	deleteProduct  func(token string, id uuid.UUID) error
	listReviews    func(uuid.UUID) ([]dto.Review, error)
	createReview   func(dto.CreateReviewRequest) (*dto.Review, error)
	reply          func(token string, id uuid.UUID, reply string) (*dto.Review, error)
	deleteReview   func(token string, id uuid.UUID) error
	deleteBusiness func(token string, id uuid.UUID) error
	resetSystem    func(token string) (*dto.ResetResponse, error)
	businessQR     func(uuid.UUID) ([]byte, error)
}

func (f *fakeAPI) Signup(_ context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	if f.signup == nil {
		return nil, errUnexpected
	}

	return f.signup(req)
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*dto.AuthResponse, error) {
	if f.login == nil {
		return nil, errUnexpected
	}

	return f.login(email, password)
}

func (f *fakeAPI) AdminLogin(_ context.Context, email, password string) (*dto.Tokens, error) {
	if f.adminLogin == nil {
		return nil, errUnexpected
	}

	return f.adminLogin(email, password)
}

func (f *fakeAPI) Me(_ context.Context, token string) (*dto.Business, error) {
	if f.me == nil {
		return nil, errUnexpected
	}

	return f.me(token)
}

func (f *fakeAPI) ListBusinesses(context.Context) ([]dto.Business, error) {
	if f.listBusinesses == nil {
		return nil, errUnexpected
	}

	return f.listBusinesses()
}

func (f *fakeAPI) GetBusiness(_ context.Context, id uuid.UUID) (*dto.Business, error) {
	if f.getBusiness == nil {
		return nil, errUnexpected
	}

	return f.getBusiness(id)
}

func (f *fakeAPI) UpdateBusiness(_ context.Context, token string, id uuid.UUID, req dto.UpdateBusinessRequest) (*dto.Business, error) {
	if f.updateBusiness == nil {
		return nil, errUnexpected
	}

	return f.updateBusiness(token, id, req)
}

func (f *fakeAPI) DeleteBusiness(_ context.Context, token string, id uuid.UUID) error {
	if f.deleteBusiness == nil {
		return errUnexpected
	}

	return f.deleteBusiness(token, id)
}

func (f *fakeAPI) BusinessQR(_ context.Context, id uuid.UUID) ([]byte, error) {
	if f.businessQR == nil {
		return nil, errUnexpected
	}

	return f.businessQR(id)
}

func (f *fakeAPI) ListProducts(_ context.Context, businessID uuid.UUID) ([]dto.Product, error) {
	if f.listProducts == nil {
		return nil, errUnexpected
	}

	return f.listProducts(businessID)
}

func (f *fakeAPI) CreateProduct(_ context.Context, token string, req dto.CreateProductRequest) (*dto.Product, error) {
	if f.createProduct == nil {
		return nil, errUnexpected
	}

	return f.createProduct(token, req)
}

func (f *fakeAPI) DeleteProduct(_ context.Context, token string, id uuid.UUID) error {
	if f.deleteProduct == nil {
		return errUnexpected
	}

	return f.deleteProduct(token, id)
}

func (f *fakeAPI) ListReviews(_ context.Context, businessID uuid.UUID) ([]dto.Review, error) {
	if f.listReviews == nil {
		return nil, errUnexpected
	}

	return f.listReviews(businessID)
}

func (f *fakeAPI) CreateReview(_ context.Context, req dto.CreateReviewRequest) (*dto.Review, error) {
	if f.createReview == nil {
		return nil, errUnexpected
	}

	return f.createReview(req)
}

func (f *fakeAPI) Reply(_ context.Context, token string, id uuid.UUID, reply string) (*dto.Review, error) {
	if f.reply == nil {
		return nil, errUnexpected
	}

	return f.reply(token, id, reply)
}

func (f *fakeAPI) DeleteReview(_ context.Context, token string, id uuid.UUID) error {
	if f.deleteReview == nil {
		return errUnexpected
	}

	return f.deleteReview(token, id)
}

func (f *fakeAPI) ResetSystem(_ context.Context, token string) (*dto.ResetResponse, error) {
	if f.resetSystem == nil {
		return nil, errUnexpected
	}

	return f.resetSystem(token)
}

// browser drives the front-end and keeps its session cookie.
type browser struct {
	t      *testing.T
	e      *echo.Echo
	store  *session.Store
	cookie *http.Cookie
}

func newBrowser(t *testing.T, api API) *browser {
	t.Helper()

	cfg := &config.Config{Web: &config.WebConfig{CookieName: "sid", SessionTTL: time.Hour}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(HandlerParams{Logger: logger, API: api})

	store := session.NewStore(time.Hour)
	e, err := NewEcho(cfg, logger, store, handler)
	require.NoError(t, err)

	return &browser{t: t, e: e, store: store}
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}

	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" {
			b.cookie = c
		}
	}

	return rec
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, target, nil)
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}

	return b.do(http.MethodPost, target, form)
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, to string) {
	t.Helper()

	assert.Contains(t, []int{http.StatusFound, http.StatusSeeOther}, rec.Code)
	assert.Equal(t, to, rec.Header().Get(echo.HeaderLocation))
}

var testBusiness = dto.Business{ID: uuid.New(), Name: "Kofi Bakes", Country: "Ghana", State: "Accra"}

func loggedInAPI() *fakeAPI {
	return &fakeAPI{
		login: func(string, string) (*dto.AuthResponse, error) {
			business := testBusiness

			return &dto.AuthResponse{Tokens: dto.Tokens{Access: "acc", Refresh: "ref"}, Business: &business}, nil
		},
		me: func(token string) (*dto.Business, error) {
			if token != "acc" {
				return nil, &apiclient.APIError{Status: http.StatusUnauthorized}
			}
			business := testBusiness

			return &business, nil
		},
		listProducts: func(uuid.UUID) ([]dto.Product, error) {
			return []dto.Product{{ID: uuid.New(), Name: "Meat pie"}}, nil
		},
		listReviews: func(uuid.UUID) ([]dto.Review, error) {
			return []dto.Review{
				{ID: uuid.New(), CustomerName: "Ama", Rating: 5, Sentiment: entity.SentimentPositive, Text: "Lovely"},
				{ID: uuid.New(), CustomerName: "Kwame", Rating: 2, Sentiment: entity.SentimentNegative, Text: "Cold", IsFake: true},
			}, nil
		},
	}
}

func TestHomeAndWildcard(t *testing.T) {
	b := newBrowser(t, &fakeAPI{})

	rec := b.get("/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to RateSmart")

	assertRedirect(t, b.get("/no/such/page"), "/")
	assert.Equal(t, http.StatusOK, b.get("/static/style.css").Code)
}

func TestSignup_ValidatesBeforeCallingAPI(t *testing.T) {
	b := newBrowser(t, &fakeAPI{})

	rec := b.post("/business-signup", url.Values{"name": {"Kofi Bakes"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill in all fields")
}

func TestSignup_APIErrorAndSuccess(t *testing.T) {
	form := url.Values{
		"name":             {"Kofi Bakes"},
		"phone":            {"0200000000"},
		"email":            {"kofi@bakes.com"},
		"country":          {"Ghana"},
		"state":            {"Accra"},
		"hours":            {"8-6"},
		"description":      {"Bread"},
		"password":         {"Secret123"},
		"confirm_password": {"Secret123"},
	}

	api := &fakeAPI{signup: func(dto.SignupRequest) (*dto.AuthResponse, error) {
		return nil, errors.New("connection refused")
	}}
	b := newBrowser(t, api)
	assert.Contains(t, b.post("/business-signup", form).Body.String(), "Signup failed. Please try again.")

	api.signup = func(req dto.SignupRequest) (*dto.AuthResponse, error) {
		assert.Equal(t, "kofi@bakes.com", req.Email)
		assert.Equal(t, "8-6", req.Hours)
		business := testBusiness

		return &dto.AuthResponse{Tokens: dto.Tokens{Access: "acc"}, Business: &business}, nil
	}
	loggedIn := loggedInAPI()
	api.me, api.listProducts, api.listReviews = loggedIn.me, loggedIn.listProducts, loggedIn.listReviews

	assertRedirect(t, b.post("/business-signup", form), "/business-dashboard")

	rec := b.get("/business-dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Kofi Bakes")
	assert.Contains(t, body, "Welcome to RateSmart!")
	assert.Contains(t, body, "Total Reviews: 2")
	assert.Contains(t, body, "Average Rating: 3.5")
	assert.Contains(t, body, "Fake Reviews: 1")
}

func TestLogin_FallbackAndAPIMessage(t *testing.T) {
	api := &fakeAPI{login: func(string, string) (*dto.AuthResponse, error) {
		return nil, errors.New("timeout")
	}}
	b := newBrowser(t, api)

	form := url.Values{"email": {"x@y.com"}, "password": {"nope"}}
	assert.Contains(t, b.post("/business-login", form).Body.String(), "Invalid email or password")

	api.login = func(string, string) (*dto.AuthResponse, error) {
		return nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	}
	assert.Contains(t, b.post("/business-login", form).Body.String(), "Invalid credentials")
}

func TestDashboard_RequiresLogin(t *testing.T) {
	b := newBrowser(t, &fakeAPI{})

	assertRedirect(t, b.get("/business-dashboard"), "/business-login")
	assert.Contains(t, b.get("/business-login").Body.String(), "Please log in.")
}

func TestDashboard_UnauthorizedRedirectsToLogin(t *testing.T) {
	api := loggedInAPI()
	b := newBrowser(t, api)
	assertRedirect(t, b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}}), "/business-dashboard")

	api.me = func(string) (*dto.Business, error) {
		return nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Invalid token"}
	}
	assertRedirect(t, b.get("/business-dashboard"), "/business-login")

	// The session was dropped, so the dashboard stays closed.
	assertRedirect(t, b.get("/business-dashboard"), "/business-login")
}

func TestDashboard_ReviewFilter(t *testing.T) {
	b := newBrowser(t, loggedInAPI())
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	body := b.get("/business-dashboard?tab=reviews&sentiment=negative").Body.String()
	assert.Contains(t, body, "Kwame")
	assert.NotContains(t, body, "Ama")
}

func TestSaveReplies_OneFailureShowsOneError(t *testing.T) {
	api := loggedInAPI()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var (
		mu    sync.Mutex
		calls = map[uuid.UUID]string{}
	)
	api.reply = func(token string, id uuid.UUID, reply string) (*dto.Review, error) {
		assert.Equal(t, "acc", token)
		mu.Lock()
		calls[id] = reply
		mu.Unlock()
		if id == ids[1] {
			return nil, &apiclient.APIError{Status: http.StatusInternalServerError, Message: "boom"}
		}

		return &dto.Review{ID: id, Reply: reply}, nil
	}

	b := newBrowser(t, api)
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	form := url.Values{}
	for i, id := range ids {
		form.Set("reply_"+id.String(), []string{"Thanks", "Sorry", ""}[i])
	}
	form.Set("unrelated", "x")

	assertRedirect(t, b.post("/business-dashboard/replies", form), "/business-dashboard?tab=reviews")
	assert.Len(t, calls, 3)
	assert.Equal(t, "Thanks", calls[ids[0]])

	body := b.get("/business-dashboard?tab=reviews").Body.String()
	assert.Equal(t, 1, strings.Count(body, "Failed to save replies"))
	assert.NotContains(t, body, "boom")
}

func TestAddProduct_RequiresName(t *testing.T) {
	api := loggedInAPI()
	var created []string
	api.createProduct = func(_ string, req dto.CreateProductRequest) (*dto.Product, error) {
		assert.Equal(t, testBusiness.ID, req.Business)
		created = append(created, req.Name)

		return &dto.Product{Name: req.Name}, nil
	}

	b := newBrowser(t, api)
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	b.post("/business-dashboard/products", url.Values{"name": {"   "}})
	assert.Empty(t, created)
	assert.Contains(t, b.get("/business-dashboard?tab=products").Body.String(), "Product name is required")

	b.post("/business-dashboard/products", url.Values{"name": {"  Chin chin "}})
	assert.Equal(t, []string{"Chin chin"}, created)
}

func TestDeleteProduct_AfterConfirmation(t *testing.T) {
	api := loggedInAPI()
	productID := uuid.New()
	var deleted []uuid.UUID
	api.deleteProduct = func(token string, id uuid.UUID) error {
		assert.Equal(t, "acc", token)
		deleted = append(deleted, id)

		return nil
	}

	b := newBrowser(t, api)
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	assertRedirect(t, b.post("/business-dashboard/products/"+productID.String()+"/delete", nil), "/business-dashboard?tab=products")
	assert.Contains(t, b.get("/business-dashboard?tab=products").Body.String(), "Delete product?")
	assert.Empty(t, deleted)

	assertRedirect(t, b.post("/confirm", nil), "/business-dashboard?tab=products")
	assert.Equal(t, []uuid.UUID{productID}, deleted)

	body := b.get("/business-dashboard?tab=products").Body.String()
	assert.Contains(t, body, "Product deleted")
	assert.NotContains(t, body, "Delete product?")
}

func TestDeleteProduct_APIFailureShowsMessage(t *testing.T) {
	api := loggedInAPI()
	api.deleteProduct = func(string, uuid.UUID) error {
		return &apiclient.APIError{Status: http.StatusForbidden, Message: "Forbidden", Details: "not your product"}
	}

	b := newBrowser(t, api)
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})
	b.post("/business-dashboard/products/"+uuid.NewString()+"/delete", nil)

	assertRedirect(t, b.post("/confirm", nil), "/business-dashboard?tab=products")
	body := b.get("/business-dashboard?tab=products").Body.String()
	assert.Contains(t, body, "Forbidden")
	assert.NotContains(t, body, "not your product")
}

func TestDeleteOwnBusiness_LogsOut(t *testing.T) {
	api := loggedInAPI()
	var deleted []uuid.UUID
	api.deleteBusiness = func(token string, id uuid.UUID) error {
		assert.Equal(t, "acc", token)
		deleted = append(deleted, id)

		return nil
	}

	b := newBrowser(t, api)
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	assertRedirect(t, b.post("/business-dashboard/delete", nil), "/business-dashboard?tab=info")
	assert.Contains(t, b.get("/business-dashboard?tab=info").Body.String(), "Delete your business?")
	assert.Empty(t, deleted)

	assertRedirect(t, b.post("/confirm", nil), "/")
	assert.Equal(t, []uuid.UUID{testBusiness.ID}, deleted)
	assert.Contains(t, b.get("/").Body.String(), "Business deleted")

	data, ok := b.store.Get(b.cookie.Value)
	require.True(t, ok)
	assert.Empty(t, data.AccessToken)
	assert.Empty(t, data.BusinessJSON)
	assert.Nil(t, data.Pending)

	assertRedirect(t, b.get("/business-dashboard"), "/business-login")
}

func TestUpdateInfo(t *testing.T) {
	api := loggedInAPI()
	var updates []dto.UpdateBusinessRequest
	api.updateBusiness = func(token string, id uuid.UUID, req dto.UpdateBusinessRequest) (*dto.Business, error) {
		assert.Equal(t, "acc", token)
		assert.Equal(t, testBusiness.ID, id)
		updates = append(updates, req)
		business := testBusiness
		business.Name = *req.Name

		return &business, nil
	}

	b := newBrowser(t, api)
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	form := url.Values{"name": {"  Kofi Bakes Annex "}, "hours": {"7-7"}, "email": {""}}
	assertRedirect(t, b.post("/business-dashboard/info", form), "/business-dashboard?tab=info")

	require.Len(t, updates, 1)
	require.NotNil(t, updates[0].Name)
	assert.Equal(t, "Kofi Bakes Annex", *updates[0].Name)
	require.NotNil(t, updates[0].Hours)
	assert.Equal(t, "7-7", *updates[0].Hours)
	assert.Nil(t, updates[0].Email, "blank fields are left unchanged")
	assert.Nil(t, updates[0].Password)

	data, ok := b.store.Get(b.cookie.Value)
	require.True(t, ok)
	cached, ok := cachedBusiness(&data)
	require.True(t, ok)
	assert.Equal(t, "Kofi Bakes Annex", cached.Name)

	assert.Contains(t, b.get("/business-dashboard?tab=info").Body.String(), "Business info updated!")
}

func TestUpdateInfo_APIError(t *testing.T) {
	api := loggedInAPI()
	api.updateBusiness = func(string, uuid.UUID, dto.UpdateBusinessRequest) (*dto.Business, error) {
		return nil, &apiclient.APIError{Status: http.StatusConflict, Message: "Email already registered"}
	}

	b := newBrowser(t, api)
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	assertRedirect(t, b.post("/business-dashboard/info", url.Values{"email": {"taken@b.com"}}), "/business-dashboard?tab=info")
	assert.Contains(t, b.get("/business-dashboard?tab=info").Body.String(), "Email already registered")
}

func TestAdminLogin_Failure(t *testing.T) {
	api := &fakeAPI{adminLogin: func(string, string) (*dto.Tokens, error) {
		return nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	}}
	b := newBrowser(t, api)

	body := b.post("/admin-login", url.Values{"email": {"admin@example.com"}, "password": {"bad"}}).Body.String()
	assert.Contains(t, body, "Invalid admin credentials!")
	assertRedirect(t, b.get("/admin-dashboard"), "/admin-login")
}

func adminAPI() *fakeAPI {
	return &fakeAPI{
		adminLogin: func(string, string) (*dto.Tokens, error) {
			return &dto.Tokens{Access: "admin-token"}, nil
		},
		listBusinesses: func() ([]dto.Business, error) {
			return []dto.Business{testBusiness, {ID: uuid.New(), Name: "Nairobi Grill"}}, nil
		},
		listReviews: func(businessID uuid.UUID) ([]dto.Review, error) {
			return []dto.Review{{ID: uuid.New(), BusinessName: "Kofi Bakes", IsFake: true}}, nil
		},
	}
}

func TestAdminDashboard_ConfirmDeleteReview(t *testing.T) {
	api := adminAPI()
	reviewID := uuid.New()
	var deleted []uuid.UUID
	api.deleteReview = func(token string, id uuid.UUID) error {
		assert.Equal(t, "admin-token", token)
		deleted = append(deleted, id)

		return nil
	}

	b := newBrowser(t, api)
	assertRedirect(t, b.post("/admin-login", url.Values{"email": {"a@b.c"}, "password": {"p"}}), "/admin-dashboard")

	overview := b.get("/admin-dashboard").Body.String()
	assert.Contains(t, overview, "Fake Reviews")

	// Cancel discards the pending action.
	assertRedirect(t, b.post("/admin-dashboard/reviews/"+reviewID.String()+"/delete", nil), "/admin-dashboard?tab=reviews")
	assert.Contains(t, b.get("/admin-dashboard?tab=reviews").Body.String(), "Delete review?")
	assertRedirect(t, b.post("/confirm/cancel", nil), "/admin-dashboard?tab=reviews")
	assert.NotContains(t, b.get("/admin-dashboard?tab=reviews").Body.String(), "Delete review?")
	assert.Empty(t, deleted)

	// Confirm runs it.
	b.post("/admin-dashboard/reviews/"+reviewID.String()+"/delete", nil)
	assertRedirect(t, b.post("/confirm", nil), "/admin-dashboard?tab=reviews")
	assert.Equal(t, []uuid.UUID{reviewID}, deleted)
	assert.Contains(t, b.get("/admin-dashboard?tab=reviews").Body.String(), "Review deleted")
}

func TestAdminDashboard_ConfirmDeleteBusiness(t *testing.T) {
	api := adminAPI()
	var deleted []uuid.UUID
	api.deleteBusiness = func(token string, id uuid.UUID) error {
		assert.Equal(t, "admin-token", token)
		deleted = append(deleted, id)

		return nil
	}

	b := newBrowser(t, api)
	b.post("/admin-login", url.Values{"email": {"a@b.c"}, "password": {"p"}})

	target := "/admin-dashboard/businesses/" + testBusiness.ID.String() + "/delete"
	assertRedirect(t, b.post(target, nil), "/admin-dashboard?tab=businesses")
	assert.Contains(t, b.get("/admin-dashboard?tab=businesses").Body.String(), "Delete business?")
	assert.Empty(t, deleted)

	assertRedirect(t, b.post("/confirm", nil), "/admin-dashboard?tab=businesses")
	assert.Equal(t, []uuid.UUID{testBusiness.ID}, deleted)
	assert.Contains(t, b.get("/admin-dashboard?tab=businesses").Body.String(), "Business deleted")

	// The admin stays signed in.
	data, ok := b.store.Get(b.cookie.Value)
	require.True(t, ok)
	assert.True(t, data.LoggedInAdmin())
}

func TestAdminDashboard_BusinessSearch(t *testing.T) {
	b := newBrowser(t, adminAPI())
	b.post("/admin-login", url.Values{"email": {"a@b.c"}, "password": {"p"}})

	body := b.get("/admin-dashboard?tab=businesses&business=grill").Body.String()
	assert.Contains(t, body, "Nairobi Grill")
	assert.NotContains(t, body, "Kofi Bakes")
}

func TestAdminReset(t *testing.T) {
	api := adminAPI()
	resets := 0
	api.resetSystem = func(string) (*dto.ResetResponse, error) {
		resets++

		return &dto.ResetResponse{Message: "System reset successfully"}, nil
	}

	b := newBrowser(t, api)
	b.post("/admin-login", url.Values{"email": {"a@b.c"}, "password": {"p"}})
	b.post("/admin-dashboard/reset", nil)
	assert.Zero(t, resets)

	assertRedirect(t, b.post("/confirm", nil), "/admin-dashboard")
	assert.Equal(t, 1, resets)
	assert.Contains(t, b.get("/admin-dashboard").Body.String(), "System reset successfully")
}

func TestSearch(t *testing.T) {
	api := &fakeAPI{listBusinesses: func() ([]dto.Business, error) {
		return []dto.Business{testBusiness, {ID: uuid.New(), Name: "Kofi Bakes Annex"}}, nil
	}}
	b := newBrowser(t, api)

	body := b.get("/search-page?q=kofi").Body.String()
	assert.Contains(t, body, "Kofi Bakes Annex")

	assertRedirect(t, b.get("/search-page?q=KOFI+BAKES&find=1"), "/profile/"+testBusiness.ID.String())
	assert.Contains(t, b.get("/search-page?q=kofi&find=1").Body.String(), "Business not found")
}

func TestProfile(t *testing.T) {
	api := &fakeAPI{
		getBusiness: func(id uuid.UUID) (*dto.Business, error) {
			if id != testBusiness.ID {
				return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Business not found"}
			}
			business := testBusiness

			return &business, nil
		},
		listProducts: func(uuid.UUID) ([]dto.Product, error) { return nil, nil },
		listReviews:  func(uuid.UUID) ([]dto.Review, error) { return nil, nil },
	}
	b := newBrowser(t, api)

	rec := b.get("/profile/" + testBusiness.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Average Rating:</strong> N/A")

	rec = b.get("/profile/" + uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Business not found")
}

func TestReview_SubmitFlow(t *testing.T) {
	productID := uuid.New()
	api := &fakeAPI{
		getBusiness: func(uuid.UUID) (*dto.Business, error) {
			business := testBusiness

			return &business, nil
		},
		listProducts: func(uuid.UUID) ([]dto.Product, error) {
			return []dto.Product{{ID: productID, Name: "Meat pie"}}, nil
		},
	}
	var submitted []dto.CreateReviewRequest
	api.createReview = func(req dto.CreateReviewRequest) (*dto.Review, error) {
		submitted = append(submitted, req)

		return &dto.Review{ID: uuid.New()}, nil
	}
	b := newBrowser(t, api)

	page := b.get("/review?business=" + testBusiness.ID.String()).Body.String()
	assert.Contains(t, page, "Meat pie")

	rec := b.post("/review", url.Values{"business": {testBusiness.ID.String()}, "product": {productID.String()}, "rating": {"4"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please complete all fields.")
	assert.Empty(t, submitted)

	rec = b.post("/review", url.Values{
		"business":      {testBusiness.ID.String()},
		"product":       {productID.String()},
		"rating":        {"4"},
		"customer_name": {"Ama"},
		"text":          {"Great pies"},
	})
	assertRedirect(t, rec, "/thank-you")
	require.Len(t, submitted, 1)
	assert.Equal(t, dto.CreateReviewRequest{Product: productID, CustomerName: "Ama", Text: "Great pies", Rating: 4}, submitted[0])
}

func TestQRProxy(t *testing.T) {
	api := &fakeAPI{businessQR: func(uuid.UUID) ([]byte, error) {
		return []byte("png-bytes"), nil
	}}
	b := newBrowser(t, api)

	rec := b.get("/qr/" + testBusiness.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestSessionCookieAttributes(t *testing.T) {
	b := newBrowser(t, loggedInAPI())
	b.post("/business-login", url.Values{"email": {"k@b.com"}, "password": {"x"}})

	require.NotNil(t, b.cookie)
	assert.True(t, b.cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, b.cookie.SameSite)
	assert.Equal(t, "/", b.cookie.Path)

	first := b.cookie.Value
	b.get("/thank-you")
	assert.Equal(t, first, b.cookie.Value)
}

func TestSession_AnonymousRequestsStoreNothing(t *testing.T) {
	b := newBrowser(t, &fakeAPI{})

	for range 100 {
		b.cookie = nil
		assert.Equal(t, http.StatusOK, b.get("/health").Code)
		assert.Equal(t, http.StatusOK, b.get("/").Code)
		b.get("/static/style.css")
		b.get("/thank-you")
	}
	assert.Zero(t, b.store.Len())
	assert.Nil(t, b.cookie)

	// A toast is state, so the redirect that sets it also issues the cookie.
	assertRedirect(t, b.get("/business-dashboard"), "/business-login")
	require.NotNil(t, b.cookie)
	assert.Equal(t, 1, b.store.Len())
	assert.Contains(t, b.get("/business-login").Body.String(), "Please log in.")

	// Once known, the session keeps its id even after the toast is shown.
	id := b.cookie.Value
	b.get("/")
	assert.Equal(t, id, b.cookie.Value)
	assert.Equal(t, 1, b.store.Len())
}

func TestSession_UnknownCookieIsReplacedOnlyWhenNeeded(t *testing.T) {
	b := newBrowser(t, &fakeAPI{})
	b.cookie = &http.Cookie{Name: "sid", Value: "forged"}

	b.get("/")
	assert.Zero(t, b.store.Len())
	assert.Equal(t, "forged", b.cookie.Value)

	b.get("/business-dashboard")
	assert.Equal(t, 1, b.store.Len())
	assert.NotEqual(t, "forged", b.cookie.Value)
}
