package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"botaniq/internal/app"
	"botaniq/internal/config"
	"botaniq/internal/database"
	"botaniq/internal/models"
	"botaniq/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "Str0ng!pass"

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	uploadDir string
}

// setupApp builds the full app on a throwaway SQLite file.
func setupApp(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Config{
		DBDriver:       "sqlite",
		DatabaseDSN:    filepath.Join(dir, "test.db"),
		DBLogLevel:     "silent",
		DBMaxOpenConns: 1,
		JWTSecret:      "test_jwt_secret",
		UploadDir:      filepath.Join(dir, "uploads"),
		MaxUploadBytes: 10 << 20,
		CORSOrigins:    config.DefaultCORSOrigins,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	avatars, err := storage.NewAvatarStore(cfg.UploadDir)
	require.NoError(t, err)

	return &testEnv{
		app:       app.New(app.Dependencies{Config: cfg, DB: db, Avatars: avatars}),
		db:        db,
		uploadDir: cfg.UploadDir,
	}
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := e.app.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)
	return decode(t, resp)
}

// serve runs the app on a loopback listener and returns its base URL.
// Requests sent there go through the same connection handling as production.
func (e *testEnv) serve(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = e.app.Listener(ln)
	}()
	t.Cleanup(func() { _ = e.app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func decode(t *testing.T, resp *http.Response) (int, map[string]interface{}) {
	t.Helper()
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

// signup registers and logs in a user, returning its token and id.
func (e *testEnv) signup(t *testing.T, name, email string) (string, string) {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/register", "", map[string]string{
		"nama": name, "email": email, "password": testPassword,
	})
	require.Equal(t, http.StatusCreated, status, body)

	status, body = e.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": email, "password": testPassword,
	})
	require.Equal(t, http.StatusOK, status, body)

	user := body["user"].(map[string]interface{})
	return body["token"].(string), user["id"].(string)
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRegisterPasswordRules(t *testing.T) {
	env := setupApp(t)

	tests := []struct {
		name    string
		body    map[string]string
		message string
	}{
		{"missing name", map[string]string{"email": "a@b.co", "password": testPassword}, "nama is required"},
		{"bad email", map[string]string{"nama": "A", "email": "not-an-email", "password": testPassword}, "email format is invalid"},
		{"too short", map[string]string{"nama": "A", "email": "a@b.co", "password": "S0r!t"}, "password must be at least 8 characters"},
		{"no digit", map[string]string{"nama": "A", "email": "a@b.co", "password": "Strong!pass"}, "password must contain at least one digit"},
		{"no lowercase", map[string]string{"nama": "A", "email": "a@b.co", "password": "STR0NG!PASS"}, "password must contain at least one lowercase letter"},
		{"no uppercase", map[string]string{"nama": "A", "email": "a@b.co", "password": "str0ng!pass"}, "password must contain at least one uppercase letter"},
		{"no symbol", map[string]string{"nama": "A", "email": "a@b.co", "password": "Str0ngpass"}, "password must contain at least one symbol"},
		{"whitespace", map[string]string{"nama": "A", "email": "a@b.co", "password": "Str0ng! pass"}, "password must not contain whitespace"},
		{"non-ascii uppercase", map[string]string{"nama": "A", "email": "a@b.co", "password": "abcdefÉ1!"}, "password must contain at least one uppercase letter"},
		{"non-ascii lowercase", map[string]string{"nama": "A", "email": "a@b.co", "password": "ÀBCDEFé1!"}, "password must contain at least one lowercase letter"},
		{"non-ascii digit", map[string]string{"nama": "A", "email": "a@b.co", "password": "Abcdefg٣!"}, "password must contain at least one digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.do(t, http.MethodPost, "/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "fail", body["status"])
			assert.Contains(t, body["message"], tt.message)
		})
	}

	assert.Zero(t, count(t, env.db, &models.User{}), "rejected registrations must not create users")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupApp(t)
	env.signup(t, "Sari", "sari@example.com")

	status, body := env.do(t, http.MethodPost, "/register", "", map[string]string{
		"nama": "Other", "email": "sari@example.com", "password": testPassword,
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email already in use", body["message"])
	assert.EqualValues(t, 1, count(t, env.db, &models.User{}))
}

func TestLogin(t *testing.T) {
	env := setupApp(t)
	_, userID := env.signup(t, "Sari", "sari@example.com")

	t.Run("success", func(t *testing.T) {
		status, body := env.do(t, http.MethodPost, "/login", "", map[string]string{
			"email": "sari@example.com", "password": testPassword,
		})
		assert.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, userID, user["id"])
		assert.Equal(t, "Sari", user["nama"])
		assert.NotContains(t, user, "password")
	})

	t.Run("wrong password", func(t *testing.T) {
		status, body := env.do(t, http.MethodPost, "/login", "", map[string]string{
			"email": "sari@example.com", "password": "Wr0ng!pass",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "wrong password", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		status, body := env.do(t, http.MethodPost, "/login", "", map[string]string{
			"email": "nobody@example.com", "password": testPassword,
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "email not found", body["message"])
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupApp(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			status, body := env.send(t, req)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "fail", body["status"])
		})
	}

	status, _ := env.do(t, http.MethodPost, "/manajemen", "", map[string]string{"family": "Araceae"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Zero(t, count(t, env.db, &models.GardenEntry{}))
}

func TestGetProfile(t *testing.T) {
	env := setupApp(t)
	token, userID := env.signup(t, "Sari", "sari@example.com")

	status, body := env.do(t, http.MethodGet, "/profile", token, nil)
	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, userID, data["id"])
	assert.Equal(t, "sari@example.com", data["email"])
	assert.NotContains(t, data, "password")
}

func TestCreateRecommendationEnrollsGarden(t *testing.T) {
	env := setupApp(t)
	token, userID := env.signup(t, "Sari", "sari@example.com")

	status, body := env.do(t, http.MethodPost, "/rekomendasi", token, map[string]interface{}{
		"latin":            "Monstera deliciosa",
		"family":           "Araceae",
		"climate":          "Tropical",
		"temp_max_celsius": 30,
	})
	require.Equal(t, http.StatusCreated, status, body)
	assert.NotEmpty(t, body["rekomendasiId"])
	assert.NotEmpty(t, body["manajemenId"])

	assert.EqualValues(t, 1, count(t, env.db, &models.Recommendation{}))
	assert.EqualValues(t, 1, count(t, env.db, &models.GardenEntry{}))

	var entry models.GardenEntry
	require.NoError(t, env.db.First(&entry, "id = ?", body["manajemenId"]).Error)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "Araceae", entry.Family)

	status, body = env.do(t, http.MethodGet, "/rekomendasi", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)
}

func TestCreateRecommendationRequiresFamily(t *testing.T) {
	env := setupApp(t)
	token, _ := env.signup(t, "Sari", "sari@example.com")

	status, body := env.do(t, http.MethodPost, "/rekomendasi", token, map[string]string{"latin": "Ficus"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "family is required", body["message"])
	assert.Zero(t, count(t, env.db, &models.Recommendation{}))
}

// failGardenInserts makes every insert into the garden table fail.
func failGardenInserts(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_garden_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == (models.GardenEntry{}).TableName() {
			tx.AddError(errors.New("forced garden insert failure"))
		}
	})
	require.NoError(t, err)
}

func TestCreateRecommendationRollsBackOnGardenFailure(t *testing.T) {
	env := setupApp(t)
	token, _ := env.signup(t, "Sari", "sari@example.com")
	failGardenInserts(t, env.db)

	status, body := env.do(t, http.MethodPost, "/rekomendasi", token, map[string]string{"family": "Araceae"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "failed to add data", body["message"])

	assert.Zero(t, count(t, env.db, &models.Recommendation{}))
	assert.Zero(t, count(t, env.db, &models.GardenEntry{}))
}

func TestCreateGardenEntryReusesCatalogFamily(t *testing.T) {
	env := setupApp(t)
	token, userID := env.signup(t, "Sari", "sari@example.com")

	for _, name := range []string{"Monstera", "Philodendron"} {
		status, body := env.do(t, http.MethodPost, "/manajemen", token, map[string]string{
			"plant_name": name,
			"family":     "Araceae",
			"watering":   "weekly",
		})
		require.Equal(t, http.StatusCreated, status, body)
		assert.NotEmpty(t, body["manajemenId"])
	}

	assert.EqualValues(t, 2, count(t, env.db, &models.GardenEntry{}))
	assert.EqualValues(t, 1, count(t, env.db, &models.Recommendation{}))

	status, body := env.do(t, http.MethodGet, "/manajemen/user/"+userID, "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, body = env.do(t, http.MethodGet, "/manajemen/user/someone-else", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 0)
}

func TestCreateGardenEntryRollsBackCatalogRow(t *testing.T) {
	env := setupApp(t)
	token, _ := env.signup(t, "Sari", "sari@example.com")
	failGardenInserts(t, env.db)

	status, _ := env.do(t, http.MethodPost, "/manajemen", token, map[string]string{"family": "Cactaceae"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Zero(t, count(t, env.db, &models.Recommendation{}))
}

func TestGardenOwnership(t *testing.T) {
	env := setupApp(t)
	ownerToken, _ := env.signup(t, "Owner", "owner@example.com")
	otherToken, _ := env.signup(t, "Other", "other@example.com")

	status, body := env.do(t, http.MethodPost, "/manajemen", ownerToken, map[string]string{
		"plant_name": "Monstera", "family": "Araceae", "soil": "loam",
	})
	require.Equal(t, http.StatusCreated, status, body)
	id := body["manajemenId"].(string)

	changes := map[string]string{"plant_name": "Stolen", "soil": "sand"}

	t.Run("other user cannot update", func(t *testing.T) {
		status, body := env.do(t, http.MethodPut, "/manajemen/"+id, otherToken, changes)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "data not found or access denied", body["message"])

		var entry models.GardenEntry
		require.NoError(t, env.db.First(&entry, "id = ?", id).Error)
		assert.Equal(t, "Monstera", entry.PlantName)
		assert.Equal(t, "loam", entry.Soil)
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		status, _ := env.do(t, http.MethodDelete, "/manajemen/"+id, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.EqualValues(t, 1, count(t, env.db, &models.GardenEntry{}))
	})

	t.Run("unknown id looks the same as a foreign one", func(t *testing.T) {
		status, body := env.do(t, http.MethodDelete, "/manajemen/does-not-exist", ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "data not found or access denied", body["message"])
	})

	t.Run("owner updates", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPut, "/manajemen/"+id, ownerToken, map[string]string{
			"plant_name": "Monstera Thai", "soil": "sand",
		})
		assert.Equal(t, http.StatusOK, status)

		var entry models.GardenEntry
		require.NoError(t, env.db.First(&entry, "id = ?", id).Error)
		assert.Equal(t, "Monstera Thai", entry.PlantName)
		assert.Equal(t, "sand", entry.Soil)
		assert.Equal(t, "Araceae", entry.Family)
	})

	t.Run("owner deletes", func(t *testing.T) {
		status, _ := env.do(t, http.MethodDelete, "/manajemen/"+id, ownerToken, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Zero(t, count(t, env.db, &models.GardenEntry{}))
	})
}

// profileForm builds a multipart body; a non-empty avatar adds a "foto" file.
func profileForm(t *testing.T, fields map[string]string, avatarName string, avatar []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if avatarName != "" {
		part, err := w.CreateFormFile("foto", avatarName)
		require.NoError(t, err)
		_, err = part.Write(avatar)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func (e *testEnv) putProfile(t *testing.T, userID, token string, fields map[string]string, avatarName string, avatar []byte) (int, map[string]interface{}) {
	t.Helper()
	body, contentType := profileForm(t, fields, avatarName, avatar)
	req := httptest.NewRequest(http.MethodPut, "/users/"+userID, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	return e.send(t, req)
}

func TestUpdateProfile(t *testing.T) {
	env := setupApp(t)
	token, userID := env.signup(t, "Sari", "sari@example.com")

	status, body := env.putProfile(t, userID, token, map[string]string{
		"nama_belakang": "Wulandari",
		"kota":          "Bandung",
	}, "me.PNG", []byte("first-avatar"))
	require.Equal(t, http.StatusOK, status, body)

	data := body["data"].(map[string]interface{})
	firstAvatar := data["foto"].(string)
	assert.True(t, strings.HasPrefix(firstAvatar, "profile-"))
	assert.True(t, strings.HasSuffix(firstAvatar, ".png"))
	content, err := os.ReadFile(filepath.Join(env.uploadDir, firstAvatar))
	require.NoError(t, err)
	assert.Equal(t, "first-avatar", string(content))

	t.Run("omitted fields keep their values", func(t *testing.T) {
		status, body := env.putProfile(t, userID, token, map[string]string{"kota": "Jakarta"}, "", nil)
		require.Equal(t, http.StatusOK, status, body)

		var user models.User
		require.NoError(t, env.db.First(&user, "id = ?", userID).Error)
		assert.Equal(t, "Sari", user.Name)
		assert.Equal(t, "Wulandari", user.LastName)
		assert.Equal(t, "Jakarta", user.City)
		assert.Equal(t, firstAvatar, user.Avatar)
	})

	t.Run("new avatar replaces the old file", func(t *testing.T) {
		status, body := env.putProfile(t, userID, token, nil, "me.jpg", []byte("second-avatar"))
		require.Equal(t, http.StatusOK, status, body)

		secondAvatar := body["data"].(map[string]interface{})["foto"].(string)
		assert.NotEqual(t, firstAvatar, secondAvatar)
		assert.FileExists(t, filepath.Join(env.uploadDir, secondAvatar))
		assert.NoFileExists(t, filepath.Join(env.uploadDir, firstAvatar))

		staged, err := os.ReadDir(filepath.Join(env.uploadDir, storage.StagingDirName))
		require.NoError(t, err)
		assert.Empty(t, staged)

		req := httptest.NewRequest(http.MethodGet, "/uploads/"+secondAvatar, nil)
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		served, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "second-avatar", string(served))
	})

	t.Run("cannot edit another user", func(t *testing.T) {
		otherToken, _ := env.signup(t, "Other", "other@example.com")
		status, body := env.putProfile(t, userID, otherToken, map[string]string{"kota": "Hacked"}, "x.png", []byte("x"))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "user not found or access denied", body["message"])

		var user models.User
		require.NoError(t, env.db.First(&user, "id = ?", userID).Error)
		assert.Equal(t, "Jakarta", user.City)

		staged, err := os.ReadDir(filepath.Join(env.uploadDir, storage.StagingDirName))
		require.NoError(t, err)
		assert.Empty(t, staged)
	})
}

func TestBodyLimit(t *testing.T) {
	env := setupApp(t, func(cfg *config.Config) { cfg.MaxUploadBytes = 1024 })
	baseURL := env.serve(t)

	resp, err := http.Post(baseURL+"/register", "application/json",
		strings.NewReader(`{"nama":"`+strings.Repeat("a", 4096)+`"}`))
	require.NoError(t, err)
	status, body := decode(t, resp)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, "payload too large", body["message"])
	assert.Zero(t, count(t, env.db, &models.User{}))

	t.Run("oversized avatar is rejected before staging", func(t *testing.T) {
		token, userID := env.signup(t, "Sari", "sari@example.com")

		form, contentType := profileForm(t, map[string]string{"kota": "Bandung"}, "big.png", bytes.Repeat([]byte("x"), 4096))
		req, err := http.NewRequest(http.MethodPut, baseURL+"/users/"+userID, form)
		require.NoError(t, err)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)

		status, body := decode(t, resp)
		assert.Equal(t, http.StatusRequestEntityTooLarge, status)
		assert.Equal(t, "payload too large", body["message"])

		var user models.User
		require.NoError(t, env.db.First(&user, "id = ?", userID).Error)
		assert.Empty(t, user.City)
		assert.Empty(t, user.Avatar)

		staged, err := os.ReadDir(filepath.Join(env.uploadDir, storage.StagingDirName))
		require.NoError(t, err)
		assert.Empty(t, staged)
	})
}

func TestUpdateProfileStreamsLargeAvatar(t *testing.T) {
	env := setupApp(t)
	baseURL := env.serve(t)
	token, userID := env.signup(t, "Sari", "sari@example.com")

	avatar := bytes.Repeat([]byte("0123456789abcdef"), 64<<10) // 1 MiB
	form, contentType := profileForm(t, map[string]string{"negara": "Indonesia"}, "big.jpg", avatar)
	req, err := http.NewRequest(http.MethodPut, baseURL+"/users/"+userID, form)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	status, body := decode(t, resp)
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Indonesia", data["negara"])

	stored, err := os.ReadFile(filepath.Join(env.uploadDir, data["foto"].(string)))
	require.NoError(t, err)
	assert.Equal(t, avatar, stored)
}

func TestUpdateProfileRejectsNonMultipart(t *testing.T) {
	env := setupApp(t)
	token, userID := env.signup(t, "Sari", "sari@example.com")

	status, body := env.do(t, http.MethodPut, "/users/"+userID, token, map[string]string{"kota": "Bandung"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "request must be multipart/form-data", body["message"])
}

func TestPlantReferenceTables(t *testing.T) {
	env := setupApp(t)
	require.NoError(t, env.db.Create(&[]models.Plant{
		{Latin: "Monstera deliciosa", Common: "Swiss cheese plant", Family: "Araceae"},
		{Latin: "Ficus lyrata", Common: "Fiddle-leaf fig", Family: "Moraceae"},
	}).Error)
	require.NoError(t, env.db.Create(&models.PlantFamily{Plant: "Monstera deliciosa", Family: "Araceae"}).Error)

	status, body := env.do(t, http.MethodGet, "/plants", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, body = env.do(t, http.MethodGet, "/plantsandfamily", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)
}

func TestHealthEndpoints(t *testing.T) {
	env := setupApp(t)

	status, body := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	status, body = env.do(t, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	require.NoError(t, database.Close(env.db))
	status, body = env.do(t, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, "database unavailable", body["details"])
}

func TestCORSPreflight(t *testing.T) {
	env := setupApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/users/abc", nil)
	req.Header.Set("Origin", "https://saria4558.github.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "authorization,ngrok-skip-browser-warning")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://saria4558.github.io", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "ngrok-skip-browser-warning")
	assert.Equal(t, "86400", resp.Header.Get("Access-Control-Max-Age"))

	req = httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
