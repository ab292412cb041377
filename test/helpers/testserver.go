package helpers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"karigar_backend/database"
	"karigar_backend/internal/app"
	"karigar_backend/internal/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestServer поднимает полное приложение поверх httptest с отдельной
// in-memory sqlite базой на каждый сервер. Клиент несет cookie jar
// (сессии), но не следует редиректам: тесты проверяют Location сами.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Client *http.Client
}

var loadConfigOnce sync.Once

// NewTestServer создает и настраивает тестовый сервер и БД
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	// Конфиг глобальный, параллельные тесты загружают его один раз
	loadConfigOnce.Do(config.LoadConfig)
	cfg := config.GetConfig()

	// Уникальное имя, чтобы параллельные серверы не делили одну память
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(dsn)
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД (%s): %v", dsn, err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Не удалось создать cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &TestServer{
		Server: server,
		DB:     db,
		Client: client,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// Get выполняет GET и возвращает ответ вместе с телом
func (ts *TestServer) Get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	res, err := ts.Client.Get(ts.Server.URL + path)
	if err != nil {
		t.Fatalf("Ошибка отправки GET %s: %v", path, err)
	}
	return res, readBody(t, res)
}

// PostForm отправляет HTML-форму и возвращает ответ вместе с телом
func (ts *TestServer) PostForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	res, err := ts.Client.Post(
		ts.Server.URL+path,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		t.Fatalf("Ошибка отправки POST %s: %v", path, err)
	}
	return res, readBody(t, res)
}

// ClearCookies сбрасывает сессию клиента (эквивалент нового браузера)
func (ts *TestServer) ClearCookies(t *testing.T) {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Не удалось создать cookie jar: %v", err)
	}
	ts.Client.Jar = jar
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return string(body)
}
