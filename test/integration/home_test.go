package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"karigar_backend/internal/models"
	"karigar_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestHome_ListsProvidersInRegistrationOrder - главная показывает всех
// провайдеров и только их
func TestHome_ListsProvidersInRegistrationOrder(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateUser(t, ts.DB, &models.User{
		Username: "bob", Role: models.UserRoleProvider, Category: "Plumber",
	})
	helpers.CreateUser(t, ts.DB, &models.User{
		Username: "alice", Role: models.UserRoleCustomer,
	})
	helpers.CreateUser(t, ts.DB, &models.User{
		Username: "carol", Role: models.UserRoleProvider, Category: "Electrician",
	})

	res, body := ts.Get(t, "/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "bob")
	assert.Contains(t, body, "Plumber")
	assert.Contains(t, body, "carol")
	assert.NotContains(t, body, "alice")
	assert.Less(t, strings.Index(body, "bob"), strings.Index(body, "carol"))
}

// TestHome_BookLinkOnlyForCustomers - гости и провайдеры ссылок
// на бронирование не видят
func TestHome_BookLinkOnlyForCustomers(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateUser(t, ts.DB, &models.User{
		Username: "bob", Role: models.UserRoleProvider, Category: "Plumber",
	})

	_, body := ts.Get(t, "/")
	assert.NotContains(t, body, "/book/")

	helpers.Login(t, ts, "alice", "customer", "")
	_, body = ts.Get(t, "/")
	assert.Contains(t, body, "/book/")
}

// TestHealth - liveness probe
func TestHealth(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.Get(t, "/health")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "ok")
}

// TestMetrics - /metrics отдает экспозицию prometheus
func TestMetrics(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.Get(t, "/metrics")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "go_goroutines")
}
