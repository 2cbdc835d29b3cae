package inventory_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rolegraph/internal/adapters/inventory"
	"go.trai.ch/rolegraph/internal/core/domain"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*inventory.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := inventory.NewClient(domain.APIConfig{
		BaseURL:  server.URL + "/api/",
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	return client, server
}

func TestClient_ListRolesPaginates(t *testing.T) {
	var serverURL string
	client, server := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "alice" || pass != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/api/Roles", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("page_size"))

		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `{"items":[{"name":"checkout-1"}],"meta":{"next":null}}`)
			return
		}
		fmt.Fprintf(w, `{"items":[{"name":"api"},{"name":"auth"}],"meta":{"next":"%s/api/Roles?page=2"}}`, serverURL)
	})
	serverURL = server.URL

	ctx := context.Background()
	first, err := client.ListRoles(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "auth"}, first.Roles)
	require.NotEmpty(t, first.Next)

	second, err := client.ListRoles(ctx, first.Next)
	require.NoError(t, err)
	assert.Equal(t, []string{"checkout-1"}, second.Roles)
	assert.Empty(t, second.Next)
}

func TestClient_ListServiceEntriesMarksMalformed(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ServiceEntries", r.URL.Path)
		fmt.Fprint(w, `{"items":[
			{"service_name":"api-1","service_configuration":{"backends":[{"service_name":"auth"},{"service_name":"db-mysql"}]}},
			{"service_name":"broken","service_configuration":{}},
			{"service_name":"weird","service_configuration":"not-an-object"},
			{"service_name":"bare"}
		],"meta":{"next":null}}`)
	})

	page, err := client.ListServiceEntries(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Entries, 4)

	assert.Equal(t, domain.ServiceEntry{Role: "api-1", Backends: []string{"auth", "db-mysql"}}, page.Entries[0])
	for _, entry := range page.Entries[1:] {
		assert.True(t, entry.Malformed, "expected %s to be malformed", entry.Role)
		assert.Empty(t, entry.Backends)
	}
}

func TestClient_ListRules(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Roles/payments/Rules", r.URL.Path)
		fmt.Fprint(w, `{"items":[{"ingress_role":"checkout-2"},{"ingress_role":"billing"}],"meta":{"next":null}}`)
	})

	page, err := client.ListRules(context.Background(), "payments", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"checkout-2", "billing"}, page.IngressRoles)
	assert.Empty(t, page.Next)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: "inventory API request failed",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"items": [`)
			},
			wantErr: "failed to parse inventory API response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newClient(t, tt.handler)
			_, err := client.ListRules(context.Background(), "api", "")
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"items":[],"meta":{"next":null}}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListRoles(ctx, "")
	assert.Error(t, err)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := inventory.NewClient(domain.APIConfig{})
	assert.ErrorContains(t, err, "invalid configuration")
}
