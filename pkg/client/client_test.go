package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_LoginTransition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds["username"])

		jsonResponse(w, http.StatusOK, `{
			"code": 200, "message": "login successful",
			"data": {"token": "t1", "user": {"id": "u1", "username": "alice", "realname": "Alice"}}
		}`)
	}))
	defer srv.Close()

	session := NewSession()
	c := New(srv.URL, session)

	require.False(t, session.IsAuthenticated())

	user, err := c.Login(context.Background(), "alice", "x")
	require.NoError(t, err)

	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "t1", session.Token())
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice", session.User().Username)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		jsonResponse(w, http.StatusOK, `{"code":200,"message":"ok","data":{"list":[],"total":0,"current":1,"size":10}}`)
	}))
	defer srv.Close()

	session := NewSession()
	session.set("t1", &User{Username: "alice"})
	c := New(srv.URL, session)

	_, err := c.ListUsers(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", gotAuth)
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, `{"code":401,"message":"token has been revoked","data":null}`)
	}))
	defer srv.Close()

	session := NewSession()
	session.set("stale", &User{Username: "alice"})
	c := New(srv.URL, session)

	_, err := c.ListUsers(context.Background(), ListQuery{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
}

func TestClient_LogoutClearsSessionEvenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusInternalServerError, `{"code":500,"message":"internal error","data":null}`)
	}))
	defer srv.Close()

	session := NewSession()
	session.set("t1", &User{Username: "alice"})
	c := New(srv.URL, session)

	err := c.Logout(context.Background())
	require.Error(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestClient_NormalizesListShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{
			"code": 200, "message": "ok",
			"data": {"list": [{"username": "alice"}], "total": 1, "current": 2, "size": 10}
		}`)
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession())
	page, err := c.ListUsers(context.Background(), ListQuery{Page: 2})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 2, page.Current)
	assert.Equal(t, 10, page.Size)
}

func TestClient_NormalizesRecordsShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{
			"code": 200, "message": "ok",
			"data": {"records": [{"code": "HQ", "name": "Headquarters"}], "total": 1, "current": 1, "size": 10}
		}`)
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession())
	page, err := c.ListDepartments(context.Background(), ListQuery{})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "HQ", page.Items[0].Code)
}

func TestClient_APIErrorCarriesEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusConflict, `{"code":409,"message":"username already exists","data":null}`)
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession())
	_, err := c.CreateUser(context.Background(), CreateUserInput{Username: "alice"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "username already exists", apiErr.Message)
}

func TestClient_ResetUserPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/users/u1/reset-password", r.URL.Path)
		jsonResponse(w, http.StatusOK, `{"code":200,"message":"password reset","data":{"password":"UD-0A1B2C3D"}}`)
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession())
	pw, err := c.ResetUserPassword(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "UD-0A1B2C3D", pw)
}

func TestSession_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s1, err := NewPersistentSession(path)
	require.NoError(t, err)
	s1.set("t1", &User{Username: "alice"})

	s2, err := NewPersistentSession(path)
	require.NoError(t, err)
	assert.True(t, s2.IsAuthenticated())
	assert.Equal(t, "t1", s2.Token())
	assert.Equal(t, "alice", s2.User().Username)

	s2.Clear()

	s3, err := NewPersistentSession(path)
	require.NoError(t, err)
	assert.False(t, s3.IsAuthenticated())
}
