package salesforce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

func TestQuery_SendsBearerAndEncodedSOQL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/data/v60.0/query", r.URL.Path)
		assert.Equal(t, "SELECT Id FROM Patient__c", r.URL.Query().Get("q"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"totalSize":1,"done":true,"records":[{"Id":"p1","Name":"Ada"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	got, err := Query[record](context.Background(), c, "SELECT Id FROM Patient__c")

	require.NoError(t, err)
	assert.Equal(t, []record{{ID: "p1", Name: "Ada"}}, got)
}

func TestQuery_FollowsNextRecordsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/services/data/v60.0/query/01gNEXT-2000" {
			w.Write([]byte(`{"done":true,"records":[{"Id":"p2"}]}`))
			return
		}
		w.Write([]byte(`{"done":false,"nextRecordsUrl":"/services/data/v60.0/query/01gNEXT-2000","records":[{"Id":"p1"}]}`))
	}))
	defer srv.Close()

	got, err := Query[record](context.Background(), NewClient(srv.URL, "secret"), "SELECT Id FROM Patient__c")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[1].ID)
}

func TestQuery_MissingTokenFailsWithoutNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	_, err := Query[record](context.Background(), NewClient(srv.URL, ""), "SELECT Id FROM Doctor__c")

	assert.ErrorIs(t, err, ErrMissingAccessToken)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestQuery_SurfacesFirstErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`[{"message":"No such column 'Foo__c'","errorCode":"INVALID_FIELD"},{"message":"second"}]`))
	}))
	defer srv.Close()

	_, err := Query[record](context.Background(), NewClient(srv.URL, "secret"), "SELECT Foo__c FROM Patient__c")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "INVALID_FIELD", apiErr.ErrorCode)
	assert.Equal(t, "No such column 'Foo__c'", err.Error())
}

func TestQuery_UnparseableErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	_, err := Query[record](context.Background(), NewClient(srv.URL, "secret"), "SELECT Id FROM Patient__c")

	require.Error(t, err)
	assert.Equal(t, "Salesforce API Error", err.Error())
}

func TestCreate_PostsFieldsAndReturnsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/services/data/v60.0/sobjects/Patient__c", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body["First_Name__c"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"a0P000000000001","success":true,"errors":[]}`))
	}))
	defer srv.Close()

	id, err := NewClient(srv.URL, "secret").Create(context.Background(), "Patient__c", map[string]any{"First_Name__c": "Ada"})

	require.NoError(t, err)
	assert.Equal(t, "a0P000000000001", id)
}

func TestUpdate_PatchesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/services/data/v59.0/sobjects/Appointment__c/a01", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", WithAPIVersion("v59.0"))
	err := c.Update(context.Background(), "Appointment__c", "a01", map[string]any{"Status__c": "Completed"})

	assert.NoError(t, err)
}

func TestUpdate_RequiresID(t *testing.T) {
	err := NewClient("http://unused", "secret").Update(context.Background(), "Appointment__c", "", nil)
	assert.Error(t, err)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `'O\'Brien'`, Quote("O'Brien"))
	assert.Equal(t, `'a\\b'`, Quote(`a\b`))
}

func TestDateTimeLiteral(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	assert.Equal(t, "2026-10-19T01:00:00Z", DateTimeLiteral(time.Date(2026, 10, 19, 8, 0, 0, 0, loc)))
}
