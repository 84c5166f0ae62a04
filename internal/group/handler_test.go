package group_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grouptivate/grouptivate-api/internal/auth"
	"github.com/grouptivate/grouptivate-api/internal/group"
)

func TestHandlerStatusMapping(t *testing.T) {
	f := setup(t)
	h := group.NewHandler(f.groups)
	alice := f.seedUser(t, "alice")
	bob := f.seedUser(t, "bob")

	authedReq := func(method, target, body, userID string) *http.Request {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		ctx := auth.WithClaims(req.Context(), &auth.UserClaims{UserID: userID})
		return req.WithContext(ctx)
	}

	created, err := f.groups.Create(context.Background(), alice.ID.String(), group.CreateGroupDTO{
		GroupName: "Crew", Interval: group.IntervalDaily,
	})
	require.NoError(t, err)

	t.Run("MissingClaimsUnauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Get(w, httptest.NewRequest(http.MethodGet, "/group?groupId="+created.GroupID, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UnknownGroupNotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Get(w, authedReq(http.MethodGet, "/group?groupId="+uuid.NewString(), "", alice.ID.String()))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("NonMemberForbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Get(w, authedReq(http.MethodGet, "/group?groupId="+created.GroupID, "", bob.ID.String()))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("MalformedBodyBadRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Create(w, authedReq(http.MethodPost, "/group", "{", alice.ID.String()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingGroupIdBadRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Get(w, authedReq(http.MethodGet, "/group", "", alice.ID.String()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
