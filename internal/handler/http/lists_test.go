package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmalhoy/go-trip-planner/internal/store"
	"github.com/jmalhoy/go-trip-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /users/{username}/lists
// ─────────────────────────────────────────────

func TestCreateList_OwnerFromPath(t *testing.T) {
	lists := &mockListService{
		createFn: func(_ context.Context, username string, list models.DestinationList) (models.DestinationList, error) {
			assert.Equal(t, "sancho", username)
			list.ID = 1
			list.Username = username
			return list, nil
		},
	}
	h := newTestHandler(t, nil, nil, lists, nil)

	rec := doRequest(t, h, http.MethodPost, "/users/sancho/lists", selfToken,
		`{"searched_address":"El Toboso, Spain"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.ListResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, int64(1), body.List.ID)
	assert.Equal(t, "sancho", body.List.Username)
}

func TestCreateList_ForeignUserRejected(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/users/don.quixote/lists", selfToken,
		`{"searched_address":"El Toboso, Spain"}`)

	requireErrorEnvelope(t, rec, http.StatusUnauthorized)
}

// ─────────────────────────────────────────────
// GET /lists/{id}
// ─────────────────────────────────────────────

func TestGetList_IncludesItems(t *testing.T) {
	lists := &mockListService{
		getFn: func(_ context.Context, id int64) (models.DestinationList, error) {
			return models.DestinationList{
				ID:    id,
				Items: []models.ListItem{{ID: 1, ListID: id, Item: "lance"}},
			}, nil
		},
	}
	h := newTestHandler(t, nil, nil, lists, nil)

	rec := doRequest(t, h, http.MethodGet, "/lists/7", selfToken, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ListResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, int64(7), body.List.ID)
	require.Len(t, body.List.Items, 1)
}

func TestGetList_NotFound(t *testing.T) {
	lists := &mockListService{
		getFn: func(_ context.Context, _ int64) (models.DestinationList, error) {
			return models.DestinationList{}, store.ErrListNotFound
		},
	}
	h := newTestHandler(t, nil, nil, lists, nil)

	rec := doRequest(t, h, http.MethodGet, "/lists/404", selfToken, "")

	requireErrorEnvelope(t, rec, http.StatusNotFound)
}

func TestGetList_NonNumericID(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockListService{}, nil)

	rec := doRequest(t, h, http.MethodGet, "/lists/abc", selfToken, "")

	requireErrorEnvelope(t, rec, http.StatusBadRequest)
}

// ─────────────────────────────────────────────
// PATCH / DELETE /lists/{id}
// ─────────────────────────────────────────────

func TestUpdateList_Envelope(t *testing.T) {
	lists := &mockListService{
		updateFn: func(_ context.Context, id int64, upd models.DestinationListUpdate) (models.DestinationList, error) {
			require.NotNil(t, upd.SearchedAddress)
			return models.DestinationList{ID: id, SearchedAddress: *upd.SearchedAddress}, nil
		},
	}
	h := newTestHandler(t, nil, nil, lists, nil)

	rec := doRequest(t, h, http.MethodPatch, "/lists/7", selfToken,
		`{"searched_address":"Barcelona, Spain"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ListResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Barcelona, Spain", body.List.SearchedAddress)
}

func TestDeleteList_Acknowledged(t *testing.T) {
	lists := &mockListService{
		removeFn: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(7), id)
			return nil
		},
	}
	h := newTestHandler(t, nil, nil, lists, nil)

	rec := doRequest(t, h, http.MethodDelete, "/lists/7", selfToken, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.DeletedResponse
	decodeBody(t, rec, &body)
	assert.EqualValues(t, 7, body.Deleted)
}
