package rest_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gamehub-br/server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewEndpoints(t *testing.T) {
	s := setupServer(t)
	acc := s.seedAccount(t, "critic", 0)
	title := s.seedTitle(t, "Reviewed Game", 1999)
	require.NoError(t, s.db.Create(&model.LibraryEntry{
		AccountID: acc.ID, TitleID: title.ID,
	}).Error)

	w := s.postJSON(t, fmt.Sprintf("/api/titles/%d/reviews", title.ID),
		map[string]interface{}{"account_id": acc.ID, "rating": 8.5, "text": "muito bom"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var review model.Review
	decodeBody(t, w, &review)
	assert.Equal(t, 8.5, review.Rating)
	require.NotNil(t, review.Text)
	assert.Equal(t, "muito bom", *review.Text)

	// Amend the rating without sending text; the stored text survives.
	w = s.postJSON(t, fmt.Sprintf("/api/titles/%d/reviews", title.ID),
		map[string]interface{}{"account_id": acc.ID, "rating": 9})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &review)
	assert.Equal(t, 9.0, review.Rating)
	require.NotNil(t, review.Text)
	assert.Equal(t, "muito bom", *review.Text)

	w = s.getJSON(t, fmt.Sprintf("/api/titles/%d/reviews/%d", title.ID, acc.ID))
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.getJSON(t, fmt.Sprintf("/api/titles/%d/reviews", title.ID))
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Reviews []model.Review `json:"reviews"`
	}
	decodeBody(t, w, &list)
	assert.Len(t, list.Reviews, 1)

	w = s.do(t, http.MethodDelete,
		fmt.Sprintf("/api/titles/%d/reviews/%d", title.ID, acc.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.getJSON(t, fmt.Sprintf("/api/titles/%d/reviews/%d", title.ID, acc.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewWithoutOwnership(t *testing.T) {
	s := setupServer(t)
	acc := s.seedAccount(t, "outsider", 0)
	title := s.seedTitle(t, "Unowned Game", 1999)

	w := s.postJSON(t, fmt.Sprintf("/api/titles/%d/reviews", title.ID),
		map[string]interface{}{"account_id": acc.ID, "rating": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewInvalidRating(t *testing.T) {
	s := setupServer(t)
	acc := s.seedAccount(t, "harsh", 0)
	title := s.seedTitle(t, "Rated Game", 1999)
	require.NoError(t, s.db.Create(&model.LibraryEntry{
		AccountID: acc.ID, TitleID: title.ID,
	}).Error)

	w := s.postJSON(t, fmt.Sprintf("/api/titles/%d/reviews", title.ID),
		map[string]interface{}{"account_id": acc.ID, "rating": 10.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
