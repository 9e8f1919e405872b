package rest_test

import (
	"net/http"
	"testing"

	"github.com/gamehub-br/server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopRatedRanking(t *testing.T) {
	s := setupServer(t)
	acc := s.seedAccount(t, "rater", 0)
	acc2 := s.seedAccount(t, "rater2", 0)

	good := s.seedTitle(t, "Good Game", 1000)
	better := s.seedTitle(t, "Better Game", 1000)

	for _, r := range []struct {
		account *model.Account
		title   *model.Title
		rating  float64
	}{
		{acc, good, 6}, {acc2, good, 7},
		{acc, better, 9}, {acc2, better, 10},
	} {
		require.NoError(t, s.db.Create(&model.LibraryEntry{
			AccountID: r.account.ID, TitleID: r.title.ID,
		}).Error)
		require.NoError(t, s.db.Create(&model.Review{
			AccountID: r.account.ID, TitleID: r.title.ID, Rating: r.rating,
		}).Error)
	}

	// Cold cache: the handler rebuilds from the aggregates.
	w := s.getJSON(t, "/api/rankings/top-rated")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Ranking []struct {
			Title     model.Title `json:"title"`
			AvgRating float64     `json:"avg_rating"`
		} `json:"ranking"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Ranking, 2)
	assert.Equal(t, better.ID, resp.Ranking[0].Title.ID)
	assert.InDelta(t, 9.5, resp.Ranking[0].AvgRating, 0.001)
	assert.Equal(t, good.ID, resp.Ranking[1].Title.ID)
	assert.InDelta(t, 6.5, resp.Ranking[1].AvgRating, 0.001)
}

func TestTopRatedEmpty(t *testing.T) {
	s := setupServer(t)

	w := s.getJSON(t, "/api/rankings/top-rated")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ranking []interface{} `json:"ranking"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Ranking)
}
