package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mesaPos/internal/modules/restaurants/domain"
)

func TestBrowsePagingDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		page           int
		pageSize       int
		expectedOffset int
		expectedLimit  int
	}{
		{name: "defaults", page: 0, pageSize: 0, expectedOffset: 0, expectedLimit: 20},
		{name: "negative page clamps to first", page: -4, pageSize: 10, expectedOffset: 0, expectedLimit: 10},
		{name: "page offset", page: 3, pageSize: 10, expectedOffset: 20, expectedLimit: 10},
		{name: "oversized page size capped", page: 1, pageSize: 5000, expectedOffset: 0, expectedLimit: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRestaurantRepo{}
			uc := NewBrowseUseCase(repo)
			_, err := uc.Execute(context.Background(), BrowseInput{Page: tc.page, PageSize: tc.pageSize})
			require.NoError(t, err)
			require.Equal(t, tc.expectedOffset, repo.lastFilter.Offset)
			require.Equal(t, tc.expectedLimit, repo.lastFilter.Limit)
		})
	}
}

func TestBrowseFilterConstruction(t *testing.T) {
	t.Parallel()

	repo := &fakeRestaurantRepo{browsed: []domain.Restaurant{
		{ID: 1, Name: "El Taco Loco", Address: "Calle 1", Status: domain.StatusActive},
	}}
	uc := NewBrowseUseCase(repo)

	views, err := uc.Execute(context.Background(), BrowseInput{Name: "  el   taco ", Status: "active"})
	require.NoError(t, err)

	require.Equal(t, []string{"el", "taco"}, repo.lastFilter.NameTerms)
	require.NotNil(t, repo.lastFilter.Status)
	require.Equal(t, domain.StatusActive, *repo.lastFilter.Status)

	require.Len(t, views, 1)
	require.Equal(t, RestaurantSummaryView{ID: 1, Name: "El Taco Loco", Address: "Calle 1"}, views[0])
}

func TestBrowseUnknownStatusIgnored(t *testing.T) {
	t.Parallel()

	repo := &fakeRestaurantRepo{}
	uc := NewBrowseUseCase(repo)

	_, err := uc.Execute(context.Background(), BrowseInput{Status: "Archived"})
	require.NoError(t, err)
	require.Nil(t, repo.lastFilter.Status)
}
