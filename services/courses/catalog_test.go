package courses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByQueryMatchesSkills(t *testing.T) {
	catalog := NewStaticCatalog()

	result := catalog.Search(SearchParams{Query: "python"})
	require.NotEmpty(t, result.Courses)

	for _, course := range result.Courses {
		text := strings.ToLower(course.Title + " " + course.Description + " " + strings.Join(course.Skills, " "))
		assert.Contains(t, text, "python")
	}
	assert.Equal(t, len(result.Courses), result.Total)
}

func TestSearchFiltersProviderAndLevel(t *testing.T) {
	catalog := NewStaticCatalog()

	result := catalog.Search(SearchParams{Provider: "udemy", Level: "Intermediate"})
	require.NotEmpty(t, result.Courses)
	for _, course := range result.Courses {
		assert.Equal(t, "Udemy", course.Provider)
		assert.Equal(t, "Intermediate", course.Level)
	}
}

func TestSearchPagination(t *testing.T) {
	catalog := NewStaticCatalog()

	first := catalog.Search(SearchParams{Limit: 3})
	require.Len(t, first.Courses, 3)
	assert.True(t, first.HasMore)

	last := catalog.Search(SearchParams{Limit: 10, Offset: first.Total - 1})
	require.Len(t, last.Courses, 1)
	assert.False(t, last.HasMore)

	beyond := catalog.Search(SearchParams{Limit: 10, Offset: first.Total + 5})
	assert.Empty(t, beyond.Courses)
	assert.False(t, beyond.HasMore)
}

func TestGetByID(t *testing.T) {
	catalog := NewStaticCatalog()

	course, found := catalog.GetByID("course-1")
	require.True(t, found)
	assert.Equal(t, "Introduction to Python Programming", course.Title)

	_, found = catalog.GetByID("course-999")
	assert.False(t, found)
}

func TestRecommendedMatchesCategories(t *testing.T) {
	catalog := NewStaticCatalog()

	recommended := catalog.Recommended([]string{"python"})
	require.NotEmpty(t, recommended)
	assert.LessOrEqual(t, len(recommended), 6)
}

func TestRecommendedFallsBackToTopRated(t *testing.T) {
	catalog := NewStaticCatalog()

	recommended := catalog.Recommended([]string{"underwater basket weaving"})
	require.Len(t, recommended, 4)

	for i := 1; i < len(recommended); i++ {
		assert.GreaterOrEqual(t, recommended[i-1].Rating, recommended[i].Rating)
	}
}
