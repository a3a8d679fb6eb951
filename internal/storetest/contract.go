package storetest

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/sayerr"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

// Factory returns a new, empty store. The store is closed by the contract tests.
type Factory func(t *testing.T) store.Store

// Seed creates count sayings ("작자미상 i" / "명언i") and returns their ids in creation order.
func Seed(t *testing.T, s store.Store, count int) []int {
	t.Helper()

	var ids []int
	for i := 1; i <= count; i++ {
		id, err := s.Create(say.Draft{Author: fmt.Sprintf("작자미상 %d", i), Content: fmt.Sprintf("명언%d", i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// TestContract runs the behavior every store.Store implementation must share.
func TestContract(t *testing.T, newStore Factory) {
	t.Helper()

	cases := []struct {
		name string
		run  func(t *testing.T, s store.Store)
	}{
		{name: "create assigns increasing ids", run: testCreate},
		{name: "get missing returns nil", run: testGetMissing},
		{name: "update", run: testUpdate},
		{name: "update missing", run: testUpdateMissing},
		{name: "delete", run: testDelete},
		{name: "delete missing", run: testDeleteMissing},
		{name: "ids are not reused", run: testIDsNotReused},
		{name: "list is newest first", run: testListOrder},
		{name: "page slices newest first", run: testPageSlicing},
		{name: "page number past the addressable range", run: testPageHugeNumber},
		{name: "page filters", run: testPageFilters},
		{name: "build", run: testBuild},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newStore(t)
			defer func() {
				assert.NoError(t, s.Close())
			}()
			c.run(t, s)
		})
	}
}

func testCreate(t *testing.T, s store.Store) {
	first, err := s.Create(say.Draft{Author: "작자미상", Content: "현재를 사랑하라."})
	require.NoError(t, err)
	second, err := s.Create(say.Draft{Author: "작자미상", Content: "과거에 집착하지 마라."})
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)

	got, err := s.GetByID(second)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, say.Say{ID: 2, Author: "작자미상", Content: "과거에 집착하지 마라."}, *got)
}

func testGetMissing(t *testing.T, s store.Store) {
	got, err := s.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testUpdate(t *testing.T, s store.Store) {
	ids := Seed(t, s, 2)

	require.NoError(t, s.Update(ids[0], say.Draft{Author: "괴테", Content: "노력하는 한 방황한다."}))

	got, err := s.GetByID(ids[0])
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, say.Say{ID: ids[0], Author: "괴테", Content: "노력하는 한 방황한다."}, *got)

	untouched, err := s.GetByID(ids[1])
	require.NoError(t, err)
	require.NotNil(t, untouched)
	assert.Equal(t, "작자미상 2", untouched.Author)
}

func testUpdateMissing(t *testing.T, s store.Store) {
	err := s.Update(7, say.Draft{Author: "a", Content: "b"})
	assert.True(t, errors.Is(err, sayerr.ErrNotFound), "expected not found, got %v", err)
}

func testDelete(t *testing.T, s store.Store) {
	ids := Seed(t, s, 3)

	require.NoError(t, s.Delete(ids[1]))

	got, err := s.GetByID(ids[1])
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := s.List()
	require.NoError(t, err)
	AssertIDs(t, []int{3, 1}, all)
}

func testDeleteMissing(t *testing.T, s store.Store) {
	Seed(t, s, 1)
	err := s.Delete(2)
	assert.True(t, errors.Is(err, sayerr.ErrNotFound), "expected not found, got %v", err)
}

func testIDsNotReused(t *testing.T, s store.Store) {
	ids := Seed(t, s, 2)
	require.NoError(t, s.Delete(ids[1]))

	next, err := s.Create(say.Draft{Author: "a", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func testListOrder(t *testing.T, s store.Store) {
	all, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	Seed(t, s, 4)

	all, err = s.List()
	require.NoError(t, err)
	AssertIDs(t, []int{4, 3, 2, 1}, all)
	assert.Equal(t, "명언4", all[0].Content)
}

func testPageSlicing(t *testing.T, s store.Store) {
	Seed(t, s, 12)

	first, err := s.Page(say.SearchCondition{}, say.NewPageable(1, 5))
	require.NoError(t, err)
	assert.Equal(t, 12, first.TotalCount)
	assert.Equal(t, 3, first.TotalPages())
	assert.Equal(t, 1, first.PageNo)
	AssertIDs(t, []int{12, 11, 10, 9, 8}, first.Content)

	last, err := s.Page(say.SearchCondition{}, say.NewPageable(3, 5))
	require.NoError(t, err)
	AssertIDs(t, []int{2, 1}, last.Content)

	beyond, err := s.Page(say.SearchCondition{}, say.NewPageable(4, 5))
	require.NoError(t, err)
	assert.Equal(t, 12, beyond.TotalCount)
	assert.Empty(t, beyond.Content)
}

func testPageHugeNumber(t *testing.T, s store.Store) {
	Seed(t, s, 3)

	for _, pageNo := range []int{2305843009213693953, math.MaxInt} {
		page, err := s.Page(say.SearchCondition{}, say.NewPageable(pageNo, 5))
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
		assert.Equal(t, pageNo, page.PageNo)
		assert.Empty(t, page.Content)
	}
}

func testPageFilters(t *testing.T, s store.Store) {
	Seed(t, s, 11)
	_, err := s.Create(say.Draft{Author: "괴테", Content: "작은 일에도 최선을"})
	require.NoError(t, err)

	byAuthor, err := s.Page(say.NewSearchCondition(say.AuthorKeywordType, "1"), say.NewPageable(1, 5))
	require.NoError(t, err)
	// "작자미상 1", "작자미상 10", "작자미상 11"
	assert.Equal(t, 3, byAuthor.TotalCount)
	AssertIDs(t, []int{11, 10, 1}, byAuthor.Content)

	byContent, err := s.Page(say.NewSearchCondition(say.ContentKeywordType, "작은"), say.NewPageable(1, 5))
	require.NoError(t, err)
	AssertIDs(t, []int{12}, byContent.Content)

	either, err := s.Page(say.NewSearchCondition(say.AllKeywordType, "작"), say.NewPageable(1, 5))
	require.NoError(t, err)
	// every author but 괴테 contains "작", and 괴테's content does
	assert.Equal(t, 12, either.TotalCount)
	AssertIDs(t, []int{12, 11, 10, 9, 8}, either.Content)

	none, err := s.Page(say.NewSearchCondition(say.AllKeywordType, "니체"), say.NewPageable(1, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, none.TotalCount)
	assert.Equal(t, 0, none.TotalPages())
	assert.Empty(t, none.Content)
}

func testBuild(t *testing.T, s store.Store) {
	Seed(t, s, 2)
	require.NoError(t, s.Build())

	all, err := s.List()
	require.NoError(t, err)
	AssertIDs(t, []int{2, 1}, all)
}
