package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisesaying/wisesaying/internal/storetest"
	"github.com/wisesaying/wisesaying/wisesaying"
	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/store"
	"github.com/wisesaying/wisesaying/wisesaying/store/memory"
)

func run(t *testing.T, s store.Store, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := NewController(wisesaying.NewService(s), input, &out, say.DefaultPageSize)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestController_StartAndExit(t *testing.T) {
	out := run(t, memory.New(), "종료")

	assert.True(t, strings.HasPrefix(out, "== 명언 앱 ==\n명령) "))
	assert.True(t, strings.HasSuffix(out, "== 앱 종료 ==\n"))
}

func TestController_EndOfInput(t *testing.T) {
	out := run(t, memory.New(), "등록")

	assert.Contains(t, out, "명언 : ")
	assert.NotContains(t, out, "등록되었습니다")
}

func TestController_Create(t *testing.T) {
	out := run(t, memory.New(),
		"등록",
		"현재를 사랑하라.",
		"작자미상",
		"등록",
		"과거에 집착하지 마라.",
		"작자미상",
		"종료",
	)

	assert.Contains(t, out, "명언 : 작가 : 1번 명언이 등록되었습니다.\n")
	assert.Contains(t, out, "2번 명언이 등록되었습니다.\n")
}

func TestController_CreateValidation(t *testing.T) {
	out := run(t, memory.New(),
		"등록",
		"현재를 사랑하라.",
		"   ",
		"등록",
		"",
		"작자미상",
		"종료",
	)

	assert.Contains(t, out, "작가는 비어있을 수 없습니다.\n")
	assert.Contains(t, out, "명언은 비어있을 수 없습니다.\n")
	assert.NotContains(t, out, "등록되었습니다")
}

func TestController_List(t *testing.T) {
	s := memory.New()
	_, err := s.Create(say.Draft{Author: "작자미상", Content: "현재를 사랑하라."})
	require.NoError(t, err)
	_, err = s.Create(say.Draft{Author: "작자미상", Content: "과거에 집착하지 마라."})
	require.NoError(t, err)

	out := run(t, s, "목록", "종료")

	assert.Contains(t, out, "번호 / 작가 / 명언\n"+
		"=====================\n"+
		"2 / 작자미상 / 과거에 집착하지 마라.\n"+
		"1 / 작자미상 / 현재를 사랑하라.\n"+
		"페이지 : [1]\n")
}

func TestController_ListPaging(t *testing.T) {
	s := memory.New()
	storetest.Seed(t, s, 10)

	out := run(t, s, "목록?page=2", "종료")

	assert.Contains(t, out, "5 / 작자미상 5 / 명언5\n")
	assert.Contains(t, out, "1 / 작자미상 1 / 명언1\n")
	assert.NotContains(t, out, "6 / 작자미상 6 / 명언6\n")
	assert.Contains(t, out, "페이지 : 1 / [2]\n")
}

func TestController_ListHugePage(t *testing.T) {
	s := memory.New()
	storetest.Seed(t, s, 7)

	out := run(t, s, "목록?page=2305843009213693953", "목록?page=1", "종료")

	assert.Contains(t, out, "=====================\n페이지 : 1 / 2\n", "no sayings on a page past the end")
	assert.Contains(t, out, "페이지 : [1] / 2\n", "the session continues afterwards")
	assert.True(t, strings.HasSuffix(out, "== 앱 종료 ==\n"))
}

func TestController_ListSearch(t *testing.T) {
	s := memory.New()
	for _, d := range []say.Draft{
		{Author: "작자미상", Content: "현재를 사랑하라."},
		{Author: "공자", Content: "과거에 집착하지 마라."},
	} {
		_, err := s.Create(d)
		require.NoError(t, err)
	}

	tests := []struct {
		name       string
		command    string
		present    []string
		notPresent []string
	}{
		{
			name:       "by content",
			command:    "목록?keywordType=content&keyword=과거",
			present:    []string{"2 / 공자 / 과거에 집착하지 마라."},
			notPresent: []string{"1 / 작자미상"},
		},
		{
			name:       "by author",
			command:    "목록?keywordType=author&keyword=작자",
			present:    []string{"1 / 작자미상 / 현재를 사랑하라."},
			notPresent: []string{"2 / 공자"},
		},
		{
			name:       "no matches",
			command:    "목록?keywordType=author&keyword=괴테",
			notPresent: []string{"1 / ", "2 / ", "페이지"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := run(t, s, test.command, "종료")
			for _, p := range test.present {
				assert.Contains(t, out, p)
			}
			for _, np := range test.notPresent {
				assert.NotContains(t, out, np)
			}
		})
	}
}

func TestController_Delete(t *testing.T) {
	s := memory.New()
	storetest.Seed(t, s, 2)

	out := run(t, s,
		"삭제?id=1",
		"삭제?id=1",
		"삭제",
		"삭제?id=one",
		"목록",
		"종료",
	)

	assert.Contains(t, out, "1번 명언이 삭제되었습니다.\n")
	assert.Contains(t, out, "1번 명언은 존재하지 않습니다.\n")
	assert.Equal(t, 2, strings.Count(out, "id를 숫자로 입력해주세요\n"))
	assert.Contains(t, out, "2 / 작자미상 2 / 명언2\n")
	assert.NotContains(t, out, "1 / 작자미상 1 / 명언1\n")
}

func TestController_Update(t *testing.T) {
	s := memory.New()
	_, err := s.Create(say.Draft{Author: "작자미상", Content: "현재를 사랑하라."})
	require.NoError(t, err)

	out := run(t, s,
		"수정?id=3",
		"수정?id=1",
		"현재와 자신을 사랑하라.",
		"홍길동",
		"목록",
		"종료",
	)

	assert.Contains(t, out, "3번 명언은 존재하지 않습니다.\n")
	assert.Contains(t, out, "명언(기존) : 현재를 사랑하라.\n명언 : ")
	assert.Contains(t, out, "작가(기존) : 작자미상\n작가 : ")
	assert.Contains(t, out, "1번 명언이 수정되었습니다.\n")
	assert.Contains(t, out, "1 / 홍길동 / 현재와 자신을 사랑하라.\n")
}

func TestController_Build(t *testing.T) {
	out := run(t, memory.New(), "빌드", "종료")

	assert.Contains(t, out, "data.json 파일의 내용이 갱신되었습니다.\n")
}

func TestController_Help(t *testing.T) {
	out := run(t, memory.New(), "도움", "종료")

	assert.Contains(t, out, "- 명령어 목록 -\n")
	assert.Contains(t, out, "3. 삭제?id={번호}\n")
}

func TestController_IgnoresUnknownAndStripsANSI(t *testing.T) {
	out := run(t, memory.New(), "뭐지", "\x1b[31m종료\x1b[0m")

	assert.Equal(t, "== 명언 앱 ==\n명령) 명령) == 앱 종료 ==\n", out)
}

type failingStore struct {
	store.Store
}

func (f failingStore) Page(say.SearchCondition, say.Pageable) (*say.Page, error) {
	return nil, errors.New("disk on fire")
}

func TestController_UnexpectedError(t *testing.T) {
	out := run(t, failingStore{Store: memory.New()}, "목록", "종료")

	assert.Contains(t, out, "오류가 발생했습니다: unable to page sayings: disk on fire\n")
	assert.NotContains(t, out, "번호 / 작가 / 명언")
}

func TestController_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := NewController(wisesaying.NewService(memory.New()), strings.NewReader("목록\n"), &out, 0)
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
	assert.Equal(t, "== 명언 앱 ==\n", out.String())
}

func TestPagerLine(t *testing.T) {
	tests := []struct {
		name     string
		page     say.Page
		expected string
	}{
		{
			name:     "no records",
			page:     say.Page{PageNo: 1, PageSize: 5},
			expected: "",
		},
		{
			name:     "middle page",
			page:     say.Page{PageNo: 2, PageSize: 5, TotalCount: 12},
			expected: "페이지 : 1 / [2] / 3",
		},
		{
			name:     "out of range page",
			page:     say.Page{PageNo: 4, PageSize: 5, TotalCount: 6},
			expected: "페이지 : 1 / 2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, pagerLine(test.page))
		})
	}
}

func TestController_LongLines(t *testing.T) {
	s := memory.New()
	content := strings.Repeat("명", 100*1024)

	out := run(t, s, "등록", content, "작자미상", "종료")

	assert.Contains(t, out, "1번 명언이 등록되었습니다.\n")
	got, err := s.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, content, got.Content)
}

func TestController_LineTooLong(t *testing.T) {
	var out bytes.Buffer
	input := strings.NewReader(strings.Repeat("x", maxLineSize+1) + "\n종료\n")
	c := NewController(wisesaying.NewService(memory.New()), input, &out, say.DefaultPageSize)

	assert.ErrorIs(t, c.Run(context.Background()), bufio.ErrTooLong)
}
