/*
Package console implements the interactive, line oriented interface for managing sayings.
*/
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/google/uuid"

	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying"
	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/sayerr"
)

const (
	createAction = "등록"
	listAction   = "목록"
	deleteAction = "삭제"
	updateAction = "수정"
	buildAction  = "빌드"
	helpAction   = "도움"
	exitAction   = "종료"
)

// maxLineSize bounds a single input line; longer lines end the session with bufio.ErrTooLong.
const maxLineSize = 1024 * 1024

const helpText = `- 명령어 목록 -
1. 등록
2. 목록?keywordType={all|author|content}&keyword={검색어}&page={번호}
3. 삭제?id={번호}
4. 수정?id={번호}
5. 빌드
6. 종료
`

// Controller runs the console session: it reads commands from the input and writes prompts and results to the output.
type Controller struct {
	service  *wisesaying.Service
	scanner  *bufio.Scanner
	out      io.Writer
	pageSize int
	session  string
}

func NewController(service *wisesaying.Service, in io.Reader, out io.Writer, pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = say.DefaultPageSize
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	return &Controller{
		service:  service,
		scanner:  scanner,
		out:      out,
		pageSize: pageSize,
		session:  uuid.NewString(),
	}
}

// Run processes commands until the exit command is given, the input is exhausted or the context is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	log.Debugf("console session=%s started", c.session)
	defer log.Debugf("console session=%s ended", c.session)

	c.println("== 명언 앱 ==")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.print("명령) ")
		line, ok := c.readLine()
		if !ok {
			return c.scanner.Err()
		}

		if line == exitAction {
			c.println("== 앱 종료 ==")
			return nil
		}

		if !c.handle(ParseRequest(line)) {
			return c.scanner.Err()
		}
	}
}

// handle executes a single request and reports whether input remains available.
func (c *Controller) handle(r Request) bool {
	log.Tracef("console session=%s action=%q", c.session, r.Action)

	switch r.Action {
	case createAction:
		return c.handleCreate()
	case listAction:
		c.handleList(r)
	case deleteAction:
		id := r.ParamInt("id", -1)
		if id == -1 {
			c.println("id를 숫자로 입력해주세요")
			return true
		}
		c.handleDelete(id)
	case updateAction:
		id := r.ParamInt("id", -1)
		if id == -1 {
			c.println("id를 숫자로 입력해주세요")
			return true
		}
		return c.handleUpdate(id)
	case buildAction:
		c.handleBuild()
	case helpAction:
		c.println(helpText)
	default:
		if r.Action != "" {
			log.Debugf("console session=%s ignoring unknown action=%q", c.session, r.Action)
		}
	}
	return true
}

func (c *Controller) handleCreate() bool {
	c.print("명언 : ")
	content, ok := c.readLine()
	if !ok {
		return false
	}

	c.print("작가 : ")
	author, ok := c.readLine()
	if !ok {
		return false
	}

	id, err := c.service.Create(say.Draft{Author: author, Content: content})
	if err != nil {
		c.printErr(err)
		return true
	}
	c.println(strconv.Itoa(id) + "번 명언이 등록되었습니다.")
	return true
}

func (c *Controller) handleList(r Request) {
	keywordType := say.ParseKeywordType(r.Param("keywordType", string(say.AllKeywordType)))
	keyword := r.Param("keyword", "")
	pageable := say.NewPageable(r.ParamInt("page", 1), c.pageSize)

	page, err := c.service.Page(keywordType, keyword, pageable)
	if err != nil {
		c.printErr(err)
		return
	}

	c.println("번호 / 작가 / 명언")
	c.println("=====================")
	for _, s := range page.Content {
		c.println(s.String())
	}
	if pager := pagerLine(*page); pager != "" {
		c.println(pager)
	}
}

func (c *Controller) handleDelete(id int) {
	if err := c.service.Delete(id); err != nil {
		c.printErr(err)
		return
	}
	c.println(strconv.Itoa(id) + "번 명언이 삭제되었습니다.")
}

func (c *Controller) handleUpdate(id int) bool {
	existing, err := c.service.FindByID(id)
	if err != nil {
		c.printErr(err)
		return true
	}

	c.println("명언(기존) : " + existing.Content)
	c.print("명언 : ")
	content, ok := c.readLine()
	if !ok {
		return false
	}

	c.println("작가(기존) : " + existing.Author)
	c.print("작가 : ")
	author, ok := c.readLine()
	if !ok {
		return false
	}

	if err := c.service.Update(id, say.Draft{Author: author, Content: content}); err != nil {
		c.printErr(err)
		return true
	}
	c.println(strconv.Itoa(id) + "번 명언이 수정되었습니다.")
	return true
}

func (c *Controller) handleBuild() {
	if err := c.service.Build(); err != nil {
		c.printErr(err)
		return
	}
	c.println("data.json 파일의 내용이 갱신되었습니다.")
}

// printErr shows user facing errors as-is and anything else as an unexpected failure.
func (c *Controller) printErr(err error) {
	var notFound sayerr.NotFoundError
	var expected sayerr.ExpectedErr
	switch {
	case errors.As(err, &notFound):
		c.println(notFound.Error())
	case errors.As(err, &expected):
		c.println(expected.Error())
	default:
		log.Errorf("console session=%s: %+v", c.session, err)
		c.println("오류가 발생했습니다: " + err.Error())
	}
}

func (c *Controller) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(stripansi.Strip(c.scanner.Text())), true
}

func (c *Controller) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Controller) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// pagerLine renders "페이지 : 1 / [2] / 3" with the current page bracketed, or nothing when there are no pages.
func pagerLine(page say.Page) string {
	total := page.TotalPages()
	if total == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("페이지 : ")
	for i := 1; i <= total; i++ {
		if i == page.PageNo {
			sb.WriteString("[" + strconv.Itoa(i) + "]")
		} else {
			sb.WriteString(strconv.Itoa(i))
		}
		if i < total {
			sb.WriteString(" / ")
		}
	}
	return sb.String()
}
