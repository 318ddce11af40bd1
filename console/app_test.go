package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aarrwnh/arraylist/arraylist"
	"github.com/convox/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Title = false

	out := &bytes.Buffer{}
	app, err := NewApp(cfg, strings.NewReader(input), out, nil)
	require.NoError(t, err)
	app.log = logger.Discard
	return app, out
}

func process(t *testing.T, app *App, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, app.Process(line), line)
	}
}

func TestNewAppRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = -1

	_, err := NewApp(cfg, strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.True(t, errors.Is(err, arraylist.ErrInvalidArgument))
}

func TestPlainLinesAreAppended(t *testing.T) {
	app, _ := newTestApp(t, "")

	process(t, app, "hello world", "  second  ", "")

	assert.Equal(t, []string{"hello world", "second"}, app.Items())
}

func TestIndexedCommands(t *testing.T) {
	app, out := newTestApp(t, "")

	process(t, app, ":add b", ";add c d", ":ins 0 a", ":insert 3 e")
	assert.Equal(t, []string{"a", "b", "c d", "e"}, app.Items())

	process(t, app, ":get 2")
	assert.Contains(t, out.String(), "c d\n")

	process(t, app, ":set 0 z")
	assert.Contains(t, out.String(), `replaced "a"`)
	assert.Equal(t, []string{"z", "b", "c d", "e"}, app.Items())

	out.Reset()
	process(t, app, ":rm 1")
	assert.Equal(t, "b\n", out.String())
	assert.Equal(t, []string{"z", "c d", "e"}, app.Items())
}

func TestIndexErrors(t *testing.T) {
	app, _ := newTestApp(t, "")
	process(t, app, "a", "b")

	for _, line := range []string{":get 2", ":get -1", ":rm 5", ":set 2 x", ":ins 3 x"} {
		err := app.Process(line)
		assert.True(t, errors.Is(err, arraylist.ErrIndexOutOfRange), line)
	}
	assert.Equal(t, []string{"a", "b"}, app.Items())

	err := app.Process(":get one")
	assert.EqualError(t, err, `invalid index "one"`)

	err = app.Process(":rm")
	assert.Error(t, err)

	err = app.Process(":bogus")
	assert.EqualError(t, err, `unknown command "bogus"`)
}

func TestSearchCommands(t *testing.T) {
	app, out := newTestApp(t, "")
	process(t, app, "x", "y", "x", "z")

	process(t, app, ":find x")
	assert.Contains(t, out.String(), "first=0 last=2")

	out.Reset()
	process(t, app, ":has y", ":has w")
	assert.Equal(t, "true\nfalse\n", out.String())

	out.Reset()
	process(t, app, ":find w")
	assert.Contains(t, out.String(), `"w" not found`)

	process(t, app, ":del x")
	assert.Equal(t, []string{"y", "x", "z"}, app.Items())
}

func TestSortCommand(t *testing.T) {
	app, out := newTestApp(t, "")
	process(t, app, "pear", "Fig", "apple", "kiwi")

	process(t, app, ":sort")
	assert.Equal(t, []string{"Fig", "apple", "kiwi", "pear"}, app.Items())

	process(t, app, ":sort desc")
	assert.Equal(t, []string{"pear", "kiwi", "apple", "Fig"}, app.Items())
	assert.Contains(t, out.String(), "sorted desc")

	process(t, app, ":sort len")
	assert.Equal(t, []string{"Fig", "kiwi", "pear", "apple"}, app.Items())

	process(t, app, ":sort fold")
	assert.Equal(t, []string{"apple", "Fig", "kiwi", "pear"}, app.Items())

	assert.Error(t, app.Process(":sort sideways"))
}

func TestDropCommand(t *testing.T) {
	app, out := newTestApp(t, "")
	process(t, app, "http://a", "ftp://b", "HTTP://c")

	process(t, app, ":drop http")

	assert.Equal(t, []string{"ftp://b"}, app.Items())
	assert.Contains(t, out.String(), "removed 2 item/s")
}

func TestShowRespectsLimit(t *testing.T) {
	app, out := newTestApp(t, "")
	for i := 0; i < 12; i++ {
		process(t, app, "item")
	}

	process(t, app, ":ls")
	assert.Contains(t, out.String(), "2 more")
	assert.Contains(t, out.String(), "size=12 cap=15")

	out.Reset()
	process(t, app, ":set limit 20", ":show")
	assert.NotContains(t, out.String(), "more")

	out.Reset()
	process(t, app, ":limit 5", ":list")
	assert.Contains(t, out.String(), "7 more")

	assert.Error(t, app.Process(":limit 0"))
}

func TestShowFiltersByPattern(t *testing.T) {
	app, out := newTestApp(t, "")
	process(t, app, "red", "green", "blue")

	process(t, app, ":ls re")

	assert.Contains(t, out.String(), "   0")
	assert.Contains(t, out.String(), "   1")
	assert.NotContains(t, out.String(), "   2")
	assert.NotContains(t, out.String(), "blue")
}

func TestShowFiltersNonASCII(t *testing.T) {
	app, out := newTestApp(t, "")
	process(t, app, "Ⱥx", "İy", "plain")

	assert.NotPanics(t, func() { process(t, app, ":ls x") })
	assert.Contains(t, out.String(), "Ⱥ")
	assert.NotContains(t, out.String(), "plain")
	assert.True(t, utf8.ValidString(out.String()))

	out.Reset()
	assert.NotPanics(t, func() { process(t, app, ":ls Y") })
	assert.Contains(t, out.String(), "İ")
	assert.True(t, utf8.ValidString(out.String()))
}

func TestClearAndTrim(t *testing.T) {
	app, out := newTestApp(t, "")
	process(t, app, "a", "b", "c")

	process(t, app, ":trim")
	assert.Contains(t, out.String(), "cap=3")

	process(t, app, ":clear", ":len")
	assert.Equal(t, 0, app.Len())
	assert.Contains(t, out.String(), "size=0 cap=3")
}

func TestQuit(t *testing.T) {
	cancelled := false
	cfg := DefaultConfig()
	cfg.Title = false
	app, err := NewApp(cfg, strings.NewReader(""), &bytes.Buffer{}, func() { cancelled = true })
	require.NoError(t, err)
	app.log = logger.Discard

	err = app.Process(":quit")
	assert.True(t, errors.Is(err, ErrQuit))
	assert.True(t, cancelled)
}

func TestStartRunsUntilQuit(t *testing.T) {
	app, out := newTestApp(t, "b\na\n:sort desc\n:nope\n:q\nc\n")

	app.Start()

	assert.Equal(t, []string{"b", "a"}, app.Items())
	assert.Contains(t, out.String(), `unknown command "nope"`)
}

func TestStartStopsAtEOF(t *testing.T) {
	app, _ := newTestApp(t, "x\r\ny")

	app.Start()

	assert.Equal(t, []string{"x", "y"}, app.Items())
}
