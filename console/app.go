package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aarrwnh/arraylist/arraylist"
	"github.com/convox/logger"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	// ErrQuit is returned by Process when the line asked the console to stop.
	ErrQuit = errors.New("exiting program")

	errRemoteQuit = errors.New("quit is not allowed from a websocket peer")
)

var (
	cmdPrefix    = regexp.MustCompile("^[;:]")
	quitCommands = []string{"q", "quit", "exit"}
)

// App drives a single list of strings from console lines. Lines may come
// from the terminal and from websocket peers at the same time; mu
// serializes every access to the list.
type App struct {
	mu          sync.Mutex
	list        *arraylist.List[string]
	limit       int
	title       bool
	wsConnected int

	in     *bufio.Reader
	out    io.Writer
	log    *logger.Logger
	cancel context.CancelFunc
}

func NewApp(cfg *Config, in io.Reader, out io.Writer, cancel context.CancelFunc) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	list, err := arraylist.NewWithCapacity[string](cfg.Capacity)
	if err != nil {
		return nil, err
	}

	s := &App{
		list:   list,
		limit:  cfg.Limit,
		title:  cfg.Title,
		in:     bufio.NewReader(in),
		out:    out,
		log:    logger.New("ns=arraylist cn=console"),
		cancel: cancel,
	}

	if cfg.File != "" {
		if err := s.Load(cfg.File); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start reads lines until quit or end of input.
func (s *App) Start() {
	for s.ConsoleTick() {
	}
}

// ConsoleTick prompts for and runs one line. It reports whether the console
// should keep reading.
func (s *App) ConsoleTick() bool {
	fmt.Fprint(s.out, "\n> ")

	s.UpdateTitle()

	input, readErr := s.in.ReadString('\n')

	if line := strings.Trim(input, "\n\r"); line != "" {
		if err := s.Process(line); err != nil {
			if errors.Is(err, ErrQuit) {
				return false
			}
			printError(s.out, err)
		}
	}

	if readErr != nil {
		fmt.Fprintln(s.out)
		if readErr != io.EOF {
			s.log.At("tick").Error(readErr)
		}
		s.Quit()
		return false
	}

	return true
}

func (s *App) Quit() error {
	s.log.At("quit").Logf("size=%d", s.Len())
	if s.cancel != nil {
		s.cancel()
	}
	return ErrQuit
}

// Process runs one console line. Lines without a command prefix are
// appended to the list.
func (s *App) Process(input string) error {
	return s.exec(input, false)
}

func (s *App) exec(input string, remote bool) (err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	cmd, subcmd, rest := commandParse(input)
	if !cmdPrefix.MatchString(cmd) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.list.Add(input)
		return nil
	}

	name := cmdPrefix.ReplaceAllString(cmd, "")
	if slices.Contains(quitCommands, name) {
		if remote {
			return errRemoteQuit
		}
		return s.Quit()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "a", "add":
		err = s.add(joinArgs(subcmd, rest))
	case "i", "ins", "insert":
		err = s.insert(subcmd, strings.TrimSpace(rest))
	case "get":
		err = s.get(subcmd)
	case "set":
		err = s.set(subcmd, strings.TrimSpace(rest))
	case "limit":
		err = s.setLimit(subcmd)
	case "rm":
		err = s.removeAt(subcmd)
	case "del", "remove":
		err = s.remove(joinArgs(subcmd, rest))
	case "f", "find":
		err = s.find(joinArgs(subcmd, rest))
	case "has":
		fmt.Fprintln(s.out, s.list.Contains(joinArgs(subcmd, rest)))
	case "sort":
		err = s.sort(subcmd)
	case "drop":
		err = s.drop(joinArgs(subcmd, rest))
	case "show", "list", "ls":
		s.show(joinArgs(subcmd, rest))
	case "len", "size":
		printInfo(s.out, "size=%d cap=%d", s.list.Len(), s.list.Cap())
	case "clear":
		s.list.Clear()
		printInfo(s.out, "cleared")
	case "trim":
		s.list.TrimToSize()
		printInfo(s.out, "cap=%d", s.list.Cap())
	case "load":
		err = s.load(joinArgs(subcmd, rest))
	case "cls":
		fmt.Fprint(s.out, "\033[H\033[2J")
	default:
		err = errors.Errorf("unknown command %q", name)
	}

	if err != nil {
		s.log.At(name).Error(err)
	}
	return err
}

func (s *App) add(value string) error {
	if value == "" {
		return usage("add <value>")
	}
	s.list.Add(value)
	return nil
}

func (s *App) insert(index, value string) error {
	i, err := parseIndex(index)
	if err != nil {
		return err
	}
	return s.list.Insert(i, value)
}

func (s *App) get(index string) error {
	i, err := parseIndex(index)
	if err != nil {
		return err
	}
	v, err := s.list.Get(i)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func (s *App) set(index, value string) error {
	if index == "limit" {
		return s.setLimit(value)
	}
	i, err := parseIndex(index)
	if err != nil {
		return err
	}
	old, err := s.list.Set(i, value)
	if err != nil {
		return err
	}
	printInfo(s.out, "replaced %q", old)
	return nil
}

func (s *App) setLimit(token string) error {
	limit, err := strconv.Atoi(token)
	if err != nil || limit <= 0 {
		return usage("limit <positive number>")
	}
	s.limit = limit
	return nil
}

func (s *App) removeAt(index string) error {
	i, err := parseIndex(index)
	if err != nil {
		return err
	}
	v, err := s.list.RemoveAt(i)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func (s *App) remove(value string) error {
	if value == "" {
		return usage("del <value>")
	}
	if !s.list.Remove(value) {
		printInfo(s.out, "%q not found", value)
	}
	return nil
}

func (s *App) find(value string) error {
	if value == "" {
		return usage("find <value>")
	}
	first, last := s.list.IndexOf(value), s.list.LastIndexOf(value)
	if first == arraylist.NotFound {
		printInfo(s.out, "%q not found", value)
		return nil
	}
	fmt.Fprintf(s.out, "first=%d last=%d\n", first, last)
	return nil
}

func (s *App) sort(token string) error {
	order, err := parseOrder(token)
	if err != nil {
		return err
	}
	defer timeTrack(s.out, time.Now())
	s.list.Sort(order.comparator())
	printInfo(s.out, "sorted %s", order)
	return nil
}

func (s *App) drop(pattern string) error {
	if pattern == "" {
		return usage("drop <substring>")
	}
	pattern = strings.ToLower(pattern)
	removed := s.list.Filter(func(v string) bool {
		return strings.Contains(strings.ToLower(v), pattern)
	})
	printInfo(s.out, "removed %d item/s", removed)
	return nil
}

// show prints up to limit items, only those containing pattern when one
// is given.
func (s *App) show(pattern string) {
	needle := strings.ToLower(pattern)
	var matched []int
	for i, v := range s.list.ToSlice() {
		if needle == "" || strings.Contains(strings.ToLower(v), needle) {
			matched = append(matched, i)
		}
	}

	for n, i := range matched {
		if n == s.limit {
			printInfo(s.out, "%d more", len(matched)-n)
			break
		}
		v, _ := s.list.Get(i)
		fmt.Fprintf(s.out, "%s  %s\n", indexStyle.Render(fmt.Sprintf("%4d", i)), highlightWord(pattern, v))
	}
	printInfo(s.out, "size=%d cap=%d", s.list.Len(), s.list.Cap())
}

// Load appends the elements read from path.
func (s *App) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(path)
}

func (s *App) load(path string) error {
	if path == "" {
		return usage("load <file|dir>")
	}
	defer timeTrack(s.out, time.Now())

	elements, files, err := loadPath(path)
	if err != nil {
		return err
	}
	s.list.AddAll(elements...)

	s.log.At("load").Logf("path=%q files=%d elements=%d", path, files, len(elements))
	printInfo(s.out, "loaded %d item/s from %d file/s", len(elements), files)
	return nil
}

// Len reports the list size.
func (s *App) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

// Items returns a copy of the list contents.
func (s *App) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.ToSlice()
}

func (s *App) setConnected(delta int) {
	s.mu.Lock()
	s.wsConnected += delta
	s.mu.Unlock()
	s.UpdateTitle()
}

func (s *App) UpdateTitle() {
	if !s.title {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var a string
	if s.wsConnected > 0 {
		a = " | *"
	}
	setTitle(s.out, fmt.Sprintf("len:%d | cap:%d%s", s.list.Len(), s.list.Cap(), a))
}

func joinArgs(subcmd, rest string) string {
	return strings.TrimSpace(subcmd + " " + rest)
}

func parseIndex(token string) (int, error) {
	if token == "" {
		return 0, usage("<index> is required")
	}
	i, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Errorf("invalid index %q", token)
	}
	return i, nil
}

func usage(text string) error {
	return errors.Errorf("usage: %s", text)
}
