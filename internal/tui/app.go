package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soulspace/soulscribe/internal/browser"
	"github.com/soulspace/soulscribe/internal/cache"
	"github.com/soulspace/soulscribe/internal/config"
	"github.com/soulspace/soulscribe/internal/download"
	"github.com/soulspace/soulscribe/internal/update"
	"github.com/soulspace/soulscribe/internal/workflow"
)

type mode int

const (
	modeHome mode = iota
	modeInput
	modeGenerating
	modeView
	modeTopics
	modeHelp
)

type App struct {
	cfg      *config.Config
	db       *cache.Cache
	pipeline *workflow.Pipeline

	width  int
	height int
	mode   mode

	// Sub-components
	topicInput textinput.Model
	spinner    spinner.Model

	// State
	useCache      bool
	doc           string
	docTopic      string
	scroll        int
	savedPath     string
	topics        []cache.Entry
	topicsCursor  int
	err           error
	currentDate   string
	version       string
	updateVersion string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg      *config.Config
	DB       *cache.Cache
	Pipeline *workflow.Pipeline
	UseCache bool
	Version  string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "e.g., Benefits of Pranayama for Stress Management"
	ti.Prompt = ""
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:         opts.Cfg,
		db:          opts.DB,
		pipeline:    opts.Pipeline,
		useCache:    opts.UseCache,
		topicInput:  ti,
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
		version:     opts.Version,
		mode:        modeHome,
	}
}

func (a *App) Init() tea.Cmd {
	return a.checkUpdateCmd()
}

func (a *App) checkUpdateCmd() tea.Cmd {
	v := a.version
	return func() tea.Msg {
		result := update.Check(context.Background(), v)
		if result == nil {
			return nil
		}
		return updateAvailableMsg{version: result.LatestVersion}
	}
}

// generateCmd captures the topic and cache flag into the closure so later
// input edits can't race the in-flight request.
func (a *App) generateCmd(topic string, useCache bool) tea.Cmd {
	p := a.pipeline
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		doc, err := p.Produce(ctx, topic, useCache)
		if err != nil {
			return generateErrMsg{topic: topic, err: err}
		}
		return generatedMsg{topic: topic, doc: doc}
	}
}

func (a *App) loadTopicsCmd() tea.Cmd {
	db := a.db
	return func() tea.Msg {
		entries, err := db.Posts()
		if err != nil {
			return generateErrMsg{err: err}
		}
		return topicsLoadedMsg{entries: entries}
	}
}

func (a *App) loadCachedCmd(topic string) tea.Cmd {
	db := a.db
	return func() tea.Msg {
		doc, ok, err := db.Get(topic)
		if err != nil {
			return generateErrMsg{topic: topic, err: err}
		}
		if !ok {
			return generateErrMsg{topic: topic, err: fmt.Errorf("no cached post for %q", topic)}
		}
		return generatedMsg{topic: topic, doc: doc}
	}
}

func (a *App) saveCmd() tea.Cmd {
	doc := a.doc
	dir := a.cfg.DownloadDir()
	return func() tea.Msg {
		path, err := download.Save(dir, doc)
		if err != nil {
			return saveErrMsg{err: err}
		}
		return savedMsg{path: path}
	}
}

func openFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(path); err != nil {
			return saveErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case generatedMsg:
		a.mode = modeView
		a.doc = msg.doc
		a.docTopic = msg.topic
		a.scroll = 0
		a.savedPath = ""
		a.err = nil
		return a, nil

	case generateErrMsg:
		// Failure text occupies the same surface a document would.
		a.mode = modeView
		a.doc = msg.err.Error()
		a.docTopic = msg.topic
		a.scroll = 0
		a.savedPath = ""
		a.err = msg.err
		return a, nil

	case topicsLoadedMsg:
		a.topics = msg.entries
		if a.topicsCursor >= len(a.topics) {
			a.topicsCursor = max(0, len(a.topics)-1)
		}
		return a, nil

	case savedMsg:
		a.savedPath = msg.path
		return a, nil

	case saveErrMsg:
		a.err = msg.err
		return a, nil

	case updateAvailableMsg:
		a.updateVersion = msg.version
		return a, nil

	case spinner.TickMsg:
		if a.mode == modeGenerating {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeInput:
		return a.handleInputKey(msg)
	case modeGenerating:
		return a, nil
	case modeView:
		return a.handleViewKey(msg)
	case modeTopics:
		return a.handleTopicsKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeHome
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "g", "enter":
		a.mode = modeInput
		a.topicInput.Focus()
		return a, textinput.Blink
	case "t":
		a.mode = modeTopics
		return a, a.loadTopicsCmd()
	case "?":
		a.mode = modeHelp
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeHome
		a.topicInput.Blur()
		return a, nil
	case "tab":
		a.useCache = !a.useCache
		return a, nil
	case "enter":
		topic := strings.TrimSpace(a.topicInput.Value())
		if topic == "" {
			return a, nil
		}
		a.mode = modeGenerating
		a.topicInput.Blur()
		a.err = nil
		return a, tea.Batch(a.generateCmd(topic, a.useCache), a.spinner.Tick)
	}

	var cmd tea.Cmd
	a.topicInput, cmd = a.topicInput.Update(msg)
	return a, cmd
}

func (a *App) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		a.scroll++
		return a, nil
	case "k", "up":
		if a.scroll > 0 {
			a.scroll--
		}
		return a, nil
	case "g":
		a.scroll = 0
		return a, nil
	case "s":
		if a.doc != "" && a.err == nil {
			return a, a.saveCmd()
		}
		return a, nil
	case "o":
		if a.savedPath != "" {
			return a, openFileCmd(a.savedPath)
		}
		return a, nil
	case "n":
		a.mode = modeInput
		a.topicInput.SetValue("")
		a.topicInput.Focus()
		return a, textinput.Blink
	case "r":
		// Regenerate the same topic, bypassing the cache
		if a.docTopic != "" {
			a.mode = modeGenerating
			a.err = nil
			return a, tea.Batch(a.generateCmd(a.docTopic, false), a.spinner.Tick)
		}
		return a, nil
	case "t":
		a.mode = modeTopics
		return a, a.loadTopicsCmd()
	case "h", "esc":
		a.mode = modeHome
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleTopicsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.topicsCursor < len(a.topics)-1 {
			a.topicsCursor++
		}
		return a, nil
	case "k", "up":
		if a.topicsCursor > 0 {
			a.topicsCursor--
		}
		return a, nil
	case "enter", "o":
		if len(a.topics) > 0 && a.topicsCursor < len(a.topics) {
			return a, a.loadCachedCmd(a.topics[a.topicsCursor].Topic)
		}
		return a, nil
	case "g":
		a.mode = modeInput
		a.topicInput.Focus()
		return a, textinput.Blink
	case "h", "esc":
		a.mode = modeHome
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  soulscribe")
	}

	switch a.mode {
	case modeHome:
		return a.withBottomBar(
			renderHomeScreen(a.width, a.height, a.updateVersion),
			"g generate  t topics  ? help  q quit",
		)
	case modeInput:
		return a.withBottomBar(
			a.renderInputScreen(),
			"enter generate  tab toggle cache  esc back",
		)
	case modeGenerating:
		return a.withBottomBar(
			a.renderGeneratingScreen(),
			"ctrl+c quit",
		)
	case modeView:
		return a.withBottomBar(
			a.renderDocScreen(),
			"j/k scroll  s save  r regenerate  n new  t topics  h home  q quit",
		)
	case modeTopics:
		return a.withBottomBar(
			a.renderTopicsScreen(),
			"j/k move  enter open  g generate  h home  q quit",
		)
	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "? close  q quit")
	}
	return ""
}

func (a *App) header() string {
	left := headerStyle.Render("soulscribe")
	right := headerDateStyle.Render(a.currentDate)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("soulscribe")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Home") + "\n" +
		"  g, enter      Generate a new post\n" +
		"  t             Browse cached topics\n\n" +
		dim.Render("Topic input") + "\n" +
		"  enter         Start generation\n" +
		"  tab           Toggle \"use cached posts\"\n" +
		"  esc           Back to home\n\n" +
		dim.Render("Post view") + "\n" +
		"  j/k, ↑/↓     Scroll\n" +
		"  s             Save as markdown (timestamped file)\n" +
		"  o             Open the saved file\n" +
		"  r             Regenerate, bypassing the cache\n" +
		"  n             New topic\n\n" +
		dim.Render("General") + "\n" +
		"  h             Go to home screen\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
