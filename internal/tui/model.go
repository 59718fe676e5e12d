// Package tui provides the interactive link picker: choose a pin kind and
// remote, preview the resolved URL live, then open or copy it.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcdonaldj/gitlink/internal/adapters/browseropen"
	"github.com/mcdonaldj/gitlink/internal/adapters/clip"
	"github.com/mcdonaldj/gitlink/internal/adapters/execgit"
	"github.com/mcdonaldj/gitlink/internal/adapters/osfs"
	"github.com/mcdonaldj/gitlink/internal/config"
	"github.com/mcdonaldj/gitlink/internal/ports"
	"github.com/mcdonaldj/gitlink/internal/resolve"
)

// pinChoices is the selection list, in display order.
var pinChoices = []resolve.PinKind{
	resolve.PinCommit,
	resolve.PinBranch,
	resolve.PinTag,
	resolve.PinRoot,
}

// Model is the main TUI model
type Model struct {
	cfg     *config.Config
	git     ports.GitClient
	fs      ports.FileSystem
	opener  ports.URLOpener
	clip    ports.Clipboard
	file    string
	lines   *resolve.LineRange
	remotes []string

	cursor    int // index into pinChoices
	remoteIdx int
	width     int
	height    int
	quitting  bool

	preview    string
	previewErr string

	// notice is the latest informational message (e.g. anchor dropped)
	notice    string
	statusMsg string
	statusErr bool
}

// Key bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Remote key.Binding
	Open   key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Remote: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next remote"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// NewModel creates a new TUI model. file may be empty; the root pin still
// works from the current directory and is preselected in that case.
func NewModel(file string, lines *resolve.LineRange) (*Model, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	m := &Model{
		cfg:    cfg,
		git:    execgit.New(),
		fs:     osfs.New(),
		opener: browseropen.New(),
		clip:   clip.New(),
		file:   file,
		lines:  lines,
	}

	if file == "" {
		m.cursor = indexOf(pinChoices, resolve.PinRoot)
	} else if kind, err := resolve.ParsePinKind(cfg.DefaultPin); err == nil {
		m.cursor = indexOf(pinChoices, kind)
	}

	if err := m.loadRemotes(); err != nil {
		return nil, err
	}

	m.refreshPreview()
	return m, nil
}

func indexOf(kinds []resolve.PinKind, kind resolve.PinKind) int {
	for i, k := range kinds {
		if k == kind {
			return i
		}
	}
	return 0
}

// loadRemotes lists the repository's remotes for tab cycling. The root
// search starts from the file's directory, never the file itself.
func (m *Model) loadRemotes() error {
	var dir string
	if m.file != "" {
		abs, err := m.fs.Abs(m.file)
		if err != nil {
			return err
		}
		dir = filepath.Dir(abs)
	} else {
		wd, err := m.fs.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	}
	root, err := m.git.FindRoot(dir)
	if err != nil {
		return err
	}
	remotes, err := m.git.Remotes(root)
	if err != nil {
		return err
	}
	m.remotes = remotes

	if m.cfg.DefaultRemote != "" {
		for i, name := range remotes {
			if name == m.cfg.DefaultRemote {
				m.remoteIdx = i
			}
		}
	}
	return nil
}

// Info implements ports.Notifier for anchor-drop notices.
func (m *Model) Info(msg string) {
	m.notice = msg
}

// Error implements ports.Notifier. Resolution errors reach the model as
// returned errors, so this stays empty.
func (m *Model) Error(msg string) {}

func (m *Model) request() resolve.Request {
	req := resolve.Request{
		File:  m.file,
		Lines: m.lines,
		Pin:   pinChoices[m.cursor],
	}
	if len(m.remotes) > 0 {
		req.Remote = m.remotes[m.remoteIdx]
	}
	return req
}

// refreshPreview recomputes the URL for the current selection.
func (m *Model) refreshPreview() {
	m.notice = ""
	m.preview = ""
	m.previewErr = ""

	resolver := resolve.New(m.git, m.fs, m, m.cfg)
	res, err := resolver.Resolve(m.request())
	if err != nil {
		m.previewErr = err.Error()
		return
	}
	m.preview = res.URL
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.statusErr = false

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(pinChoices)-1 {
				m.cursor++
				m.refreshPreview()
			}

		case key.Matches(msg, keys.Remote):
			if len(m.remotes) > 1 {
				m.remoteIdx = (m.remoteIdx + 1) % len(m.remotes)
				m.refreshPreview()
			}

		case key.Matches(msg, keys.Open):
			if m.preview == "" {
				break
			}
			if err := m.opener.Open(m.preview, m.cfg.OpenCmd); err != nil {
				m.statusMsg = fmt.Sprintf("Open failed: %v", err)
				m.statusErr = true
			} else {
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Copy):
			if m.preview == "" {
				break
			}
			if err := m.clip.WriteText(m.preview); err != nil {
				m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
				m.statusErr = true
			} else {
				m.statusMsg = "Copied to clipboard"
			}
		}
	}

	return m, nil
}

// View renders the picker
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(" gitlink "))
	b.WriteString("\n\n")

	if m.file != "" {
		b.WriteString(dimStyle.Render("file:   " + m.file))
		b.WriteString("\n")
		if m.lines != nil {
			b.WriteString(dimStyle.Render("lines:  " + m.lines.String()))
			b.WriteString("\n")
		}
	}
	if len(m.remotes) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("remote: %s (%d/%d)",
			m.remotes[m.remoteIdx], m.remoteIdx+1, len(m.remotes))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, kind := range pinChoices {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = selectedStyle
		}
		b.WriteString(style.Render(cursor + string(kind)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.previewErr != "":
		b.WriteString(errorBadge.Render(m.previewErr))
	case m.preview != "":
		b.WriteString(urlStyle.Render(m.preview))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(dimStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		if m.statusErr {
			b.WriteString(errorBadge.Render(m.statusMsg))
		} else {
			b.WriteString(noticeBadge.Render(m.statusMsg))
		}
		b.WriteString("\n")
	}

	help := "[↑/↓] pin  [tab] remote  [enter] open  [c] copy  [q] quit"
	b.WriteString(helpStyle.Render(help))

	return appStyle.Render(b.String())
}

// Run starts the TUI
func Run(file string, lines *resolve.LineRange) error {
	m, err := NewModel(file, lines)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
