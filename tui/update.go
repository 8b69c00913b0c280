package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moyu-x/desktop-organizer/app"
	"github.com/moyu-x/desktop-organizer/internal/logger"
	"github.com/moyu-x/desktop-organizer/pkg/database"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateEditTarget:
			return m.updateTarget(msg)
		case StateResult:
			switch msg.String() {
			case "enter", "esc", "q":
				m.state = StateMenu
				m.result, m.err = "", nil
			}
			return m, nil
		case StateRunning:
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.menu.SetWidth(msg.Width)
		return m, nil

	case organizeDoneMsg:
		m.state = StateResult
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.report.Table()
		}
		return m, nil

	case generateDoneMsg:
		m.state = StateResult
		m.err = msg.err
		if msg.err == nil {
			m.result = generatedSummary(m.cfg.TargetDir, msg.result.Created, msg.result.Skipped)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == StateRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.selectAction(item.action)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *model) selectAction(a action) (tea.Model, tea.Cmd) {
	switch a {
	case actionPreview:
		return m.startOrganize(true)
	case actionOrganize:
		return m.startOrganize(false)
	case actionGenerate:
		m.state = StateRunning
		m.running = "正在生成示例文件..."
		dir := m.cfg.TargetDir
		gen := m.generate
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			result, err := gen(dir)
			return generateDoneMsg{result: result, err: err}
		})
	case actionTarget:
		m.state = StateEditTarget
		m.targetInput.SetValue(m.cfg.TargetDir)
		m.targetInput.CursorEnd()
		return m, m.targetInput.Focus()
	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) startOrganize(dryRun bool) (tea.Model, tea.Cmd) {
	m.state = StateRunning
	m.running = "正在整理..."
	if dryRun {
		m.running = "正在预览..."
	}

	opts := &app.OrganizeOptions{
		TargetDir:   m.cfg.TargetDir,
		DryRun:      dryRun,
		Logging:     m.cfg.Logging,
		LogLevel:    m.cfg.LogLevel,
		HistoryPath: m.cfg.HistoryPath,
		Quiet:       true,
	}
	run := m.run

	logger.Debug().Str("target", opts.TargetDir).Bool("dry_run", dryRun).Msg("菜单触发整理")

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		report, err := run(opts)
		return organizeDoneMsg{report: report, err: err}
	})
}

func (m *model) updateTarget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateMenu
		m.targetInput.Blur()
		return m, nil
	case "enter":
		if value := strings.TrimSpace(m.targetInput.Value()); value != "" {
			if expanded, err := database.ExpandPath(value); err == nil {
				value = expanded
			}
			m.setTarget(value)
		}
		m.state = StateMenu
		m.targetInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.targetInput, cmd = m.targetInput.Update(msg)
	return m, cmd
}

func (m *model) setTarget(dir string) {
	m.cfg.TargetDir = dir
	for i, it := range m.menu.Items() {
		item, ok := it.(menuItem)
		if !ok || item.action != actionTarget {
			continue
		}
		item.desc = "当前: " + dir
		m.menu.SetItem(i, item)
	}
}
