package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/app"
	"github.com/moyu-x/desktop-organizer/internal/logger"
	"github.com/moyu-x/desktop-organizer/pkg/generator"
)

type Config struct {
	TargetDir   string
	Logging     bool
	LogLevel    string
	HistoryPath string
}

type teaModel struct {
	m *model
}

func (tm teaModel) Init() tea.Cmd {
	return tm.m.Init()
}

func (tm teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := tm.m.Update(msg)
	return tm, cmd
}

func (tm teaModel) View() string {
	return tm.m.View()
}

func Run(config *Config) error {
	logger.Debug().Msg("启动交互菜单")

	m := initialModel(config, app.RunOrganize, func(dir string) (*generator.Result, error) {
		return generator.Generate(afero.NewOsFs(), dir)
	})
	p := tea.NewProgram(teaModel{m: &m}, tea.WithAltScreen())

	_, err := p.Run()
	if err != nil {
		logger.Error().Err(err).Msg("TUI 运行错误")
	}

	return err
}
