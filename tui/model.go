package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/desktop-organizer/app"
	"github.com/moyu-x/desktop-organizer/pkg/generator"
)

type State int

const (
	StateMenu State = iota
	StateEditTarget
	StateRunning
	StateResult
)

type action int

const (
	actionPreview action = iota
	actionOrganize
	actionGenerate
	actionTarget
	actionQuit
)

type runFunc func(*app.OrganizeOptions) (*app.Report, error)

type generateFunc func(dir string) (*generator.Result, error)

type model struct {
	state       State
	cfg         Config
	menu        list.Model
	targetInput textinput.Model
	spinner     spinner.Model
	running     string
	result      string
	err         error
	run         runFunc
	generate    generateFunc
}

func initialModel(config *Config, run runFunc, generate generateFunc) model {
	menu := list.New([]list.Item{
		menuItem{action: actionPreview, title: "预览整理", desc: "只显示将要执行的操作，不修改任何文件"},
		menuItem{action: actionOrganize, title: "立即整理", desc: "把文件移动到分类目录"},
		menuItem{action: actionGenerate, title: "生成示例文件", desc: "在目标目录创建 25 个测试文件"},
		menuItem{action: actionTarget, title: "修改目标目录", desc: "当前: " + config.TargetDir},
		menuItem{action: actionQuit, title: "退出", desc: ""},
	}, list.NewDefaultDelegate(), 0, 24)

	menu.Title = "桌面整理工具"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.Styles.Title = titleStyle
	menu.Styles.TitleBar = titleStyle

	targetInput := textinput.New()
	targetInput.Placeholder = "请输入要整理的目录（例如：~/Desktop）"
	targetInput.Prompt = "> "
	targetInput.PromptStyle = focusedPromptStyle
	targetInput.TextStyle = textStyle

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		state:       StateMenu,
		cfg:         *config,
		menu:        menu,
		targetInput: targetInput,
		spinner:     s,
		run:         run,
		generate:    generate,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

type menuItem struct {
	action action
	title  string
	desc   string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }
