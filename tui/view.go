package tui

import (
	"fmt"
	"strings"
)

func (m *model) View() string {
	switch m.state {
	case StateMenu:
		return m.menuView()
	case StateEditTarget:
		return m.targetView()
	case StateRunning:
		return m.runningView()
	case StateResult:
		return m.resultView()
	default:
		return "未知状态"
	}
}

func (m *model) menuView() string {
	var b strings.Builder

	b.WriteString(normalStyle.Render(m.menu.View()) + "\n")
	b.WriteString(hintStyle.Render("↑/↓ 选择 • Enter 确认 • q 退出") + "\n")

	return b.String()
}

func (m *model) targetView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("修改目标目录") + "\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")
	b.WriteString(labelStyle.Render("输入要整理的目录：") + "\n")
	b.WriteString(focusedStyle.Render(m.targetInput.View()) + "\n\n")
	b.WriteString(hintStyle.Render("Enter 保存 • Esc 取消") + "\n")

	return b.String()
}

func (m *model) runningView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("桌面整理工具") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n", m.spinner.View(), m.running))
	b.WriteString(promptStyle.Render("目标目录: ") + filePathStyle.Render(m.cfg.TargetDir) + "\n")

	return b.String()
}

func (m *model) resultView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorTitleStyle.Render("✗ 执行失败") + "\n\n")
		b.WriteString(textStyle.Render(m.err.Error()) + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✓ 执行完成") + "\n\n")
		b.WriteString(m.result + "\n\n")
	}

	b.WriteString(hintStyle.Render("Enter 返回菜单 • Ctrl+C 退出") + "\n")

	return b.String()
}

// generatedSummary 描述示例文件的生成结果
func generatedSummary(dir string, created, skipped []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("在 %s 中创建了 %d 个示例文件", dir, len(created)))
	if len(skipped) > 0 {
		b.WriteString(fmt.Sprintf("，%d 个已存在被跳过", len(skipped)))
	}
	b.WriteString("\n")
	if len(created) > 0 {
		b.WriteString(filePathStyle.Render(strings.Join(created, "  ")))
	}

	return b.String()
}
