package tui

import (
	"github.com/moyu-x/desktop-organizer/app"
	"github.com/moyu-x/desktop-organizer/pkg/generator"
)

type organizeDoneMsg struct {
	report *app.Report
	err    error
}

type generateDoneMsg struct {
	result *generator.Result
	err    error
}
