package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(dir string, extension string) error {
	browser := CreateBrowser(dir, extension)
	if err := tea.NewProgram(browser).Start(); err != nil {
		err := errors.Wrap(err, "ui.Start error")
		return err
	}
	return nil
}
