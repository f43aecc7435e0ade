package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"unshuffle-metadata/ds"
)

// Start runs the selector on the terminal and returns the chosen path, or
// "" if the user quit.
func Start(dir string) (string, error) {
	fileSelector, err := CreateFileSelector(dir)
	if err != nil {
		return "", errors.Wrap(err, "ui.Start error")
	}
	model, err := tea.NewProgram(fileSelector).StartReturningModel()
	if err != nil {
		return "", errors.Wrap(err, "ui.Start error")
	}
	result, ok := model.(FileSelector)
	if !ok {
		return "", ds.ErrUnreachableCode{Caller: "ui.Start"}
	}
	return result.Selected(), nil
}
