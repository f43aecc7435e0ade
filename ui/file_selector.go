package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	MetadataExtension = ".dat"
)

type FileName string

// FileSelector lists the metadata candidates of one directory and lets the
// user pick one of them.
type FileSelector struct {
	dir      string
	files    []FileName
	cursor   int
	selected FileName
	quitting bool
}

func CreateFileSelector(dir string) (FileSelector, error) {
	files, err := ReadDirectory(dir)
	if err != nil {
		return FileSelector{}, errors.Wrap(err, "CreateFileSelector error")
	}
	return FileSelector{
		dir:   dir,
		files: files,
	}, nil
}

// ReadDirectory returns the regular files of path that look like metadata
// dumps, in directory order.
func ReadDirectory(path string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadDirectory error reading "%s"`, path)
	}

	entries = lo.Filter(
		entries,
		func(entry os.DirEntry, _ int) bool {
			return entry.Type().IsRegular() &&
				strings.EqualFold(filepath.Ext(entry.Name()), MetadataExtension)
		},
	)
	fileNames := lo.Map(
		entries,
		func(entry os.DirEntry, _ int) FileName {
			return FileName(entry.Name())
		},
	)
	return fileNames, nil
}

// Selected is the chosen file joined with the directory, or "" when the
// user quit without choosing.
func (s FileSelector) Selected() string {
	if s.selected == "" {
		return ""
	}
	return filepath.Join(s.dir, string(s.selected))
}

func (s FileSelector) View() string {
	if s.quitting {
		return ""
	}
	output := "UNSHUFFLE METADATA\n\n"
	output += "Current directory: " + s.dir + "\n\n"

	if len(s.files) == 0 {
		output += fmt.Sprintf("No %s files here. Press q to quit.\n", MetadataExtension)
		return output
	}

	for i, file := range s.files {
		cursor := " "
		if i == s.cursor {
			cursor = ">"
		}
		output += fmt.Sprintf("%s %s\n", cursor, file)
	}
	output += "\nenter: restore the selected file, q: quit\n"

	return output
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		s.quitting = true
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.files) > 0 {
			s.selected = s.files[s.cursor]
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}
