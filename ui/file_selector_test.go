package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDir(t *testing.T, names ...string) string {
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0}, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.dat"), 0755))
	return dir
}

func press(s tea.Model, keyType tea.KeyType) (tea.Model, tea.Cmd) {
	return s.Update(tea.KeyMsg{Type: keyType})
}

func TestReadDirectory(t *testing.T) {
	dir := createDir(t, "global-metadata.dat", "notes.txt", "OTHER.DAT")

	files, err := ReadDirectory(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []FileName{"global-metadata.dat", "OTHER.DAT"}, files)

	_, err = ReadDirectory(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFileSelector_Select(t *testing.T) {
	dir := createDir(t, "a.dat", "b.dat")
	selector, err := CreateFileSelector(dir)
	require.NoError(t, err)

	model, cmd := press(selector, tea.KeyDown)
	assert.Nil(t, cmd)
	model, _ = press(model, tea.KeyDown)
	assert.Contains(t, model.View(), "> b.dat")

	model, cmd = press(model, tea.KeyEnter)
	assert.NotNil(t, cmd)
	assert.Equal(t, filepath.Join(dir, "b.dat"), model.(FileSelector).Selected())
}

func TestFileSelector_Quit(t *testing.T) {
	selector, err := CreateFileSelector(createDir(t, "a.dat"))
	require.NoError(t, err)

	model, cmd := selector.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
	assert.Equal(t, "", model.(FileSelector).Selected())
}

func TestFileSelector_Empty(t *testing.T) {
	selector, err := CreateFileSelector(createDir(t))
	require.NoError(t, err)

	assert.Contains(t, selector.View(), "No .dat files")
	model, cmd := press(selector, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "", model.(FileSelector).Selected())
}
