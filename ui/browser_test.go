package ui

import (
	"os"
	"path/filepath"
	"testing"

	"emdtojson/emd/dformat"
	"emdtojson/emd/dlocation"
	"emdtojson/internal/emdtest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	locations := emdtest.Dump(
		emdtest.Header{Version: dformat.VersionExpiration, DumpType: dformat.DumpTypeLocations, Expiration: 1700000000, Banner: "EMD"},
		emdtest.LocationTable(dlocation.Location{ID: 60003760, TypeID: 1531, Name: "Jita IV - Moon 4"}),
	)
	broken := emdtest.Dump(
		emdtest.Header{Version: dformat.VersionTyped, DumpType: dformat.DumpTypeOrders, Checksum: emdtest.Uint32(1)},
		emdtest.OrderTable(false),
	)
	files := map[string][]byte{
		"a_locations.emd": locations,
		"b_orders.emd":    broken,
		"c_truncated.emd": locations[:20],
		"notes.txt":       []byte("not a dump"),
	}
	for name, bs := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), bs, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.emd"), 0755))
	return dir
}

func press(t *testing.T, model tea.Model, key tea.KeyMsg) tea.Model {
	t.Helper()
	model, cmd := model.Update(key)
	if cmd != nil {
		model, _ = model.Update(cmd())
	}
	return model
}

func TestReadDirectory(t *testing.T) {
	files, err := ReadDirectory(createDir(t), ".emd")
	require.NoError(t, err)
	assert.Equal(t, []FileName{"a_locations.emd", "b_orders.emd", "c_truncated.emd"}, files)

	_, err = ReadDirectory(filepath.Join(t.TempDir(), "missing"), ".emd")
	assert.Error(t, err)
}

func TestBrowserDecodesSelection(t *testing.T) {
	var model tea.Model = CreateBrowser(createDir(t), ".emd")
	assert.Contains(t, model.View(), "> a_locations.emd")

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	view := model.View()
	assert.Contains(t, view, "expiration   1700000000 (2023-11-14T22:13:20Z)")
	assert.Contains(t, view, `banner       "EMD"`)
	assert.Contains(t, view, "records      1")
	assert.Contains(t, view, "(ok)")
	assert.Contains(t, view, `"name":"Jita IV - Moon 4"`)
	assert.NotContains(t, view, "Warning")
}

func TestBrowserShowsWarnings(t *testing.T) {
	var model tea.Model = CreateBrowser(createDir(t), ".emd")
	model = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, model.View(), "> b_orders.emd")

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	view := model.View()
	assert.Contains(t, view, "(mismatch)")
	assert.Contains(t, view, "Warning: checksum mismatch")
}

func TestBrowserShowsErrors(t *testing.T) {
	var model tea.Model = CreateBrowser(createDir(t), ".emd")
	for i := 0; i < 5; i++ {
		model = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Contains(t, model.View(), "> c_truncated.emd")

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, model.View(), "Error: ")
}

func TestBrowserEmptyDirectory(t *testing.T) {
	var model tea.Model = CreateBrowser(t.TempDir(), ".emd")
	assert.Contains(t, model.View(), "No .emd dumps found")
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, model.View(), "Error")
}

func TestBrowserQuits(t *testing.T) {
	model := CreateBrowser(t.TempDir(), ".emd")
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
