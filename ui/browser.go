package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"emdtojson/ds"
	"emdtojson/emd"
	"emdtojson/emd/dhistory"
	"emdtojson/emd/dlocation"
	"emdtojson/emd/dorder"
	"emdtojson/source"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ReadDirectory lists the dump files of path, compressed ones included.
func ReadDirectory(path string, extension string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		err := errors.Wrap(err, "ReadDirectory error")
		return nil, err
	}

	dumps := lo.Filter(
		entries,
		func(entry os.DirEntry, _ int) bool {
			if entry.IsDir() {
				return false
			}
			return source.MatchesExtension(entry.Name(), extension)
		},
	)
	return lo.Map(
		dumps,
		func(entry os.DirEntry, _ int) FileName {
			return FileName(entry.Name())
		},
	), nil
}

func CreateBrowser(dir string, extension string) Browser {
	files, err := ReadDirectory(dir, extension)
	return Browser{
		dir:       dir,
		extension: extension,
		files:     files,
		err:       err,
	}
}

func decodeFile(path string, name FileName) Selection {
	selection := Selection{Name: name}
	rc, err := source.Open(path)
	if err != nil {
		selection.Err = err
		return selection
	}
	defer func() { _ = rc.Close() }()

	dump, warnings, err := emd.Decode(rc)
	if err != nil {
		selection.Err = err
		return selection
	}
	selection.Dump = dump
	selection.Summary = emd.Summarize(dump)
	selection.Warnings = warnings
	return selection
}

func (b Browser) decode(name FileName) tea.Cmd {
	path := filepath.Join(b.dir, string(name))
	return func() tea.Msg {
		return decodedMsg(decodeFile(path, name))
	}
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case decodedMsg:
		selection := Selection(msg)
		b.selection = &selection
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.files)-1 {
				b.cursor++
			}
		case "enter":
			if len(b.files) > 0 {
				return b, b.decode(b.files[b.cursor])
			}
		}
	}
	return b, nil
}

func formatTimestamp(label string, value *uint64) string {
	if value == nil {
		return ""
	}
	t := time.Unix(int64(*value), 0).UTC()
	return fmt.Sprintf("%-12s %d (%s)\n", label, *value, t.Format(time.RFC3339))
}

func firstRecord(records emd.Records) any {
	switch records := records.(type) {
	case dlocation.Table:
		if len(records) > 0 {
			return records[0]
		}
	case dorder.Table:
		if len(records) > 0 {
			return records[0]
		}
	case *dhistory.Day:
		if len(records.Stats) > 0 {
			return records.Stats[0]
		}
	}
	return nil
}

func (s Selection) View() string {
	output := fmt.Sprintf("\n%s\n", s.Name)
	if s.Err != nil {
		return output + "Error: " + s.Err.Error() + "\n"
	}

	dump := s.Dump
	output += fmt.Sprintf("%-12s %d (%s)\n", "version", s.Summary.Version, s.Summary.Format)
	output += fmt.Sprintf("%-12s %s\n", "dump type", s.Summary.DumpType)
	output += fmt.Sprintf("%-12s %#08x (%s)\n", "checksum", dump.DeclaredChecksum, s.Summary.Checksum)
	output += formatTimestamp("date", dump.Date)
	output += formatTimestamp("snapshot", dump.Snapshot)
	output += formatTimestamp("expiration", dump.Expiration)
	output += fmt.Sprintf("%-12s %q\n", "banner", dump.Banner)
	output += fmt.Sprintf("%-12s %d\n", "records", s.Summary.Records)
	if record := firstRecord(dump.Records); record != nil {
		output += fmt.Sprintf("%-12s %s\n", "first", ds.DumpJSON(record))
	}
	for _, warning := range s.Warnings {
		output += "Warning: " + warning.Error() + "\n"
	}
	return output
}

func (b Browser) View() string {
	output := "EMDTOJSON\n\n"
	output += "Directory: " + b.dir + "\n\n"

	switch {
	case b.err != nil:
		output += "Error: " + b.err.Error() + "\n"
	case len(b.files) == 0:
		output += fmt.Sprintf("No %s dumps found\n", b.extension)
	default:
		for i, name := range b.files {
			cursor := " "
			if i == b.cursor {
				cursor = ">"
			}
			output += fmt.Sprintf("%s %s\n", cursor, name)
		}
	}

	if b.selection != nil {
		output += b.selection.View()
	}
	output += "\nup/down: move, enter: decode, q: quit\n"
	return output
}
