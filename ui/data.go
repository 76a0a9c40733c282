package ui

import (
	"emdtojson/emd"
)

type (
	FileName string
	// Browser lists the dumps of a directory and shows the decoded header
	// and warnings of the selected one.
	Browser struct {
		dir       string
		extension string
		files     []FileName
		cursor    int
		selection *Selection
		err       error
	}
	Selection struct {
		Name     FileName
		Dump     *emd.Dump
		Summary  emd.Summary
		Warnings emd.Warnings
		Err      error
	}
	decodedMsg Selection
)
