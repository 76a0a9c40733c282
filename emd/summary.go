package emd

import (
	"log/slog"
)

type Summary struct {
	Version  uint8  `json:"version"`
	Format   string `json:"format"`
	DumpType string `json:"dump_type"`
	Records  int    `json:"records"`
	Checksum string `json:"checksum"`
}

const (
	ChecksumOK        = "ok"
	ChecksumMismatch  = "mismatch"
	ChecksumUnchecked = "unchecked"
)

func Summarize(dump *Dump) Summary {
	summary := Summary{
		Version:  dump.Version,
		Format:   dump.Format.Name,
		DumpType: "none",
		Checksum: ChecksumUnchecked,
	}
	if dump.Records != nil {
		summary.DumpType = dump.Records.DumpType().String()
		summary.Records = dump.Records.Len()
	}
	if dump.ComputedChecksum != nil {
		summary.Checksum = ChecksumOK
		if *dump.ComputedChecksum != dump.DeclaredChecksum {
			summary.Checksum = ChecksumMismatch
		}
	}
	return summary
}

func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("version", int(s.Version)),
		slog.String("format", s.Format),
		slog.String("dump_type", s.DumpType),
		slog.Int("records", s.Records),
		slog.String("checksum", s.Checksum),
	)
}
