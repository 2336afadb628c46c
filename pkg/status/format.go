package status

import (
	"fmt"
	"strings"
)

// 📝 Lines renders r for the terminal, header first.
func (r *Report) Lines() []string {
	lines := []string{fmt.Sprintf("📄 %s", r.Note)}

	switch {
	case r.Published():
		lines = append(lines, fmt.Sprintf("🔗 Published as %s %s", r.PasteID, r.PasteURL))
	case r.PasteID != "":
		lines = append(lines, fmt.Sprintf("⚠️  Paste %s has no edit code", r.PasteID))
	default:
		lines = append(lines, "📭 Not published")
	}

	if r.CacheInvalid {
		lines = append(lines, "⚠️  Embed cache is invalid and will be rebuilt")
	}
	if r.Folder != "" {
		lines = append(lines, fmt.Sprintf("📁 Asset folder %s", r.Folder))
	}

	for _, e := range r.Entries {
		lines = append(lines, FormatEntry(e))
	}

	lines = append(lines, r.Summary())
	return lines
}

// Summary counts entries per kind.
func (r *Report) Summary() string {
	if len(r.Entries) == 0 {
		return "✅ No mirrored embeds"
	}
	prefix := "✅"
	if !r.InSync() {
		prefix = "⏳"
	}
	return fmt.Sprintf("%s %d cached, %d pending, %d stale", prefix,
		r.Count(KindCached), r.Count(KindPending), r.Count(KindStale))
}

// String joins Lines with newlines.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
