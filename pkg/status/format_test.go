package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter_FormatFileOperation(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name         string
		status       FileStatus
		replacements int
		want         string
	}{
		{
			name:         "converted",
			status:       StatusConverted,
			replacements: 5,
			want:         "📝 Converted src/App.css (5 replacements)",
		},
		{
			name:   "unchanged",
			status: StatusUnchanged,
			want:   "👍 Unchanged src/App.css",
		},
		{
			name:   "missing",
			status: StatusMissing,
			want:   "⚠️  Missing src/App.css",
		},
		{
			name:   "restored",
			status: StatusRestored,
			want:   "♻️  Restored src/App.css",
		},
		{
			name:   "unknown",
			status: StatusUnknown,
			want:   "❓ Unknown src/App.css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatFileOperation("src/App.css", tt.status, tt.replacements)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultFileFormatter_FormatProgress(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "⏳ Progress: 0/2 (0%)", f.FormatProgress(0, 2))
	assert.Equal(t, "⏳ Progress: 1/2 (50%)", f.FormatProgress(1, 2))
	assert.Equal(t, "✅ Progress: 2/2 (100%)", f.FormatProgress(2, 2))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", f.FormatProgress(0, 0))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "", f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
}
