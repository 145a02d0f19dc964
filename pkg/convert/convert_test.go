package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/cssvar/pkg/rules"
)

func TestConverter_Convert(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantCount int
	}{
		{
			name:      "no_match",
			content:   ".card { padding: 12px; }",
			want:      ".card { padding: 12px; }",
			wantCount: 0,
		},
		{
			name:      "background_color_semicolon",
			content:   "background-color: #ffffff;",
			want:      "background-color: var(--color-bg-secondary);",
			wantCount: 1,
		},
		{
			name:      "brace_boundary_no_semicolon",
			content:   "color: #1a1f2d }",
			want:      "color: var(--color-text-primary) }",
			wantCount: 1,
		},
		{
			name:      "direct_brace_boundary",
			content:   "color:#1a1f2d}",
			want:      "color: var(--color-text-primary)}",
			wantCount: 1,
		},
		{
			name:      "longer_hex_not_matched",
			content:   "background-color: #ffffffaa;",
			want:      "background-color: #ffffffaa;",
			wantCount: 0,
		},
		{
			name:      "end_of_input_is_not_a_boundary",
			content:   "background-color: #ffffff",
			want:      "background-color: #ffffff",
			wantCount: 0,
		},
		{
			name:      "case_insensitive",
			content:   "COLOR: #1A1F2D;",
			want:      "color: var(--color-text-primary);",
			wantCount: 1,
		},
		{
			name:      "flexible_whitespace",
			content:   "background:#f6f8fb;",
			want:      "background: var(--color-bg-primary);",
			wantCount: 1,
		},
		{
			name:      "border_shorthand",
			content:   "border: 1px solid #dce3ee;\nborder-bottom: 1px solid #dce3ee;",
			want:      "border: 1px solid var(--color-border);\nborder-bottom: 1px solid var(--color-border);",
			wantCount: 2,
		},
		{
			name:      "multiple_rules_and_occurrences",
			content:   ".a { background: #ffffff; color: #5a6e8b; }\n.b { background: #ffffff; }",
			want:      ".a { background: var(--color-bg-secondary); color: var(--color-text-secondary); }\n.b { background: var(--color-bg-secondary); }",
			wantCount: 3,
		},
		{
			name:      "already_converted",
			content:   "background-color: var(--color-bg-secondary);\ncolor: var(--color-text-primary);",
			want:      "background-color: var(--color-bg-secondary);\ncolor: var(--color-text-primary);",
			wantCount: 0,
		},
		{
			name:      "empty_content",
			content:   "",
			want:      "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := New(rules.DefaultTable())
			require.NoError(t, err)

			got, count := conv.Convert(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestConverter_Convert_Idempotent(t *testing.T) {
	conv, err := New(rules.DefaultTable())
	require.NoError(t, err)

	content := `.panel {
	background: #f6f8fb;
	color: #1a1f2d;
	border: 1px solid #dce3ee;
}`

	first, count := conv.Convert(content)
	require.Equal(t, 3, count)

	second, count := conv.Convert(first)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, count)
}

func TestConverter_Convert_CustomRules(t *testing.T) {
	table := append(rules.DefaultTable(), rules.Rule{
		Property:    "outline-color",
		Value:       "#ff0000",
		Replacement: "var(--color-focus)",
	})

	conv, err := New(table)
	require.NoError(t, err)

	got, count := conv.Convert("outline-color: #ff0000;")
	assert.Equal(t, "outline-color: var(--color-focus);", got)
	assert.Equal(t, 1, count)
}

func TestNew_InvalidRule(t *testing.T) {
	_, err := New([]rules.Rule{{Property: "color"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value is required")
}
