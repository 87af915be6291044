package frontmatter

import (
	"reflect"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantFM   *Frontmatter
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid frontmatter",
			content: `---
id: page-123
title: Test Page
parent: folder-1
folder: false
order: 2
tags: [test, example]
created: 2024-01-01 10:00:00
modified: 2024-01-02 11:00:00
---

# Test Content

This is the body.`,
			wantFM: &Frontmatter{
				ID:       "page-123",
				Title:    "Test Page",
				Parent:   "folder-1",
				Order:    2,
				Tags:     []string{"test", "example"},
				Created:  "2024-01-01 10:00:00",
				Modified: "2024-01-02 11:00:00",
			},
			wantBody: "\n# Test Content\n\nThis is the body.",
			wantErr:  false,
		},
		{
			name: "folder page",
			content: `---
id: folder-1
title: Projects
folder: true
tags: []
created: 2024-01-01 10:00:00
modified: 2024-01-01 10:00:00
---

`,
			wantFM: &Frontmatter{
				ID:       "folder-1",
				Title:    "Projects",
				Folder:   true,
				Tags:     []string{},
				Created:  "2024-01-01 10:00:00",
				Modified: "2024-01-01 10:00:00",
			},
			wantBody: "\n",
			wantErr:  false,
		},
		{
			name:     "no frontmatter",
			content:  "# Just a title\n\nSome content.",
			wantFM:   nil,
			wantBody: "# Just a title\n\nSome content.",
			wantErr:  false,
		},
		{
			name: "invalid yaml",
			content: `---
id: test
title: [invalid
---

Body`,
			wantFM: nil,
			wantBody: `---
id: test
title: [invalid
---

Body`,
			wantErr: true,
		},
		{
			name: "minimal frontmatter",
			content: `---
id: minimal
title: Minimal Page
tags: []
created: 2024-01-01 10:00:00
modified: 2024-01-01 10:00:00
---

Content`,
			wantFM: &Frontmatter{
				ID:       "minimal",
				Title:    "Minimal Page",
				Tags:     []string{},
				Created:  "2024-01-01 10:00:00",
				Modified: "2024-01-01 10:00:00",
			},
			wantBody: "\nContent",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFM, gotBody, err := Parse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(gotFM, tt.wantFM) {
				t.Errorf("Parse() gotFM = %+v, want %+v", gotFM, tt.wantFM)
			}
			if gotBody != tt.wantBody {
				t.Errorf("Parse() gotBody = %q, want %q", gotBody, tt.wantBody)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		fm   *Frontmatter
		want string
	}{
		{
			name: "complete frontmatter",
			fm: &Frontmatter{
				ID:       "page-123",
				Title:    "Test Page",
				Parent:   "folder-1",
				Folder:   true,
				Order:    3,
				Tags:     []string{"tag1", "tag2"},
				Created:  "2024-01-01 10:00:00",
				Modified: "2024-01-02 11:00:00",
			},
			want: `---
id: page-123
title: Test Page
parent: folder-1
folder: true
order: 3
tags: [tag1, tag2]
created: 2024-01-01 10:00:00
modified: 2024-01-02 11:00:00
---`,
		},
		{
			name: "minimal frontmatter omits optional fields",
			fm: &Frontmatter{
				ID:       "minimal",
				Title:    "Minimal",
				Tags:     []string{},
				Created:  "2024-01-01 10:00:00",
				Modified: "2024-01-01 10:00:00",
			},
			want: `---
id: minimal
title: Minimal
tags: []
created: 2024-01-01 10:00:00
modified: 2024-01-01 10:00:00
---`,
		},
		{
			name: "with special characters",
			fm: &Frontmatter{
				ID:       "special",
				Title:    "Page: Special, Characters",
				Tags:     []string{"tag:special", "tag,comma"},
				Created:  "2024-01-01 10:00:00",
				Modified: "2024-01-01 10:00:00",
			},
			want: `---
id: special
title: Page: Special, Characters
tags: ["tag:special", "tag,comma"]
created: 2024-01-01 10:00:00
modified: 2024-01-01 10:00:00
---`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.fm)
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildContent(t *testing.T) {
	fm := &Frontmatter{
		ID:       "test",
		Title:    "Test",
		Tags:     []string{},
		Created:  "2024-01-01 10:00:00",
		Modified: "2024-01-01 10:00:00",
	}

	tests := []struct {
		name        string
		body        string
		wantSpacing bool
	}{
		{
			name:        "body without leading newline",
			body:        "# Title\n\nContent",
			wantSpacing: true,
		},
		{
			name:        "body with leading newline",
			body:        "\n# Title\n\nContent",
			wantSpacing: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildContent(fm, tt.body)
			header := Build(fm)

			if tt.wantSpacing {
				want := header + "\n\n" + tt.body
				if got != want {
					t.Errorf("BuildContent() spacing incorrect, got = %q, want = %q", got, want)
				}
			} else {
				want := header + "\n" + tt.body
				if got != want {
					t.Errorf("BuildContent() spacing incorrect, got = %q, want = %q", got, want)
				}
			}
		})
	}
}

func TestFormatAndParseTimestamp(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 45, 0, time.UTC)

	formatted := FormatTimestamp(now)
	expected := "2024-01-15 14:30:45"

	if formatted != expected {
		t.Errorf("FormatTimestamp() = %q, want %q", formatted, expected)
	}

	parsed, err := ParseTimestamp(formatted)
	if err != nil {
		t.Errorf("ParseTimestamp() error = %v", err)
	}

	if !parsed.Equal(now) {
		t.Errorf("ParseTimestamp() = %v, want %v", parsed, now)
	}
}

func TestRoundTrip(t *testing.T) {
	// Parse and rebuild without losing data
	original := &Frontmatter{
		ID:       "roundtrip-123",
		Title:    "Round Trip Test",
		Parent:   "folder-9",
		Folder:   false,
		Order:    5,
		Tags:     []string{"test", "frontmatter"},
		Created:  "2024-01-01 10:00:00",
		Modified: "2024-01-02 11:00:00",
	}

	body := "# Test Content\n\nThis is a test."

	content := BuildContent(original, body)

	parsed, parsedBody, err := Parse(content)
	if err != nil {
		t.Fatalf("Failed to parse round-trip content: %v", err)
	}

	if !reflect.DeepEqual(parsed, original) {
		t.Errorf("Round trip frontmatter mismatch\noriginal: %+v\nparsed: %+v", original, parsed)
	}

	expectedBody := "\n" + body
	if parsedBody != expectedBody {
		t.Errorf("Round trip body mismatch\noriginal: %q\nparsed: %q", expectedBody, parsedBody)
	}
}

func TestPageConversionRoundTrip(t *testing.T) {
	fm := &Frontmatter{
		ID:       "p1",
		Title:    "Page One",
		Parent:   "root",
		Folder:   true,
		Order:    2,
		Tags:     []string{"a"},
		Created:  "2024-03-01 08:00:00",
		Modified: "2024-03-02 09:00:00",
	}

	back := FromPage(fm.Page())
	if !reflect.DeepEqual(back, fm) {
		t.Errorf("Page conversion mismatch\noriginal: %+v\nback: %+v", fm, back)
	}
}
