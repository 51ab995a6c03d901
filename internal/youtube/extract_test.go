package youtube

import "testing"

const testVideoID = "dQw4w9WgXcQ"

func TestExtractVideoIDSupportedShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"watch link", "https://www.youtube.com/watch?v=" + testVideoID},
		{"watch link with v after other params", "https://www.youtube.com/watch?feature=share&list=PL1&v=" + testVideoID},
		{"watch link with trailing params", "https://youtube.com/watch?v=" + testVideoID + "&t=42s"},
		{"watch link without scheme", "youtube.com/watch?v=" + testVideoID},
		{"watch link over http", "http://www.youtube.com/watch?v=" + testVideoID},
		{"short link", "https://youtu.be/" + testVideoID},
		{"short link without scheme or www", "youtu.be/" + testVideoID},
		{"short link with query", "https://youtu.be/" + testVideoID + "?si=abc"},
		{"embed link", "https://www.youtube.com/embed/" + testVideoID},
		{"legacy v link", "https://www.youtube.com/v/" + testVideoID},
		{"shorts link", "https://www.youtube.com/shorts/" + testVideoID},
		{"bare id", testVideoID},
		{"bare id with dash and underscore", "a-b_c-d_e-f"},
		{"surrounding whitespace", "   https://youtu.be/" + testVideoID + "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := testVideoID
			if tt.name == "bare id with dash and underscore" {
				want = tt.input
			}

			got, ok := ExtractVideoID(tt.input)
			if !ok {
				t.Fatalf("ExtractVideoID(%q) rejected a supported shape", tt.input)
			}
			if got != want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, want)
			}
		})
	}
}

func TestExtractVideoIDRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"other video site", "https://vimeo.com/123456789"},
		{"too short bare id", "abc123"},
		{"too long bare id", "dQw4w9WgXcQextra"},
		{"disallowed character in bare id", "dQw4w9WgXc!"},
		{"watch link with short id", "https://www.youtube.com/watch?v=short"},
		{"short link with short id", "https://youtu.be/abc"},
		{"channel link", "https://www.youtube.com/@somechannel"},
		{"plain text", "not a link at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, ok := ExtractVideoID(tt.input); ok {
				t.Errorf("ExtractVideoID(%q) = %q, expected rejection", tt.input, got)
			}
		})
	}
}

func TestURLHelpers(t *testing.T) {
	t.Parallel()

	if got := WatchURL(testVideoID); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("WatchURL = %q", got)
	}
	if got := ThumbnailURL(testVideoID); got != "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg" {
		t.Errorf("ThumbnailURL = %q", got)
	}
	if got := PlaceholderTitle(testVideoID); got != "External Video (dQw4w9WgXcQ)" {
		t.Errorf("PlaceholderTitle = %q", got)
	}
	if ErrInvalidURL.Error() != "Invalid YouTube URL" {
		t.Errorf("ErrInvalidURL = %q", ErrInvalidURL.Error())
	}
}
