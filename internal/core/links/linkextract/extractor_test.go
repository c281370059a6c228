package linkextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Link
	}{
		{
			name: "scheme url",
			text: "Check this out: https://example.com/page",
			want: []Link{
				{URL: "https://example.com/page", Domain: "example.com", Type: LinkTypeURL, Position: 16},
			},
		},
		{
			name: "trailing punctuation trimmed",
			text: "see http://example.com.",
			want: []Link{
				{URL: "http://example.com", Domain: "example.com", Type: LinkTypeURL, Position: 4},
			},
		},
		{
			name: "www prefix",
			text: "go to www.example.org now",
			want: []Link{
				{URL: "www.example.org", Domain: "www.example.org", Type: LinkTypeWWW, Position: 6},
			},
		},
		{
			name: "bare domain",
			text: "visit example.com today",
			want: []Link{
				{URL: "example.com", Domain: "example.com", Type: LinkTypeBare, Position: 6},
			},
		},
		{
			name: "email address",
			text: "mail me at someone@example.com",
			want: []Link{
				{URL: "someone@example.com", Domain: "example.com", Type: LinkTypeEmail, Position: 11},
			},
		},
		{
			name: "unknown suffix is not a domain",
			text: "open notes.txt and main.go",
			want: nil,
		},
		{
			name: "capitalised word after period is not a domain",
			text: "I was there.It was great",
			want: nil,
		},
		{
			name: "missing space after period",
			text: "I had so much fun today.it was great",
			want: nil,
		},
		{
			name: "word suffix after period",
			text: "I love you.so much, thanks",
			want: nil,
		},
		{
			name: "file name",
			text: "I finally fixed main.py tonight",
			want: nil,
		},
		{
			name: "country suffix with path",
			text: "read it at blog.it/post",
			want: []Link{
				{URL: "blog.it/post", Domain: "blog.it", Type: LinkTypeBare, Position: 11},
			},
		},
		{
			name: "multi-label suffix",
			text: "see news.bbc.co.uk for more",
			want: []Link{
				{URL: "news.bbc.co.uk", Domain: "news.bbc.co.uk", Type: LinkTypeBare, Position: 4},
			},
		},
		{
			name: "version numbers",
			text: "upgraded to 1.2.3 yesterday",
			want: nil,
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLinks(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractLinks_OrderAndOverlap(t *testing.T) {
	links := ExtractLinks("a.com then https://b.com/x and www.c.net")

	require.Len(t, links, 3)
	assert.Equal(t, "a.com", links[0].URL)
	assert.Equal(t, LinkTypeBare, links[0].Type)
	assert.Equal(t, "https://b.com/x", links[1].URL)
	assert.Equal(t, LinkTypeURL, links[1].Type)
	assert.Equal(t, "www.c.net", links[2].URL)
	assert.Equal(t, LinkTypeWWW, links[2].Type)
}

func TestContainsLink(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"check this out http://example.com", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"ftp://files.example.net/pub", true},
		{"www.example.com", true},
		{"find me on inkly.io", true},
		{"no links here, just words.", false},
		{"the ratio is 3.14", false},
		{"e.g. this is fine", false},
		{"so fun today.it was great", false},
		{"my script main.py works", false},
		{"see today.it/news", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ContainsLink(tt.text); got != tt.want {
				t.Errorf("ContainsLink(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDomains(t *testing.T) {
	got := Domains("https://Example.com/a http://example.com/b news.example.org")

	assert.Equal(t, []string{"example.com", "news.example.org"}, got)
}
