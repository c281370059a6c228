package sanitize

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: ""},
		{name: "whitespace only", text: " \t\n ", want: ""},
		{name: "case folding", text: "Hello WORLD", want: "hello world"},
		{name: "whitespace collapse", text: "  a   lot\n\nof   space  ", want: "a lot of space"},
		{name: "accents stripped", text: "Café naïve", want: "cafe naive"},
		{name: "full width letters", text: "ＨＥＬＬＯ", want: "hello"},
		{name: "leet inside words", text: "h3ll0 w0rld", want: "hello world"},
		{name: "numbers untouched", text: "I have 100 cats in 2024", want: "i have 100 cats in 2024"},
		{name: "dollar sign leet", text: "$hit happens", want: "shit happens"},
		{name: "spaced letters joined", text: "you are a j e r k", want: "you are a jerk"},
		{name: "dotted letters joined", text: "what a j.e.r.k.", want: "what a jerk"},
		{name: "short runs kept", text: "a b test", want: "a b test"},
		{name: "abbreviation kept", text: "e.g. this", want: "e.g. this"},
		{name: "markup stripped", text: "<b>sh</b>it <i>happens</i>", want: "shit happens"},
		{name: "entities decoded", text: "Tom &amp; Jerry", want: "tom & jerry"},
		{name: "paragraphs separate words", text: "<p>one</p><p>two</p>", want: "one two"},
		{name: "bracketed word kept", text: "you are a total <bitch>", want: "you are a total <bitch>"},
		{name: "escaped brackets kept", text: "&lt;kill you&gt;", want: "<kill you>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.text); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"Hello   W0RLD", "f u c k", "Ünïcödé ✨ text", "#Tag @user"}

	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not stable for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSanitize_InvalidUTF8(t *testing.T) {
	// Must not panic on broken input.
	_ = Sanitize(string([]byte{0xff, 0xfe, 'a', 0x80}))
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \t b\n\nc "); got != "a b c" {
		t.Errorf("CollapseWhitespace() = %q, want %q", got, "a b c")
	}
}
