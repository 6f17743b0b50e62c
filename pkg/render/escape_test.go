package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "ampersand",
			input:    "Tom & Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "less than",
			input:    "a < b",
			expected: "a &lt; b",
		},
		{
			name:     "greater than",
			input:    "a > b",
			expected: "a &gt; b",
		},
		{
			name:     "double quote",
			input:    `say "hello"`,
			expected: "say &quot;hello&quot;",
		},
		{
			name:     "single quote",
			input:    "it's fine",
			expected: "it&#39;s fine",
		},
		{
			name:     "script tag",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "multiple special chars",
			input:    `<a href="test?a=1&b=2">link</a>`,
			expected: `&lt;a href=&quot;test?a=1&amp;b=2&quot;&gt;link&lt;/a&gt;`,
		},
		{
			name:     "unicode preserved",
			input:    "Hello 世界 🌍",
			expected: "Hello 世界 🌍",
		},
		{
			name:     "all entities twice",
			input:    `&<>"'/&<>"'/`,
			expected: "&amp;&lt;&gt;&quot;&#39;/&amp;&lt;&gt;&quot;&#39;/",
		},
		{
			name:     "slash untouched",
			input:    "/",
			expected: "/",
		},
		{
			name:     "backtick untouched",
			input:    "`",
			expected: "`",
		},
		{
			name:     "invalid utf-8 kept byte for byte",
			input:    "a\xffb",
			expected: "a\xffb",
		},
		{
			name:     "invalid utf-8 next to an entity",
			input:    "<\xff",
			expected: "&lt;\xff",
		},
		{
			name:     "already escaped is escaped again",
			input:    "&amp;",
			expected: "&amp;amp;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeHTML(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeAttrPageMetadata(t *testing.T) {
	// Titles and descriptions from documents end up in quoted attributes.
	tests := []struct {
		in, want string
	}{
		{"A page", "A page"},
		{`Q&A: "why" it's hard`, "Q&amp;A: &quot;why&quot; it&#39;s hard"},
		{"<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"first\nsecond\r\tthird", "first&#10;second&#13;&#9;third"},
		{"caf\xe9 \xff", "caf\xe9 \xff"},
	}
	for _, tt := range tests {
		if got := escapeAttr(tt.in); got != tt.want {
			t.Errorf("escapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func BenchmarkEscapeHTML(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "Hello, World! This is a plain text string without special characters."
		for i := 0; i < b.N; i++ {
			EscapeHTML(s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `<script>alert("xss")</script> & more content here`
		for i := 0; i < b.N; i++ {
			EscapeHTML(s)
		}
	})
}

func BenchmarkEscapeAttr(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "simple-value"
		for i := 0; i < b.N; i++ {
			escapeAttr(s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `value="test" with 'quotes' & newlines
and tabs	here`
		for i := 0; i < b.N; i++ {
			escapeAttr(s)
		}
	})
}
