package relaxed

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseStrictJSON(t *testing.T) {
	v, err := Parse(`{"name":"Cafe X","categories":[]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("parsed value is %T, want map", v)
	}
	if m["name"] != "Cafe X" {
		t.Errorf("name = %v, want Cafe X", m["name"])
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Parse(\"\") = %v, want ErrEmptyInput", err)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(`{"name": }`)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	// The decoder diagnostic must survive in the message.
	if err.Error() == ErrMalformed.Error() {
		t.Error("error should carry the underlying parser diagnostic")
	}
}

func TestParseRoundTripEquivalence(t *testing.T) {
	// A document with a line comment, a trailing comma, and curly quotes
	// must parse to the same tree as its strictly valid equivalent.
	relaxedDoc := "\uFEFF{\n\t// the business\n\t“name”: \"Cafe X\",\n\t\"tags\": [\"veg\", \"fast\",],\n}"
	strictDoc := `{"name":"Cafe X","tags":["veg","fast"]}`

	got, err := Parse(relaxedDoc)
	if err != nil {
		t.Fatalf("Parse(relaxed): %v", err)
	}
	want, err := Parse(strictDoc)
	if err != nil {
		t.Fatalf("Parse(strict): %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("relaxed parse = %#v, want %#v", got, want)
	}
}

func TestParseBlockComments(t *testing.T) {
	doc := "{/* multi\nline\ncomment */\"a\": 1}"
	v, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.(map[string]any)["a"] != float64(1) {
		t.Errorf("a = %v, want 1", v.(map[string]any)["a"])
	}
}

func TestParseSingleQuotedFallback(t *testing.T) {
	v, err := Parse(`{'name': 'Junk House', 'phone': '98765'}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := v.(map[string]any)
	if m["name"] != "Junk House" || m["phone"] != "98765" {
		t.Errorf("parsed = %v", m)
	}
}

func TestStages(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"bom", StripBOM, "\uFEFF{}", "{}"},
		{"bom absent", StripBOM, "{}", "{}"},
		{"line comment", StripComments, "{\"a\":1} // note", "{\"a\":1} "},
		{"block comment", StripComments, `{"a":/*x*/1}`, `{"a":1}`},
		{"smart double quotes", NormalizeQuotes, "“a”", `"a"`},
		{"smart single quotes", NormalizeQuotes, "‘a’", "'a'"},
		{"trailing comma object", StripTrailingCommas, `{"a":1,}`, `{"a":1}`},
		{"trailing comma array", StripTrailingCommas, `[1,2, ]`, `[1,2]`},
		{"requote", RequoteSingleQuoted, `{'a':'b'}`, `{"a":"b"}`},
		{"requote escaped", RequoteSingleQuoted, `'it\'s'`, `"it\'s"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
