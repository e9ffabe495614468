package textutil

import (
	"reflect"
	"testing"
)

func TestCleanSegment(t *testing.T) {
	cases := map[string]string{
		"Family Trip - 2024": "Family_Trip_2024",
		"Day.1":              "Day_1",
		"Birthday!":          "Birthday",
		"!!!":                "",
		"---":                "_",
		"":                   "",
		"a_b":                "a_b",
		"a__b":               "a_b",
		"_private":           "_private",
		"Trip -":             "Trip_",
		"Caf\u00e9":            "Caf\u00e9",
		"Cafe\u0301":           "Caf\u00e9",
		"日本 旅行":              "日本_旅行",
		"(2020)":             "2020",
		"x (copy)":           "x_copy",
	}
	for in, want := range cases {
		if got := CleanSegment(in); got != want {
			t.Fatalf("CleanSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitPath(t *testing.T) {
	cases := map[string][]string{
		"a":                 {"a"},
		"a/b":               {"a", "b"},
		`a\b`:               {"a", "b"},
		"./a//b/":           {"a", "b"},
		"Family Trip/Day.1": {"Family Trip", "Day.1"},
	}
	for in, want := range cases {
		if got := SplitPath(in); !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitPath(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", ".", "./", "/"} {
		if got := SplitPath(in); len(got) != 0 {
			t.Fatalf("SplitPath(%q) = %v, want empty", in, got)
		}
	}
}
