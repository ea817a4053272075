package jaso

import (
	"reflect"
	"strings"
	"testing"
	"unicode"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"강남구", "ㄱㅏㅇㄴㅏㅁㄱㅜ"},
		{"강나", "ㄱㅏㅇㄴㅏ"},
		{"서울", "ㅅㅓㅇㅜㄹ"},
		{"강남1구", "ㄱㅏㅇㄴㅏㅁ1ㄱㅜ"},
		{"서울 Seoul", "ㅅㅓㅇㅜㄹSeoul"},
		{"강남 1구", "ㄱㅏㅇㄴㅏㅁ1ㄱㅜ"},
		{"강 남 구", "ㄱㅏㅇㄴㅏㅁㄱㅜ"},
		{"  강남구  ", "ㄱㅏㅇㄴㅏㅁㄱㅜ"},
		{"강\t남\n구　", "ㄱㅏㅇㄴㅏㅁㄱㅜ"},
		{"", ""},
		{"ABC123", "ABC123"},
		{"가", "ㄱㅏ"},
		{"힣", "ㅎㅣㅎ"},
		{"닭", "ㄷㅏㄺ"},
		{"ㄱㄴ", "ㄱㄴ"},
		{"東京", "東京"},
	}
	for _, tt := range tests {
		if got := Decompose(tt.in); got != tt.want {
			t.Errorf("Decompose(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecomposeIdempotent(t *testing.T) {
	inputs := []string{"강남구", "서울 Seoul", "닭갈비 2인분", "", "ABC", "힣가"}
	for _, in := range inputs {
		once := Decompose(in)
		if twice := Decompose(once); twice != once {
			t.Errorf("Decompose(Decompose(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		query, target string
		want          bool
	}{
		{"강나", "강남구", true},
		{"서대", "서대문구", true},
		{"강", "강남구", true},
		{"강북", "강남구", false},
		{"서초", "강남구", false},
		{"강남구", "강남구", true},
		{"서울", "서울특별시", true},
		{"", "강남구", true},
		{"", "", true},
		{"   ", "강남구", true},
		{"ABC", "ABCDEF", true},
		{"abc", "ABCDEF", false},
		{"강남1구", "강남 1구", true},
		{"강 남 1 구", "강남1구", true},
		{"강남 1", "강남 1구", true},
		{"  강남  ", "강남구", true},
		{"ㄱㄴ", "강남구", false},
	}
	for _, tt := range tests {
		if got := Match(tt.query, tt.target); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.query, tt.target, got, tt.want)
		}
	}
}

func TestMatchIgnoresWhitespace(t *testing.T) {
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	pairs := [][2]string{
		{"강 남", "강남 구"},
		{"서 대문", "서대 문구"},
		{"a b", "xab"},
		{"강북", "강 남 구"},
	}
	for _, p := range pairs {
		if Match(p[0], p[1]) != Match(strip(p[0]), strip(p[1])) {
			t.Errorf("Match(%q, %q) depends on whitespace", p[0], p[1])
		}
	}
}

func TestFilter(t *testing.T) {
	districts := []string{"강남구", "강북구", "강동구", "서대문구", "서초구", "송파구", "강남 1구"}

	tests := []struct {
		query string
		want  []string
	}{
		{"강나", []string{"강남구", "강남 1구"}},
		{"강", []string{"강남구", "강북구", "강동구", "강남 1구"}},
		{"서", []string{"서대문구", "서초구"}},
		{"강남1구", []string{"강남 1구"}},
		{"강남 1", []string{"강남 1구"}},
		{"", districts},
		{"   ", districts},
		{"제주", []string{}},
		{"xyz", []string{}},
		{"강남구", []string{"강남구"}},
	}
	for _, tt := range tests {
		if got := Filter(tt.query, districts); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Filter(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}

	if got := Filter("강남1구", []string{"강남 1구", "강남구"}); !reflect.DeepEqual(got, []string{"강남 1구"}) {
		t.Errorf("Filter(강남1구) = %q", got)
	}
}

func TestFilterFunc(t *testing.T) {
	type event struct {
		id       int
		name     string
		location string
	}
	events := []event{
		{1, "강남 축제", "강남구"},
		{2, "강북 음악회", "강북구"},
		{3, "서울 마라톤", "서대문구"},
		{4, "송파 불꽃축제", "송파구"},
	}
	ids := func(es []event) []int {
		out := []int{}
		for _, e := range es {
			out = append(out, e.id)
		}
		return out
	}

	tests := []struct {
		name  string
		query string
		text  func(event) string
		want  []int
	}{
		{"by name", "축제", func(e event) string { return e.name }, []int{1, 4}},
		{"by location", "강나", func(e event) string { return e.location }, []int{1}},
		{"combined", "강남", func(e event) string { return e.name + " " + e.location }, []int{1}},
		{"empty query", "", func(e event) string { return e.name }, []int{1, 2, 3, 4}},
		{"no match", "제주", func(e event) string { return e.location }, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterFunc(tt.query, events, tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterFunc(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterBlankQueryCopies(t *testing.T) {
	items := []string{"강남구", "강북구"}
	for _, q := range []string{"", "  "} {
		got := Filter(q, items)
		got[0] = "changed"
		if items[0] != "강남구" {
			t.Fatalf("Filter(%q) result shares backing array with input", q)
		}
		items[0] = "강남구"
	}
}
