package model

import "strings"

var categoryNames = map[string]string{
	"lecture":     "강의/강좌",
	"exhibition":  "전시",
	"experience":  "문화체험",
	"performance": "공연",
	"festival":    "행사/축제",
}

var tagNames = map[string]string{
	"art":                  "미술",
	"sports":               "스포츠",
	"music":                "음악",
	"cooking":              "요리",
	"handicraft":           "수공예",
	"tradition":            "전통문화",
	"financial_management": "재테크/투자",
	"computer_technology":  "IT/컴퓨터",
	"computer_software":    "소프트웨어/프로그램",
	"ai":                   "AI/인공지능",
	"nature":               "자연",
	"literature":           "문학",
	"foreign_language":     "외국어",
	"health":               "건강/의료",
	"activity":             "신체활동",
	"career":               "진로/취업",
	"certificate":          "자격증/면허증",
	"tax":                  "세무",
	"law":                  "법률/법무",
	"real_estate":          "부동산",
	"social_welfare":       "사회복지",
}

// CategoryLabel returns the display label of a category. Unknown values
// are shown upper-cased.
func CategoryLabel(value string) Label {
	return label(categoryNames, value)
}

// TagLabel returns the display label of a tag.
func TagLabel(value string) Label {
	return label(tagNames, value)
}

// TagLabels maps TagLabel over values.
func TagLabels(values []string) []Label {
	out := make([]Label, 0, len(values))
	for _, v := range values {
		out = append(out, TagLabel(v))
	}
	return out
}

func label(names map[string]string, value string) Label {
	if name, ok := names[value]; ok {
		return Label{Value: value, Name: name}
	}
	return Label{Value: value, Name: strings.ToUpper(value)}
}
