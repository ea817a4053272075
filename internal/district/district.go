// Package district holds the two-level table of Korean administrative
// districts used by the event filters.
package district

import "github.com/Shivanand-hulikatti/event-finder/internal/jaso"

// Province is a level-one district (특별시, 광역시, 도).
type Province struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Children []District `json:"-"`
}

// District is a level-two district (시, 군, 구).
type District struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Match is a search hit together with the name of its province.
type Match struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ParentName string `json:"parentName"`
}

// LevelOne returns all provinces.
func LevelOne() []District {
	out := make([]District, 0, len(provinces))
	for _, p := range provinces {
		out = append(out, District{ID: p.ID, Name: p.Name})
	}
	return out
}

// LevelTwo returns the districts of the given province, or an empty slice
// when the province is unknown.
func LevelTwo(provinceID int) []District {
	for _, p := range provinces {
		if p.ID == provinceID {
			out := make([]District, len(p.Children))
			copy(out, p.Children)
			return out
		}
	}
	return []District{}
}

// LevelTwoByIDs returns the level-two districts for ids, in the order of
// ids. Unknown ids are skipped.
func LevelTwoByIDs(ids []int) []District {
	byID := make(map[int]District)
	for _, p := range provinces {
		for _, d := range p.Children {
			byID[d.ID] = d
		}
	}
	out := make([]District, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Search returns the level-two districts whose name matches query at the
// jaso level, in table order.
func Search(query string) []Match {
	var all []Match
	for _, p := range provinces {
		for _, d := range p.Children {
			all = append(all, Match{ID: d.ID, Name: d.Name, ParentName: p.Name})
		}
	}
	return jaso.FilterFunc(query, all, func(m Match) string { return m.Name })
}
