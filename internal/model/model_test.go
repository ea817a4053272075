package model

import (
	"testing"
	"time"
)

func TestPeriodStatus(t *testing.T) {
	p := Period{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}
	tests := []struct {
		now  time.Time
		want EventStatus
	}{
		{time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC), EventUpcoming},
		{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), EventOngoing},
		{time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC), EventOngoing},
		{time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), EventEnded},
	}
	for _, tt := range tests {
		if got := p.Status(tt.now); got != tt.want {
			t.Errorf("Status(%s) = %s, want %s", tt.now, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	if got := CategoryLabel("festival"); got != (Label{"festival", "행사/축제"}) {
		t.Errorf("CategoryLabel(festival) = %+v", got)
	}
	if got := CategoryLabel("workshop"); got != (Label{"workshop", "WORKSHOP"}) {
		t.Errorf("CategoryLabel(workshop) = %+v", got)
	}
	got := TagLabels([]string{"ai", "chess"})
	if len(got) != 2 || got[0].Name != "AI/인공지능" || got[1].Name != "CHESS" {
		t.Errorf("TagLabels = %+v", got)
	}
}
