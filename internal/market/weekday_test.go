package market

import (
	"strings"
	"testing"
	"time"

	_ "time/tzdata"
)

func TestCurrentDateDecomposition(t *testing.T) {
	svc := newTestService(&fakeProvider{})
	fixed := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	info, err := svc.CurrentDate("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.FullDatetime != "2024-03-15 19:30:45 KST" {
		t.Fatalf("unexpected full datetime: %q", info.FullDatetime)
	}
	if info.DateISO != "2024-03-15" || info.DateYMD != "2024-03-15" {
		t.Fatalf("unexpected dates: %+v", info)
	}
	if info.TimeISO != "19:30:45" {
		t.Fatalf("unexpected time: %q", info.TimeISO)
	}
	if info.DayOfWeek != "Friday" || info.DayOfWeekKR != "금요일" {
		t.Fatalf("unexpected weekday: %s / %s", info.DayOfWeek, info.DayOfWeekKR)
	}
	if info.Timezone != "Asia/Seoul" {
		t.Fatalf("unexpected timezone: %q", info.Timezone)
	}
	if info.UnixTimestamp != fixed.Unix() {
		t.Fatalf("unix timestamp should match the instant: %d != %d", info.UnixTimestamp, fixed.Unix())
	}
	if info.Year != 2024 || info.Month != 3 || info.Day != 15 {
		t.Fatalf("unexpected date parts: %+v", info)
	}
	if info.Hour != 19 || info.Minute != 30 || info.Second != 45 {
		t.Fatalf("unexpected time parts: %+v", info)
	}
}

func TestCurrentDateDefaultsTimezone(t *testing.T) {
	svc := newTestService(&fakeProvider{})

	info, err := svc.CurrentDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Timezone != DefaultTimezone {
		t.Fatalf("expected default timezone, got %q", info.Timezone)
	}
}

func TestCurrentDateInvalidTimezone(t *testing.T) {
	svc := newTestService(&fakeProvider{})

	_, err := svc.CurrentDate("Mars/Olympus")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
	if !strings.Contains(err.Error(), "Mars/Olympus") {
		t.Fatalf("error should name the timezone: %v", err)
	}
}

func TestWeekdaySequence(t *testing.T) {
	svc := newTestService(&fakeProvider{})
	// 2024-01-01 was a Monday.
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	expected := [][2]string{
		{"Monday", "월요일"},
		{"Tuesday", "화요일"},
		{"Wednesday", "수요일"},
		{"Thursday", "목요일"},
		{"Friday", "금요일"},
		{"Saturday", "토요일"},
		{"Sunday", "일요일"},
	}

	for i, want := range expected {
		day := start.AddDate(0, 0, i)
		svc.now = func() time.Time { return day }

		info, err := svc.CurrentDate("UTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.DayOfWeek != want[0] || info.DayOfWeekKR != want[1] {
			t.Fatalf("day %d: expected %s/%s, got %s/%s", i, want[0], want[1], info.DayOfWeek, info.DayOfWeekKR)
		}
	}
}

func TestLocalizeWeekdayFallback(t *testing.T) {
	if got := localizeWeekday("Blursday"); got != "Blursday" {
		t.Fatalf("unmapped names should pass through, got %q", got)
	}
}
