package calendar

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/username/school-bells/internal/docstore"
	"github.com/username/school-bells/internal/schedule"
)

var now = time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)

func rawMonth(entries map[string]string) docstore.Document {
	doc := docstore.Document{}
	for k, v := range entries {
		doc[k] = json.RawMessage(v)
	}
	return doc
}

func TestBuildIndex_SingleEntry(t *testing.T) {
	catalog := schedule.DefaultCatalog()

	month, err := BuildIndex(catalog, rawMonth(map[string]string{"15": `{"letter":"M"}`}), now)
	require.NoError(t, err)

	require.Len(t, month.Days, 1)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), month.Days[0].Date)

	want, err := catalog.NewDay(schedule.LetterM, now)
	require.NoError(t, err)
	assert.True(t, want.Equal(month.Days[0].Day))
	assert.Equal(t, want, month.Days[0].Day)
	assert.Equal(t, 1, month.SchoolDays)
	assert.Equal(t, 1, month.ByLetter[schedule.LetterM])
}

func TestBuildIndex_OrderAndLookup(t *testing.T) {
	month, err := BuildIndex(schedule.DefaultCatalog(), rawMonth(map[string]string{
		"20": `{"letter":"A"}`,
		"2":  `{"letter":"B","special":"Tzom"}`,
		"9":  `{"letter":"F"}`,
	}), now)
	require.NoError(t, err)

	require.Len(t, month.Days, 3)
	assert.Equal(t, 2, month.Days[0].Date.Day())
	assert.Equal(t, 9, month.Days[1].Date.Day())
	assert.Equal(t, 20, month.Days[2].Date.Day())
	assert.Equal(t, schedule.Friday, month.Days[1].Day.Special.Name)

	info := month.Lookup(time.Date(2026, 10, 2, 14, 0, 0, 0, time.UTC))
	name, ok := info.Day.Name()
	assert.True(t, ok)
	assert.Equal(t, "B day Tzom", name)

	info = month.Lookup(time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC))
	assert.False(t, info.Day.InSession())
	assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), info.Date)
}

func TestBuildIndex_FridayFollowsEntryDate(t *testing.T) {
	rule := schedule.DefaultFridayRule()
	rule.WinterDayStart = 15
	catalog, err := schedule.DefaultCatalog().WithRule(rule)
	require.NoError(t, err)

	// built early in the month, before winter hours begin on the 15th
	month, err := BuildIndex(catalog, rawMonth(map[string]string{
		"13": `{"letter":"F"}`,
		"20": `{"letter":"E"}`,
	}), time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, month.Days, 2)
	assert.Equal(t, schedule.Friday, month.Days[0].Day.Special.Name)
	assert.Equal(t, schedule.WinterFriday, month.Days[1].Day.Special.Name)

	// an explicit special is kept whatever the date
	month, err = BuildIndex(catalog, rawMonth(map[string]string{
		"20": `{"letter":"F","special":"Friday"}`,
	}), time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, schedule.Friday, month.Days[0].Day.Special.Name)
}

func TestMonthInfo_Lookup(t *testing.T) {
	month, err := BuildIndex(schedule.DefaultCatalog(), rawMonth(map[string]string{"19": `{"letter":"M"}`}), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), month.Start)

	tests := []struct {
		name      string
		date      time.Time
		inSession bool
	}{
		{"Listed day", time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC), true},
		{"Unlisted day", time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC), false},
		{"Same day next month", time.Date(2026, 11, 19, 9, 0, 0, 0, time.UTC), false},
		{"Same day next year", time.Date(2027, 10, 19, 9, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := month.Lookup(tt.date)
			assert.Equal(t, tt.inSession, info.Day.InSession())
			assert.Equal(t, tt.date.Truncate(24*time.Hour), info.Date)
		})
	}
}

func TestEmptyMonth(t *testing.T) {
	month := EmptyMonth(time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), month.Start)
	assert.Equal(t, time.July, month.Month)
	assert.Zero(t, month.SchoolDays)
	assert.Empty(t, month.Days)
	assert.False(t, month.Lookup(time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC)).Day.InSession())
}

func TestBuildIndex_AbortsOnBadEntry(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
	}{
		{"Non-numeric day", map[string]string{"fifteen": `{"letter":"M"}`}},
		{"Day past end of month", map[string]string{"32": `{"letter":"M"}`}},
		{"Day zero", map[string]string{"0": `{"letter":"M"}`}},
		{"Unknown letter", map[string]string{"15": `{"letter":"Q"}`, "16": `{"letter":"M"}`}},
		{"Missing letter", map[string]string{"15": `{}`}},
		{"Unknown special", map[string]string{"15": `{"letter":"M","special":"Snow"}`}},
		{"Same day twice", map[string]string{"5": `{"letter":"M"}`, "05": `{"letter":"R"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, err := BuildIndex(schedule.DefaultCatalog(), rawMonth(tt.entries), now)
			assert.Nil(t, month)
			assert.ErrorIs(t, err, schedule.ErrFormat)
		})
	}
}

func TestStoreCalendar(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "calendar/2026-10", rawMonth(map[string]string{
		"19": `{"letter":"R"}`,
		"23": `{"letter":"F"}`,
	})))

	cal := NewStoreCalendar(store, schedule.DefaultCatalog(), "", time.Hour, zap.NewNop())
	assert.Equal(t, "calendar/2026-10", cal.MonthKey(now))

	info, err := cal.GetDayInfo(ctx, now)
	require.NoError(t, err)
	name, _ := info.Day.Name()
	assert.Equal(t, "R day", name)

	_, err = cal.GetMonthInfo(ctx, time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestStoreCalendar_SetDay(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	catalog := schedule.DefaultCatalog()
	cal := NewStoreCalendar(store, catalog, "", time.Hour, zap.NewNop())

	tzom, err := catalog.Lookup(schedule.Tzom)
	require.NoError(t, err)
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	require.NoError(t, cal.SetDay(ctx, date, schedule.NewDayWithSpecial(schedule.LetterC, tzom)))

	info, err := cal.GetDayInfo(ctx, date)
	require.NoError(t, err)
	name, _ := info.Day.Name()
	assert.Equal(t, "C day Tzom", name)

	// the cached month is dropped on write
	require.NoError(t, cal.SetDay(ctx, date, schedule.NoSchool()))
	info, err = cal.GetDayInfo(ctx, date)
	require.NoError(t, err)
	assert.False(t, info.Day.InSession())

	doc, err := store.Get(ctx, "calendar/2026-10")
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestStoreCalendar_CacheTTL(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "calendar/2026-10", rawMonth(map[string]string{"19": `{"letter":"R"}`})))

	cal := NewStoreCalendar(store, schedule.DefaultCatalog(), "", time.Minute, zap.NewNop())
	current := now
	cal.clock = func() time.Time { return current }

	_, err := cal.GetMonthInfo(ctx, now)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "calendar/2026-10", rawMonth(map[string]string{"19": `{"letter":"A"}`})))

	info, err := cal.GetDayInfo(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, schedule.LetterR, info.Day.Letter, "cached month is used within the TTL")

	current = current.Add(2 * time.Minute)
	info, err = cal.GetDayInfo(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, schedule.LetterA, info.Day.Letter, "month is refetched after the TTL")
}

func writeCalendarFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFileCalendar(t *testing.T) {
	path := writeCalendarFile(t, `{"2026-10": {"19": {"letter": "B"}, "20": {"letter": "C"}}}`)

	fc := NewFileCalendar(path, schedule.DefaultCatalog(), zap.NewNop())
	require.NoError(t, fc.Load())

	month, err := fc.GetMonthInfo(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, month.SchoolDays)

	info, err := fc.GetDayInfo(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, schedule.LetterB, info.Day.Letter)

	_, err = fc.GetMonthInfo(context.Background(), time.Date(2027, 1, 4, 9, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestFileCalendar_LoadErrors(t *testing.T) {
	fc := NewFileCalendar(filepath.Join(t.TempDir(), "missing.json"), schedule.DefaultCatalog(), zap.NewNop())
	assert.Error(t, fc.Load())

	fc = NewFileCalendar(writeCalendarFile(t, `{"October": {}}`), schedule.DefaultCatalog(), zap.NewNop())
	assert.ErrorIs(t, fc.Load(), schedule.ErrFormat)
}

type failingCalendar struct{}

func (failingCalendar) GetMonthInfo(context.Context, time.Time) (*MonthInfo, error) {
	return nil, errors.New("store unavailable")
}

func (failingCalendar) GetDayInfo(context.Context, time.Time) (*DayInfo, error) {
	return nil, errors.New("store unavailable")
}

func TestCompositeCalendar_FallsBack(t *testing.T) {
	path := writeCalendarFile(t, `{"2026-10": {"19": {"letter": "E"}}}`)
	fallback := NewFileCalendar(path, schedule.DefaultCatalog(), zap.NewNop())
	cc := NewCompositeCalendar(failingCalendar{}, fallback, zap.NewNop())
	require.NoError(t, cc.LoadFallback())

	info, err := cc.GetDayInfo(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, schedule.LetterE, info.Day.Letter)

	month, err := cc.GetMonthInfo(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, month.SchoolDays)
}

func TestCompositeCalendar_MissingEverywhere(t *testing.T) {
	fallback := NewFileCalendar(writeCalendarFile(t, `{"2026-10": {}}`), schedule.DefaultCatalog(), zap.NewNop())
	primary := NewStoreCalendar(docstore.NewMemoryStore(), schedule.DefaultCatalog(), "", 0, zap.NewNop())
	cc := NewCompositeCalendar(primary, fallback, zap.NewNop())
	require.NoError(t, cc.LoadFallback())

	july := time.Date(2026, 7, 14, 9, 0, 0, 0, time.UTC)
	_, err := cc.GetMonthInfo(context.Background(), july)
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	_, err = cc.GetDayInfo(context.Background(), july)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestExportICal(t *testing.T) {
	month, err := BuildIndex(schedule.DefaultCatalog(), rawMonth(map[string]string{
		"19": `{"letter":"M"}`,
		"23": `{"letter":"F"}`,
	}), now)
	require.NoError(t, err)

	data, err := ExportICal(month, now)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	// regular has 12 periods, Friday 9, plus one all-day event per day
	events := cal.Events()
	assert.Len(t, events, 12+9+2)

	summaries := map[string]int{}
	for _, ev := range events {
		summary, err := ev.Props.Text(ical.PropSummary)
		require.NoError(t, err)
		summaries[summary]++
	}
	assert.Equal(t, 1, summaries["M day"])
	assert.Equal(t, 1, summaries["F day Friday"])
	assert.Equal(t, 2, summaries["Homeroom"])
	assert.Equal(t, 2, summaries["Mincha"])

	again, err := ExportICal(month, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, strings.Count(string(data), "UID:"), strings.Count(string(again), "UID:"))
	assert.Contains(t, string(again), eventUID(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), 3))
}

func TestExportICal_EmptyMonth(t *testing.T) {
	data, err := ExportICal(&MonthInfo{Year: 2026, Month: time.July}, now)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.NotContains(t, string(data), "BEGIN:VEVENT")
}
