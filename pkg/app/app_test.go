package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/celebrate"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/format"
	"tableflip.dev/dietlog/pkg/logstore"
	"tableflip.dev/dietlog/pkg/store"
	"tableflip.dev/dietlog/pkg/timeline"
)

type memoryStorage struct {
	mu    sync.Mutex
	items []entry.LogItem
	saves int
	err   error
}

func (m *memoryStorage) LoadAll(context.Context) ([]entry.LogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entry.LogItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memoryStorage) SaveAll(_ context.Context, items []entry.LogItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.err != nil {
		return m.err
	}
	m.items = make([]entry.LogItem, len(items))
	copy(m.items, items)
	return nil
}

var zone = time.FixedZone("test", -5*60*60)

func newService(t *testing.T, m *memoryStorage, mode celebrate.Mode) *Service {
	t.Helper()
	s, err := Open(context.Background(), m, Options{Resolver: timeline.New(zone), CelebrateMode: mode})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func dayBase(t *testing.T, date string) int64 {
	t.Helper()
	b, err := entry.DayBase(date, zone)
	if err != nil {
		t.Fatalf("day base: %v", err)
	}
	return b
}

func mustAdd(t *testing.T, s *Service, c category.Category, f format.Fields, date string) Result {
	t.Helper()
	res, err := s.AddEntry(context.Background(), c, f, date)
	if err != nil {
		t.Fatalf("add %s: %v", c, err)
	}
	return res
}

func TestAddEntryBreakfast(t *testing.T) {
	m := &memoryStorage{}
	s := newService(t, m, celebrate.Yesterday)
	date := "2024-03-10"

	res := mustAdd(t, s, category.Breakfast, format.Fields{Start: "08:00", End: "08:30", Description: "Eggs", ImageURL: "data:x"}, date)
	if res.Item.Content != "08:00–08:30 Eggs" {
		t.Fatalf("unexpected content %q", res.Item.Content)
	}
	if res.Item.ImageURL != "data:x" {
		t.Fatalf("expected image to be kept, got %q", res.Item.ImageURL)
	}
	if want := dayBase(t, date) + 8*60*60*1000; res.Item.Timestamp != want {
		t.Fatalf("expected timestamp %d, got %d", want, res.Item.Timestamp)
	}
	if res.Item.ID == "" {
		t.Fatalf("expected an id")
	}
	if res.Celebration != nil {
		t.Fatalf("only weight celebrates")
	}
	if len(m.items) != 1 || m.items[0].ID != res.Item.ID {
		t.Fatalf("entry not written through: %v", m.items)
	}
}

func TestAddEntrySupplementsOrder(t *testing.T) {
	s := newService(t, &memoryStorage{}, celebrate.Yesterday)
	date := "2024-03-10"
	mustAdd(t, s, category.Dinner, format.Fields{Start: "19:00", Description: "Soup"}, date)
	first := mustAdd(t, s, category.Supplements, format.Fields{Text: "Vitamin D"}, date)
	second := mustAdd(t, s, category.Supplements, format.Fields{Text: "Omega-3"}, date)

	base := dayBase(t, date)
	if first.Item.Timestamp != base+1000 || second.Item.Timestamp != base+2000 {
		t.Fatalf("expected +1000/+2000, got %d/%d", first.Item.Timestamp-base, second.Item.Timestamp-base)
	}
	day, err := s.QueryByDate(date)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got := []string{day[0].Content, day[1].Content, day[2].Content}
	want := []string{"Vitamin D", "Omega-3", "19:00 Soup"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAddEntryCelebration(t *testing.T) {
	s := newService(t, &memoryStorage{}, celebrate.Yesterday)
	mustAdd(t, s, category.Weight, format.Fields{Value: "80"}, "2024-03-09")

	res := mustAdd(t, s, category.Weight, format.Fields{Value: "78"}, "2024-03-10")
	if res.Celebration == nil || *res.Celebration != 2000 {
		t.Fatalf("expected 2000 grams, got %v", res.Celebration)
	}

	res = mustAdd(t, s, category.Weight, format.Fields{Value: "82"}, "2024-03-10")
	if res.Celebration != nil {
		t.Fatalf("gain should not celebrate, got %d", *res.Celebration)
	}
}

func TestAddEntryCelebrationLatestMode(t *testing.T) {
	s := newService(t, &memoryStorage{}, celebrate.Latest)
	mustAdd(t, s, category.Weight, format.Fields{Value: "80,5"}, "2024-03-05")
	res := mustAdd(t, s, category.Weight, format.Fields{Value: "80"}, "2024-03-10")
	if res.Celebration == nil || *res.Celebration != 500 {
		t.Fatalf("expected 500 grams, got %v", res.Celebration)
	}
}

func TestAddEntryValidationStoresNothing(t *testing.T) {
	m := &memoryStorage{}
	s := newService(t, m, celebrate.Yesterday)
	_, err := s.AddEntry(context.Background(), category.WakeUpTime, format.Fields{Time: "25:00"}, "2024-03-10")
	if !errors.Is(err, format.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if m.saves != 0 || len(s.Logs.All()) != 0 {
		t.Fatalf("nothing should be stored")
	}
	if _, err := s.AddEntry(context.Background(), category.Liquid, format.Fields{Text: "tea"}, "10/03/2024"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestAddEntryPersistenceFailure(t *testing.T) {
	m := &memoryStorage{}
	s := newService(t, m, celebrate.Yesterday)
	m.err = errors.New("read-only file system")

	res, err := s.AddEntry(context.Background(), category.Liquid, format.Fields{Text: "tea"}, "2024-03-10")
	if !errors.Is(err, logstore.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if res.Item.Content != "tea" {
		t.Fatalf("result should be populated, got %+v", res.Item)
	}
	if _, ok := s.Logs.Get(res.Item.ID); !ok {
		t.Fatalf("entry should remain in memory")
	}
}

func TestDeleteEntry(t *testing.T) {
	m := &memoryStorage{}
	s := newService(t, m, celebrate.Yesterday)
	res := mustAdd(t, s, category.Liquid, format.Fields{Text: "tea"}, "2024-03-10")

	found, err := s.DeleteEntry(context.Background(), "nope")
	if err != nil || found {
		t.Fatalf("unknown id: expected no-op, got %v %v", found, err)
	}
	found, err = s.DeleteEntry(context.Background(), res.Item.ID)
	if err != nil || !found {
		t.Fatalf("expected delete, got %v %v", found, err)
	}
	if len(m.items) != 0 {
		t.Fatalf("delete not persisted: %v", m.items)
	}
}

func TestReset(t *testing.T) {
	m := &memoryStorage{}
	s := newService(t, m, celebrate.Yesterday)
	mustAdd(t, s, category.Liquid, format.Fields{Text: "tea"}, "2024-03-10")
	mustAdd(t, s, category.WakeUpTime, format.Fields{Time: "7:00"}, "2024-03-11")

	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n := len(s.Logs.All()); n != 0 {
		t.Fatalf("expected empty store, got %d entries", n)
	}
	if len(m.items) != 0 {
		t.Fatalf("reset not persisted: %v", m.items)
	}
}

func TestReloadPicksUpStorage(t *testing.T) {
	m := &memoryStorage{}
	s := newService(t, m, celebrate.Yesterday)
	m.items = []entry.LogItem{{ID: "x", Category: category.Liquid, Content: "tea", Date: "2024-03-10", Timestamp: 1}}
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := s.Logs.Get("x"); !ok {
		t.Fatalf("expected reloaded entry")
	}
}

func TestQueryWeightHistory(t *testing.T) {
	s := newService(t, &memoryStorage{}, celebrate.Yesterday)
	mustAdd(t, s, category.Weight, format.Fields{Value: "82"}, "2024-03-01")
	mustAdd(t, s, category.Weight, format.Fields{Value: "81,4"}, "2024-03-05")
	mustAdd(t, s, category.Weight, format.Fields{Value: "81"}, "2024-03-09")
	mustAdd(t, s, category.Weight, format.Fields{Value: "80.6"}, "2024-03-09")
	mustAdd(t, s, category.Weight, format.Fields{Value: "79"}, "2024-03-10")

	h, err := s.QueryWeightHistory("2024-03-10", DefaultHistoryDays)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if h.Since != "2024-03-03" || h.Until != "2024-03-09" {
		t.Fatalf("unexpected window %s..%s", h.Since, h.Until)
	}
	if len(h.Points) != 2 {
		t.Fatalf("expected 2 points, got %+v", h.Points)
	}
	if h.Points[0].Date != "2024-03-09" || h.Points[0].Item.Content != "80.6" {
		t.Fatalf("expected latest weight of 2024-03-09 first, got %+v", h.Points[0])
	}
	if h.Points[1].Date != "2024-03-05" || h.Points[1].Value != 81.4 {
		t.Fatalf("unexpected second point %+v", h.Points[1])
	}
	delta, ok := h.Change()
	if !ok || delta > -0.79 || delta < -0.81 {
		t.Fatalf("expected change of about -0.8, got %v %v", delta, ok)
	}
	if _, err := s.QueryWeightHistory("2024-03-10", 0); err == nil {
		t.Fatalf("expected error for zero days")
	}
}

func TestCategories(t *testing.T) {
	s := newService(t, &memoryStorage{}, celebrate.Yesterday)
	mustAdd(t, s, category.Liquid, format.Fields{Text: "tea"}, "2024-03-10")
	mustAdd(t, s, category.Liquid, format.Fields{Text: "water"}, "2024-03-10")
	mustAdd(t, s, category.Sleep, format.Fields{Time: "23:00"}, "2024-03-09")

	counts, err := s.Categories("2024-03-10")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(counts) != len(category.All()) {
		t.Fatalf("expected every category, got %d", len(counts))
	}
	for _, c := range counts {
		want := 0
		if c.Category == category.Liquid {
			want = 2
		}
		if c.Count != want {
			t.Fatalf("%s: expected %d, got %d", c.Category, want, c.Count)
		}
	}
}

func TestSeed(t *testing.T) {
	s := newService(t, &memoryStorage{}, celebrate.Yesterday)
	date := "2024-03-10"
	added, err := s.Seed(context.Background(), date)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(added) != len(sampleDay) {
		t.Fatalf("expected %d entries, got %d", len(sampleDay), len(added))
	}
	day, _ := s.QueryByDate(date)
	last := day[len(day)-1]
	if last.Category != category.Sleep {
		t.Fatalf("expected sleep last, got %s", last.Category)
	}
	if _, err := s.Seed(context.Background(), date); !errors.Is(err, ErrDateNotEmpty) {
		t.Fatalf("expected ErrDateNotEmpty, got %v", err)
	}
}

func TestOpenWithSQLite(t *testing.T) {
	ctx := context.Background()
	b, err := store.NewSQLite(store.MemoryDSN)
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	defer b.Close()

	s, err := Open(ctx, b, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	res := mustAdd(t, s, category.Poopy, format.Fields{Choice: "Type 3 - Sausage-like with cracks"}, "2024-03-10")

	again, err := Open(ctx, b, Options{})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got, ok := again.Logs.Get(res.Item.ID); !ok || got.Content != res.Item.Content {
		t.Fatalf("entry not persisted: %+v %v", got, ok)
	}
}
