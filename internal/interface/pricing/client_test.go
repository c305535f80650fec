package pricing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rewardfare-service/internal/domain"
	"rewardfare-service/internal/domain/entity"
	"rewardfare-service/pkg/logger"
)

var testLogger = logger.NewLogger("error")

func TestFetchCalendar_MarketSuccess(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Chrome") {
			t.Errorf("request lacks browser fingerprint, User-Agent=%q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"days":[{"departureDate":"150326","basePoints":12000,"totalTax":55}]}`))
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, entity.StrategyMarket, 5*time.Second, testLogger)
	days, err := client.FetchCalendar(context.Background(), "SYD", "MEL", "E", entity.DateWindow{Start: "150326"})
	if err != nil {
		t.Fatalf("FetchCalendar: %v", err)
	}

	if gotPath != "/market-pricing/mpp/v1/calendar" {
		t.Errorf("path = %q, want market calendar path", gotPath)
	}
	for key, want := range map[string]string{
		"origin":      "SYD",
		"destination": "MEL",
		"tripType":    "O",
		"travelClass": "E",
		"isClassic":   "true",
		"startDate":   "150326",
		"language":    "en",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query %s = %v, want %q", key, got, want)
		}
	}
	if _, hasEnd := gotQuery["endDate"]; hasEnd {
		t.Error("market request must not carry endDate")
	}

	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	day := days[0]
	if day.DepartureDate != "150326" || day.BasePoints == nil || *day.BasePoints != 12000 ||
		day.TotalTax == nil || *day.TotalTax != 55 {
		t.Errorf("unexpected day: %+v", day)
	}
	if day.TotalPoints != nil {
		t.Errorf("absent totalPoints should decode to nil, got %d", *day.TotalPoints)
	}
}

func TestFetchCalendar_LiveUsesEndDate(t *testing.T) {
	var gotPath, gotEnd string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotEnd = r.URL.Query().Get("endDate")
		w.Write([]byte(`{"days":[{"departureDate":"150326","totalPoints":13400,"totalTax":55}]}`))
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, entity.StrategyLive, 5*time.Second, testLogger)
	days, err := client.FetchCalendar(context.Background(), "SYD", "MEL", "E",
		entity.DateWindow{Start: "150326", End: "150328"})
	if err != nil {
		t.Fatalf("FetchCalendar: %v", err)
	}

	if gotPath != "/live-pricing/lpp/v1/calendar" {
		t.Errorf("path = %q, want live calendar path", gotPath)
	}
	if gotEnd != "150328" {
		t.Errorf("endDate = %q, want 150328", gotEnd)
	}
	if len(days) != 1 || days[0].TotalPoints == nil || *days[0].TotalPoints != 13400 {
		t.Errorf("unexpected days: %+v", days)
	}
}

func TestFetchCalendar_Non200IsEmptyNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream sad", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, entity.StrategyMarket, 5*time.Second, testLogger)
	days, err := client.FetchCalendar(context.Background(), "SYD", "MEL", "E", entity.DateWindow{Start: "150326"})

	if !errors.Is(err, domain.ErrRemoteFetch) {
		t.Errorf("err = %v, want ErrRemoteFetch", err)
	}
	if len(days) != 0 {
		t.Errorf("got %d days from a failed fetch, want 0", len(days))
	}
}

func TestFetchCalendar_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewCalendarClient(server.URL, entity.StrategyMarket, time.Second, testLogger)
	days, err := client.FetchCalendar(context.Background(), "SYD", "MEL", "E", entity.DateWindow{Start: "150326"})

	if !errors.Is(err, domain.ErrRemoteFetch) {
		t.Errorf("err = %v, want ErrRemoteFetch", err)
	}
	if len(days) != 0 {
		t.Errorf("got %d days, want 0", len(days))
	}
}

func TestFetchCalendar_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewCalendarClient(server.URL, entity.StrategyMarket, 5*time.Second, testLogger)
	if _, err := client.FetchCalendar(context.Background(), "SYD", "MEL", "E", entity.DateWindow{Start: "150326"}); !errors.Is(err, domain.ErrRemoteFetch) {
		t.Errorf("err = %v, want ErrRemoteFetch", err)
	}
}
