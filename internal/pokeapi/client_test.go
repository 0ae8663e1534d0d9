package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL+"/" {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL+"/")
	}

	u, err = parseBaseURL("example.com:1234/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "/api/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL without host returned nil error")
	}
}

func TestClient_FetchRosterEncodesWindow(t *testing.T) {
	t.Parallel()

	var gotPath, gotLimit, gotOffset, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		gotOffset = r.URL.Query().Get("offset")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(RosterResponse{Results: []RosterEntry{
			{Name: "chikorita", URL: "https://pokeapi.co/api/v2/pokemon/152/"},
		}})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/v2", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	entries, err := c.FetchRoster(ctx, 151, 100)
	if err != nil {
		t.Fatalf("FetchRoster returned error: %v", err)
	}
	if gotPath != "/api/v2/pokemon" {
		t.Fatalf("path = %q, want /api/v2/pokemon", gotPath)
	}
	if gotLimit != "100" || gotOffset != "151" {
		t.Fatalf("limit/offset = %s/%s, want 100/151", gotLimit, gotOffset)
	}
	if len(entries) != 1 || entries[0].Name != "chikorita" || entries[0].ID() != 152 {
		t.Fatalf("entries = %#v, want chikorita #152", entries)
	}
	if !strings.HasPrefix(gotUserAgent, "dexter/") {
		t.Fatalf("User-Agent = %q, want dexter/*", gotUserAgent)
	}
}

func TestClient_FetchRosterRejectsEmptyWindow(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchRoster(context.Background(), 0, 0); err == nil {
		t.Fatalf("FetchRoster with limit 0 returned nil error")
	}
}

func TestClient_FetchPokemonByNameAndURL(t *testing.T) {
	t.Parallel()

	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 6, "name": "charizard", "height": 17, "weight": 905,
			"sprites": {"front_default": "https://img/6.png"},
			"types": [
				{"slot": 2, "type": {"name": "flying"}},
				{"slot": 1, "type": {"name": "fire"}}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	p, err := c.FetchPokemon(context.Background(), "  Charizard ")
	if err != nil {
		t.Fatalf("FetchPokemon returned error: %v", err)
	}
	if p.ID != 6 || p.Sprites.FrontDefault != "https://img/6.png" {
		t.Fatalf("pokemon = %#v, want charizard #6", p)
	}
	if got := p.TypeNames(); len(got) != 2 || got[0] != "flying" || got[1] != "fire" {
		t.Fatalf("TypeNames = %v, want payload order [flying fire]", got)
	}

	if _, err := c.FetchPokemon(context.Background(), server.URL+"/pokemon/6/"); err != nil {
		t.Fatalf("FetchPokemon by url returned error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/pokemon/charizard" || paths[1] != "/pokemon/6/" {
		t.Fatalf("paths = %v, want lowercased name then detail url", paths)
	}
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/missingno":
			http.NotFound(w, r)
		case "/pokemon/broken":
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchPokemon(context.Background(), "missingno")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FetchPokemon error = %v, want ErrNotFound", err)
	}

	_, err = c.FetchPokemon(context.Background(), "broken")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchPokemon error = %v, want decode response error", err)
	}

	_, err = c.FetchRoster(context.Background(), 0, 151)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("FetchRoster error = %v, want status 500", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("status 500 should not match ErrNotFound")
	}

	if _, err := c.FetchPokemon(context.Background(), "   "); err == nil {
		t.Fatalf("FetchPokemon blank ref returned nil error")
	}
}

func TestPokemonTypeNames_KeepsPayloadOrder(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    []string
	}{
		{
			name:    "slots out of order",
			payload: `{"types":[{"slot":2,"type":{"name":"flying"}},{"slot":1,"type":{"name":"fire"}}]}`,
			want:    []string{"flying", "fire"},
		},
		{
			name:    "blank names dropped",
			payload: `{"types":[{"slot":1,"type":{"name":" "}},{"slot":2,"type":{"name":"water"}}]}`,
			want:    []string{"water"},
		},
		{
			name:    "no types",
			payload: `{"types":[]}`,
			want:    nil,
		},
	}
	for _, tc := range cases {
		var p Pokemon
		if err := json.Unmarshal([]byte(tc.payload), &p); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		got := p.TypeNames()
		if strings.Join(got, ",") != strings.Join(tc.want, ",") || len(got) != len(tc.want) {
			t.Fatalf("%s: TypeNames = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRosterEntryID(t *testing.T) {
	cases := map[string]int{
		"https://pokeapi.co/api/v2/pokemon/25/": 25,
		"https://pokeapi.co/api/v2/pokemon/25":  25,
		"https://pokeapi.co/api/v2/pokemon/":    0,
		"":                                      0,
	}
	for in, want := range cases {
		if got := (RosterEntry{URL: in}).ID(); got != want {
			t.Fatalf("ID(%q) = %d, want %d", in, got, want)
		}
	}
}
