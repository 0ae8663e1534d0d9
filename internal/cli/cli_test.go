package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dexter/internal/catalog"
	"github.com/five82/dexter/internal/logtail"
	"github.com/five82/dexter/internal/pokeapi"
)

func detail(id int, name string, height, weight int, types ...string) pokeapi.Pokemon {
	p := pokeapi.Pokemon{ID: id, Name: name, Height: height, Weight: weight}
	p.Sprites.FrontDefault = fmt.Sprintf("https://img.example/%d.png", id)
	for i, t := range types {
		p.Types = append(p.Types, pokeapi.TypeSlot{Slot: i + 1, Type: pokeapi.NamedAPIRef{Name: t}})
	}
	return p
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	records := []pokeapi.Pokemon{
		detail(1, "bulbasaur", 7, 69, "grass", "poison"),
		detail(4, "charmander", 6, 85, "fire"),
		detail(7, "squirtle", 5, 90, "water"),
	}

	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		resp := pokeapi.RosterResponse{Count: len(records)}
		for _, p := range records {
			resp.Results = append(resp.Results, pokeapi.RosterEntry{
				Name: p.Name,
				URL:  fmt.Sprintf("%s/api/v2/pokemon/%d/", srv.URL, p.ID),
			})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/api/v2/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		ref := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/"), "/")
		for _, p := range records {
			if ref == p.Name || ref == fmt.Sprint(p.ID) {
				_ = json.NewEncoder(w).Encode(p)
				return
			}
		}
		http.NotFound(w, r)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGroupsCommand(t *testing.T) {
	srv := newAPIServer(t)
	cfg := writeConfig(t, fmt.Sprintf("api_base = %q\nlog_file = \"\"\n", srv.URL+"/api/v2"))

	out, err := execute(t, "groups", "--config", cfg, "--generation", "1", "--quiet")
	require.NoError(t, err)

	for _, want := range []string{"GRASS (1)", "POISON (1)", "FIRE (1)", "WATER (1)", "Bulbasaur", "0.7 m", "6.9 kg", "grass, poison"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "GRASS"), strings.Index(out, "WATER"), "groups keep first-encounter order")
}

func TestGroupsCommand_WithProgressBar(t *testing.T) {
	srv := newAPIServer(t)
	cfg := writeConfig(t, fmt.Sprintf("api_base = %q\nlog_file = \"\"\n", srv.URL+"/api/v2"))

	out, err := execute(t, "groups", "--config", cfg, "-g", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Squirtle")
}

func TestGroupsCommand_BadGeneration(t *testing.T) {
	cfg := writeConfig(t, "log_file = \"\"\n")
	_, err := execute(t, "groups", "--config", cfg, "-g", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generation 10")
}

func TestLookupCommand(t *testing.T) {
	srv := newAPIServer(t)
	cfg := writeConfig(t, fmt.Sprintf("api_base = %q\nlog_file = \"\"\n", srv.URL+"/api/v2"))

	out, err := execute(t, "lookup", "--config", cfg, "  Charmander ")
	require.NoError(t, err)
	assert.Contains(t, out, "Charmander")
	assert.Contains(t, out, "fire")
	assert.Contains(t, out, "https://img.example/4.png")

	_, err = execute(t, "lookup", "--config", cfg, "missingno")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no creature named "missingno"`)
}

func TestLookupCommand_RequiresName(t *testing.T) {
	_, err := execute(t, "lookup")
	require.Error(t, err)
}

func TestLogsCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dexter.log")
	lines := `{"level":"info","ts":"2026-01-02T15:04:05.000Z","logger":"dexter","msg":"loading generation","generation":1}
{"level":"warn","ts":"2026-01-02T15:04:06.000Z","logger":"dexter","msg":"discarding superseded load","generation":1}
`
	require.NoError(t, os.WriteFile(logPath, []byte(lines), 0o644))
	cfg := writeConfig(t, fmt.Sprintf("log_file = %q\n", logPath))

	out, err := execute(t, "logs", "--config", cfg, "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "discarding superseded load")
	assert.Contains(t, out, "WARN")
	assert.NotContains(t, out, "loading generation")
}

func TestLogsCommand_Disabled(t *testing.T) {
	cfg := writeConfig(t, "log_file = \"\"\n")
	_, err := execute(t, "logs", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging is disabled")
}

func TestRenderRecord_NoSprite(t *testing.T) {
	out := renderRecord(catalog.Record{ID: 25, Name: "pikachu", Height: 4, Weight: 60, Categories: []string{"electric"}})
	assert.Contains(t, out, "Pikachu")
	assert.Contains(t, out, "0.4 m")
	assert.Contains(t, out, "none")
}

func TestRenderLogs_RawLine(t *testing.T) {
	out := renderLogs([]logtail.Entry{{Raw: "panic: boom"}})
	assert.Contains(t, out, "panic: boom")
}
