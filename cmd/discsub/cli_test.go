package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"discsub/internal/config"
	sub "discsub/internal/submission"
	"discsub/internal/testsupport"
)

const trackSHA1 = "da39a3ee5e6b4b0d3255bfef95601890afd80709"

type cliTestEnv struct {
	cfg        *config.Config
	catalog    *testsupport.Catalog
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("REDUMP_USERNAME", "")
	t.Setenv("REDUMP_PASSWORD", "")

	catalog := testsupport.NewCatalogServer(t, testsupport.CatalogDisc{
		ID:       12,
		Title:    "The Example Quest",
		Region:   "U",
		Language: "English",
		Serial:   "SLUS-00001",
		Comments: "[T:ISBN] 978-1\nFirst print",
		Tracks:   []string{trackSHA1},
	})

	opts = append([]testsupport.ConfigOption{
		testsupport.WithCatalog(catalog.URL),
		testsupport.WithCredentials(catalog.Username, catalog.Password),
	}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	cfg.Logging.Level = "error"

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	testsupport.WriteFile(t, configPath, data)

	return &cliTestEnv{cfg: cfg, catalog: catalog, configPath: configPath}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if env != nil {
		args = append([]string{"--config", env.configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
}

func writeInputRecord(t *testing.T, env *cliTestEnv, mutate ...func(*sub.Record)) string {
	t.Helper()
	rec := sub.New()
	rec.CommonDiscInfo.System = sub.SystemSonyPlayStation
	rec.CommonDiscInfo.Media = sub.DiscTypeCD
	rec.TracksAndWriteOffsets.ClrMameProData = testsupport.ROMLine("Example Quest (USA).bin", 1000, trackSHA1)
	for _, fn := range mutate {
		fn(rec)
	}
	path := filepath.Join(testsupport.BaseDir(env.cfg), "input", "record.json")
	testsupport.WriteRecord(t, path, rec)
	return path
}

func TestResolveWritesSubmission(t *testing.T) {
	env := setupCLITestEnv(t)
	input := writeInputRecord(t, env)
	outDir := filepath.Join(t.TempDir(), "submission")

	out, err := runCLI(t, env, "resolve", "--input", input, "--output-dir", outDir)
	if err != nil {
		t.Fatalf("resolve: %v\n%s", err, out)
	}
	requireContains(t, out, "Outcome: resolved")
	requireContains(t, out, "Matched: "+env.catalog.URL+"/disc/12/")
	if env.catalog.Logins() != 1 {
		t.Fatalf("expected one login, got %d", env.catalog.Logins())
	}

	text, err := os.ReadFile(filepath.Join(outDir, "!submissionInfo.txt"))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(text)
	requireContains(t, report, "\tTitle: Example Quest, The\n")
	requireContains(t, report, "\tFully Matching ID: 12\n")
	requireContains(t, report, "\tRegion: USA\n")
	requireContains(t, report, "\tLanguages: English\n")
	requireContains(t, report, "[T:ISBN] 978-1\nFirst print")

	if _, err := os.Stat(filepath.Join(outDir, "!submissionInfo.json")); err != nil {
		t.Fatalf("expected json output: %v", err)
	}
}

func TestResolveWritesProtectionInfo(t *testing.T) {
	env := setupCLITestEnv(t)
	input := writeInputRecord(t, env, func(rec *sub.Record) {
		rec.CopyProtection.FullProtections = map[string][]string{
			"game.exe": {"SafeDisc 2"},
		}
	})
	outDir := filepath.Join(t.TempDir(), "submission")

	if out, err := runCLI(t, env, "resolve", "--input", input, "--output-dir", outDir); err != nil {
		t.Fatalf("resolve: %v\n%s", err, out)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "!protectionInfo.txt"))
	if err != nil {
		t.Fatalf("read protection info: %v", err)
	}
	if string(data) != "game.exe: SafeDisc 2\n" {
		t.Fatalf("unexpected protection info %q", data)
	}
	record, err := os.ReadFile(filepath.Join(outDir, "!submissionInfo.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	requireContains(t, string(record), `"full_protections"`)
}

func TestResolveDryRunWithoutMatch(t *testing.T) {
	env := setupCLITestEnv(t)
	rec := sub.New()
	rec.CommonDiscInfo.System = sub.SystemSonyPlayStation
	rec.TracksAndWriteOffsets.ClrMameProData = testsupport.ROMLine("Other.bin", 10, strings.Repeat("ab", 20))
	input := filepath.Join(t.TempDir(), "record.json")
	testsupport.WriteRecord(t, input, rec)

	out, err := runCLI(t, env, "resolve", "--input", input, "--dry-run")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, "Outcome: not_found")
	requireContains(t, out, "No matches found")
	if _, err := os.Stat(filepath.Join(env.cfg.Submission.OutputDir, "!submissionInfo.txt")); !os.IsNotExist(err) {
		t.Fatalf("dry run wrote files: %v", err)
	}
}

func TestResolveRejectsMalformedDAT(t *testing.T) {
	env := setupCLITestEnv(t)
	input := writeInputRecord(t, env)
	dat := filepath.Join(t.TempDir(), "bad.dat")
	testsupport.WriteFile(t, dat, []byte("not a rom line"))

	_, err := runCLI(t, env, "resolve", "--input", input, "--dat", dat, "--dry-run")
	if err == nil {
		t.Fatal("expected error for malformed dat")
	}
	if len(env.catalog.Searches()) != 0 {
		t.Fatalf("catalog searched despite parse failure: %v", env.catalog.Searches())
	}
}

func TestSearchPrintsTSVWhenPiped(t *testing.T) {
	env := setupCLITestEnv(t)
	out, err := runCLI(t, env, "search", trackSHA1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if out != trackSHA1+"\t1\t12\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSearchRequiresLogin(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCredentials("dumper", "wrong"))

	_, err := runCLI(t, env, "search", trackSHA1)
	if err == nil || !strings.Contains(err.Error(), "catalog login failure") {
		t.Fatalf("expected login failure, got %v", err)
	}
	if env.catalog.Logins() != 1 {
		t.Fatalf("expected one login attempt, got %d", env.catalog.Logins())
	}
	if got := env.catalog.Searches(); len(got) != 0 {
		t.Fatalf("searched without a session: %v", got)
	}
}

func TestSearchUsesMatchCache(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithMatchCache())

	for i := 0; i < 2; i++ {
		if _, err := runCLI(t, env, "search", trackSHA1); err != nil {
			t.Fatalf("search %d: %v", i, err)
		}
	}
	if got := len(env.catalog.Searches()); got != 1 {
		t.Fatalf("expected one remote search, got %d", got)
	}

	out, err := runCLI(t, env, "cache", "list")
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, trackSHA1+"\t12\t")

	out, err = runCLI(t, env, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 1 cached entries")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = runCLI(t, nil, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, nil, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
