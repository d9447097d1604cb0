package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pb "github.com/and161185/token-queue/gen/go/tokenqueue/v1"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "tokenqueue")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	for _, p := range []string{tokenPath(), sessionPath(), cachePath()} {
		if !strings.HasPrefix(p, base) {
			t.Fatalf("path outside config dir: %s", p)
		}
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); err == nil {
		t.Fatalf("expected error when token file missing")
	}
	if err := saveToken("tok", time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tok, err := loadToken()
	if err != nil || tok != "tok" {
		t.Fatalf("loadToken: tok=%q err=%v", tok, err)
	}
	if err := saveToken("tok2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for expired token")
	}
}

func Test_sessionID_GeneratedOnce(t *testing.T) {
	_ = withTmpConfig(t)

	first, err := sessionID()
	if err != nil || first == "" {
		t.Fatalf("sessionID: %q %v", first, err)
	}
	second, err := sessionID()
	if err != nil || second != first {
		t.Fatalf("session must be stable: %q vs %q (%v)", first, second, err)
	}
	if len(first) > 128 {
		t.Fatalf("session too long: %d", len(first))
	}
}

func Test_cache_PerDay(t *testing.T) {
	_ = withTmpConfig(t)

	if _, ok := cached("BAKERY", "2026-10-14"); ok {
		t.Fatalf("empty cache must miss")
	}
	if err := remember("BAKERY", "2026-10-14", 7); err != nil {
		t.Fatalf("remember: %v", err)
	}
	if n, ok := cached("BAKERY", "2026-10-14"); !ok || n != 7 {
		t.Fatalf("cached=%d,%v", n, ok)
	}
	// another day does not see yesterday's number
	if _, ok := cached("BAKERY", "2026-10-15"); ok {
		t.Fatalf("stale entry must miss")
	}

	// remembering on a new day drops old entries
	if err := remember("DELI", "2026-10-15", 1); err != nil {
		t.Fatalf("remember: %v", err)
	}
	c, err := loadCache()
	if err != nil {
		t.Fatalf("loadCache: %v", err)
	}
	if _, ok := c["BAKERY"]; ok || len(c) != 1 {
		t.Fatalf("old day not pruned: %+v", c)
	}

	if err := forget("DELI"); err != nil {
		t.Fatalf("forget: %v", err)
	}
	if _, ok := cached("DELI", "2026-10-15"); ok {
		t.Fatalf("forgotten entry still cached")
	}
	if err := forget("NOPE"); err != nil {
		t.Fatalf("forget missing: %v", err)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	printJSON(&pb.MyTokenResponse{Number: 4, Called: true})
	_ = w.Close()
	out, _ := io.ReadAll(r)

	var m map[string]any
	if json.Unmarshal(out, &m) != nil || m["number"] != "4" || m["called"] != true {
		t.Fatalf("printJSON produced invalid json: %s", string(out))
	}
	if _, ok := m["expired"]; !ok {
		t.Fatalf("printJSON should emit unset fields: %s", string(out))
	}
	if !bytes.Contains(out, []byte("\n")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_describe(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	st := &pb.ShopState{Code: "BAKERY", Name: "Bakery", Status: "active", ServingNumber: 3, Issued: 9, Waiting: 6, DaysRemaining: 2}
	describe(&buf, st, 5)
	out := buf.String()
	for _, want := range []string{"BAKERY", "[active]", "serving=3", "days_left=2", "your number 5, 2 ahead"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}

	buf.Reset()
	describe(&buf, &pb.ShopState{Code: "X", Status: "inactive"}, 0)
	if strings.Contains(buf.String(), "your number") || strings.Contains(buf.String(), "days_left") {
		t.Fatalf("unexpected suffix: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "outside distribution days") {
		t.Fatalf("missing inactive hint: %q", buf.String())
	}

	// unknown status strings render as inactive
	buf.Reset()
	describe(&buf, &pb.ShopState{Code: "X", Status: "paused"}, 0)
	if !strings.Contains(buf.String(), "[inactive]") {
		t.Fatalf("unknown status not mapped: %q", buf.String())
	}

	buf.Reset()
	describe(&buf, &pb.ShopState{Code: "X", Status: "owner_closed", IsOpen: false}, 0)
	if !strings.Contains(buf.String(), "[owner_closed]") || !strings.Contains(buf.String(), "not issuing numbers") {
		t.Fatalf("owner_closed render: %q", buf.String())
	}
}

func Test_progress(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		progress(2, 5): "expired",
		progress(5, 5): "called now",
		progress(8, 5): "3 ahead",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("progress: got %q want %q", got, want)
		}
	}
}

func Test_tokenExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(3 * time.Hour).UTC().Truncate(time.Second)
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	if got := tokenExpiry(tok); !got.Equal(exp) {
		t.Fatalf("expiry %v, want %v", got, exp)
	}
	if got := tokenExpiry("garbage"); got.Before(time.Now()) {
		t.Fatalf("fallback expiry must be in the future")
	}
}

func Test_codeFlag(t *testing.T) {
	t.Parallel()

	code, err := codeFlag("x", []string{"-code", " bakery "})
	if err != nil || code != "BAKERY" {
		t.Fatalf("codeFlag: %q %v", code, err)
	}
	code, err = codeFlag("x", []string{"deli"})
	if err != nil || code != "DELI" {
		t.Fatalf("positional code: %q %v", code, err)
	}
	if _, err := codeFlag("x", nil); err == nil {
		t.Fatalf("expected error for missing code")
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds must require TLS when secure")
	}
	if (bearerCreds{token: "T"}).RequireTransportSecurity() {
		t.Fatalf("plaintext dev mode must not require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}
}
