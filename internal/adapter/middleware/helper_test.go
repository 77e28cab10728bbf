package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"
	"time"
)

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_nowUTC(t *testing.T) {
	u := nowUTC()
	if u.Location() != time.UTC {
		t.Fatalf("nowUTC must be UTC, got %v", u.Location())
	}
	if d := time.Since(u); d < 0 || d > 2*time.Second {
		t.Fatalf("nowUTC too far from now: %v", d)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/create-loan", strings.Repeat("a", 32))
	want := "idemp:post:/create-loan:" + strings.Repeat("a", 32)
	if k != want {
		t.Fatalf("buildKey: got %q want %q", k, want)
	}
}

func Test_validReqID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{strings.Repeat("a", 32), true},
		{"123e4567-e89b-12d3-a456-426614174000", true},
		{"  " + strings.Repeat("F", 32) + "  ", true}, // trimmed, lowercased
		{"short", false},
		{strings.Repeat("a", 31), false},
		{strings.Repeat("z", 32), false},
		{"", false},
	}
	for _, tc := range cases {
		if got := validReqID(tc.id); got != tc.want {
			t.Fatalf("validReqID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func Test_parseRequestAt(t *testing.T) {
	// epoch seconds
	now := time.Now().UTC().Truncate(time.Second)
	got, err := parseRequestAt(strconv.FormatInt(now.Unix(), 10))
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("epoch seconds: got %v want %v", got, now)
	}

	// epoch milliseconds
	ms := now.UnixMilli()
	got, err = parseRequestAt(strconv.FormatInt(ms, 10))
	if err != nil {
		t.Fatalf("epoch ms: %v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("epoch ms: got %v want %v", got, now)
	}

	// RFC3339 with zone
	got, err = parseRequestAt("2025-09-05T10:00:00+07:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Location() != time.UTC {
		t.Fatalf("rfc3339 result must be UTC")
	}

	// missing / garbage
	if _, err := parseRequestAt(""); err == nil {
		t.Fatal("empty must fail")
	}
	if _, err := parseRequestAt("2025-09-05 10:00:00"); err == nil {
		t.Fatal("naive timestamp must fail")
	}
}

func Test_provisional_load_saveFinal_roundtrip(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	ctx := context.Background()

	key := buildKey("POST", "/create-loan", strings.Repeat("d", 32))
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte("b")), RequestID: strings.Repeat("d", 32)}

	ok, err := provisionalSet(ctx, rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("provisionalSet: ok=%v err=%v", ok, err)
	}
	// second SetNX on same key fails
	ok, err = provisionalSet(ctx, rdb, key, entry)
	if err != nil || ok {
		t.Fatalf("provisionalSet repeat: ok=%v err=%v", ok, err)
	}

	final := entry
	final.InProgress = false
	final.Code = 201
	final.Body = []byte(`{"loan_approved":true}`)
	if err := saveFinal(ctx, rdb, key, final, time.Minute); err != nil {
		t.Fatalf("saveFinal: %v", err)
	}

	got, err := loadEntry(ctx, rdb, key)
	if err != nil {
		t.Fatalf("loadEntry: %v", err)
	}
	if got.InProgress || got.Code != 201 || string(got.Body) != string(final.Body) {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}
