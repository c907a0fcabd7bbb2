package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"startDate": {},
}

func prepareRequest(
	method, path string,
	body io.Reader,
	headers map[string]string,
	cookies []http.Cookie) (*http.Request, error) {

	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(&c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore nondeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		cleanValue(m[k])
	}
}

func cleanValue(v any) {
	switch v := v.(type) {
	case map[string]any:
		cleanMap(v)
	case []any:
		for _, item := range v {
			cleanValue(item)
		}
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, name string) {
	t.Helper()

	query, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(query))
	require.NoError(t, err)
}

// seedBookingData resets the booking tables to the fixtures in testdata.
func seedBookingData(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	executeSQLFile(t, db, "cleanup.sql")
	executeSQLFile(t, db, "halls_up.sql")
	executeSQLFile(t, db, "sessions_up.sql")
	executeSQLFile(t, db, "bookings_up.sql")
}

func flushAllCache(t testing.TB, client *redis.Client) {
	t.Helper()

	require.NoError(t, client.FlushAll(context.Background()).Err())
}

func countBookedSeats(t testing.TB, db *pgxpool.Pool, movieSessionId int) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM seats_on_booking WHERE movie_session_id = $1`, movieSessionId).Scan(&count)
	require.NoError(t, err)

	return count
}
