package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardinal.lopezb.com/internal/cardinal/hyperloglog"
)

func testApp(t *testing.T) *application {
	t.Helper()
	cfg := config{
		port:           0,
		maxConnections: 8,
		precision:      hyperloglog.DefaultPrecision,
		mixer:          hyperloglog.Murmur3Finalizer,
		hasher:         hyperloglog.XXHash64,
	}
	return newApplication(cfg, zerolog.Nop())
}

// run dispatches a command and returns the raw RESP response.
func run(app *application, parts ...string) string {
	var buf bytes.Buffer
	app.router.Dispatch(app, &buf, parts)
	return buf.String()
}

// parseIntReply extracts the value of a ":<n>\r\n" integer reply.
func parseIntReply(t *testing.T, reply string) uint64 {
	t.Helper()
	require.True(t, strings.HasPrefix(reply, ":"), "expected integer reply, got %q", reply)
	v, err := strconv.ParseUint(strings.TrimSuffix(reply[1:], "\r\n"), 10, 64)
	require.NoError(t, err)
	return v
}

func TestCounterAdd(t *testing.T) {
	app := testApp(t)

	t.Run("creates the key and reports a change", func(t *testing.T) {
		assert.Equal(t, ":1\r\n", run(app, "C.ADD", "visits", "alice"))
		assert.Equal(t, 1, app.store.Len())
	})

	t.Run("duplicate items report no change", func(t *testing.T) {
		assert.Equal(t, ":0\r\n", run(app, "C.ADD", "visits", "alice"))
	})

	t.Run("batch with one new item reports a change", func(t *testing.T) {
		assert.Equal(t, ":1\r\n", run(app, "C.ADD", "visits", "alice", "bob"))
	})

	t.Run("wrong arity", func(t *testing.T) {
		reply := run(app, "C.ADD", "visits")
		assert.True(t, strings.HasPrefix(reply, "-ERR wrong number of arguments"), reply)
	})

	t.Run("wrong type", func(t *testing.T) {
		app.store.Mutate("plain", func([]byte) ([]byte, bool) {
			return []byte("not a counter"), true
		})
		reply := run(app, "C.ADD", "plain", "x")
		assert.True(t, strings.HasPrefix(reply, "-WRONGTYPE"), reply)
	})
}

func TestCounterCount(t *testing.T) {
	app := testApp(t)

	t.Run("missing key counts zero", func(t *testing.T) {
		assert.Equal(t, ":0\r\n", run(app, "C.COUNT", "nope"))
	})

	t.Run("matches the library estimate", func(t *testing.T) {
		reference := app.newCounter()
		for i := 0; i < 500; i++ {
			item := fmt.Sprintf("user-%d", i)
			run(app, "C.ADD", "users", item)
			reference.AddString(item)
		}
		got := parseIntReply(t, run(app, "C.COUNT", "users"))
		assert.Equal(t, reference.Cardinality(), got)
	})

	t.Run("second query is served from the cached header", func(t *testing.T) {
		first := parseIntReply(t, run(app, "C.COUNT", "users"))

		var cached uint64
		var ok bool
		app.store.View("users", func(data []byte) {
			cached, ok = hyperloglog.GetCachedCount(data)
		})
		require.True(t, ok, "the recount should have persisted a warm cache")
		assert.Equal(t, first, cached)
		assert.Equal(t, first, parseIntReply(t, run(app, "C.COUNT", "users")))
	})

	t.Run("adding again dirties the cache", func(t *testing.T) {
		run(app, "C.ADD", "users", "a-brand-new-user")
		var ok bool
		app.store.View("users", func(data []byte) {
			_, ok = hyperloglog.GetCachedCount(data)
		})
		assert.False(t, ok, "a state-changing add should leave a dirty cache")
	})
}

func TestCounterErtlCount(t *testing.T) {
	app := testApp(t)

	assert.Equal(t, ":0\r\n", run(app, "C.ERTLCOUNT", "nope"))

	reference := app.newCounter()
	for i := 0; i < 300; i++ {
		item := fmt.Sprintf("item-%d", i)
		run(app, "C.ADD", "things", item)
		reference.AddString(item)
	}
	got := parseIntReply(t, run(app, "C.ERTLCOUNT", "things"))
	assert.Equal(t, reference.ErtlCardinality(), got)
}

func TestCounterMerge(t *testing.T) {
	app := testApp(t)

	reference := app.newCounter()
	for i := 0; i < 400; i++ {
		item := fmt.Sprintf("left-%d", i)
		run(app, "C.ADD", "left", item)
		reference.AddString(item)
	}
	for i := 0; i < 400; i++ {
		item := fmt.Sprintf("right-%d", i)
		run(app, "C.ADD", "right", item)
		reference.AddString(item)
	}

	assert.Equal(t, "+OK\r\n", run(app, "C.MERGE", "union", "left", "right"))

	got := parseIntReply(t, run(app, "C.COUNT", "union"))
	assert.Equal(t, reference.Cardinality(), got)

	t.Run("missing sources are empty", func(t *testing.T) {
		assert.Equal(t, "+OK\r\n", run(app, "C.MERGE", "union2", "left", "ghost"))
		left := parseIntReply(t, run(app, "C.COUNT", "left"))
		union2 := parseIntReply(t, run(app, "C.COUNT", "union2"))
		assert.Equal(t, left, union2)
	})

	t.Run("source counters are untouched", func(t *testing.T) {
		left := parseIntReply(t, run(app, "C.COUNT", "left"))
		assert.Less(t, left, got)
	})
}

func TestCounterReset(t *testing.T) {
	app := testApp(t)

	run(app, "C.ADD", "counter", "a", "b", "c")
	require.Equal(t, uint64(3), parseIntReply(t, run(app, "C.COUNT", "counter")))

	assert.Equal(t, "+OK\r\n", run(app, "C.RESET", "counter"))
	assert.Equal(t, ":0\r\n", run(app, "C.COUNT", "counter"))

	// Reset of a missing key creates it empty.
	assert.Equal(t, "+OK\r\n", run(app, "C.RESET", "fresh"))
	assert.Equal(t, ":0\r\n", run(app, "C.COUNT", "fresh"))

	// The counter stays usable after a reset.
	assert.Equal(t, ":1\r\n", run(app, "C.ADD", "counter", "z"))
	assert.Equal(t, ":1\r\n", run(app, "C.COUNT", "counter"))
}

func TestCounterInfo(t *testing.T) {
	app := testApp(t)

	reply := run(app, "C.INFO", "missing")
	assert.True(t, strings.HasPrefix(reply, "-ERR no such key"), reply)

	run(app, "C.ADD", "info-key", "x", "y")
	reply = run(app, "C.INFO", "info-key")
	assert.Contains(t, reply, "representation:sparse")
	assert.Contains(t, reply, "precision:12")
	assert.Contains(t, reply, "mixer:murmur3-finalizer")
	assert.Contains(t, reply, "hasher:xxhash64")
	assert.Contains(t, reply, "sparse_size:2")
}

func TestPingAndStats(t *testing.T) {
	app := testApp(t)

	assert.Equal(t, "+PONG\r\n", run(app, "PING"))

	run(app, "C.ADD", "k", "v")
	reply := run(app, "STATS")
	assert.Contains(t, reply, "total_commands:")
	assert.Contains(t, reply, "keys:1")
}

func TestUnknownCommand(t *testing.T) {
	app := testApp(t)
	reply := run(app, "NOSUCH", "arg")
	assert.True(t, strings.HasPrefix(reply, "-ERR unknown command 'NOSUCH'"), reply)
}
