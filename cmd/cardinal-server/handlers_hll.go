// Counter command handlers.
//
// Every key stores a serialized counter (see the hyperloglog package's
// Serialize format). Handlers follow a strict read-modify-write discipline:
// the store's Mutate gives them the raw bytes under the key's exclusive
// lock, they deserialize, operate, and hand back the new serialization.
// Read-only commands use View, with a fast path that answers from the
// cached cardinality in the header without deserializing at all.
package main

import (
	"fmt"
	"io"
	"strings"

	"cardinal.lopezb.com/internal/cardinal/hyperloglog"
)

// loadCounter deserializes stored bytes, distinguishing a wrong-type key
// from a corrupt counter.
func (app *application) loadCounter(data []byte) (*hyperloglog.Counter, bool, error) {
	if !hyperloglog.HasValidMagic(data) {
		return nil, true, nil
	}
	c, err := hyperloglog.Deserialize(data)
	if err != nil {
		return nil, false, err
	}
	return c, false, nil
}

// handleCounterAdd handles C.ADD.
// Syntax: C.ADD key item [item ...]
//
// A missing key is created implicitly with the server-wide precision, mixer
// and hasher. Replies 1 if any register changed, 0 otherwise.
func (app *application) handleCounterAdd(w io.Writer, args []string) {
	if len(args) < 2 {
		app.wrongNumberOfArgsResponse(w, "C.ADD")
		return
	}
	key := args[0]
	items := args[1:]

	var (
		changed     bool
		typeError   bool
		decodeError error
	)
	app.store.Mutate(key, func(data []byte) ([]byte, bool) {
		var c *hyperloglog.Counter
		if data == nil {
			c = app.newCounter()
		} else {
			var wrongType bool
			var err error
			c, wrongType, err = app.loadCounter(data)
			if wrongType {
				typeError = true
				return data, false
			}
			if err != nil {
				decodeError = err
				return data, false
			}
		}

		for _, item := range items {
			if c.AddString(item) {
				changed = true
			}
		}

		// Write back when the registers moved, and always for a fresh
		// key so it exists afterwards.
		if changed || data == nil {
			return c.Serialize(), true
		}
		return data, false
	})

	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if decodeError != nil {
		app.corruptCounterResponse(w, decodeError)
		return
	}

	if changed {
		_ = app.writeIntegerResponse(w, 1)
	} else {
		_ = app.writeIntegerResponse(w, 0)
	}
}

// handleCounterCount handles C.COUNT.
// Syntax: C.COUNT key
//
// The fast path reads the cached cardinality straight from the stored
// header under a read lock. Only a dirty cache pays for deserialization
// and a recount, which is written back so the next query is cheap again.
func (app *application) handleCounterCount(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "C.COUNT")
		return
	}
	key := args[0]

	var (
		count     uint64
		hit       bool
		missing   bool
		typeError bool
	)
	app.store.View(key, func(data []byte) {
		if data == nil {
			missing = true
			return
		}
		if !hyperloglog.HasValidMagic(data) {
			typeError = true
			return
		}
		count, hit = hyperloglog.GetCachedCount(data)
	})

	if missing {
		// An absent counter is an empty counter.
		_ = app.writeIntegerResponse(w, 0)
		return
	}
	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if hit {
		_ = app.writeUintResponse(w, count)
		return
	}

	var decodeError error
	app.store.Mutate(key, func(data []byte) ([]byte, bool) {
		if data == nil {
			// Deleted between View and Mutate.
			count = 0
			return data, false
		}
		c, wrongType, err := app.loadCounter(data)
		if wrongType {
			typeError = true
			return data, false
		}
		if err != nil {
			decodeError = err
			return data, false
		}

		count = c.Cardinality()
		// Persist the warmed cache.
		return c.Serialize(), true
	})

	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if decodeError != nil {
		app.corruptCounterResponse(w, decodeError)
		return
	}
	_ = app.writeUintResponse(w, count)
}

// handleCounterErtlCount handles C.ERTLCOUNT.
// Syntax: C.ERTLCOUNT key
//
// The Ertl estimate is not cached in the header, so this is always a full
// read-only computation.
func (app *application) handleCounterErtlCount(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "C.ERTLCOUNT")
		return
	}
	key := args[0]

	var (
		count       uint64
		missing     bool
		typeError   bool
		decodeError error
	)
	app.store.View(key, func(data []byte) {
		if data == nil {
			missing = true
			return
		}
		c, wrongType, err := app.loadCounter(data)
		if wrongType {
			typeError = true
			return
		}
		if err != nil {
			decodeError = err
			return
		}
		count = c.ErtlCardinality()
	})

	if missing {
		_ = app.writeIntegerResponse(w, 0)
		return
	}
	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if decodeError != nil {
		app.corruptCounterResponse(w, decodeError)
		return
	}
	_ = app.writeUintResponse(w, count)
}

// handleCounterMerge handles C.MERGE.
// Syntax: C.MERGE dest src [src ...]
//
// Sources are snapshotted under their read locks first, then the
// destination is updated under its exclusive lock. Missing sources are
// treated as empty counters; a missing destination is created.
func (app *application) handleCounterMerge(w io.Writer, args []string) {
	if len(args) < 2 {
		app.wrongNumberOfArgsResponse(w, "C.MERGE")
		return
	}
	destKey := args[0]
	srcKeys := args[1:]

	sources := make([]*hyperloglog.Counter, 0, len(srcKeys))
	var (
		typeError   bool
		decodeError error
	)
	for _, srcKey := range srcKeys {
		app.store.View(srcKey, func(data []byte) {
			if data == nil {
				return
			}
			c, wrongType, err := app.loadCounter(data)
			if wrongType {
				typeError = true
				return
			}
			if err != nil {
				decodeError = err
				return
			}
			sources = append(sources, c)
		})
		if typeError || decodeError != nil {
			break
		}
	}

	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if decodeError != nil {
		app.corruptCounterResponse(w, decodeError)
		return
	}

	var mergeError error
	app.store.Mutate(destKey, func(data []byte) ([]byte, bool) {
		var dest *hyperloglog.Counter
		if data == nil {
			dest = app.newCounter()
		} else {
			var wrongType bool
			var err error
			dest, wrongType, err = app.loadCounter(data)
			if wrongType {
				typeError = true
				return data, false
			}
			if err != nil {
				decodeError = err
				return data, false
			}
		}

		for _, src := range sources {
			if err := dest.Merge(src); err != nil {
				mergeError = err
				return data, false
			}
		}
		return dest.Serialize(), true
	})

	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if decodeError != nil {
		app.corruptCounterResponse(w, decodeError)
		return
	}
	if mergeError != nil {
		_ = app.writeErrorResponse(w, fmt.Sprintf("ERR %v", mergeError))
		return
	}
	_ = app.writeSimpleStringResponse(w, "OK")
}

// handleCounterReset handles C.RESET.
// Syntax: C.RESET key
//
// Resets the counter in place, creating it if absent, so a reset key always
// exists and counts from zero.
func (app *application) handleCounterReset(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "C.RESET")
		return
	}
	key := args[0]

	var (
		typeError   bool
		decodeError error
	)
	app.store.Mutate(key, func(data []byte) ([]byte, bool) {
		var c *hyperloglog.Counter
		if data == nil {
			c = app.newCounter()
		} else {
			var wrongType bool
			var err error
			c, wrongType, err = app.loadCounter(data)
			if wrongType {
				typeError = true
				return data, false
			}
			if err != nil {
				decodeError = err
				return data, false
			}
			c.Reset()
		}
		return c.Serialize(), true
	})

	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if decodeError != nil {
		app.corruptCounterResponse(w, decodeError)
		return
	}
	_ = app.writeSimpleStringResponse(w, "OK")
}

// handleCounterInfo handles C.INFO.
// Syntax: C.INFO key
func (app *application) handleCounterInfo(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "C.INFO")
		return
	}
	key := args[0]

	var (
		info        string
		missing     bool
		typeError   bool
		decodeError error
	)
	app.store.View(key, func(data []byte) {
		if data == nil {
			missing = true
			return
		}
		c, wrongType, err := app.loadCounter(data)
		if wrongType {
			typeError = true
			return
		}
		if err != nil {
			decodeError = err
			return
		}

		var sb strings.Builder
		representation := "dense"
		if c.Sparse() {
			representation = "sparse"
		}
		fmt.Fprintf(&sb, "representation:%s\r\n", representation)
		fmt.Fprintf(&sb, "precision:%d\r\n", c.Precision())
		fmt.Fprintf(&sb, "registers:%d\r\n", c.Registers())
		fmt.Fprintf(&sb, "mixer:%s\r\n", c.MixerKind())
		fmt.Fprintf(&sb, "hasher:%s\r\n", c.HasherKind())
		fmt.Fprintf(&sb, "sparse_size:%d\r\n", c.SparseSize())
		fmt.Fprintf(&sb, "serialized_bytes:%d\r\n", len(data))
		info = sb.String()
	})

	if missing {
		_ = app.writeErrorResponse(w, "ERR no such key")
		return
	}
	if typeError {
		app.wrongTypeResponse(w)
		return
	}
	if decodeError != nil {
		app.corruptCounterResponse(w, decodeError)
		return
	}
	_ = app.writeBulkStringResponse(w, info)
}

// handlePing handles PING.
func (app *application) handlePing(w io.Writer, args []string) {
	_ = app.writeSimpleStringResponse(w, "PONG")
}

// handleStats handles STATS: a small operational snapshot.
func (app *application) handleStats(w io.Writer, args []string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "total_connections:%d\r\n", app.metrics.TotalConnections.Load())
	fmt.Fprintf(&sb, "total_commands:%d\r\n", app.metrics.TotalCommands.Load())
	fmt.Fprintf(&sb, "keys:%d\r\n", app.store.Len())
	_ = app.writeBulkStringResponse(w, sb.String())
}
