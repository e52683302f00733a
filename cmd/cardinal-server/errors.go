package main

import (
	"fmt"
	"io"
)

// wrongTypeResponse reports an operation against a key that does not hold a
// serialized counter.
func (app *application) wrongTypeResponse(w io.Writer) {
	_ = app.writeErrorResponse(w, "WRONGTYPE Operation against a key holding the wrong kind of value")
}

func (app *application) unknownCommandResponse(w io.Writer, commandName string) {
	_ = app.writeErrorResponse(w, fmt.Sprintf("ERR unknown command '%s'", commandName))
}

func (app *application) wrongNumberOfArgsResponse(w io.Writer, commandName string) {
	_ = app.writeErrorResponse(w, fmt.Sprintf("ERR wrong number of arguments for '%s' command", commandName))
}

func (app *application) corruptCounterResponse(w io.Writer, err error) {
	_ = app.writeErrorResponse(w, fmt.Sprintf("ERR corrupt counter: %v", err))
}
