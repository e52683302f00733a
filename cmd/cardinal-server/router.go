package main

import (
	"io"
	"strings"
)

// CommandHandler is the signature shared by all command handlers. Handlers
// write their RESP response to w, which is a buffered writer wrapping the
// connection.
type CommandHandler func(w io.Writer, args []string)

// Router maps command names to handlers. Registration happens once at
// startup; dispatch is read-only afterwards.
type Router struct {
	handlers map[string]CommandHandler
}

func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]CommandHandler),
	}
}

// Handle registers a handler under a case-insensitive command name.
func (r *Router) Handle(name string, handler CommandHandler) {
	r.handlers[strings.ToUpper(name)] = handler
}

// Dispatch looks up and runs the handler for a parsed command line.
func (r *Router) Dispatch(app *application, w io.Writer, parts []string) {
	if len(parts) == 0 {
		return
	}

	app.metrics.TotalCommands.Add(1)

	commandName := strings.ToUpper(parts[0])
	handler, found := r.handlers[commandName]
	if !found {
		app.unknownCommandResponse(w, commandName)
		return
	}
	handler(w, parts[1:])
}
