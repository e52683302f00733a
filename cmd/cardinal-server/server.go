package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	writeTimeout              = 5 * time.Second
	rejectionTimeout          = 500 * time.Millisecond
	errMaxConnectionsResponse = "-ERR max number of clients reached\r\n"
)

// serve starts the TCP listener and blocks until shutdown. A dedicated
// goroutine waits for SIGINT/SIGTERM, closes the listener and drains
// in-flight connections under a timeout; the accept loop treats the closed
// listener as the normal exit path.
func (app *application) serve() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.port))
	if err != nil {
		return err
	}
	app.listener = ln
	serverAddr := ln.Addr().String()

	if app.readyCh != nil {
		close(app.readyCh)
	}

	shutdownError := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info().Str("signal", s.String()).Str("address", serverAddr).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), app.config.shutdownTimeout)
		defer cancel()

		if err := ln.Close(); err != nil {
			shutdownError <- err
			return
		}

		wgDone := make(chan struct{})
		go func() {
			app.wg.Wait()
			close(wgDone)
		}()

		select {
		case <-wgDone:
			shutdownError <- nil
		case <-ctx.Done():
			shutdownError <- ctx.Err()
		}
	}()

	app.logger.Info().Str("address", serverAddr).Msg("server starting")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			app.logger.Error().Err(err).Msg("accept failed")
			continue
		}

		select {
		case app.connLimiter <- struct{}{}:
			app.wg.Add(1)
			go app.handleConnection(conn)
		default:
			// No slot free: reject with a strict deadline so a
			// non-reading client cannot stall the accept loop.
			app.logger.Info().Str("remote_addr", conn.RemoteAddr().String()).Msg("rejecting connection, limit reached")
			_ = conn.SetWriteDeadline(time.Now().Add(rejectionTimeout))
			_, _ = conn.Write([]byte(errMaxConnectionsResponse))
			_ = conn.Close()
		}
	}

	err = <-shutdownError
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		app.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	app.logger.Info().Str("address", serverAddr).Msg("server stopped gracefully")
	return nil
}

// handleConnection runs the request/response loop for one client.
//
// Responses accumulate in a buffered writer and are flushed only when the
// parser has no more buffered input, so a pipelined batch of commands is
// answered with a single write syscall.
func (app *application) handleConnection(conn net.Conn) {
	defer func() { <-app.connLimiter }()
	defer app.wg.Done()
	defer func() { _ = conn.Close() }()

	app.metrics.TotalConnections.Add(1)
	remoteAddr := conn.RemoteAddr().String()
	app.logger.Debug().Str("remote_addr", remoteAddr).Msg("new connection")

	parser := NewParser(conn)
	writer := bufio.NewWriterSize(conn, 4096)

	// Flush whatever was produced before the loop exited, including
	// responses to the commands that preceded a mid-pipeline parse error.
	defer func() { _ = writer.Flush() }()

	for {
		if app.config.idleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(app.config.idleTimeout)); err != nil {
				app.logger.Error().Err(err).Str("remote_addr", remoteAddr).Msg("failed to set read deadline")
				return
			}
		}

		parts, err := parser.Parse()
		if err != nil {
			if errors.Is(err, io.EOF) {
				app.logger.Debug().Str("remote_addr", remoteAddr).Msg("client disconnected")
			} else {
				app.logger.Warn().Err(err).Str("remote_addr", remoteAddr).Msg("parse error")
			}
			return
		}

		app.router.Dispatch(app, writer, parts)

		if parser.Buffered() == 0 {
			if err := writer.Flush(); err != nil {
				app.logger.Error().Err(err).Str("remote_addr", remoteAddr).Msg("failed to flush response")
				return
			}
		}
	}
}
