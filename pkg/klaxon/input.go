// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package klaxon

import (
	"context"
	"io"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"sync"
)

// ReadStatus tells how a line read ended.
type ReadStatus int

const (
	// ReadOK means Line holds the answer.
	ReadOK ReadStatus = iota

	// ReadInterrupted means Ctrl+C arrived or the context was cancelled.
	ReadInterrupted

	// ReadClosed means the stream ended before any byte was read.
	ReadClosed
)

// String returns a short name for logs.
func (s ReadStatus) String() string {
	switch s {
	case ReadOK:
		return "ok"
	case ReadInterrupted:
		return "interrupted"
	case ReadClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ReadResult is the outcome of reading one answer line.
type ReadResult struct {
	Line   string
	Status ReadStatus
}

// InterruptSource subscribes to interrupts for the duration of one read.
// The returned stop function unsubscribes.
type InterruptSource func() (<-chan os.Signal, func())

// SignalInterrupts delivers SIGINT (Ctrl+C). While subscribed the signal no
// longer terminates the process.
func SignalInterrupts() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch, func() { signal.Stop(ch) }
}

// abandonedReads holds reads left in flight by an interrupted prompt, keyed
// by stream. The next prompt on the same stream takes the read over, so the
// line the operator types next reaches the prompt waiting for it.
var (
	abandonedMu    sync.Mutex
	abandonedReads = map[io.Reader]<-chan ReadResult{}
)

// readAnswer waits for one line from r, an interrupt, or ctx.
//
// # Description
//
// The read runs on its own goroutine so an interrupt can win the race
// against a blocked terminal read. An interrupted read is not cancelled; it
// is parked and resumed by the next readAnswer on r, so at most one reader
// goroutine exists per stream.
//
// # Limitations
//
//   - Streams whose dynamic type is not a pointer cannot be keyed and their
//     interrupted read is discarded when it completes.
func readAnswer(ctx context.Context, r io.Reader, interrupts InterruptSource) ReadResult {
	sigs, stop := interrupts()
	defer stop()

	done := resumeRead(r)

	select {
	case res := <-done:
		return res
	case <-sigs:
		abandonRead(r, done)
		return ReadResult{Status: ReadInterrupted}
	case <-ctx.Done():
		abandonRead(r, done)
		return ReadResult{Status: ReadInterrupted}
	}
}

// resumeRead returns the parked read on r, or starts a new one.
func resumeRead(r io.Reader) <-chan ReadResult {
	if keyable(r) {
		abandonedMu.Lock()
		pending, ok := abandonedReads[r]
		delete(abandonedReads, r)
		abandonedMu.Unlock()
		if ok {
			return pending
		}
	}

	done := make(chan ReadResult, 1)
	go func() {
		done <- readLine(r)
	}()
	return done
}

// abandonRead parks an in-flight read for the next prompt on r.
func abandonRead(r io.Reader, done <-chan ReadResult) {
	if !keyable(r) {
		return
	}
	abandonedMu.Lock()
	abandonedReads[r] = done
	abandonedMu.Unlock()
}

// keyable reports whether r can be used as a map key without panicking.
func keyable(r io.Reader) bool {
	return r != nil && reflect.TypeOf(r).Kind() == reflect.Pointer
}

// readLine reads up to and including the next '\n' one byte at a time, so
// nothing after the answer is taken from r. The terminator ("\n" or "\r\n")
// is removed. End of stream after at least one byte returns the partial line.
func readLine(r io.Reader) ReadResult {
	var sb strings.Builder
	var buf [1]byte
	for {
		b, err := readByte(r, buf[:])
		if err != nil {
			if sb.Len() == 0 {
				return ReadResult{Status: ReadClosed}
			}
			break
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(b)
	}
	line := strings.TrimSuffix(sb.String(), "\r")
	return ReadResult{Line: line, Status: ReadOK}
}

func readByte(r io.Reader, buf []byte) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	for {
		n, err := r.Read(buf[:1])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
