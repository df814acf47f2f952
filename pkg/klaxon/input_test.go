// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package klaxon

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ReadResult
	}{
		{"lf", "yes\n", ReadResult{Line: "yes", Status: ReadOK}},
		{"crlf", "yes\r\n", ReadResult{Line: "yes", Status: ReadOK}},
		{"empty line", "\n", ReadResult{Line: "", Status: ReadOK}},
		{"partial at eof", "yes", ReadResult{Line: "yes", Status: ReadOK}},
		{"eof", "", ReadResult{Status: ReadClosed}},
		{"first line only", "a\nb\n", ReadResult{Line: "a", Status: ReadOK}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readLine(strings.NewReader(tt.in)))
		})
	}
}

func TestReadLine_PlainReaderStopsAtNewline(t *testing.T) {
	src := strings.NewReader("first\nsecond\n")
	r := iotest.OneByteReader(src)

	assert.Equal(t, ReadResult{Line: "first", Status: ReadOK}, readLine(r))

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(rest))
}

func TestReadLine_ReadErrorAfterData(t *testing.T) {
	r := io.MultiReader(strings.NewReader("par"), iotest.ErrReader(errors.New("tty gone")))
	assert.Equal(t, ReadResult{Line: "par", Status: ReadOK}, readLine(r))
}

func TestReadLine_ReadErrorBeforeData(t *testing.T) {
	r := iotest.ErrReader(errors.New("tty gone"))
	assert.Equal(t, ReadResult{Status: ReadClosed}, readLine(r))
}

func TestReadAnswer_Line(t *testing.T) {
	stopped := false
	src := func() (<-chan os.Signal, func()) {
		return nil, func() { stopped = true }
	}

	res := readAnswer(context.Background(), strings.NewReader("ok\n"), src)

	assert.Equal(t, ReadResult{Line: "ok", Status: ReadOK}, res)
	assert.True(t, stopped, "interrupt subscription released")
}

func TestReadAnswer_Interrupt(t *testing.T) {
	res := readAnswer(context.Background(), blockingInput(t), alwaysInterrupt)
	assert.Equal(t, ReadInterrupted, res.Status)
}

func TestReadAnswer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := readAnswer(ctx, blockingInput(t), neverInterrupt)
	assert.Equal(t, ReadInterrupted, res.Status)
}

func TestReadAnswer_ResumesInterruptedRead(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() {
		_ = w.Close()
		_ = r.Close()
	})

	res := readAnswer(context.Background(), r, alwaysInterrupt)
	require.Equal(t, ReadInterrupted, res.Status)

	go func() { _, _ = io.WriteString(w, "first\nsecond\n") }()

	assert.Equal(t, ReadResult{Line: "first", Status: ReadOK}, readAnswer(context.Background(), r, neverInterrupt))
	assert.Equal(t, ReadResult{Line: "second", Status: ReadOK}, readAnswer(context.Background(), r, neverInterrupt))
}

func TestReadAnswer_ResumedReadSeesClose(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = r.Close() })

	require.Equal(t, ReadInterrupted, readAnswer(context.Background(), r, alwaysInterrupt).Status)
	require.NoError(t, w.Close())

	assert.Equal(t, ReadResult{Status: ReadClosed}, readAnswer(context.Background(), r, neverInterrupt))
}

func TestKeyable(t *testing.T) {
	assert.True(t, keyable(strings.NewReader("")))
	assert.True(t, keyable(os.Stdin))
	assert.False(t, keyable(noReadInput{t}))
	assert.False(t, keyable(nil))
}

func TestReadStatus_String(t *testing.T) {
	assert.Equal(t, "ok", ReadOK.String())
	assert.Equal(t, "interrupted", ReadInterrupted.String())
	assert.Equal(t, "closed", ReadClosed.String())
	assert.Equal(t, "unknown", ReadStatus(42).String())
}
