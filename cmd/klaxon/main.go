// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command klaxon puts a confirmation gate in front of a command.
//
//	klaxon -b DANGER -d "Dropping every table" -t yesno -- psql -f drop.sql
//	klaxon -t random && ./deploy.sh
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// version is set by ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	code := newApp(os.Stdin, os.Stdout, os.Stderr).execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
