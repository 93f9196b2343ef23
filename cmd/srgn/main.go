// Copyright 2024 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abcxyz/pkg/logging"
)

const (
	defaultLogLevel  = logging.LevelWarning
	defaultLogFormat = logging.FormatText
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer done()

	setLogEnvVars()
	ctx = logging.WithLogger(ctx, logging.NewFromEnv("SRGN_"))

	if err := realMain(ctx); err != nil {
		done()
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func setLogEnvVars() {
	if os.Getenv("SRGN_LOG_FORMAT") == "" {
		os.Setenv("SRGN_LOG_FORMAT", string(defaultLogFormat))
	}
	if os.Getenv("SRGN_LOG_LEVEL") == "" {
		os.Setenv("SRGN_LOG_LEVEL", defaultLogLevel.String())
	}
}

func realMain(ctx context.Context) error {
	// srgn is invoked directly ("srgn -u SCOPE"), not via a subcommand
	// name, so the single Command runs against the raw argument list; there
	// is no root command or subcommand dispatch.
	cmd := &Command{}
	return cmd.Run(ctx, os.Args[1:]) //nolint:wrapcheck
}
