// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs one command line and reports its outcome.
type Client interface {
	// Run executes the command named by args[0].
	Run(ctx context.Context, args []string) error
}
