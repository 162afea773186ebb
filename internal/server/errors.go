// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when no HTTP handler or address is
// available.
var errNoServersAreCreated = errors.New("no servers are created")

// errServerStartFailed wraps a listener error raised while starting up.
var errServerStartFailed = errors.New("server failed to start")
