// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores or establishes a session, runs the terminal UI for it and
// returns to the auth flow after a logout.
package client
