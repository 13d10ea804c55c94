// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable terminal application.
type Client interface {
	// Run blocks until the user quits.
	Run() error

	// RunContext is Run bound to ctx; cancelling ctx stops the UI.
	RunContext(ctx context.Context) error
}

var _ Client = (*App)(nil)
