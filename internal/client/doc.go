// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault client runtime.
//
// It wires the HTTP adapter, the reconciliation cache and the terminal UI
// into a single process lifecycle.
package client
