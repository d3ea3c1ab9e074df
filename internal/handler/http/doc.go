// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault server.
//
// It wires the chi router, the vault handlers, and the middleware chain in
// front of them: tracing, access logging, compression, bearer
// authentication, body integrity checks and per-account rate limiting of
// the vault secret endpoints. Handlers decode requests, call the service
// layer and translate service errors into status codes.
package http
