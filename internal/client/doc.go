// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application.
//
// Each invocation runs one command (register, login, me, profile, post,
// posts, delete, like, version) against the server through an
// adapter.ServerAdapter and prints the JSON result.
package client
