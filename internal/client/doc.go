// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless vault client runtime.
//
// It runs an initial synchronization of the local encrypted cache, then
// keeps it current with the background sync worker until the process
// receives a stop signal.
package client
