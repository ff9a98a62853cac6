//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the quadboard project using Mage.
//
// Usage:
//
//	mage build          Compile quadboard binary to bin/
//	mage test:all       Run every package's tests
//	mage test:unit      Run tests for the library packages only
//	mage test:cli       Run the command-level tests in cmd/quadboard
//	mage fmt            Fail on files that are not gofmt-clean
//	mage lint           Run fmt, then golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install quadboard to GOPATH/bin
//	mage stats          Print Go LOC and documentation word counts
package main
