//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the companion project using Mage.
//
// Usage:
//
//	mage build          Compile the companion binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the race detector, short mode
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts
//	mage install        Install companion to GOPATH/bin
//	mage stats          Print Go LOC and documentation word counts
package main

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "companion"
	binaryDir  = "bin"
	cmdDir     = "./cmd/companion"
	modulePath = "github.com/mesh-intelligence/companion"
)
