//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// sourceRoots are the directories counted as project code.
var sourceRoots = []string{"cmd", "internal", "pkg"}

// pkgStats is the line count of one Go package directory.
type pkgStats struct {
	Package string `json:"package"`
	Prod    int    `json:"prod"`
	Test    int    `json:"test"`
}

// Stats prints per-package Go line counts as JSON lines, followed by a totals
// record with documentation word counts.
func Stats() error {
	byDir := map[string]*pkgStats{}
	for _, root := range sourceRoots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) {
					return filepath.SkipDir
				}
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") {
				return nil
			}
			n, err := countLines(path)
			if err != nil {
				return err
			}
			dir := filepath.Dir(path)
			ps, ok := byDir[dir]
			if !ok {
				ps = &pkgStats{Package: dir}
				byDir[dir] = ps
			}
			if strings.HasSuffix(path, "_test.go") {
				ps.Test += n
			} else {
				ps.Prod += n
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	var prod, test int
	for _, dir := range slices.Sorted(maps.Keys(byDir)) {
		ps := byDir[dir]
		prod += ps.Prod
		test += ps.Test
		if err := enc.Encode(ps); err != nil {
			return err
		}
	}

	designWords, err := countWordsInFile("DESIGN.md")
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	specWords, err := countWordsInFile("SPEC_FULL.md")
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	record := map[string]int{
		"go_loc_prod":   prod,
		"go_loc_test":   test,
		"go_loc":        prod + test,
		"doc_wc_design": designWords,
		"doc_wc_spec":   specWords,
	}
	if err := enc.Encode(record); err != nil {
		return fmt.Errorf("encode totals: %w", err)
	}
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

func countWordsInFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return len(strings.FieldsFunc(string(data), unicode.IsSpace)), nil
}
