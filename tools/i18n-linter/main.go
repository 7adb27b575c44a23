// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the Go sources. It reports
// i18n.T keys missing from the primary locale, keys a secondary locale
// lacks, and primary keys nothing references.
//
// Usage:
//
//	go run ./tools/i18n-linter [--root .] [--locales internal/i18n/locales] [--primary en.yaml]
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/payveri/affine/util/slicest"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	// i18n.T("status.ready", ...)
	tCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// Dotted literals such as button label IDs stored in tables.
	keyLitRe = regexp.MustCompile(`"([a-z_]+\.[a-z_.]+)"`)
)

type report struct {
	used      map[string]struct{}
	primary   map[string]struct{}
	undefined []string
	orphaned  []string
	missing   map[string][]string
}

// failed reports whether the run found errors. Orphaned keys only warn.
func (r *report) failed() bool {
	if len(r.undefined) > 0 {
		return true
	}
	for _, keys := range r.missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	root := pflag.String("root", ".", "Module root to scan")
	localesDir := pflag.String("locales", "internal/i18n/locales", "Directory holding <lang>.yaml files")
	primary := pflag.String("primary", "en.yaml", "Locale file treated as the source of truth")
	pflag.Parse()

	fmt.Println("🔍 Running i18n linter...")
	r, err := lint(*root, filepath.Join(*root, *localesDir), *primary)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	r.print(os.Stdout)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, localesDir, primaryLocale string) (*report, error) {
	used, tKeys, err := findUsedKeys(root)
	if err != nil {
		return nil, fmt.Errorf("finding used keys: %w", err)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		return nil, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	r := &report{used: used, primary: primaryKeys, missing: map[string][]string{}}
	r.undefined = sortedKeys(tKeys, func(k string) bool { _, ok := primaryKeys[k]; return !ok })
	r.orphaned = sortedKeys(primaryKeys, func(k string) bool { _, ok := used[k]; return !ok })

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
		r.missing[filepath.Base(file)] = sortedKeys(primaryKeys, func(k string) bool { _, ok := keys[k]; return !ok })
	}
	return r, nil
}

func (r *report) print(w io.Writer) {
	fmt.Fprintf(w, "✅ Found %d unique translation keys used in source code.\n", len(r.used))
	fmt.Fprintf(w, "✅ Loaded %d keys from the primary locale.\n\n", len(r.primary))

	section := func(title, label string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  ✨ None found.")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s: %s\n", label, k)
		}
		fmt.Fprintln(w)
	}
	section("Undefined Keys (used with i18n.T but not in primary locale)", "Undefined", r.undefined)
	section("Orphaned Keys (in primary locale but not used in code)", "Orphaned", r.orphaned)

	locales := make([]string, 0, len(r.missing))
	for name := range r.missing {
		locales = append(locales, name)
	}
	sort.Strings(locales)
	for _, name := range locales {
		section("Missing Keys in "+name, "Missing", r.missing[name])
	}

	switch {
	case r.failed():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// findUsedKeys scans non-test .go files under root. all holds every
// referenced key; tKeys only those passed directly to i18n.T.
func findUsedKeys(root string) (all, tKeys map[string]struct{}, err error) {
	all = make(map[string]struct{})
	tKeys = make(map[string]struct{})

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range tCallRe.FindAllStringSubmatch(string(content), -1) {
			tKeys[m[1]] = struct{}{}
			all[m[1]] = struct{}{}
		}
		for _, m := range keyLitRe.FindAllStringSubmatch(string(content), -1) {
			all[m[1]] = struct{}{}
		}
		return nil
	})
	return all, tKeys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated leaf keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func sortedKeys(set map[string]struct{}, keep func(string) bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	keys = slicest.Filter(keys, keep)
	sort.Strings(keys)
	return keys
}
