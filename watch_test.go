// Copyright (C) 2026, Wadcraft contributors
//
// This file is part of Wadcraft program.
//
// Wadcraft is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// Wadcraft is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wadcraft.  If not, see <https://www.gnu.org/licenses/>.

// watch_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsParamFileChange(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %s\n", err.Error())
	}
	defer watcher.Close()

	path := filepath.Join(dir, "params.yaml")
	if err := os.WriteFile(path, []byte("room_size: 512\n"), 0644); err != nil {
		t.Fatalf("setup: %s\n", err.Error())
	}

	select {
	case name := <-watcher.Events:
		if name != path {
			t.Errorf("Event for %s, wanted %s\n", name, path)
		}
	case err := <-watcher.Errors:
		t.Fatalf("Watch error: %s\n", err.Error())
	case <-time.After(5 * time.Second):
		t.Fatalf("No event for a created parameter file\n")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %s\n", err.Error())
	}
	defer watcher.Close()

	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("nothing\n"), 0644); err != nil {
		t.Fatalf("setup: %s\n", err.Error())
	}

	select {
	case name := <-watcher.Events:
		t.Errorf("Unexpected event for %s\n", name)
	case <-time.After(300 * time.Millisecond):
		// good: .txt files are not parameter files
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	watcher, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher failed: %s\n", err.Error())
	}
	if err := watcher.Close(); err != nil {
		t.Errorf("First close failed: %s\n", err.Error())
	}
	if err := watcher.Close(); err != nil {
		t.Errorf("Second close must be a no-op, got: %s\n", err.Error())
	}
}
