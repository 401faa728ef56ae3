package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResource(t *testing.T, dir, slug, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0o644))
}

func newTestResourcesService(t *testing.T) (*ResourcesService, string) {
	t.Helper()
	contentPath := t.TempDir()
	resourcesDir := filepath.Join(contentPath, "resources")
	require.NoError(t, os.MkdirAll(resourcesDir, 0o755))
	return NewResourcesService(contentPath), resourcesDir
}

func TestResourceParsesFrontmatterAndBody(t *testing.T) {
	svc, dir := newTestResourcesService(t)
	writeResource(t, dir, "team-building", `---
title: Team Building
description: Finding teammates before the event.
date: "2025-05-01"
tags:
  - teams
  - beginners
---

# Team Building

Find your team **early**.
`)

	resource, err := svc.Resource("team-building")
	require.NoError(t, err)
	assert.Equal(t, "team-building", resource.Slug)
	assert.Equal(t, "Team Building", resource.Title)
	assert.Equal(t, "Finding teammates before the event.", resource.Description)
	assert.Equal(t, []string{"teams", "beginners"}, resource.Tags)
	assert.Equal(t, 2025, resource.Date.Year())
	assert.Contains(t, resource.HTMLContent, "<h1")
	assert.Contains(t, resource.HTMLContent, "<strong>early</strong>")
}

func TestResourceNotFound(t *testing.T) {
	svc, _ := newTestResourcesService(t)

	_, err := svc.Resource("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource not found")
}

func TestResourcesSortedNewestFirst(t *testing.T) {
	svc, dir := newTestResourcesService(t)
	writeResource(t, dir, "older", "---\ntitle: Older\ndate: \"2025-01-01\"\n---\nbody")
	writeResource(t, dir, "newer", "---\ntitle: Newer\ndate: \"2025-06-01\"\n---\nbody")

	resources, err := svc.Resources()
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "newer", resources[0].Slug)
	assert.Equal(t, "older", resources[1].Slug)
}

func TestResourcesEmptyDirectory(t *testing.T) {
	svc, _ := newTestResourcesService(t)

	resources, err := svc.Resources()
	require.NoError(t, err)
	assert.Empty(t, resources)
}
