package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hackbuddy/hackbuddy/internal/markdown"
	"github.com/hackbuddy/hackbuddy/internal/model"
)

// ResourcesService serves curated learning resources authored as markdown
// files with frontmatter under <content>/resources.
type ResourcesService struct {
	parser      *markdown.Parser
	contentPath string
}

func NewResourcesService(contentPath string) *ResourcesService {
	return &ResourcesService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
	}
}

func (s *ResourcesService) Resources() ([]*model.Resource, error) {
	pattern := filepath.Join(s.contentPath, "resources", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var resources []*model.Resource
	for _, file := range files {
		resource, err := s.Resource(filepath.Base(file[:len(file)-3]))
		if err != nil {
			continue
		}
		resources = append(resources, resource)
	}

	sort.Slice(resources, func(i, j int) bool {
		return resources[i].Date.After(resources[j].Date)
	})

	return resources, nil
}

func (s *ResourcesService) Resource(slug string) (*model.Resource, error) {
	path := filepath.Join(s.contentPath, "resources", slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource not found: %s", slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	resource := &model.Resource{
		Slug:        slug,
		HTMLContent: string(htmlContent),
		Content:     string(content),
	}

	title, ok := meta["title"].(string)
	if ok {
		resource.Title = title
	}

	description, ok := meta["description"].(string)
	if ok {
		resource.Description = description
	}

	// YAML decoders hand back either a string or a resolved time.Time
	switch date := meta["date"].(type) {
	case string:
		parsed, err := time.Parse("2006-01-02", date)
		if err == nil {
			resource.Date = parsed
		}
	case time.Time:
		resource.Date = date
	}

	tags, ok := meta["tags"].([]any)
	if ok {
		for _, tag := range tags {
			tagStr, ok := tag.(string)
			if ok {
				resource.Tags = append(resource.Tags, tagStr)
			}
		}
	}

	return resource, nil
}
