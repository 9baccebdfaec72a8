package render

import (
	"strings"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

// Environment places one environment key in a section under a label
type Environment struct {
	Key   string `koanf:"key" toml:"key" yaml:"key" json:"key"`
	Label string `koanf:"label" toml:"label" yaml:"label" json:"label"`
}

// Section groups environments under a heading
type Section struct {
	Title        string        `koanf:"title" toml:"title" yaml:"title" json:"title"`
	Environments []Environment `koanf:"environments" toml:"environments" yaml:"environments" json:"environments"`
}

// Layout is the ordered list of sections a link block is made of.
// Environment keys that no section mentions are not rendered.
type Layout struct {
	Sections []Section `koanf:"sections" toml:"sections" yaml:"sections" json:"sections"`
}

// DefaultLayout groups desktop and mobile under Frontend and bo under CMS
func DefaultLayout() Layout {
	return Layout{
		Sections: []Section{
			{
				Title: "Frontend",
				Environments: []Environment{
					{Key: "desktop", Label: "Desktop"},
					{Key: "mobile", Label: "Mobile"},
				},
			},
			{
				Title: "CMS",
				Environments: []Environment{
					{Key: "bo", Label: "Back Office"},
				},
			},
		},
	}
}

// Keys returns every environment key of the layout, in layout order
func (l Layout) Keys() []string {
	var keys []string
	for _, s := range l.Sections {
		for _, e := range s.Environments {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Validate checks that sections have titles and keys appear only once.
// An environment without a label is shown under its key.
func (l Layout) Validate() error {
	if len(l.Sections) == 0 {
		return errors.New(errors.ErrInvalidInput, "layout has no sections")
	}

	seen := make(map[string]string)
	for i, s := range l.Sections {
		if strings.TrimSpace(s.Title) == "" {
			return errors.Newf(errors.ErrInvalidInput, "layout section %d has no title", i+1)
		}
		for _, e := range s.Environments {
			if strings.TrimSpace(e.Key) == "" {
				return errors.Newf(errors.ErrInvalidInput, "section %q has an environment without key", s.Title)
			}
			if other, dup := seen[e.Key]; dup {
				return errors.Newf(errors.ErrInvalidInput, "environment %q appears in sections %q and %q", e.Key, other, s.Title).
					WithDetail("key", e.Key)
			}
			seen[e.Key] = s.Title
		}
	}
	return nil
}

type row struct {
	Label string
	URL   string
}

type sectionView struct {
	Title string
	Rows  []row
}

// populated keeps the sections that have at least one non-empty URL
func (l Layout) populated(urlsByEnv map[string]string) []sectionView {
	var views []sectionView
	for _, s := range l.Sections {
		view := sectionView{Title: s.Title}
		for _, e := range s.Environments {
			url := strings.TrimSpace(urlsByEnv[e.Key])
			if url == "" {
				continue
			}
			label := e.Label
			if label == "" {
				label = e.Key
			}
			view.Rows = append(view.Rows, row{Label: label, URL: url})
		}
		if len(view.Rows) > 0 {
			views = append(views, view)
		}
	}
	return views
}
