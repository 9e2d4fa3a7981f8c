// Package feed loads the journal's posts from a directory of TOML files.
// The gallery engine consumes the resulting sequence as-is: it is sorted
// newest-first once at load time and stays stable for the lifetime of a
// view.
package feed

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Image is one image descriptor of a post.
type Image struct {
	Src string `koanf:"src"`
	Alt string `koanf:"alt"`
}

// Post is a single journal entry.
type Post struct {
	Title  string  `koanf:"title"`
	Date   string  `koanf:"date"` // ISO-ish, as written in the source file
	Body   string  `koanf:"body"`
	Images []Image `koanf:"images"`

	when time.Time
}

// When returns the parsed publication time.
func (p Post) When() time.Time { return p.when }

// dateLayouts are accepted date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Load reads every .toml file under dir and returns the posts sorted
// newest-first. Ties keep filename order, so the feed is stable across
// reloads.
func Load(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read feed dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var posts []Post
	for _, name := range names {
		post, err := loadPost(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", name, err)
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].when.After(posts[j].when)
	})

	return posts, nil
}

func loadPost(path string) (Post, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Post{}, err
	}

	var post Post
	if err := k.Unmarshal("", &post); err != nil {
		return Post{}, err
	}
	if post.Title == "" {
		return Post{}, fmt.Errorf("missing title")
	}

	when, err := parseDate(post.Date)
	if err != nil {
		return Post{}, err
	}
	post.when = when

	return post, nil
}
