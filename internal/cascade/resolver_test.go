// SPDX-License-Identifier: MPL-2.0

package cascade

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mantlekit/mantle/pkg/resource"
)

func TestResolve_UserOverTheme(t *testing.T) {
	cfg, th := fixture(t)

	// Theme declares base and post; the user overrides only post.
	writeFile(t, filepath.Join(th.Dir, "templates", "base.html"))
	writeFile(t, filepath.Join(th.Dir, "templates", "post.html"))
	writeFile(t, filepath.Join(cfg.OverrideDir(resource.Template), "post.html"))

	base, err := Resolve(resource.Template, "base.html", cfg, th)
	if err != nil {
		t.Fatalf("Resolve(base) returned error: %v", err)
	}
	if base.Source != resource.SourceTheme {
		t.Errorf("base source = %v, want SourceTheme", base.Source)
	}

	post, err := Resolve(resource.Template, "post.html", cfg, th)
	if err != nil {
		t.Fatalf("Resolve(post) returned error: %v", err)
	}
	if post.Source != resource.SourceUser {
		t.Errorf("post source = %v, want SourceUser", post.Source)
	}
	if want := filepath.Join(cfg.OverrideDir(resource.Template), "post.html"); post.Path != want {
		t.Errorf("post path = %s, want %s", post.Path, want)
	}
}

func TestResolve_UserFileNeverYieldsThemeSource(t *testing.T) {
	cfg, th := fixture(t)

	writeFile(t, filepath.Join(cfg.OverrideDir(resource.Data), "site.yaml"))
	writeFile(t, filepath.Join(th.Dir, "data", "site.yaml"))

	res, err := Resolve(resource.Data, "site.yaml", cfg, th)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if res.Source == resource.SourceTheme {
		t.Error("a resource with a user copy must never resolve to SourceTheme")
	}
}

func TestResolve_MissingIsNilNil(t *testing.T) {
	cfg, th := fixture(t)

	res, err := Resolve(resource.Template, "ghost.html", cfg, th)
	if err != nil {
		t.Fatalf("lenient Resolve() must not error on a missing resource: %v", err)
	}
	if res != nil {
		t.Errorf("Resolve() = %+v, want nil", res)
	}
}

func TestResolveStrict_ListsBothPaths(t *testing.T) {
	cfg, th := fixture(t)

	_, err := ResolveStrict(resource.Feature, "nonexistent", cfg, th)
	if err == nil {
		t.Fatal("ResolveStrict() should fail for a missing resource")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should wrap ErrNotFound, got %v", err)
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error should be *NotFoundError, got %T", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, notFound.UserPath) || !strings.Contains(msg, notFound.ThemePath) {
		t.Errorf("message should contain both checked paths:\n%s", msg)
	}
	if !filepath.IsAbs(notFound.UserPath) || !filepath.IsAbs(notFound.ThemePath) {
		t.Errorf("checked paths should be absolute: %s, %s", notFound.UserPath, notFound.ThemePath)
	}
}

func TestResolveStrict_HitBehavesLikeResolve(t *testing.T) {
	cfg, th := fixture(t)
	writeFile(t, filepath.Join(th.Dir, "templates", "base.html"))

	res, err := ResolveStrict(resource.Template, "base.html", cfg, th)
	if err != nil {
		t.Fatalf("ResolveStrict() returned error: %v", err)
	}
	if res.Source != resource.SourceTheme {
		t.Errorf("source = %v, want SourceTheme", res.Source)
	}
}

func TestResolve_DirectoryDoesNotCount(t *testing.T) {
	cfg, th := fixture(t)

	// A directory with the requested name is not a resolvable file.
	writeFile(t, filepath.Join(th.Dir, "templates", "base.html", "inner.html"))

	res, err := Resolve(resource.Template, "base.html", cfg, th)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if res != nil {
		t.Errorf("Resolve() = %+v, want nil for a directory hit", res)
	}
}
