package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"earl/internal/model"
)

const (
	// DirEnv overrides the directory holding urls.toml.
	DirEnv = "EARL_DIR"
	// DotfilesEnv points at the legacy dotfiles checkout.
	DotfilesEnv = "DOTFILES_ROOT"
	// URLsFileName is the name of the global config file.
	URLsFileName = "urls.toml"

	defaultDotfilesRoot = "~/Projects/PMB/dotfiles"
)

// Env is a snapshot of the process environment.
type Env map[string]string

// EnvFromList builds an Env from KEY=VALUE pairs as returned by os.Environ.
func EnvFromList(list []string) Env {
	env := make(Env, len(list))
	for _, kv := range list {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Paths are the resolved locations of the global config.
type Paths struct {
	URLsFile string // File to load
	Legacy   string // Old dotfiles location to migrate from; empty when EARL_DIR is set
}

// ResolvePath works out where urls.toml lives. $EARL_DIR wins outright;
// otherwise the file lives under ~/.config/earl with the dotfiles copy
// as a migration source.
func ResolvePath(env Env, home string) Paths {
	if dir := env[DirEnv]; dir != "" {
		return Paths{URLsFile: filepath.Join(model.ExpandHome(dir, home), URLsFileName)}
	}

	root := env[DotfilesEnv]
	if root == "" {
		root = defaultDotfilesRoot
	}
	return Paths{
		URLsFile: filepath.Join(home, ".config", "earl", URLsFileName),
		Legacy:   filepath.Join(model.ExpandHome(root, home), "os", "mac", "bin", "earl", URLsFileName),
	}
}

// Migrate copies the legacy dotfiles urls.toml into place when the config
// file does not exist yet. The legacy file is left untouched. It reports
// whether a copy was made.
func Migrate(p Paths) (bool, error) {
	if p.Legacy == "" || model.Exists(p.URLsFile) || !model.Exists(p.Legacy) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(p.URLsFile), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	src, err := os.Open(p.Legacy)
	if err != nil {
		return false, fmt.Errorf("open legacy urls file: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return false, fmt.Errorf("stat legacy urls file: %w", err)
	}

	dst, err := os.OpenFile(p.URLsFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return false, fmt.Errorf("create %s: %w", p.URLsFile, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(p.URLsFile)
		return false, fmt.Errorf("copy urls file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", p.URLsFile, err)
	}
	_ = os.Chtimes(p.URLsFile, info.ModTime(), info.ModTime())
	return true, nil
}
