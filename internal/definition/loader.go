package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"herald/pkg/command"
	"herald/pkg/logging"
)

// LoadDirectory reads every .yaml/.yml file in dir and returns the contained
// definitions. Files load in lexical name order so registration order is
// reproducible. A missing directory yields an empty set, matching a fresh
// installation.
func LoadDirectory(dir string) ([]CommandDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Info("Definition", "No definitions directory at %s", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading definitions directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var defs []CommandDefinition
	for _, name := range names {
		path := filepath.Join(dir, name)
		fileDefs, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	logging.Debug("Definition", "Loaded %d command definitions from %s", len(defs), dir)
	return defs, nil
}

func loadFile(path string) ([]CommandDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, def := range file.Commands {
		if len(def.Path) == 0 {
			return nil, fmt.Errorf("parsing %s: command with empty path", path)
		}
	}
	return file.Commands, nil
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// LoadInto loads, compiles, and publishes the directory's definitions into
// the registry in one shot. Nothing is published when any step fails.
func LoadInto(dir string, handlers *Handlers, registry *command.Registry) (int, error) {
	defs, err := LoadDirectory(dir)
	if err != nil {
		return 0, err
	}
	cmds, err := CompileAll(defs, handlers)
	if err != nil {
		return 0, err
	}
	if err := registry.Register(cmds...); err != nil {
		return 0, err
	}
	return len(cmds), nil
}
