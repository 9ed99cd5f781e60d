package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// flagSet holds "--name value" and "--name=value" arguments.
type flagSet struct {
	values map[string]string
}

// parseFlags accepts only the names listed in known.
func parseFlags(args []string, known ...string) (*flagSet, error) {
	allowed := make(map[string]bool, len(known))
	for _, k := range known {
		allowed[k] = true
	}
	fs := &flagSet{values: make(map[string]string)}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return nil, fmt.Errorf("unexpected argument %q", arg)
		}
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !allowed[name] {
			return nil, fmt.Errorf("unknown flag --%s", name)
		}
		if !hasValue {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		fs.values[name] = value
	}
	return fs, nil
}

func (fs *flagSet) string(name, def string) string {
	if v, ok := fs.values[name]; ok {
		return v
	}
	return def
}

func (fs *flagSet) float(name string, def float64) (float64, error) {
	v, ok := fs.values[name]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return f, nil
}

func (fs *flagSet) int(name string, def int) (int, error) {
	v, ok := fs.values[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return n, nil
}

func (fs *flagSet) duration(name string, def time.Duration) (time.Duration, error) {
	v, ok := fs.values[name]
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}
