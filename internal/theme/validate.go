package theme

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/tokens"
)

// ErrIncomplete marks a theme with a missing or malformed slot.
var ErrIncomplete = errors.New("incomplete theme")

var colorType = reflect.TypeOf(color.Color{})

// Validate reports every missing slot. The returned error wraps ErrIncomplete
// once per problem.
func (t Theme) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrIncomplete, fmt.Sprintf(format, args...)))
	}

	switch {
	case strings.TrimSpace(t.Name) == "":
		fail("name is required")
	case !isFileName(t.Name):
		fail("name %q must be a plain file name", t.Name)
	}

	walkColors(reflect.ValueOf(t), "", func(path string, c color.Color) {
		if c.IsZero() {
			fail("%s is not set", path)
		}
	})

	for _, kind := range t.Syntax.Kinds() {
		if !kind.Style.Weight.Valid() {
			fail("syntax.%s.weight %q is not a font weight", kind.Name, kind.Style.Weight)
		}
	}

	if len(t.Player) != PlayerCount {
		fail("player has %d entries, want %d", len(t.Player), PlayerCount)
	}
	for _, id := range t.Player.IDs() {
		if id < 1 || id > PlayerCount {
			fail("player id %d out of range 1..%d", id, PlayerCount)
		}
	}

	if t.ShadowAlpha.Type != tokens.NumberTokenType {
		fail("shadowAlpha.type %q, want %q", t.ShadowAlpha.Type, tokens.NumberTokenType)
	}
	if t.ShadowAlpha.Value < 0 || t.ShadowAlpha.Value > 1 {
		fail("shadowAlpha.value %v outside [0,1]", t.ShadowAlpha.Value)
	}

	return errors.Join(errs...)
}

// isFileName reports whether name can be used as <dir>/<name>.<ext> without
// leaving dir.
func isFileName(name string) bool {
	if name == "." || strings.ContainsAny(name, `/\`+"\x00") || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}

func walkColors(v reflect.Value, path string, visit func(string, color.Color)) {
	if v.Type() == colorType {
		visit(path, v.Interface().(color.Color))
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			walkColors(v.Field(i), joinPath(path, fieldName(field)), visit)
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, key := range keys {
			walkColors(v.MapIndex(key), joinPath(path, fmt.Sprint(key.Interface())), visit)
		}
	}
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
		return name
	}
	return field.Name
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
