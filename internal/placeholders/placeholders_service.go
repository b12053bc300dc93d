package placeholders

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/capitolhq/congressctl/internal/lib"
)

type PlaceholderResolver func() (string, error)

type placeholderModifier struct {
	name string
	args []string
}

type modifierResolver func(time.Time, []string) (time.Time, error)

type placeholder struct {
	raw       string
	value     string
	modifiers []placeholderModifier
}

// Service resolves "{{ ... }}" time expressions in configuration values, e.g.
// "{{ time.now | minus(20y) }}". Resolved values render in the upstream API's
// datetime format.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// NewServiceWithClock pins the clock, for tests.
func NewServiceWithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

var (
	placeholderRegExp = regexp.MustCompile(`{{\s*([^{}]+)\s*}}`)
	modifierRegExp    = regexp.MustCompile(`(\w+)(\(([^()]*)\))?`)
)

func (s *Service) extractPlaceholders(value string) ([]placeholder, error) {
	matches := placeholderRegExp.FindAllStringSubmatch(value, -1)
	placeholders := make([]placeholder, 0, len(matches))

	for _, match := range matches {
		raw := match[0]
		fullInnerValue := match[1]

		valueParts := strings.Split(fullInnerValue, "|")
		innerValue := strings.TrimSpace(valueParts[0])
		modifiers := make([]placeholderModifier, 0, len(valueParts)-1)
		for _, part := range valueParts[1:] {
			rawModifier := strings.TrimSpace(part)
			if rawModifier == "" {
				continue
			}
			modifierMatch := modifierRegExp.FindStringSubmatch(rawModifier)
			if modifierMatch == nil {
				return nil, fmt.Errorf("invalid modifier format in placeholder: %s. %w", raw, lib.BadUserInputError)
			}

			modifierName := modifierMatch[1]
			if modifierName == "" {
				return nil, fmt.Errorf("invalid modifier format in placeholder: %s. %w", raw, lib.BadUserInputError)
			}

			var modifierArgs []string
			modifierArgsRaw := modifierMatch[3]
			if modifierArgsRaw != "" {
				modifierArgs = strings.Split(modifierArgsRaw, ",")
				for i := range modifierArgs {
					modifierArgs[i] = strings.TrimSpace(modifierArgs[i])
					if unquoted, err := strconv.Unquote(modifierArgs[i]); err == nil {
						modifierArgs[i] = unquoted
					}
				}
			}

			modifiers = append(modifiers, placeholderModifier{
				name: modifierName,
				args: modifierArgs,
			})
		}

		placeholders = append(placeholders, placeholder{
			raw:       raw,
			value:     innerValue,
			modifiers: modifiers,
		})
	}

	return placeholders, nil
}

// ResolvePlaceholders replaces every placeholder in value. Values without
// placeholders pass through untouched, so literal datetimes coexist with
// expressions in the same config key.
func (s *Service) ResolvePlaceholders(value string) (string, error) {
	placeholders, err := s.extractPlaceholders(value)
	if err != nil {
		return "", fmt.Errorf("extracting placeholders: %w", err)
	}

	timeResolvers := map[string]func() (time.Time, error){
		"time.now":   s.resolveNow,
		"time.today": s.resolveToday,
	}

	modifierResolvers := map[string]modifierResolver{
		"minus": minusModifier,
		"plus":  plusModifier,
	}

	for _, placeholder := range placeholders {
		resolver, ok := timeResolvers[placeholder.value]
		if !ok {
			return "", fmt.Errorf("no resolver found for placeholder: %s. %w", placeholder.raw, lib.BadUserInputError)
		}

		resolvedTime, err := resolver()
		if err != nil {
			return "", fmt.Errorf("resolving placeholder %s: %w", placeholder.raw, err)
		}

		layout := DateTimeFormat
		for _, modifier := range placeholder.modifiers {
			if modifier.name == "format" {
				customLayout, err := formatModifier(modifier.args)
				if err != nil {
					return "", fmt.Errorf("applying modifier %s to placeholder %s: %w", modifier.name, placeholder.raw, err)
				}
				layout = customLayout
				continue
			}

			modifierFunc, ok := modifierResolvers[modifier.name]
			if !ok {
				return "", fmt.Errorf("no resolver found for modifier: %s in placeholder: %s. %w", modifier.name, placeholder.raw, lib.BadUserInputError)
			}

			resolvedTime, err = modifierFunc(resolvedTime, modifier.args)
			if err != nil {
				return "", fmt.Errorf("applying modifier %s to placeholder %s: %w", modifier.name, placeholder.raw, err)
			}
		}

		value = strings.Replace(value, placeholder.raw, resolvedTime.Format(layout), 1)
	}

	return value, nil
}
