package template

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-layouts/pkg/layout"
)

// Wrap builds a layout.Wrapper that renders the named template around page
// content. Templates receive two variables: "content", the inner markup
// already rendered (mark it safe in the template to avoid double escaping),
// and "data", the layout's namespaced slice.
func Wrap(engine TemplateRenderer, name string) (layout.Wrapper, error) {
	if engine == nil {
		return nil, errors.New("template: engine is required")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.New("template: template name is required")
	}
	return func(_ context.Context, content []byte, data any) ([]byte, error) {
		rendered, err := engine.Render(trimmed, wrapperContext(content, data))
		if err != nil {
			return nil, fmt.Errorf("template: render %q: %w", trimmed, err)
		}
		return []byte(rendered), nil
	}, nil
}

// WrapString is the inline variant of Wrap for callers without template
// files; templateContent is parsed on every render.
func WrapString(engine TemplateRenderer, templateContent string) (layout.Wrapper, error) {
	if engine == nil {
		return nil, errors.New("template: engine is required")
	}
	if strings.TrimSpace(templateContent) == "" {
		return nil, errors.New("template: template content is required")
	}
	return func(_ context.Context, content []byte, data any) ([]byte, error) {
		rendered, err := engine.RenderString(templateContent, wrapperContext(content, data))
		if err != nil {
			return nil, fmt.Errorf("template: render inline template: %w", err)
		}
		return []byte(rendered), nil
	}, nil
}

func wrapperContext(content []byte, data any) map[string]any {
	return map[string]any{
		"content": string(content),
		"data":    data,
	}
}
