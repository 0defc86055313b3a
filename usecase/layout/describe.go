package layout

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/internal/llm"
	"github.com/gridpad/gridpad/internal/naming"
)

// describeFallbackTitles caps how many widget titles the deterministic
// fallback description includes.
const describeFallbackTitles = 5

// DescribeInput identifies the layout to describe.
type DescribeInput struct {
	Name string `json:"name"`
}

// DescribeOutput wraps the one-line description.
type DescribeOutput struct {
	Description string `json:"description"`
}

// Describe generates a one-line natural-language description of a stored
// layout. When no LLM client is configured or the call fails, the
// description falls back to the first widget titles joined with ", ".
// Describe never fails once the layout is found.
func (u *UseCase) Describe(ctx context.Context, in *DescribeInput) (*DescribeOutput, error) {
	if in == nil {
		return nil, model.ErrLayoutInvalid
	}
	if err := naming.ValidateLayoutName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrLayoutInvalid, err)
	}
	l, err := u.Repos.Layout.Load(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrLayoutNotFound, in.Name)
	}

	desc := ""
	if u.LLM != nil {
		temp := float32(0.2)
		maxTokens := 60
		prompt := describePrompt(l)
		out, err := u.LLM.Generate(ctx, prompt, llm.GenerationParams{
			Temperature: &temp,
			MaxTokens:   &maxTokens,
		})
		if err == nil {
			desc = strings.TrimSpace(out)
		}
	}
	if desc == "" {
		desc = fallbackDescription(l)
	}
	return &DescribeOutput{Description: desc}, nil
}

func describePrompt(l *model.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Describe the dashboard layout %q in one short sentence. Widgets:\n", l.Name)
	for _, w := range l.Items {
		title := w.Title
		if title == "" {
			title = w.ID
		}
		fmt.Fprintf(&b, "- %s (%dx%d)\n", title, w.W, w.H)
	}
	return b.String()
}

func fallbackDescription(l *model.Layout) string {
	if len(l.Items) == 0 {
		return "Empty layout"
	}
	titles := make([]string, 0, describeFallbackTitles)
	for _, w := range l.Items {
		title := w.Title
		if title == "" {
			title = w.ID
		}
		titles = append(titles, title)
		if len(titles) == describeFallbackTitles {
			break
		}
	}
	return strings.Join(titles, ", ")
}
