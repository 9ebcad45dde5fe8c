package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/zerr"
)

// detailFactory returns the factory that resolves the pipeline detail
// pane for one compile result.
func detailFactory(res domain.CompileResult) Factory {
	return func() (tea.Model, error) {
		return newDetailModel(res)
	}
}

// detailModel is the deferred subtree behind the dashboard's boundary:
// the full plugin pipeline and cache policy, rendered at resolve time.
type detailModel struct {
	content string
}

func newDetailModel(res domain.CompileResult) (detailModel, error) {
	var b strings.Builder

	b.WriteString(detailTitleStyle.Render("PIPELINE") + "\n")
	for _, plugin := range res.Pipeline.Plugins {
		options, err := json.Marshal(plugin.Options)
		if err != nil {
			return detailModel{}, zerr.Wrap(err, "failed to render plugin options")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			detailKindStyle.Render(string(plugin.Kind)),
			plugin.Name,
			detailDimStyle.Render(string(options)),
		))
	}

	b.WriteString("\n" + detailTitleStyle.Render("CACHE POLICY") + "\n")
	if len(res.Rules) == 0 {
		b.WriteString(detailDimStyle.Render("  no runtime caching in "+res.Mode.String()+" mode") + "\n")
	}
	for _, rule := range res.Rules {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			detailKindStyle.Render(string(rule.Strategy)),
			rule.URLPattern,
		))
		b.WriteString(detailDimStyle.Render(fmt.Sprintf("    cache %s • max %d entries • max age %ds",
			rule.CacheName, rule.MaxEntries, rule.MaxAgeSeconds)) + "\n")
	}

	return detailModel{content: strings.TrimRight(b.String(), "\n")}, nil
}

func (d detailModel) Init() tea.Cmd {
	return nil
}

func (d detailModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return d, nil
}

func (d detailModel) View() string {
	return d.content
}
