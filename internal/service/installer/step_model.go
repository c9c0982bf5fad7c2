package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/internal/providers/llm"
)

type modelLister interface {
	Models(ctx context.Context) ([]core.Model, error)
}

// ModelStep lets the user pick a model from whatever the provider reports
type ModelStep struct {
	list     list.Model
	loading  bool
	fetching bool // Ensures we only trigger the API call once
	err      error
}

func NewModelStep() Step {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select Model"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &ModelStep{
		list:    l,
		loading: true,
	}
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func listerFromState(state *InstallState) modelLister {
	switch state.EnvVars["QUAKE_LLM_PROVIDER"] {
	case "openai":
		return llm.NewOpenAI(state.EnvVars["QUAKE_OPENAI_API_KEY"], "")
	case "openrouter":
		return llm.NewOpenRouter(state.EnvVars["QUAKE_OPENROUTER_API_KEY"], "")
	default:
		return llm.NewOllama(state.EnvVars["QUAKE_OLLAMA_BASE_URL"], state.EnvVars["QUAKE_OLLAMA_API_KEY"], "")
	}
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	// 1. Trigger fetch once when we enter the step
	if s.loading && !s.fetching {
		s.fetching = true
		lister := listerFromState(state)

		return s, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			models, err := lister.Models(ctx)
			if err != nil {
				return errMsg(err)
			}

			var items []list.Item
			for _, mod := range models {
				items = append(items, item{
					id:    mod.ID,
					title: mod.Name,
					desc:  fmt.Sprintf("ID: %s | Context: %d", mod.ID, mod.ContextLength),
				})
			}
			return modelsMsg(items)
		}
	}

	// Update list size
	s.list.SetSize(width, height-4)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case modelsMsg:
		s.list.SetItems(msg)
		s.loading = false
		s.fetching = false
		return s, nil

	case errMsg:
		s.loading = false
		s.fetching = false
		s.err = msg
		return s, nil // Return nil command to break the error loop

	case tea.KeyMsg:
		// If there's an error, allow retry with Enter
		if s.err != nil {
			if msg.String() == "enter" {
				s.err = nil
				s.loading = true
				s.fetching = false
				return s, nil
			}
			return s, nil
		}

		if msg.String() == "enter" {
			wasFiltering := s.list.FilterState() == list.Filtering
			s.list, cmd = s.list.Update(msg)

			if wasFiltering || s.list.FilterState() == list.Filtering {
				return s, cmd
			}

			if i, ok := s.list.SelectedItem().(item); ok {
				state.EnvVars["QUAKE_MODEL"] = i.id
				return nil, nil
			}
			return s, cmd
		}
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error fetching models: %v", s.err)) +
			"\n\nCheck your API key and that the provider is reachable.\n\n(press enter to retry, ctrl+c to quit)\n"
	}
	if s.loading {
		return "Fetching available models...\n"
	}
	return s.list.View()
}
