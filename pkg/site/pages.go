package site

import (
	"sort"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/prompt"
	"github.com/promptstack/promptsite/pkg/render"
)

// Page is one logical page of the site. The page list is fixed; adding a
// page means adding a template and an entry here.
type Page struct {
	Name     string
	Template string
	Output   string
}

// Pages returns the fixed list of logical pages, in build order.
func Pages() []Page {
	return []Page{
		{Name: "home", Template: "index.html", Output: "index.html"},
		{Name: "vibe", Template: "vibe.html", Output: "vibe.html"},
		{Name: "admin", Template: "admin.html", Output: "admin.html"},
		{Name: "embed", Template: "embed.html", Output: "embed.html"},
		{Name: "embed-preview", Template: "embed-preview.html", Output: "embed-preview.html"},
	}
}

// Data is the prompt snapshot one build (or one dev-server request) works
// from. Every page rendered against the same Data sees identical counts.
type Data struct {
	Prompts     []prompt.Record
	VibePrompts []prompt.Record
}

// ContributorCount is one row of the admin page's contributor table.
type ContributorCount struct {
	Name  string
	Count int
}

// ContextFor builds the render context for a page. The context key sets
// here must match the contracts declared in pkg/render.
func ContextFor(page Page, cfg *config.SiteConfig, data *Data) render.Context {
	switch page.Name {
	case "vibe":
		return render.Context{
			"Title":        cfg.Title + " /vibe",
			"Subtitle":     "awesome vibe coding prompts",
			"Prompts":      data.VibePrompts,
			"TotalPrompts": len(data.VibePrompts),
			"BasePath":     cfg.BasePath,
		}
	case "admin":
		return render.Context{
			"Title":        cfg.Title,
			"Prompts":      data.Prompts,
			"TotalPrompts": len(data.Prompts),
			"DevPrompts":   len(prompt.FilterAudience(data.Prompts, prompt.AudienceDevelopers)),
			"Contributors": contributorCounts(data.Prompts),
			"BasePath":     cfg.BasePath,
		}
	case "embed", "embed-preview":
		return render.Context{
			"Title":    cfg.Title,
			"Prompts":  data.Prompts,
			"BasePath": cfg.BasePath,
		}
	default: // home
		return render.Context{
			"Title":        cfg.Title,
			"Subtitle":     cfg.Subtitle,
			"Prompts":      data.Prompts,
			"TotalPrompts": len(data.Prompts),
			"BasePath":     cfg.BasePath,
		}
	}
}

// contributorCounts aggregates records per contributor, sorted by name so
// the rendered table is deterministic.
func contributorCounts(records []prompt.Record) []ContributorCount {
	byName := make(map[string]int)
	for _, rec := range records {
		if rec.Contributor == "" {
			continue
		}
		byName[rec.Contributor]++
	}

	counts := make([]ContributorCount, 0, len(byName))
	for name, n := range byName {
		counts = append(counts, ContributorCount{Name: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Name < counts[j].Name
	})
	return counts
}
