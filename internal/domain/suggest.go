package domain

import (
	"log/slog"
	"sort"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// suggest returns installed package names that look like name.
func (i *installer) suggest(name string) []string {
	installed, err := scanPackages(i.fs, i.manifests, i.opts.Dirs.Packages)
	if err != nil {
		slog.Debug("cannot list packages for suggestions", "error", err)
		return nil
	}

	names := make([]string, 0, len(installed))
	for _, manifest := range installed {
		names = append(names, manifest.Name)
	}

	return suggestNames(name, names)
}

// suggestNames ranks candidates that contain name as a subsequence, or are
// themselves a subsequence of name (a typo with an extra letter).
func suggestNames(name string, candidates []string) []string {
	scores := make(map[string]int)

	for _, match := range fuzzy.Find(name, candidates) {
		scores[match.Str] = match.Score
	}

	for _, candidate := range candidates {
		if _, ok := scores[candidate]; ok {
			continue
		}

		if matches := fuzzy.Find(candidate, []string{name}); len(matches) > 0 {
			scores[candidate] = matches[0].Score
		}
	}

	ranked := make([]string, 0, len(scores))
	for candidate := range scores {
		ranked = append(ranked, candidate)
	}

	sort.Slice(ranked, func(a, b int) bool {
		if scores[ranked[a]] != scores[ranked[b]] {
			return scores[ranked[a]] > scores[ranked[b]]
		}

		return ranked[a] < ranked[b]
	})

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	return ranked
}
