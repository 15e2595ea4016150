package server

import (
	"log/slog"

	"github.com/preston-bernstein/live-arena-service/internal/config"
	"github.com/preston-bernstein/live-arena-service/internal/leagues"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
)

type leagueComponents struct {
	allowList leagues.AllowList
	aliases   leagues.AliasTable
}

// buildLeagues wires the competition allow-list and alias table. Without a leagues file the
// allow-list comes from AllowedCompetitions, and an empty list keeps every competition.
func buildLeagues(cfg config.Config, logger *slog.Logger) leagueComponents {
	if cfg.LeaguesFile == "" {
		components := leagueComponents{aliases: leagues.DefaultAliases()}
		if len(cfg.AllowedCompetitions) > 0 {
			components.allowList = leagues.NewStatic(cfg.AllowedCompetitions...)
		}
		return components
	}

	components := leagueComponents{
		allowList: leagues.NewFileAllowList(cfg.LeaguesFile),
		aliases:   leagues.DefaultAliases(),
	}
	file, err := leagues.Load(cfg.LeaguesFile)
	if err != nil {
		logging.Warn(logger, "failed to load leagues file, using built-in aliases",
			slog.String("path", cfg.LeaguesFile),
			slog.Any(logging.FieldError, err),
		)
		return components
	}
	components.aliases = file.AliasTable()
	logging.Info(logger, "loaded leagues file",
		slog.String("path", cfg.LeaguesFile),
		slog.Int("allowed_competitions", len(file.AllowedCompetitions)),
		slog.Int("aliases", len(components.aliases)),
	)
	return components
}
