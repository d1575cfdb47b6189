package main

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/config"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	"github.com/KirkDiggler/dnd35-sheet/internal/logging"
	"github.com/KirkDiggler/dnd35-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/dnd35-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/dnd35-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/dnd35-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/dnd35-sheet/internal/repositories/character"
	dicesession "github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session"
)

// cli carries the state shared by every subcommand of one invocation
type cli struct {
	configPath string

	cfg     *config.Config
	catalog *catalog.Catalog
	service sheet.Service
	closers []io.Closer
}

func newRootCmd() *cobra.Command {
	return (&cli{}).rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dnd35-sheet",
		Short: "D&D 3.5 character sheet calculator",
		Long: `dnd35-sheet builds and tracks D&D 3.5 characters: point-buy ability scores,
skill ranks, racial traits and level progression, stored in Redis.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file (SHEET_* env vars override it)")

	// Character commands
	root.AddCommand(c.createCmd())
	root.AddCommand(c.showCmd())
	root.AddCommand(c.listCmd())
	root.AddCommand(c.deleteCmd())

	// Point-buy and progression commands
	root.AddCommand(c.buyAbilityCmd())
	root.AddCommand(c.buySkillCmd())
	root.AddCommand(c.levelUpCmd())
	root.AddCommand(c.rollbackLevelCmd())

	// Ability generation commands
	root.AddCommand(c.rollAbilityScoresCmd())
	root.AddCommand(c.randomizeAbilityScoresCmd())
	root.AddCommand(c.abilityRollsCmd())

	// Rules table commands
	root.AddCommand(c.listClassesCmd())
	root.AddCommand(c.listRacesCmd())
	root.AddCommand(c.listSkillsCmd())

	return root
}

// setup loads config, installs the logger and the rules tables. Storage is
// connected lazily by sheetService so table commands work without Redis.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logCloser, err := logging.Setup(logging.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FilePath:       cfg.Logging.FilePath,
		FileMaxSizeMB:  cfg.Logging.FileMaxSizeMB,
		FileMaxBackups: cfg.Logging.FileMaxBackups,
		FileMaxAgeDays: cfg.Logging.FileMaxAgeDays,
		FileCompress:   cfg.Logging.FileCompress,
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.closers = append(c.closers, logCloser)

	if cfg.Rules.CatalogDir != "" {
		c.catalog, err = catalog.LoadDir(cfg.Rules.CatalogDir)
	} else {
		c.catalog, err = catalog.Default()
	}
	if err != nil {
		return errors.Wrap(err, "failed to load rules tables")
	}

	return nil
}

func (c *cli) teardown(_ *cobra.Command, _ []string) error {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
	c.closers = nil
	return nil
}

// sheetService wires the orchestrator to Redis on first use
func (c *cli) sheetService() (sheet.Service, error) {
	if c.service != nil {
		return c.service, nil
	}

	client, err := redis.Connect(c.cfg.Redis.Addrs, &redis.Options{
		Password:        c.cfg.Redis.Password,
		DB:              c.cfg.Redis.DB,
		PoolSize:        c.cfg.Redis.PoolSize,
		MinIdleConns:    c.cfg.Redis.MinIdleConns,
		ConnMaxIdleTime: c.cfg.Redis.ConnMaxIdleTime,
		MaxRetries:      c.cfg.Redis.MaxRetries,
		UseTLS:          c.cfg.Redis.TLS,
	})
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, client)

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}

	diceSessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clock.New(),
		TTL:    c.cfg.Rules.DiceSessionTTL,
	})
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	sheet.SubscribeAuditLog(bus, slog.Default())

	svc, err := sheet.NewOrchestrator(&sheet.Config{
		CharacterRepo:   characterRepo,
		DiceSessionRepo: diceSessionRepo,
		Catalog:         c.catalog,
		IDGenerator:     idgen.NewUUID("char"),
		EventBus:        bus,
	})
	if err != nil {
		return nil, err
	}

	c.service = svc
	return svc, nil
}
